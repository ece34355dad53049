package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	deskRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/desk"
	deskBookingRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/deskbooking"
	userRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/user"
	"github.com/inalogystics/DeskBookingService/internal/service/bookings/models"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubBookingRepo struct {
	byID       map[int64]*domain.DeskBooking
	between    []*domain.DeskBooking
	upcoming   []*domain.DeskBooking
	overlap    *domain.DeskBooking
	createErr  error
	updated    map[int64]domain.BookingStatus
	lastCreate *domain.DeskBooking
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{
		byID:    make(map[int64]*domain.DeskBooking),
		updated: make(map[int64]domain.BookingStatus),
	}
}

func (s *stubBookingRepo) Create(ctx context.Context, b *domain.DeskBooking) (*domain.DeskBooking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *b
	out.ID = 100
	out.CreatedAt = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	s.lastCreate = &out
	return &out, nil
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id int64) (*domain.DeskBooking, error) {
	if b, ok := s.byID[id]; ok {
		return b, nil
	}
	return nil, deskBookingRepo.ErrBookingNotFound
}

func (s *stubBookingRepo) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]*domain.DeskBooking, error) {
	return s.between, nil
}

func (s *stubBookingRepo) ListActiveByUserFrom(ctx context.Context, userID int64, from time.Time) ([]*domain.DeskBooking, error) {
	return s.upcoming, nil
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	s.updated[id] = status
	return nil
}

func (s *stubBookingRepo) FindConfirmedOverlap(ctx context.Context, deskID int64, date time.Time, startTime, endTime string) (*domain.DeskBooking, error) {
	if s.overlap != nil {
		return s.overlap, nil
	}
	return nil, deskBookingRepo.ErrBookingNotFound
}

type stubParkingRepo struct {
	between      []*domain.ParkingBooking
	cancelled    int64
	cancelErr    error
	cancelCalled bool
	cancelDate   time.Time
}

func (s *stubParkingRepo) ListActiveByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]*domain.ParkingBooking, error) {
	return s.between, nil
}

func (s *stubParkingRepo) CancelActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (int64, error) {
	s.cancelCalled = true
	s.cancelDate = date
	return s.cancelled, s.cancelErr
}

type stubDeskRepo struct {
	desk *domain.Desk
	err  error
}

func (s *stubDeskRepo) GetByID(ctx context.Context, id int64) (*domain.Desk, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.desk, nil
}

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubNotificationRepo struct {
	created []*domain.Notification
	err     error
}

func (s *stubNotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, n)
	return n, nil
}

type deps struct {
	bookings      *stubBookingRepo
	parking       *stubParkingRepo
	desks         *stubDeskRepo
	users         *stubUserRepo
	notifications *stubNotificationRepo
}

func newTestService() (*Service, *deps) {
	d := &deps{
		bookings:      newStubBookingRepo(),
		parking:       &stubParkingRepo{},
		desks:         &stubDeskRepo{desk: &domain.Desk{ID: 3, DeskNumber: "D05", Zone: "Open Space", IsShared: true, IsActive: true}},
		users:         &stubUserRepo{user: &domain.User{ID: 7, Email: "ivan@inalogystics.com"}},
		notifications: &stubNotificationRepo{},
	}
	svc := NewService(d.bookings, d.parking, d.desks, d.users, d.notifications, noopLogger{})
	return svc, d
}

func day(s string) time.Time {
	d, _ := domain.ParseLocalDate(s)
	return d
}

func TestGetWeek(t *testing.T) {
	svc, d := newTestService()
	d.bookings.between = []*domain.DeskBooking{
		{ID: 1, UserID: 7, Date: day("2026-09-01"), DeskNumber: "D05", Zone: "Open Space", StartTime: "09:00", EndTime: "17:00", Status: domain.StatusActive},
	}
	d.parking.between = []*domain.ParkingBooking{
		{ID: 2, UserID: 7, Date: day("2026-09-01"), SpotNumber: "G12", Location: "Garage"},
	}

	week, err := svc.GetWeek(context.Background(), "ivan@inalogystics.com", day("2026-08-31"))
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.Equal(t, "2026-08-31", week[0].Date)
	assert.Equal(t, "Monday", week[0].Weekday)
	assert.False(t, week[0].HasBooking)
	assert.Nil(t, week[0].Booking)

	tuesday := week[1]
	assert.Equal(t, "2026-09-01", tuesday.Date)
	require.True(t, tuesday.HasBooking)
	assert.Equal(t, "D05", tuesday.Booking.DeskNumber)
	require.NotNil(t, tuesday.Parking)
	assert.Equal(t, "G12", tuesday.Parking.SpotNumber)

	assert.Equal(t, "2026-09-06", week[6].Date)
}

func TestGetWeek_ShowsConfirmedBookings(t *testing.T) {
	svc, d := newTestService()
	// Неделя показывает и CONFIRMED бронирования, скрываются только отмененные
	d.bookings.between = []*domain.DeskBooking{
		{ID: 3, UserID: 7, Date: day("2026-09-03"), DeskNumber: "D07", Zone: "Open Space", StartTime: "10:00", EndTime: "12:00", Status: domain.StatusConfirmed},
	}

	week, err := svc.GetWeek(context.Background(), "ivan@inalogystics.com", day("2026-08-31"))
	require.NoError(t, err)

	thursday := week[3]
	require.True(t, thursday.HasBooking)
	assert.Equal(t, string(domain.StatusConfirmed), thursday.Booking.Status)
}

func TestGetWeek_UnknownUserGivesEmptyWeek(t *testing.T) {
	svc, d := newTestService()
	d.users.err = userRepo.ErrUserNotFound

	week, err := svc.GetWeek(context.Background(), "nobody@inalogystics.com", day("2026-08-31"))
	require.NoError(t, err)
	assert.NotNil(t, week)
	assert.Empty(t, week)
}

func TestGetUpcoming(t *testing.T) {
	svc, d := newTestService()
	d.bookings.upcoming = []*domain.DeskBooking{
		{ID: 1, UserID: 7, Date: day("2026-09-01"), DeskNumber: "D05", Zone: "Open Space", StartTime: "09:00", EndTime: "17:00", Status: domain.StatusActive},
		{ID: 2, UserID: 7, Date: day("2026-09-03"), DeskNumber: "D07", Zone: "Open Space", StartTime: "10:00", EndTime: "16:00", Status: domain.StatusActive},
	}
	d.parking.between = []*domain.ParkingBooking{
		{ID: 9, UserID: 7, Date: day("2026-09-03"), SpotNumber: "PH66", Location: "Parking House"},
	}

	upcoming, err := svc.GetUpcoming(context.Background(), "ivan@inalogystics.com", day("2026-08-31"))
	require.NoError(t, err)
	require.Len(t, upcoming, 2)

	assert.Nil(t, upcoming[0].Parking)
	require.NotNil(t, upcoming[1].Parking)
	assert.Equal(t, "PH66", upcoming[1].Parking.SpotNumber)
}

func TestCancel(t *testing.T) {
	svc, d := newTestService()
	d.bookings.byID[5] = &domain.DeskBooking{ID: 5, UserID: 7, Date: day("2026-09-01"), Status: domain.StatusActive}
	d.parking.cancelled = 1

	err := svc.Cancel(context.Background(), "ivan@inalogystics.com", 5)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, d.bookings.updated[5])
	assert.True(t, d.parking.cancelCalled)
	assert.Equal(t, "2026-09-01", domain.FormatDate(d.parking.cancelDate))
}

func TestCancel_ForeignBooking(t *testing.T) {
	svc, d := newTestService()
	d.bookings.byID[5] = &domain.DeskBooking{ID: 5, UserID: 999, Date: day("2026-09-01"), Status: domain.StatusActive}

	err := svc.Cancel(context.Background(), "ivan@inalogystics.com", 5)
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, d.bookings.updated)
}

func TestCancel_NotFound(t *testing.T) {
	svc, _ := newTestService()
	err := svc.Cancel(context.Background(), "ivan@inalogystics.com", 404)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, d := newTestService()
	d.bookings.byID[5] = &domain.DeskBooking{ID: 5, UserID: 7, Date: day("2026-09-01"), Status: domain.StatusCancelled}

	err := svc.Cancel(context.Background(), "ivan@inalogystics.com", 5)
	require.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_ParkingReleaseFailureDoesNotFailCancel(t *testing.T) {
	svc, d := newTestService()
	d.bookings.byID[5] = &domain.DeskBooking{ID: 5, UserID: 7, Date: day("2026-09-01"), Status: domain.StatusActive}
	d.parking.cancelErr = errors.New("db down")

	err := svc.Cancel(context.Background(), "ivan@inalogystics.com", 5)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, d.bookings.updated[5])
}

func TestConfirmDeskBooking(t *testing.T) {
	svc, d := newTestService()

	resp, err := svc.ConfirmDeskBooking(context.Background(), "ivan@inalogystics.com", &models.ConfirmDeskRequest{
		DeskID:    3,
		Date:      day("2026-09-01"),
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "D05", resp.DeskNumber)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	require.NotNil(t, d.bookings.lastCreate)
	assert.Equal(t, domain.StatusConfirmed, d.bookings.lastCreate.Status)

	require.Len(t, d.notifications.created, 1)
	assert.Equal(t, domain.NotificationBookingConfirmed, d.notifications.created[0].Type)
	assert.Equal(t, "Desk D05 is booked for 2026-09-01 from 09:00 to 12:00.", d.notifications.created[0].Message)
}

func TestConfirmDeskBooking_Overlap(t *testing.T) {
	svc, d := newTestService()
	d.bookings.overlap = &domain.DeskBooking{ID: 77}

	_, err := svc.ConfirmDeskBooking(context.Background(), "ivan@inalogystics.com", &models.ConfirmDeskRequest{
		DeskID:    3,
		Date:      day("2026-09-01"),
		StartTime: "10:00",
		EndTime:   "14:00",
	})
	require.ErrorIs(t, err, ErrTimeSlotTaken)
}

func TestConfirmDeskBooking_InvalidTimeRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ConfirmDeskBooking(context.Background(), "ivan@inalogystics.com", &models.ConfirmDeskRequest{
		DeskID:    3,
		Date:      day("2026-09-01"),
		StartTime: "14:00",
		EndTime:   "10:00",
	})
	require.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestConfirmDeskBooking_DeskNotFound(t *testing.T) {
	svc, d := newTestService()
	d.desks.err = deskRepo.ErrDeskNotFound

	_, err := svc.ConfirmDeskBooking(context.Background(), "ivan@inalogystics.com", &models.ConfirmDeskRequest{
		DeskID:    404,
		Date:      day("2026-09-01"),
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.ErrorIs(t, err, ErrDeskNotFound)
}

func TestConfirmDeskBooking_NotificationFailureIsSwallowed(t *testing.T) {
	svc, d := newTestService()
	d.notifications.err = errors.New("db down")

	resp, err := svc.ConfirmDeskBooking(context.Background(), "ivan@inalogystics.com", &models.ConfirmDeskRequest{
		DeskID:    3,
		Date:      day("2026-09-01"),
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)
	assert.NotNil(t, resp)
}
