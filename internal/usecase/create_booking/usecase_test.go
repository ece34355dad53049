package create_booking

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
	parkingModels "github.com/inalogystics/DeskBookingService/internal/service/parking/models"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type stubDeskRepo struct {
	desk *domain.Desk
	err  error
}

func (s *stubDeskRepo) GetByNumber(ctx context.Context, deskNumber string) (*domain.Desk, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.desk, nil
}

type stubBookingRepo struct {
	// ключи — domain.FormatDate(date)
	deskTaken map[string]*domain.DeskBooking
	userTaken map[string]*domain.DeskBooking

	createErr error
	created   []*domain.DeskBooking
	nextID    int64
}

func (s *stubBookingRepo) Create(ctx context.Context, b *domain.DeskBooking) (*domain.DeskBooking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.nextID++
	out := *b
	out.ID = s.nextID
	s.created = append(s.created, &out)
	return &out, nil
}

func (s *stubBookingRepo) FindActiveByDeskAndDate(ctx context.Context, deskID int64, date time.Time) (*domain.DeskBooking, error) {
	if b, ok := s.deskTaken[domain.FormatDate(date)]; ok {
		return b, nil
	}
	return nil, deskBookingRepo.ErrBookingNotFound
}

func (s *stubBookingRepo) FindActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.DeskBooking, error) {
	if b, ok := s.userTaken[domain.FormatDate(date)]; ok {
		return b, nil
	}
	return nil, deskBookingRepo.ErrBookingNotFound
}

type stubAssigner struct {
	assignment *parkingModels.Assignment
	err        error
	calls      int
}

func (s *stubAssigner) AssignSpace(ctx context.Context, userID int64, date time.Time, startTime, endTime types.TimeString, preferredSpaceID *int64) (*parkingModels.Assignment, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.assignment, nil
}

func testUser() *domain.User {
	return &domain.User{ID: 7, Email: "ivan@inalogystics.com"}
}

func testDesk() *domain.Desk {
	return &domain.Desk{
		ID:         3,
		DeskNumber: "D05",
		Zone:       "Open Space",
		IsShared:   true,
		IsActive:   true,
	}
}

func testRequest(dates ...string) *Request {
	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, _ := domain.ParseLocalDate(d)
		parsed = append(parsed, t)
	}
	return &Request{
		Email:      "ivan@inalogystics.com",
		DeskNumber: "D05",
		Dates:      parsed,
		StartTime:  "09:00",
		EndTime:    "17:00",
	}
}

func newTestUseCase(users *stubUserRepo, desks *stubDeskRepo, bookings *stubBookingRepo, assigner *stubAssigner) *UseCase {
	return NewUseCase(desks, bookings, users, assigner, stubTxManager{}, noopLogger{})
}

func TestExecute_MultipleDatesWithParking(t *testing.T) {
	bookings := &stubBookingRepo{}
	assigner := &stubAssigner{assignment: &parkingModels.Assignment{SpaceID: 12, SpotNumber: "G12", Location: "Garage"}}
	uc := newTestUseCase(&stubUserRepo{user: testUser()}, &stubDeskRepo{desk: testDesk()}, bookings, assigner)

	req := testRequest("2026-09-01", "2026-09-02")
	req.NeedsParking = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, resp.Bookings, 2)
	assert.Empty(t, resp.Failed)

	assert.Equal(t, "2026-09-01", resp.Bookings[0].Date)
	assert.Equal(t, "D05", resp.Bookings[0].DeskNumber)
	assert.Equal(t, "09:00", resp.Bookings[0].StartTime)
	require.NotNil(t, resp.Bookings[0].Parking)
	assert.Equal(t, "G12", resp.Bookings[0].Parking.SpotNumber)

	assert.Equal(t, 2, assigner.calls)
	require.Len(t, bookings.created, 2)
	assert.Equal(t, domain.StatusActive, bookings.created[0].Status)
}

func TestExecute_DeskTakenOnOneDate(t *testing.T) {
	bookings := &stubBookingRepo{
		deskTaken: map[string]*domain.DeskBooking{
			"2026-09-02": {ID: 99, DeskID: 3},
		},
	}
	uc := newTestUseCase(&stubUserRepo{user: testUser()}, &stubDeskRepo{desk: testDesk()}, bookings, &stubAssigner{})

	resp, err := uc.Execute(context.Background(), testRequest("2026-09-01", "2026-09-02"))
	require.NoError(t, err)

	// Смешанный результат считается успехом: одна дата все же забронирована
	assert.True(t, resp.Success)
	require.Len(t, resp.Bookings, 1)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, "2026-09-01", resp.Bookings[0].Date)
	assert.Equal(t, "2026-09-02", resp.Failed[0].Date)
	assert.Equal(t, "Desk is already booked for this date", resp.Failed[0].Reason)
}

func TestExecute_UserAlreadyBookedElsewhere(t *testing.T) {
	bookings := &stubBookingRepo{
		userTaken: map[string]*domain.DeskBooking{
			"2026-09-01": {ID: 42, DeskID: 8, DeskNumber: "D11"},
		},
	}
	uc := newTestUseCase(&stubUserRepo{user: testUser()}, &stubDeskRepo{desk: testDesk()}, bookings, &stubAssigner{})

	resp, err := uc.Execute(context.Background(), testRequest("2026-09-01"))
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Empty(t, resp.Bookings)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, "You already have a booking for Desk D11", resp.Failed[0].Reason)
}

func TestExecute_ConstraintRaceMapsToReason(t *testing.T) {
	tests := []struct {
		name       string
		createErr  error
		wantReason string
	}{
		{
			name:       "desk slot index",
			createErr:  deskBookingRepo.ErrDeskSlotTaken,
			wantReason: "This desk is already booked for the selected date and time",
		},
		{
			name:       "user date index",
			createErr:  deskBookingRepo.ErrUserDateTaken,
			wantReason: "You already have a booking for this date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &stubBookingRepo{createErr: tt.createErr}
			uc := newTestUseCase(&stubUserRepo{user: testUser()}, &stubDeskRepo{desk: testDesk()}, bookings, &stubAssigner{})

			resp, err := uc.Execute(context.Background(), testRequest("2026-09-01"))
			require.NoError(t, err)

			assert.False(t, resp.Success)
			require.Len(t, resp.Failed, 1)
			assert.Equal(t, tt.wantReason, resp.Failed[0].Reason)
		})
	}
}

func TestExecute_DeskNotBookable(t *testing.T) {
	desk := testDesk()
	desk.IsShared = false
	uc := newTestUseCase(&stubUserRepo{user: testUser()}, &stubDeskRepo{desk: desk}, &stubBookingRepo{}, &stubAssigner{})

	_, err := uc.Execute(context.Background(), testRequest("2026-09-01"))
	require.ErrorIs(t, err, ErrDeskNotBookable)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := newTestUseCase(&stubUserRepo{err: userRepo.ErrUserNotFound}, &stubDeskRepo{desk: testDesk()}, &stubBookingRepo{}, &stubAssigner{})

	_, err := uc.Execute(context.Background(), testRequest("2026-09-01"))
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_DeskNotFound(t *testing.T) {
	uc := newTestUseCase(&stubUserRepo{user: testUser()}, &stubDeskRepo{err: deskRepo.ErrDeskNotFound}, &stubBookingRepo{}, &stubAssigner{})

	_, err := uc.Execute(context.Background(), testRequest("2026-09-01"))
	require.ErrorIs(t, err, ErrDeskNotFound)
}

func TestExecute_ParkingFailureKeepsDeskBooking(t *testing.T) {
	assigner := &stubAssigner{err: errors.New("no contact with parking")}
	uc := newTestUseCase(&stubUserRepo{user: testUser()}, &stubDeskRepo{desk: testDesk()}, &stubBookingRepo{}, assigner)

	req := testRequest("2026-09-01")
	req.NeedsParking = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.True(t, resp.Success)
	require.Len(t, resp.Bookings, 1)
	assert.Nil(t, resp.Bookings[0].Parking)
}

func TestExecute_NoParkingAvailable(t *testing.T) {
	// Assigner без свободных мест возвращает nil без ошибки
	assigner := &stubAssigner{}
	uc := newTestUseCase(&stubUserRepo{user: testUser()}, &stubDeskRepo{desk: testDesk()}, &stubBookingRepo{}, assigner)

	req := testRequest("2026-09-01")
	req.NeedsParking = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.True(t, resp.Success)
	assert.Nil(t, resp.Bookings[0].Parking)
	assert.Equal(t, 1, assigner.calls)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty email", func(r *Request) { r.Email = "" }},
		{"empty desk number", func(r *Request) { r.DeskNumber = "" }},
		{"no dates", func(r *Request) { r.Dates = nil }},
		{"duplicate dates", func(r *Request) { r.Dates = append(r.Dates, r.Dates[0]) }},
		{"bad start time", func(r *Request) { r.StartTime = "9am" }},
		{"bad end time", func(r *Request) { r.EndTime = "25:00" }},
		{"start after end", func(r *Request) { r.StartTime = "18:00"; r.EndTime = "09:00" }},
		{"start equals end", func(r *Request) { r.StartTime = "09:00"; r.EndTime = "09:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest("2026-09-01")
			tt.mutate(req)
			err := validateRequest(req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	require.NoError(t, validateRequest(testRequest("2026-09-01", "2026-09-02")))
}
