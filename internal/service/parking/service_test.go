package parking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	parkingRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/parking"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type stubParkingRepo struct {
	spaces    []*domain.ParkingSpace
	booked    map[int64]struct{}
	createErr error
	created   []*domain.ParkingBooking
	cancelled int64
}

func (s *stubParkingRepo) ListSpaces(ctx context.Context) ([]*domain.ParkingSpace, error) {
	return s.spaces, nil
}

func (s *stubParkingRepo) FindBookedSpaceIDs(ctx context.Context, date time.Time, startTime types.TimeString) (map[int64]struct{}, error) {
	if s.booked == nil {
		return map[int64]struct{}{}, nil
	}
	return s.booked, nil
}

func (s *stubParkingRepo) CreateBooking(ctx context.Context, b *domain.ParkingBooking) (*domain.ParkingBooking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *b
	out.ID = int64(len(s.created) + 1)
	s.created = append(s.created, &out)
	return &out, nil
}

func (s *stubParkingRepo) CancelActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (int64, error) {
	return s.cancelled, nil
}

// Места в каноническом порядке чтения из репозитория (расположение, номер)
func garageSpaces() []*domain.ParkingSpace {
	return []*domain.ParkingSpace{
		{ID: 1, SpotNumber: "G12", Location: "Garage"},
		{ID: 2, SpotNumber: "G13", Location: "Garage"},
		{ID: 3, SpotNumber: "PH66", Location: "Parking House"},
	}
}

func testDate() time.Time {
	d, _ := domain.ParseLocalDate("2026-09-01")
	return d
}

func TestAvailability(t *testing.T) {
	repo := &stubParkingRepo{
		spaces: garageSpaces(),
		booked: map[int64]struct{}{2: {}},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Availability(context.Background(), testDate(), "09:00")
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, 3, resp.TotalSpaces)
	assert.Equal(t, 2, resp.AvailableSpaces)
	require.Len(t, resp.Spaces, 3)

	assert.True(t, resp.Spaces[0].IsAvailable)
	assert.False(t, resp.Spaces[1].IsAvailable)
	assert.True(t, resp.Spaces[2].IsAvailable)
}

func TestAssignSpace_PreferredSpaceWhenFree(t *testing.T) {
	repo := &stubParkingRepo{spaces: garageSpaces()}
	svc := NewService(repo, noopLogger{})

	preferred := int64(3)
	a, err := svc.AssignSpace(context.Background(), 7, testDate(), "09:00", "17:00", &preferred)
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.Equal(t, int64(3), a.SpaceID)
	assert.Equal(t, "PH66", a.SpotNumber)
	assert.Equal(t, "Parking House", a.Location)

	require.Len(t, repo.created, 1)
	assert.Equal(t, int64(3), repo.created[0].ParkingSpaceID)
	assert.Equal(t, domain.StatusActive, repo.created[0].Status)
}

func TestAssignSpace_ChosenSpotTakenGoesParkingless(t *testing.T) {
	repo := &stubParkingRepo{
		spaces: garageSpaces(),
		booked: map[int64]struct{}{3: {}},
	}
	svc := NewService(repo, noopLogger{})

	// Занятое выбранное место не подменяется свободным: парковки не будет
	preferred := int64(3)
	a, err := svc.AssignSpace(context.Background(), 7, testDate(), "09:00", "17:00", &preferred)
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.Empty(t, repo.created)
}

func TestAssignSpace_UnknownChosenSpotGoesParkingless(t *testing.T) {
	repo := &stubParkingRepo{spaces: garageSpaces()}
	svc := NewService(repo, noopLogger{})

	preferred := int64(404)
	a, err := svc.AssignSpace(context.Background(), 7, testDate(), "09:00", "17:00", &preferred)
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.Empty(t, repo.created)
}

func TestAssignSpace_NoPreference(t *testing.T) {
	repo := &stubParkingRepo{spaces: garageSpaces()}
	svc := NewService(repo, noopLogger{})

	a, err := svc.AssignSpace(context.Background(), 7, testDate(), "09:00", "17:00", nil)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "G12", a.SpotNumber)
}

func TestAssignSpace_NoFreeSpaces(t *testing.T) {
	repo := &stubParkingRepo{
		spaces: garageSpaces(),
		booked: map[int64]struct{}{1: {}, 2: {}, 3: {}},
	}
	svc := NewService(repo, noopLogger{})

	a, err := svc.AssignSpace(context.Background(), 7, testDate(), "09:00", "17:00", nil)
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.Empty(t, repo.created)
}

func TestAssignSpace_LostRaceGivesNoAssignment(t *testing.T) {
	repo := &stubParkingRepo{
		spaces:    garageSpaces(),
		createErr: parkingRepo.ErrSpotTaken,
	}
	svc := NewService(repo, noopLogger{})

	a, err := svc.AssignSpace(context.Background(), 7, testDate(), "09:00", "17:00", nil)
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestCancelForUserDate(t *testing.T) {
	repo := &stubParkingRepo{spaces: garageSpaces(), cancelled: 2}
	svc := NewService(repo, noopLogger{})

	n, err := svc.CancelForUserDate(context.Background(), 7, testDate())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
