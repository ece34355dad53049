package parking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	parkingRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/parking"
	"github.com/inalogystics/DeskBookingService/internal/service/parking/models"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

// Service сервис для работы с парковкой
type Service struct {
	parkingRepo ParkingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса парковки
func NewService(parkingRepo ParkingRepository, logger Logger) *Service {
	return &Service{
		parkingRepo: parkingRepo,
		logger:      logger,
	}
}

// Availability получает доступность всех мест на дату и время начала.
// Занятость определяется точным совпадением времени начала активного бронирования.
func (s *Service) Availability(ctx context.Context, date time.Time, startTime types.TimeString) (*models.AvailabilityResponse, error) {
	spaces, err := s.parkingRepo.ListSpaces(ctx)
	if err != nil {
		s.logger.Error("Availability: failed to list spaces: %v", err)
		return nil, fmt.Errorf("%w: Availability - repository error: %v", ErrInternal, err)
	}

	booked, err := s.parkingRepo.FindBookedSpaceIDs(ctx, date, startTime)
	if err != nil {
		s.logger.Error("Availability: failed to find booked spaces: %v", err)
		return nil, fmt.Errorf("%w: Availability - repository error: %v", ErrInternal, err)
	}

	resp := &models.AvailabilityResponse{
		Date:        domain.FormatDate(date),
		StartTime:   startTime.String(),
		TotalSpaces: len(spaces),
		Spaces:      make([]models.SpaceAvailability, 0, len(spaces)),
	}

	for _, space := range spaces {
		_, taken := booked[space.ID]
		if !taken {
			resp.AvailableSpaces++
		}
		resp.Spaces = append(resp.Spaces, models.FromDomainSpace(space, !taken))
	}

	return resp, nil
}

// AssignSpace подбирает и бронирует парковочное место для пользователя.
// Явно выбранное место берется, только если свободно: занятый выбор не
// заменяется другим, бронирование идет без парковки. Без выбора берется
// первое свободное в каноническом порядке (расположение, номер). Если
// свободных мест нет или место увели в гонке, назначение просто не
// происходит (nil, nil).
func (s *Service) AssignSpace(ctx context.Context, userID int64, date time.Time, startTime, endTime types.TimeString, preferredSpaceID *int64) (*models.Assignment, error) {
	spaces, err := s.parkingRepo.ListSpaces(ctx)
	if err != nil {
		s.logger.Error("AssignSpace: failed to list spaces: %v", err)
		return nil, fmt.Errorf("%w: AssignSpace - repository error: %v", ErrInternal, err)
	}

	booked, err := s.parkingRepo.FindBookedSpaceIDs(ctx, date, startTime)
	if err != nil {
		s.logger.Error("AssignSpace: failed to find booked spaces: %v", err)
		return nil, fmt.Errorf("%w: AssignSpace - repository error: %v", ErrInternal, err)
	}

	chosen := chooseSpace(spaces, booked, preferredSpaceID)
	if chosen == nil {
		s.logger.Info("AssignSpace: no free parking space for user=%d date=%s start=%s",
			userID, domain.FormatDate(date), startTime)
		return nil, nil
	}

	booking := &domain.ParkingBooking{
		UserID:         userID,
		ParkingSpaceID: chosen.ID,
		Date:           domain.DateOnly(date),
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         domain.StatusActive,
	}

	_, err = s.parkingRepo.CreateBooking(ctx, booking)
	if err != nil {
		// Гонка за место: бронирование стола остается без парковки
		if errors.Is(err, parkingRepo.ErrSpotTaken) {
			s.logger.Warn("AssignSpace: spot %s lost in race for user=%d date=%s",
				chosen.SpotNumber, userID, domain.FormatDate(date))
			return nil, nil
		}
		s.logger.Error("AssignSpace: failed to create booking for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: AssignSpace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AssignSpace: assigned spot %s to user=%d date=%s", chosen.SpotNumber, userID, domain.FormatDate(date))
	return &models.Assignment{
		SpaceID:    chosen.ID,
		SpotNumber: chosen.SpotNumber,
		Location:   chosen.Location,
	}, nil
}

// CancelForUserDate отменяет активные бронирования парковки пользователя на дату
func (s *Service) CancelForUserDate(ctx context.Context, userID int64, date time.Time) (int64, error) {
	cancelled, err := s.parkingRepo.CancelActiveByUserAndDate(ctx, userID, date)
	if err != nil {
		s.logger.Error("CancelForUserDate: repository error for user=%d: %v", userID, err)
		return 0, fmt.Errorf("%w: CancelForUserDate - repository error: %v", ErrInternal, err)
	}

	if cancelled > 0 {
		s.logger.Info("CancelForUserDate: cancelled %d parking bookings for user=%d date=%s",
			cancelled, userID, domain.FormatDate(date))
	}
	return cancelled, nil
}

func chooseSpace(spaces []*domain.ParkingSpace, booked map[int64]struct{}, preferredSpaceID *int64) *domain.ParkingSpace {
	// Автоподбор только при отсутствии явного выбора: занятое или
	// несуществующее выбранное место не подменяется другим
	if preferredSpaceID != nil {
		for _, space := range spaces {
			if space.ID != *preferredSpaceID {
				continue
			}
			if _, taken := booked[space.ID]; !taken {
				return space
			}
			return nil
		}
		return nil
	}

	for _, space := range spaces {
		if _, taken := booked[space.ID]; !taken {
			return space
		}
	}

	return nil
}
