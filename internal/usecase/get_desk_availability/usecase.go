package get_desk_availability

import (
	"context"
	"fmt"

	"github.com/inalogystics/DeskBookingService/internal/domain"
)

// UseCase use case для карты доступности столов на дату
type UseCase struct {
	deskRepo     DeskRepository
	bookingRepo  DeskBookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(deskRepo DeskRepository, bookingRepo DeskBookingRepository, logger Logger) *UseCase {
	return &UseCase{
		deskRepo:     deskRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит карту занятости всех активных столов на дату.
// Занятость оценивается по накопленным часам активных бронирований за день.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := uc.timeProvider.Now()
	if req.Date != nil {
		date = *req.Date
	}
	date = domain.DateOnly(date)

	desks, err := uc.deskRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("GetDeskAvailability: failed to list desks: %v", err)
		return nil, fmt.Errorf("%w: failed to list desks: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListActiveByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetDeskAvailability: failed to list bookings for date=%s: %v", domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	type deskLoad struct {
		count   int
		minutes int
		slots   []BookedSlot
	}
	loadByDesk := make(map[int64]*deskLoad, len(bookings))
	for _, b := range bookings {
		load, ok := loadByDesk[b.DeskID]
		if !ok {
			load = &deskLoad{}
			loadByDesk[b.DeskID] = load
		}
		load.count++
		dur, err := b.DurationMinutes()
		if err != nil {
			uc.logger.Warn("GetDeskAvailability: booking id=%d has invalid time window: %v", b.ID, err)
		} else {
			load.minutes += dur
		}
		load.slots = append(load.slots, BookedSlot{
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
		})
	}

	resp := &Response{
		Date:  domain.FormatDate(date),
		Desks: make([]DeskAvailability, 0, len(desks)),
	}

	for _, d := range desks {
		load := loadByDesk[d.ID]
		count, minutes := 0, 0
		slots := make([]BookedSlot, 0)
		if load != nil {
			count, minutes, slots = load.count, load.minutes, load.slots
		}

		occupancy := domain.ClassifyOccupancy(count, minutes)

		resp.Desks = append(resp.Desks, DeskAvailability{
			ID:              d.ID,
			DeskNumber:      d.DeskNumber,
			Floor:           d.Floor,
			Zone:            d.Zone,
			X:               d.X,
			Y:               d.Y,
			HasMonitor:      d.HasMonitor,
			HasStandingDesk: d.HasStandingDesk,
			IsShared:        d.IsShared,
			Occupancy:       string(occupancy),
			IsAvailable:     occupancy.IsBookableAt() && d.IsBookable(),
			BookedMinutes:   minutes,
			BookedSlots:     slots,
		})
	}

	uc.logger.Info("GetDeskAvailability: date=%s desks=%d bookings=%d", resp.Date, len(desks), len(bookings))
	return resp, nil
}
