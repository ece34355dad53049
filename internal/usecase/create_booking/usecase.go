package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	deskRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/desk"
	deskBookingRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/deskbooking"
	userRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/user"
)

// Причины отказа по датам. Текст показывается пользователю как есть.
const (
	reasonDeskTaken        = "Desk is already booked for this date"
	reasonUserHasBookingAt = "You already have a booking for Desk %s"
	reasonDeskSlotConflict = "This desk is already booked for the selected date and time"
	reasonUserDateConflict = "You already have a booking for this date"
)

// UseCase use case для бронирования стола на несколько дат
type UseCase struct {
	deskRepo        DeskRepository
	bookingRepo     DeskBookingRepository
	userRepo        UserRepository
	parkingAssigner ParkingAssigner
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	deskRepo DeskRepository,
	bookingRepo DeskBookingRepository,
	userRepo UserRepository,
	parkingAssigner ParkingAssigner,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		deskRepo:        deskRepo,
		bookingRepo:     bookingRepo,
		userRepo:        userRepo,
		parkingAssigner: parkingAssigner,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute бронирует стол на каждую из запрошенных дат независимо: конфликт
// по одной дате не мешает остальным. Проверки и вставка каждой даты идут в
// одной транзакции; гонку за стол окончательно решают частичные уникальные
// индексы, а нарушение превращается в отказ по этой дате.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, desk=%s, dates=%d, slot=%s-%s",
		req.Email, req.DeskNumber, len(req.Dates), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user not found email=%s", req.Email)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to resolve user email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: failed to resolve user: %v", ErrInternal, err)
	}

	desk, err := uc.deskRepo.GetByNumber(ctx, req.DeskNumber)
	if err != nil {
		if errors.Is(err, deskRepo.ErrDeskNotFound) {
			uc.logger.Warn("CreateBooking: desk %s not found", req.DeskNumber)
			return nil, ErrDeskNotFound
		}
		uc.logger.Error("CreateBooking: failed to get desk %s: %v", req.DeskNumber, err)
		return nil, fmt.Errorf("%w: failed to get desk: %v", ErrInternal, err)
	}

	// Закрытый или персональный стол отклоняет запрос целиком
	if !desk.IsBookable() {
		uc.logger.Warn("CreateBooking: desk %s is not bookable", desk.DeskNumber)
		return nil, ErrDeskNotBookable
	}

	resp := &Response{
		Bookings: make([]CreatedBooking, 0, len(req.Dates)),
		Failed:   make([]FailedDate, 0),
	}

	for _, date := range req.Dates {
		created, reason, err := uc.bookDate(ctx, user, desk, req, domain.DateOnly(date))
		if err != nil {
			return nil, err
		}
		if reason != "" {
			resp.Failed = append(resp.Failed, FailedDate{
				Date:   domain.FormatDate(date),
				Reason: reason,
			})
			continue
		}
		resp.Bookings = append(resp.Bookings, *created)
	}

	// Частичный результат остается успехом: хотя бы одна забронированная дата
	resp.Success = len(resp.Bookings) > 0

	uc.logger.Info("CreateBooking: email=%s desk=%s booked=%d failed=%d",
		req.Email, desk.DeskNumber, len(resp.Bookings), len(resp.Failed))
	return resp, nil
}

// bookDate бронирует одну дату. Возвращает либо созданное бронирование,
// либо причину отказа для пользователя, либо фатальную ошибку.
func (uc *UseCase) bookDate(ctx context.Context, user *domain.User, desk *domain.Desk, req *Request, date time.Time) (*CreatedBooking, string, error) {
	var booking *domain.DeskBooking
	var reason string

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Предпроверки дают осмысленные причины отказа до вставки
		_, err := uc.bookingRepo.FindActiveByDeskAndDate(txCtx, desk.ID, date)
		if err == nil {
			reason = reasonDeskTaken
			return nil
		}
		if !errors.Is(err, deskBookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: desk conflict check failed: %v", ErrInternal, err)
		}

		existing, err := uc.bookingRepo.FindActiveByUserAndDate(txCtx, user.ID, date)
		if err == nil {
			reason = fmt.Sprintf(reasonUserHasBookingAt, existing.DeskNumber)
			return nil
		}
		if !errors.Is(err, deskBookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: user conflict check failed: %v", ErrInternal, err)
		}

		booking, err = uc.bookingRepo.Create(txCtx, &domain.DeskBooking{
			UserID:    user.ID,
			DeskID:    desk.ID,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    domain.StatusActive,
		})
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		// Проигрыш гонки между предпроверкой и вставкой: индекс решает
		switch {
		case errors.Is(err, deskBookingRepo.ErrDeskSlotTaken):
			uc.logger.Warn("CreateBooking: lost desk slot race: desk=%s date=%s", desk.DeskNumber, domain.FormatDate(date))
			return nil, reasonDeskSlotConflict, nil
		case errors.Is(err, deskBookingRepo.ErrUserDateTaken):
			uc.logger.Warn("CreateBooking: lost user date race: user=%d date=%s", user.ID, domain.FormatDate(date))
			return nil, reasonUserDateConflict, nil
		}
		uc.logger.Error("CreateBooking: transaction failed for date=%s: %v", domain.FormatDate(date), err)
		return nil, "", fmt.Errorf("%w: booking transaction failed: %v", ErrInternal, err)
	}

	if reason != "" {
		return nil, reason, nil
	}

	created := &CreatedBooking{
		BookingID:  booking.ID,
		Date:       domain.FormatDate(date),
		DeskNumber: desk.DeskNumber,
		Zone:       desk.Zone,
		StartTime:  req.StartTime.String(),
		EndTime:    req.EndTime.String(),
	}

	// Парковка подбирается уже вне транзакции: ее отсутствие не откатывает стол
	if req.NeedsParking {
		assignment, err := uc.parkingAssigner.AssignSpace(ctx, user.ID, date, req.StartTime, req.EndTime, req.PreferredParkingSpaceID)
		if err != nil {
			uc.logger.Warn("CreateBooking: parking assignment failed for date=%s: %v", domain.FormatDate(date), err)
		} else {
			created.Parking = assignment
		}
	}

	return created, "", nil
}
