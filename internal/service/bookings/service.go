package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	deskRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/desk"
	deskBookingRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/deskbooking"
	userRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/user"
	"github.com/inalogystics/DeskBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями столов
type Service struct {
	bookingRepo      DeskBookingRepository
	parkingRepo      ParkingRepository
	deskRepo         DeskRepository
	userRepo         UserRepository
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo DeskBookingRepository,
	parkingRepo ParkingRepository,
	deskRepo DeskRepository,
	userRepo UserRepository,
	notificationRepo NotificationRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:      bookingRepo,
		parkingRepo:      parkingRepo,
		deskRepo:         deskRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// GetWeek собирает недельный обзор бронирований пользователя: семь дней
// начиная с weekStart, с привязанной парковкой. Неизвестный email дает
// пустой обзор, а не ошибку.
func (s *Service) GetWeek(ctx context.Context, email string, weekStart time.Time) ([]models.WeekDay, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Info("GetWeek: unknown user email=%s, returning empty week", email)
			return []models.WeekDay{}, nil
		}
		s.logger.Error("GetWeek: failed to resolve user email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	weekStart = domain.DateOnly(weekStart)
	weekEnd := weekStart.AddDate(0, 0, domain.DaysPerWeek-1)

	bookings, err := s.bookingRepo.ListByUserBetween(ctx, u.ID, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("GetWeek: failed to list bookings for user=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	parkingBookings, err := s.parkingRepo.ListActiveByUserBetween(ctx, u.ID, weekStart, weekEnd)
	if err != nil {
		s.logger.Error("GetWeek: failed to list parking for user=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	bookingByDate := make(map[string]*domain.DeskBooking, len(bookings))
	for _, b := range bookings {
		bookingByDate[domain.FormatDate(b.Date)] = b
	}
	parkingByDate := make(map[string]*domain.ParkingBooking, len(parkingBookings))
	for _, p := range parkingBookings {
		parkingByDate[domain.FormatDate(p.Date)] = p
	}

	week := make([]models.WeekDay, 0, domain.DaysPerWeek)
	for i := 0; i < domain.DaysPerWeek; i++ {
		date := weekStart.AddDate(0, 0, i)
		key := domain.FormatDate(date)

		day := models.WeekDay{
			Date:    key,
			Weekday: date.Weekday().String(),
		}
		if b, ok := bookingByDate[key]; ok {
			day.HasBooking = true
			day.Booking = models.ToDayBooking(b)
		}
		if p, ok := parkingByDate[key]; ok {
			day.Parking = models.ToParkingInfo(p)
		}
		week = append(week, day)
	}

	return week, nil
}

// GetUpcoming получает активные бронирования пользователя начиная с даты from
func (s *Service) GetUpcoming(ctx context.Context, email string, from time.Time) ([]models.UpcomingBooking, error) {
	u, err := s.resolveUser(ctx, email, "GetUpcoming")
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListActiveByUserFrom(ctx, u.ID, from)
	if err != nil {
		s.logger.Error("GetUpcoming: failed to list bookings for user=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: GetUpcoming - repository error: %v", ErrInternal, err)
	}

	upcoming := make([]models.UpcomingBooking, 0, len(bookings))
	if len(bookings) == 0 {
		return upcoming, nil
	}

	lastDate := bookings[len(bookings)-1].Date
	parkingBookings, err := s.parkingRepo.ListActiveByUserBetween(ctx, u.ID, from, lastDate)
	if err != nil {
		s.logger.Error("GetUpcoming: failed to list parking for user=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: GetUpcoming - repository error: %v", ErrInternal, err)
	}

	parkingByDate := make(map[string]*domain.ParkingBooking, len(parkingBookings))
	for _, p := range parkingBookings {
		parkingByDate[domain.FormatDate(p.Date)] = p
	}

	for _, b := range bookings {
		item := models.UpcomingBooking{
			ID:         b.ID,
			Date:       domain.FormatDate(b.Date),
			DeskNumber: b.DeskNumber,
			Zone:       b.Zone,
			StartTime:  b.StartTime.String(),
			EndTime:    b.EndTime.String(),
			Status:     string(b.Status),
		}
		if p, ok := parkingByDate[item.Date]; ok {
			item.Parking = models.ToParkingInfo(p)
		}
		upcoming = append(upcoming, item)
	}

	return upcoming, nil
}

// Cancel отменяет бронирование стола пользователя. Привязанная парковка на ту же
// дату освобождается следом, без общей транзакции: потеря освобождения парковки
// не откатывает отмену стола.
func (s *Service) Cancel(ctx context.Context, email string, bookingID int64) error {
	u, err := s.resolveUser(ctx, email, "Cancel")
	if err != nil {
		return err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, deskBookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != u.ID {
		s.logger.Warn("Cancel: user=%d attempted to cancel booking=%d of user=%d", u.ID, bookingID, booking.UserID)
		return ErrAccessDenied
	}

	if booking.IsCancelled() {
		return ErrAlreadyCancelled
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to update status for booking=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	released, err := s.parkingRepo.CancelActiveByUserAndDate(ctx, u.ID, booking.Date)
	if err != nil {
		s.logger.Warn("Cancel: booking=%d cancelled, but parking release failed: %v", bookingID, err)
	} else if released > 0 {
		s.logger.Info("Cancel: released %d parking bookings for user=%d date=%s",
			released, u.ID, domain.FormatDate(booking.Date))
	}

	s.logger.Info("Cancel: booking=%d cancelled by user=%d", bookingID, u.ID)
	return nil
}

// ConfirmDeskBooking создает подтвержденное бронирование стола со слотом времени.
// Пересечение с другим подтвержденным слотом того же стола запрещено.
func (s *Service) ConfirmDeskBooking(ctx context.Context, email string, req *models.ConfirmDeskRequest) (*models.BookingResponse, error) {
	if !req.StartTime.IsBefore(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	u, err := s.resolveUser(ctx, email, "ConfirmDeskBooking")
	if err != nil {
		return nil, err
	}

	desk, err := s.deskRepo.GetByID(ctx, req.DeskID)
	if err != nil {
		if errors.Is(err, deskRepo.ErrDeskNotFound) {
			s.logger.Warn("ConfirmDeskBooking: desk id=%d not found", req.DeskID)
			return nil, ErrDeskNotFound
		}
		s.logger.Error("ConfirmDeskBooking: repository error for desk=%d: %v", req.DeskID, err)
		return nil, fmt.Errorf("%w: ConfirmDeskBooking - repository error: %v", ErrInternal, err)
	}

	_, err = s.bookingRepo.FindConfirmedOverlap(ctx, desk.ID, req.Date, req.StartTime.String(), req.EndTime.String())
	if err == nil {
		s.logger.Warn("ConfirmDeskBooking: overlap for desk=%d date=%s slot=%s-%s",
			desk.ID, domain.FormatDate(req.Date), req.StartTime, req.EndTime)
		return nil, ErrTimeSlotTaken
	}
	if !errors.Is(err, deskBookingRepo.ErrBookingNotFound) {
		s.logger.Error("ConfirmDeskBooking: overlap check failed for desk=%d: %v", desk.ID, err)
		return nil, fmt.Errorf("%w: ConfirmDeskBooking - repository error: %v", ErrInternal, err)
	}

	booking := &domain.DeskBooking{
		UserID:    u.ID,
		DeskID:    desk.ID,
		Date:      domain.DateOnly(req.Date),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.StatusConfirmed,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("ConfirmDeskBooking: failed to create booking for user=%d desk=%d: %v", u.ID, desk.ID, err)
		return nil, fmt.Errorf("%w: ConfirmDeskBooking - repository error: %v", ErrInternal, err)
	}

	created.DeskNumber = desk.DeskNumber
	created.Zone = desk.Zone

	s.createConfirmationNotification(ctx, u.ID, desk.DeskNumber, created)

	s.logger.Info("ConfirmDeskBooking: booking=%d confirmed for user=%d desk=%s", created.ID, u.ID, desk.DeskNumber)
	return models.FromDomainBooking(created), nil
}

func (s *Service) resolveUser(ctx context.Context, email string, op string) (*domain.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user not found email=%s", op, email)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: failed to resolve user email=%s: %v", op, email, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return u, nil
}

// Уведомление best-effort: его потеря не должна ломать бронирование
func (s *Service) createConfirmationNotification(ctx context.Context, userID int64, deskNumber string, b *domain.DeskBooking) {
	_, err := s.notificationRepo.Create(ctx, &domain.Notification{
		UserID: userID,
		Type:   domain.NotificationBookingConfirmed,
		Title:  "Booking confirmed",
		Message: fmt.Sprintf("Desk %s is booked for %s from %s to %s.",
			deskNumber, domain.FormatDate(b.Date), b.StartTime, b.EndTime),
	})
	if err != nil {
		s.logger.Warn("createConfirmationNotification: failed for user=%d booking=%d: %v", userID, b.ID, err)
	}
}
