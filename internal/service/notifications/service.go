package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	notificationRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/notification"
	userRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/user"
	"github.com/inalogystics/DeskBookingService/internal/service/notifications/models"
)

// Service сервис для работы с уведомлениями
type Service struct {
	notificationRepo NotificationRepository
	userRepo         UserRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// ListForUser получает уведомления пользователя, свежие первыми
func (s *Service) ListForUser(ctx context.Context, email string) (*models.NotificationListResponse, error) {
	u, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, u.ID)
	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications), nil
}

// MarkRead помечает уведомление пользователя прочитанным
func (s *Service) MarkRead(ctx context.Context, email string, notificationID int64) error {
	u, err := s.resolveUser(ctx, email)
	if err != nil {
		return err
	}

	err = s.notificationRepo.MarkRead(ctx, notificationID, u.ID)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for user=%d", notificationID, u.ID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification=%d user=%d: %v", notificationID, u.ID, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// MarkAllRead помечает все уведомления пользователя прочитанными
func (s *Service) MarkAllRead(ctx context.Context, email string) (*models.MarkAllReadResponse, error) {
	u, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	updated, err := s.notificationRepo.MarkAllRead(ctx, u.ID)
	if err != nil {
		s.logger.Error("MarkAllRead: repository error for user=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllRead: updated %d notifications for user=%d", updated, u.ID)
	return &models.MarkAllReadResponse{Updated: updated}, nil
}

func (s *Service) resolveUser(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("resolveUser: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: resolveUser - repository error: %v", ErrInternal, err)
	}
	return u, nil
}
