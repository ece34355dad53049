package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	userRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/user"
	"github.com/inalogystics/DeskBookingService/internal/service/users/models"
)

const (
	welcomeTitle   = "Welcome!"
	welcomeMessage = "Welcome to the desk booking service. Book a desk to get started."
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo         UserRepository
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Register регистрирует нового пользователя и создает приветственное уведомление
func (s *Service) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	u := &domain.User{
		Email:      email,
		Name:       req.Name,
		Role:       domain.DefaultRole,
		Department: domain.DefaultDepartment,
	}
	if req.Role != nil && *req.Role != "" {
		u.Role = *req.Role
	}
	if req.Department != nil && *req.Department != "" {
		u.Department = *req.Department
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			s.logger.Warn("Register: email already taken: %s", email)
			return nil, ErrUserExists
		}
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.createWelcomeNotification(ctx, created.ID)

	s.logger.Info("Register: user created id=%d email=%s", created.ID, created.Email)
	return models.FromDomainUser(created), nil
}

// SignIn создает или обновляет пользователя по данным провайдера идентификации.
// Новый пользователь получает приветственное уведомление.
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	isNew := errors.Is(err, userRepo.ErrUserNotFound)
	if err != nil && !isNew {
		s.logger.Error("SignIn: lookup error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	u := &domain.User{
		Email:      email,
		Name:       req.Name,
		Image:      req.Image,
		Role:       domain.DefaultRole,
		Department: domain.DefaultDepartment,
	}

	upserted, err := s.userRepo.Upsert(ctx, u)
	if err != nil {
		s.logger.Error("SignIn: upsert error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if isNew {
		s.createWelcomeNotification(ctx, upserted.ID)
		s.logger.Info("SignIn: new user registered id=%d email=%s", upserted.ID, upserted.Email)
	}

	return models.FromDomainUser(upserted), nil
}

// List получает всех пользователей
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// GetByEmail получает пользователя по email
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.UserResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetByEmail - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(u), nil
}

// Уведомление best-effort: его потеря не должна ломать регистрацию
func (s *Service) createWelcomeNotification(ctx context.Context, userID int64) {
	_, err := s.notificationRepo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    domain.NotificationWelcome,
		Title:   welcomeTitle,
		Message: welcomeMessage,
	})
	if err != nil {
		s.logger.Warn("createWelcomeNotification: failed for user=%d: %v", userID, err)
	}
}
