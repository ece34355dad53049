package desks

import (
	"context"
	"errors"
	"fmt"

	deskRepo "github.com/inalogystics/DeskBookingService/internal/infra/storage/desk"
	"github.com/inalogystics/DeskBookingService/internal/service/desks/models"
)

// Service сервис для работы со столами
type Service struct {
	deskRepo DeskRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(deskRepo DeskRepository, logger Logger) *Service {
	return &Service{
		deskRepo: deskRepo,
		logger:   logger,
	}
}

// Create добавляет стол на план этажа
func (s *Service) Create(ctx context.Context, req *models.CreateDeskRequest) (*models.DeskResponse, error) {
	if req.DeskNumber == "" {
		return nil, fmt.Errorf("%w: deskNumber is required", ErrInvalidInput)
	}
	if req.Floor <= 0 {
		return nil, fmt.Errorf("%w: floor must be positive", ErrInvalidInput)
	}

	created, err := s.deskRepo.Create(ctx, req.ToDomainDesk())
	if err != nil {
		if errors.Is(err, deskRepo.ErrDuplicateDeskNumber) {
			s.logger.Warn("Create: desk number %s already taken", req.DeskNumber)
			return nil, ErrDeskExists
		}
		s.logger.Error("Create: repository error for desk %s: %v", req.DeskNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: desk %s created id=%d", created.DeskNumber, created.ID)
	return models.FromDomainDesk(created), nil
}
