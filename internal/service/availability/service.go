package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	availabilityRepo "github.com/rentora/RIA-SchedulingService/internal/infra/storage/availability"
	"github.com/rentora/RIA-SchedulingService/internal/service/availability/models"
)

// Service сервис управления доступностью менеджеров
type Service struct {
	repo   AvailabilityRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(repo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// SetAvailability валидирует и сохраняет окно доступности
// Upsert-семантика: окно для пары (менеджер, тип встречи) заменяется целиком
func (s *Service) SetAvailability(ctx context.Context, req *models.SetAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("SetAvailability: manager=%d, kind=%s, days=%d, blackouts=%d",
		req.ManagerID, req.Kind, len(req.WeeklyBlocks), len(req.BlackoutRanges))

	window, err := toDomainWindow(req)
	if err != nil {
		s.logger.Warn("SetAvailability: validation failed for manager=%d: %v", req.ManagerID, err)
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, window)
	if err != nil {
		s.logger.Error("SetAvailability: failed to upsert window for manager=%d: %v", req.ManagerID, err)
		return nil, fmt.Errorf("%w: failed to upsert window: %v", ErrInternal, err)
	}

	s.logger.Info("SetAvailability: saved window id=%d for manager=%d, kind=%s",
		saved.ID, saved.ManagerID, saved.Kind)
	return models.FromDomainWindow(saved), nil
}

// GetAvailability получает окно доступности менеджера для типа встречи
func (s *Service) GetAvailability(ctx context.Context, managerID int64, kind string) (*models.AvailabilityResponse, error) {
	domainKind := domain.AppointmentKind(kind)
	if !domainKind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	window, err := s.repo.GetByManagerAndKind(ctx, managerID, domainKind)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("GetAvailability: window not found for manager=%d, kind=%s", managerID, kind)
			return nil, ErrWindowNotFound
		}
		s.logger.Error("GetAvailability: failed to get window for manager=%d: %v", managerID, err)
		return nil, fmt.Errorf("%w: failed to get window: %v", ErrInternal, err)
	}

	return models.FromDomainWindow(window), nil
}
