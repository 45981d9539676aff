package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentora/RIA-SchedulingService/internal/domain"
	appointmentRepo "github.com/rentora/RIA-SchedulingService/internal/infra/storage/appointment"
	"github.com/rentora/RIA-SchedulingService/internal/service/appointments/models"
)

// Service сервис менеджерских операций со встречами
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает встречу по ID
// Менеджер видит только собственные встречи
func (s *Service) GetByID(ctx context.Context, id int64, managerID int64) (*models.AppointmentResponse, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appt.ManagerID != managerID {
		s.logger.Warn("GetByID: access denied for manager=%d to appointment id=%d", managerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// GetByManagerAndPeriod получает встречи менеджера за период
func (s *Service) GetByManagerAndPeriod(ctx context.Context, managerID int64, from, to time.Time, includeCancelled bool) (*models.AppointmentListResponse, error) {
	appointments, err := s.repo.GetByManagerAndPeriod(ctx, managerID, from, to, includeCancelled)
	if err != nil {
		s.logger.Error("GetByManagerAndPeriod: repository error for manager=%d: %v", managerID, err)
		return nil, fmt.Errorf("%w: GetByManagerAndPeriod - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByManagerAndPeriod: fetched %d appointments for manager=%d", len(appointments), managerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет встречу
// Отмена освобождает интервал для будущих предложений, но не возвращает
// к жизни потреблённые токены - нужен новый запрос предложений
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by manager=%d", appointmentID, req.ManagerID)

	if len(req.CancellationReason) > domain.MaxCancelReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appt, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.ManagerID != req.ManagerID {
		s.logger.Warn("Cancel: access denied for manager=%d to appointment id=%d", req.ManagerID, appointmentID)
		return ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.repo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}
