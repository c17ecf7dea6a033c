package vacationperiod

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rikimaka/internal/auditlog"
	"rikimaka/internal/shared/daterange"
	vacationperioderrors "rikimaka/internal/vacationperiod/errors"
)

type Service interface {
	GetAll(ctx context.Context) ([]PeriodResponse, error)
	GetByID(ctx context.Context, id string) (PeriodResponse, error)
	Create(ctx context.Context, actorID string, req CreatePeriodRequest) (PeriodResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdatePeriodRequest) (PeriodResponse, error)
	Deactivate(ctx context.Context, actorID, id string) error

	// ActivePeriodsTx feeds the blackout check in the vacation workflow.
	// It reads on the caller's transaction with SHARE locks so the check
	// and the write it guards see one consistent set of windows.
	ActivePeriodsTx(ctx context.Context, tx *sql.Tx) ([]VacationPeriod, error)
}

type service struct {
	repo   Repository
	audit  auditlog.Recorder
	logger *zap.Logger
}

func NewService(repo Repository, audit auditlog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("vacationperiod.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacationperiod.service")
	}
	return &service{repo: repo, audit: audit, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]PeriodResponse, error) {
	periods, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PeriodResponse, error) {
	p, err := s.findPeriod(ctx, id)
	if err != nil {
		return PeriodResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreatePeriodRequest) (PeriodResponse, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return PeriodResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return PeriodResponse{}, err
	}
	if endDate.Before(startDate) {
		return PeriodResponse{}, vacationperioderrors.ErrInvalidDateRange
	}

	p := &VacationPeriod{
		ID:          uuid.New(),
		Name:        req.Name,
		StartDate:   daterange.Day(startDate),
		EndDate:     daterange.Day(endDate),
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create period persist failed", zap.Error(err))
		return PeriodResponse{}, err
	}

	s.logger.Info("create period success",
		zap.String("period_id", p.ID.String()),
		zap.String("period_name", p.Name),
	)
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionCreate,
		Resource:   "vacation-periods",
		ResourceID: p.ID.String(),
		Details:    "Periodo creado: " + p.Name,
	})

	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdatePeriodRequest) (PeriodResponse, error) {
	p, err := s.findPeriod(ctx, id)
	if err != nil {
		return PeriodResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return PeriodResponse{}, err
		}
		p.StartDate = daterange.Day(startDate)
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return PeriodResponse{}, err
		}
		p.EndDate = daterange.Day(endDate)
	}
	if p.EndDate.Before(p.StartDate) {
		return PeriodResponse{}, vacationperioderrors.ErrInvalidDateRange
	}
	if req.Description != nil {
		p.Description = *req.Description
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update period persist failed", zap.String("period_id", id), zap.Error(err))
		return PeriodResponse{}, err
	}

	s.logger.Info("update period success", zap.String("period_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionUpdate,
		Resource:   "vacation-periods",
		ResourceID: id,
		Details:    "Periodo actualizado: " + p.Name,
	})

	return mapToResponse(*p), nil
}

// Deactivate is the soft delete: the window stops blocking requests but the
// row survives for history.
func (s *service) Deactivate(ctx context.Context, actorID, id string) error {
	p, err := s.findPeriod(ctx, id)
	if err != nil {
		return err
	}

	p.IsActive = false
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("deactivate period persist failed", zap.String("period_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("deactivate period success", zap.String("period_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionDelete,
		Resource:   "vacation-periods",
		ResourceID: id,
		Details:    "Periodo eliminado: " + p.Name,
	})
	return nil
}

func (s *service) ActivePeriodsTx(ctx context.Context, tx *sql.Tx) ([]VacationPeriod, error) {
	return s.repo.WithTx(tx).FindAllActiveLocked(ctx)
}

func (s *service) findPeriod(ctx context.Context, id string) (*VacationPeriod, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, vacationperioderrors.ErrInvalidPeriodID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vacationperioderrors.ErrPeriodNotFound
		}
		return nil, err
	}
	return p, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, vacationperioderrors.ErrInvalidDateFormat
	}
	return t, nil
}
