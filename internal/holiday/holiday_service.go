package holiday

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rikimaka/internal/auditlog"
	holidayerrors "rikimaka/internal/holiday/errors"
	"rikimaka/internal/shared/daterange"
)

type Service interface {
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	Create(ctx context.Context, actorID string, req CreateHolidayRequest) (HolidayResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateHolidayRequest) (HolidayResponse, error)
	Deactivate(ctx context.Context, actorID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  auditlog.Recorder
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, audit auditlog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, audit: audit, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = mapToResponse(h)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return HolidayResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create holiday begin tx failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByDate(ctx, req.Date, nil)
	if err != nil {
		s.logger.Error("create holiday duplicate check failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	if exists {
		return HolidayResponse{}, holidayerrors.ErrDuplicateDate
	}

	h := &Holiday{
		ID:          uuid.New(),
		Date:        date,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		IsActive:    true,
	}

	if err := qtx.Create(ctx, h); err != nil {
		s.logger.Error("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create holiday commit failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("create holiday success",
		zap.String("holiday_id", h.ID.String()),
		zap.String("holiday_date", req.Date),
	)
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionCreate,
		Resource:   "holidays",
		ResourceID: h.ID.String(),
		Details:    "Feriado creado: " + h.Name,
	})

	return mapToResponse(*h), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateHolidayRequest) (HolidayResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update holiday begin tx failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	h, err := s.findHoliday(ctx, qtx, id)
	if err != nil {
		return HolidayResponse{}, err
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return HolidayResponse{}, err
		}
		exists, err := qtx.ExistsByDate(ctx, *req.Date, &id)
		if err != nil {
			return HolidayResponse{}, err
		}
		if exists {
			return HolidayResponse{}, holidayerrors.ErrDuplicateDate
		}
		h.Date = date
	}
	if req.Name != nil {
		h.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		h.Description = strings.TrimSpace(*req.Description)
	}

	if err := qtx.Update(ctx, h); err != nil {
		s.logger.Error("update holiday persist failed", zap.String("holiday_id", id), zap.Error(err))
		return HolidayResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update holiday commit failed", zap.String("holiday_id", id), zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("update holiday success", zap.String("holiday_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionUpdate,
		Resource:   "holidays",
		ResourceID: id,
		Details:    "Feriado actualizado: " + h.Name,
	})

	return mapToResponse(*h), nil
}

// Deactivate flips the flag; the row stays so the date remains reserved.
func (s *service) Deactivate(ctx context.Context, actorID, id string) error {
	h, err := s.findHoliday(ctx, s.repo, id)
	if err != nil {
		return err
	}

	h.IsActive = false
	if err := s.repo.Update(ctx, h); err != nil {
		s.logger.Error("deactivate holiday persist failed", zap.String("holiday_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("deactivate holiday success", zap.String("holiday_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionDelete,
		Resource:   "holidays",
		ResourceID: id,
		Details:    "Feriado eliminado: " + h.Name,
	})
	return nil
}

func (s *service) findHoliday(ctx context.Context, repo Repository, id string) (*Holiday, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, holidayerrors.ErrInvalidHolidayID
	}

	h, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, holidayerrors.ErrHolidayNotFound
		}
		return nil, err
	}
	return h, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, holidayerrors.ErrInvalidDateFormat
	}
	return daterange.Day(t), nil
}
