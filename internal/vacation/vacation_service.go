package vacation

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rikimaka/internal/auditlog"
	"rikimaka/internal/shared/daterange"
	"rikimaka/internal/user"
	vacationerrors "rikimaka/internal/vacation/errors"
	"rikimaka/internal/vacationperiod"
)

const (
	reasonMinLen = 10
	reasonMaxLen = 500
)

// PeriodLister feeds the blackout check. Satisfied by the vacation period
// service, which reads on the given transaction with SHARE locks so a
// period activated mid-request cannot slip past the check.
type PeriodLister interface {
	ActivePeriodsTx(ctx context.Context, tx *sql.Tx) ([]vacationperiod.VacationPeriod, error)
}

type Service interface {
	GetAll(ctx context.Context) ([]VacationResponse, error)
	GetByUser(ctx context.Context, userID string) ([]VacationResponse, error)
	GetPending(ctx context.Context) ([]VacationResponse, error)
	GetByID(ctx context.Context, id string) (VacationResponse, error)
	Create(ctx context.Context, actorID, actorRole string, req CreateVacationRequest) (VacationResponse, error)
	Update(ctx context.Context, actorID, actorRole, id string, req UpdateVacationRequest) (VacationResponse, error)
	Delete(ctx context.Context, actorID, actorRole, id string) error
	Decide(ctx context.Context, actorID, id string, req DecideVacationRequest) (VacationResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	periods PeriodLister
	audit   auditlog.Recorder
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, periods PeriodLister, audit auditlog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("vacation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacation.service")
	}
	return &service{db: db, repo: repo, periods: periods, audit: audit, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]VacationResponse, error) {
	vacations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(vacations), nil
}

func (s *service) GetByUser(ctx context.Context, userID string) ([]VacationResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, vacationerrors.ErrInvalidUserID
	}

	vacations, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(vacations), nil
}

func (s *service) GetPending(ctx context.Context) ([]VacationResponse, error) {
	vacations, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(vacations), nil
}

func (s *service) GetByID(ctx context.Context, id string) (VacationResponse, error) {
	v, err := s.findVacation(ctx, s.repo, id)
	if err != nil {
		return VacationResponse{}, err
	}
	return mapToResponse(*v), nil
}

func (s *service) Create(ctx context.Context, actorID, actorRole string, req CreateVacationRequest) (VacationResponse, error) {
	ownerID := req.UserID
	if ownerID == "" {
		ownerID = actorID
	}
	// Workers only request for themselves; admins may file on behalf of
	// someone else.
	if ownerID != actorID && actorRole != user.RoleAdmin {
		return VacationResponse{}, vacationerrors.ErrNotOwner
	}
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return VacationResponse{}, vacationerrors.ErrInvalidUserID
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return VacationResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return VacationResponse{}, err
	}
	reason := strings.TrimSpace(req.Reason)

	if err := validateRequest(startDate, endDate, reason); err != nil {
		return VacationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create vacation begin tx failed", zap.Error(err))
		return VacationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.OwnerExists(ctx, ownerID)
	if err != nil {
		s.logger.Error("create vacation owner lookup failed", zap.Error(err))
		return VacationResponse{}, err
	}
	if !exists {
		return VacationResponse{}, vacationerrors.ErrOwnerNotFound
	}

	if err := s.checkBlackout(ctx, tx, startDate, endDate); err != nil {
		s.logger.Warn("create vacation blocked by period",
			zap.String("owner_id", ownerID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return VacationResponse{}, err
	}

	v := &Vacation{
		ID:        uuid.New(),
		UserID:    ownerUUID,
		StartDate: startDate,
		EndDate:   endDate,
		Days:      daterange.InclusiveDays(startDate, endDate),
		Reason:    reason,
		Status:    StatusPending,
	}

	if err := qtx.Create(ctx, v); err != nil {
		s.logger.Error("create vacation persist failed", zap.Error(err))
		return VacationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create vacation commit failed", zap.Error(err))
		return VacationResponse{}, err
	}

	s.logger.Info("create vacation success",
		zap.String("vacation_id", v.ID.String()),
		zap.String("owner_id", ownerID),
		zap.Int("days", v.Days),
	)
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionCreate,
		Resource:   "vacations",
		ResourceID: v.ID.String(),
		Details:    "Solicitud de vacaciones creada: " + req.StartDate + " - " + req.EndDate,
	})

	created, err := s.repo.FindByID(ctx, v.ID.String())
	if err != nil {
		// The row committed; fall back to the unpopulated version.
		return mapToResponse(*v), nil
	}
	return mapToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, actorID, actorRole, id string, req UpdateVacationRequest) (VacationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update vacation begin tx failed", zap.Error(err))
		return VacationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	v, err := s.findVacation(ctx, qtx, id)
	if err != nil {
		return VacationResponse{}, err
	}
	if v.Status != StatusPending {
		return VacationResponse{}, vacationerrors.ErrNotPendingEdit
	}
	if v.UserID.String() != actorID && actorRole != user.RoleAdmin {
		return VacationResponse{}, vacationerrors.ErrNotOwner
	}

	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return VacationResponse{}, err
		}
		v.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return VacationResponse{}, err
		}
		v.EndDate = endDate
	}
	if req.Reason != nil {
		v.Reason = strings.TrimSpace(*req.Reason)
	}

	if err := validateRequest(v.StartDate, v.EndDate, v.Reason); err != nil {
		return VacationResponse{}, err
	}
	if err := s.checkBlackout(ctx, tx, v.StartDate, v.EndDate); err != nil {
		return VacationResponse{}, err
	}
	v.Days = daterange.InclusiveDays(v.StartDate, v.EndDate)

	if err := qtx.Update(ctx, v); err != nil {
		s.logger.Error("update vacation persist failed", zap.String("vacation_id", id), zap.Error(err))
		return VacationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update vacation commit failed", zap.String("vacation_id", id), zap.Error(err))
		return VacationResponse{}, err
	}

	s.logger.Info("update vacation success", zap.String("vacation_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionUpdate,
		Resource:   "vacations",
		ResourceID: id,
		Details:    "Solicitud de vacaciones actualizada",
	})

	return mapToResponse(*v), nil
}

func (s *service) Delete(ctx context.Context, actorID, actorRole, id string) error {
	v, err := s.findVacation(ctx, s.repo, id)
	if err != nil {
		return err
	}
	if v.Status != StatusPending {
		return vacationerrors.ErrNotPendingDelete
	}
	if v.UserID.String() != actorID && actorRole != user.RoleAdmin {
		return vacationerrors.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete vacation persist failed", zap.String("vacation_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete vacation success", zap.String("vacation_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionDelete,
		Resource:   "vacations",
		ResourceID: id,
		Details:    "Solicitud de vacaciones eliminada",
	})
	return nil
}

// Decide approves or rejects a pending request. The read and the status
// flip share a transaction so two concurrent decisions cannot both land.
func (s *service) Decide(ctx context.Context, actorID, id string, req DecideVacationRequest) (VacationResponse, error) {
	approverID := req.ApprovedBy
	if approverID == "" {
		approverID = actorID
	}
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return VacationResponse{}, vacationerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide vacation begin tx failed", zap.Error(err))
		return VacationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	v, err := s.findVacation(ctx, qtx, id)
	if err != nil {
		return VacationResponse{}, err
	}
	if v.Status != StatusPending {
		return VacationResponse{}, vacationerrors.ErrAlreadyDecided
	}

	now := time.Now().UTC()
	v.Status = req.Status
	v.ApprovedByID = &approverUUID
	v.ApprovalDate = &now
	v.Comments = req.Comments

	if err := qtx.Update(ctx, v); err != nil {
		s.logger.Error("decide vacation persist failed", zap.String("vacation_id", id), zap.Error(err))
		return VacationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("decide vacation commit failed", zap.String("vacation_id", id), zap.Error(err))
		return VacationResponse{}, err
	}

	action := auditlog.ActionApprove
	details := "Solicitud de vacaciones aprobada"
	if req.Status == StatusRejected {
		action = auditlog.ActionReject
		details = "Solicitud de vacaciones rechazada"
	}

	s.logger.Info("decide vacation success",
		zap.String("vacation_id", id),
		zap.String("status", req.Status),
	)
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     action,
		Resource:   "vacations",
		ResourceID: id,
		Details:    details,
	})

	decided, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapToResponse(*v), nil
	}
	return mapToResponse(*decided), nil
}

// checkBlackout rejects ranges touching any active blocked window. The
// period read runs on the caller's transaction so the blocking set cannot
// change before the guarded write commits.
func (s *service) checkBlackout(ctx context.Context, tx *sql.Tx, start, end time.Time) error {
	periods, err := s.periods.ActivePeriodsTx(ctx, tx)
	if err != nil {
		s.logger.Error("blackout period lookup failed", zap.Error(err))
		return err
	}
	for _, p := range periods {
		if daterange.Overlaps(start, end, p.StartDate, p.EndDate) {
			return vacationerrors.BlackoutConflict(
				p.Name,
				p.StartDate.Format("02/01/2006"),
				p.EndDate.Format("02/01/2006"),
			)
		}
	}
	return nil
}

func (s *service) findVacation(ctx context.Context, repo Repository, id string) (*Vacation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, vacationerrors.ErrInvalidVacationID
	}

	v, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vacationerrors.ErrVacationNotFound
		}
		return nil, err
	}
	return v, nil
}

func validateRequest(startDate, endDate time.Time, reason string) error {
	if daterange.Day(startDate).Before(daterange.Day(time.Now())) {
		return vacationerrors.ErrStartInPast
	}
	if endDate.Before(startDate) {
		return vacationerrors.ErrEndBeforeStart
	}
	if utf8.RuneCountInString(reason) < reasonMinLen {
		return vacationerrors.ErrReasonTooShort
	}
	if utf8.RuneCountInString(reason) > reasonMaxLen {
		return vacationerrors.ErrReasonTooLong
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, vacationerrors.ErrInvalidDateFormat
	}
	return daterange.Day(t), nil
}
