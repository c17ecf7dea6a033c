package report

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
	reporterrors "rikimaka/internal/report/errors"
	"rikimaka/internal/shared/daterange"
	"rikimaka/internal/user"
)

const (
	minActivityHours  = 0.5
	maxActivityHours  = 24
	maxTotalHours     = 24
	descriptionMinLen = 10
	descriptionMaxLen = 500
)

type Service interface {
	GetAll(ctx context.Context) ([]ReportResponse, error)
	GetByUser(ctx context.Context, userID string) ([]ReportResponse, error)
	GetByProject(ctx context.Context, projectID string) ([]ReportResponse, error)
	GetByID(ctx context.Context, id string) (ReportResponse, error)
	Create(ctx context.Context, actorID, actorRole string, req CreateReportRequest) (ReportResponse, error)
	Update(ctx context.Context, actorID, actorRole, id string, req UpdateReportRequest) (ReportResponse, error)
	Delete(ctx context.Context, actorID, actorRole, id string) error
	HoursByProject(ctx context.Context) ([]ProjectHours, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  auditlog.Recorder
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, audit auditlog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{db: db, repo: repo, audit: audit, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]ReportResponse, error) {
	reports, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(reports), nil
}

func (s *service) GetByUser(ctx context.Context, userID string) ([]ReportResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, reporterrors.ErrInvalidUserID
	}

	reports, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(reports), nil
}

func (s *service) GetByProject(ctx context.Context, projectID string) ([]ReportResponse, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return nil, reporterrors.ErrInvalidReportID
	}

	reports, err := s.repo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(reports), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReportResponse, error) {
	rep, err := s.findReport(ctx, s.repo, id)
	if err != nil {
		return ReportResponse{}, err
	}
	return mapToResponse(*rep), nil
}

func (s *service) Create(ctx context.Context, actorID, actorRole string, req CreateReportRequest) (ReportResponse, error) {
	ownerID := req.UserID
	if ownerID == "" {
		ownerID = actorID
	}
	if ownerID != actorID && actorRole != user.RoleAdmin {
		return ReportResponse{}, reporterrors.ErrNotOwner
	}
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidUserID
	}

	date := daterange.Day(time.Now().UTC())
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			return ReportResponse{}, err
		}
	}

	activities, total, err := buildActivities(req.Activities)
	if err != nil {
		return ReportResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.OwnerExists(ctx, ownerID)
	if err != nil {
		s.logger.Error("create report owner lookup failed", zap.Error(err))
		return ReportResponse{}, err
	}
	if !exists {
		return ReportResponse{}, reporterrors.ErrOwnerNotFound
	}

	if err := s.checkProjects(ctx, qtx, req.Activities); err != nil {
		return ReportResponse{}, err
	}

	rep := &DailyReport{
		ID:         uuid.New(),
		Date:       date,
		UserID:     ownerUUID,
		TotalHours: total,
	}
	for i := range activities {
		activities[i].ReportID = rep.ID
	}
	rep.Activities = activities

	if err := qtx.Create(ctx, rep); err != nil {
		s.logger.Error("create report persist failed", zap.Error(err))
		return ReportResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create report commit failed", zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("create report success",
		zap.String("report_id", rep.ID.String()),
		zap.String("owner_id", ownerID),
		zap.Float64("total_hours", total),
	)
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionCreate,
		Resource:   "reports",
		ResourceID: rep.ID.String(),
		Details:    "Reporte diario creado: " + date.Format("2006-01-02"),
	})

	created, err := s.repo.FindByID(ctx, rep.ID.String())
	if err != nil {
		return mapToResponse(*rep), nil
	}
	return mapToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, actorID, actorRole, id string, req UpdateReportRequest) (ReportResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update report begin tx failed", zap.Error(err))
		return ReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rep, err := s.findReport(ctx, qtx, id)
	if err != nil {
		return ReportResponse{}, err
	}
	if rep.UserID.String() != actorID && actorRole != user.RoleAdmin {
		return ReportResponse{}, reporterrors.ErrNotOwner
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return ReportResponse{}, err
		}
		rep.Date = date
	}

	if req.Activities != nil {
		activities, total, err := buildActivities(req.Activities)
		if err != nil {
			return ReportResponse{}, err
		}
		if err := s.checkProjects(ctx, qtx, req.Activities); err != nil {
			return ReportResponse{}, err
		}
		for i := range activities {
			activities[i].ReportID = rep.ID
		}
		if err := qtx.ReplaceActivities(ctx, rep, activities); err != nil {
			s.logger.Error("update report activities failed", zap.String("report_id", id), zap.Error(err))
			return ReportResponse{}, err
		}
		rep.Activities = activities
		rep.TotalHours = total
	}

	if err := qtx.Update(ctx, rep); err != nil {
		s.logger.Error("update report persist failed", zap.String("report_id", id), zap.Error(err))
		return ReportResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update report commit failed", zap.String("report_id", id), zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("update report success", zap.String("report_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionUpdate,
		Resource:   "reports",
		ResourceID: id,
		Details:    "Reporte diario actualizado",
	})

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapToResponse(*rep), nil
	}
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, actorID, actorRole, id string) error {
	rep, err := s.findReport(ctx, s.repo, id)
	if err != nil {
		return err
	}
	if rep.UserID.String() != actorID && actorRole != user.RoleAdmin {
		return reporterrors.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete report persist failed", zap.String("report_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete report success", zap.String("report_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionDelete,
		Resource:   "reports",
		ResourceID: id,
		Details:    "Reporte diario eliminado",
	})
	return nil
}

func (s *service) HoursByProject(ctx context.Context) ([]ProjectHours, error) {
	stats, err := s.repo.HoursByProject(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []ProjectHours{}
	}
	return stats, nil
}

func (s *service) checkProjects(ctx context.Context, repo Repository, activities []ActivityRequest) error {
	seen := make(map[string]bool)
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		if !seen[a.ProjectID] {
			seen[a.ProjectID] = true
			ids = append(ids, a.ProjectID)
		}
	}

	count, err := repo.CountProjects(ctx, ids)
	if err != nil {
		s.logger.Error("report project lookup failed", zap.Error(err))
		return err
	}
	if count != int64(len(ids)) {
		return reporterrors.ErrActivityProjectNotFound
	}
	return nil
}

func (s *service) findReport(ctx context.Context, repo Repository, id string) (*DailyReport, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, reporterrors.ErrInvalidReportID
	}

	rep, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reporterrors.ErrReportNotFound
		}
		return nil, err
	}
	return rep, nil
}

// buildActivities validates every entry and returns the derived total.
// Whatever total the client sent is never consulted.
func buildActivities(reqs []ActivityRequest) ([]Activity, float64, error) {
	if len(reqs) == 0 {
		return nil, 0, reporterrors.ErrNoActivities
	}

	activities := make([]Activity, len(reqs))
	var total float64
	for i, a := range reqs {
		projectID, err := uuid.Parse(a.ProjectID)
		if err != nil {
			return nil, 0, reporterrors.ErrActivityProjectNotFound
		}
		if a.Hours < minActivityHours || a.Hours > maxActivityHours {
			return nil, 0, reporterrors.ErrInvalidHours
		}
		desc := strings.TrimSpace(a.Description)
		if utf8.RuneCountInString(desc) < descriptionMinLen {
			return nil, 0, reporterrors.ErrDescriptionTooShort
		}
		if utf8.RuneCountInString(desc) > descriptionMaxLen {
			return nil, 0, reporterrors.ErrDescriptionTooLong
		}

		activities[i] = Activity{
			ID:          uuid.New(),
			ProjectID:   projectID,
			Description: desc,
			Hours:       a.Hours,
			Status:      a.Status,
		}
		total += a.Hours
	}

	if total > maxTotalHours {
		return nil, 0, reporterrors.ErrTotalTooHigh
	}
	return activities, total, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, reporterrors.ErrInvalidDateFormat
	}
	return daterange.Day(t), nil
}
