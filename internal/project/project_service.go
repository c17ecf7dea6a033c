package project

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rikimaka/internal/auditlog"
	projecterrors "rikimaka/internal/project/errors"
	"rikimaka/internal/shared/daterange"
)

type Service interface {
	GetAll(ctx context.Context) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Create(ctx context.Context, actorID string, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateProjectRequest) (ProjectResponse, error)
	AssignUser(ctx context.Context, actorID, id string, req AssignUserRequest) (ProjectResponse, error)
	Delete(ctx context.Context, actorID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  auditlog.Recorder
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, audit auditlog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{db: db, repo: repo, audit: audit, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(projects), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	p, err := s.findProject(ctx, s.repo, id)
	if err != nil {
		return ProjectResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateProjectRequest) (ProjectResponse, error) {
	creatorID, err := uuid.Parse(actorID)
	if err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidUserID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	if req.Budget < 0 {
		return ProjectResponse{}, projecterrors.ErrInvalidBudget
	}

	status := req.Status
	if status == "" {
		status = StatusPlanning
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create project begin tx failed", zap.Error(err))
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := &Project{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		Budget:         req.Budget,
		EstimatedHours: req.EstimatedHours,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         status,
		CreatedByID:    creatorID,
	}

	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create project persist failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	if len(req.AssignedUsers) > 0 {
		users, err := qtx.FindUsersByIDs(ctx, req.AssignedUsers)
		if err != nil {
			s.logger.Error("create project assignee lookup failed", zap.Error(err))
			return ProjectResponse{}, err
		}
		if len(users) != len(req.AssignedUsers) {
			return ProjectResponse{}, projecterrors.ErrAssigneeNotFound
		}
		if err := qtx.ReplaceAssignments(ctx, p, users); err != nil {
			s.logger.Error("create project assignment failed", zap.Error(err))
			return ProjectResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create project commit failed", zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("create project success",
		zap.String("project_id", p.ID.String()),
		zap.String("project_name", p.Name),
	)
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionCreate,
		Resource:   "projects",
		ResourceID: p.ID.String(),
		Details:    "Proyecto creado: " + p.Name,
	})

	created, err := s.repo.FindByID(ctx, p.ID.String())
	if err != nil {
		return mapToResponse(*p), nil
	}
	return mapToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	p, err := s.findProject(ctx, s.repo, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			return ProjectResponse{}, projecterrors.ErrInvalidBudget
		}
		p.Budget = *req.Budget
	}
	if req.EstimatedHours != nil {
		p.EstimatedHours = *req.EstimatedHours
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return ProjectResponse{}, err
		}
		p.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return ProjectResponse{}, err
		}
		p.EndDate = endDate
	}
	if req.Status != nil {
		p.Status = *req.Status
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("update project persist failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, err
	}

	s.logger.Info("update project success", zap.String("project_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionUpdate,
		Resource:   "projects",
		ResourceID: id,
		Details:    "Proyecto actualizado: " + p.Name,
	})

	return mapToResponse(*p), nil
}

// AssignUser adds one user to the assignment set. Assigning an already
// assigned user returns the unchanged project.
func (s *service) AssignUser(ctx context.Context, actorID, id string, req AssignUserRequest) (ProjectResponse, error) {
	p, err := s.findProject(ctx, s.repo, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	u, err := s.repo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProjectResponse{}, projecterrors.ErrAssigneeNotFound
		}
		return ProjectResponse{}, err
	}

	if err := s.repo.AddAssignment(ctx, p, u); err != nil {
		s.logger.Error("assign user persist failed",
			zap.String("project_id", id),
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return ProjectResponse{}, err
	}

	s.logger.Info("assign user success",
		zap.String("project_id", id),
		zap.String("user_id", req.UserID),
	)
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionUpdate,
		Resource:   "projects",
		ResourceID: id,
		Details:    "Usuario asignado al proyecto: " + u.Name,
	})

	assigned, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapToResponse(*p), nil
	}
	return mapToResponse(*assigned), nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	p, err := s.findProject(ctx, s.repo, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete project persist failed", zap.String("project_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete project success", zap.String("project_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionDelete,
		Resource:   "projects",
		ResourceID: id,
		Details:    "Proyecto eliminado: " + p.Name,
	})
	return nil
}

func (s *service) findProject(ctx context.Context, repo Repository, id string) (*Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, projecterrors.ErrInvalidProjectID
	}

	p, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projecterrors.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, projecterrors.ErrInvalidDateFormat
	}
	return daterange.Day(t), nil
}
