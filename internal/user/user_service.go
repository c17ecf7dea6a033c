package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rikimaka/internal/auditlog"
	usererrors "rikimaka/internal/user/errors"
)

const hashCost = 10

type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, actorID string, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (UserResponse, error)
	Deactivate(ctx context.Context, actorID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  auditlog.Recorder
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, audit auditlog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, audit: audit, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = MapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return MapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateUserRequest) (UserResponse, error) {
	s.logger.Debug("create user requested",
		zap.String("actor_id", actorID),
		zap.String("user_name", req.Name),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := qtx.ExistsByNameOrEmail(ctx, req.Name, email, nil)
	if err != nil {
		s.logger.Error("create user duplicate check failed", zap.Error(err))
		return UserResponse{}, err
	}
	if exists {
		s.logger.Warn("create user duplicate",
			zap.String("user_name", req.Name),
			zap.String("user_email", email),
		)
		return UserResponse{}, usererrors.ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), hashCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:         uuid.New(),
		Name:       req.Name,
		Email:      email,
		Password:   string(hashed),
		Role:       req.Role,
		FullName:   req.FullName,
		Department: req.Department,
		HireDate:   time.Now().UTC(),
		IsActive:   true,
	}

	if err := qtx.Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create user commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("create user success", zap.String("user_id", u.ID.String()))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionCreate,
		Resource:   "users",
		ResourceID: u.ID.String(),
		Details:    "Usuario creado: " + u.Name,
	})

	return MapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Name != nil || req.Email != nil {
		exists, err := qtx.ExistsByNameOrEmail(ctx, u.Name, u.Email, &id)
		if err != nil {
			return UserResponse{}, err
		}
		if exists {
			return UserResponse{}, usererrors.ErrUserExists
		}
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), hashCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.Password = string(hashed)
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Department != nil {
		u.Department = *req.Department
	}

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update user commit failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("update user success", zap.String("user_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionUpdate,
		Resource:   "users",
		ResourceID: id,
		Details:    "Usuario actualizado: " + u.Name,
	})

	return MapToResponse(*u), nil
}

// Deactivate is the user soft delete: the row stays, the flag flips.
func (s *service) Deactivate(ctx context.Context, actorID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	u.IsActive = false
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("deactivate user persist failed", zap.String("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("deactivate user success", zap.String("user_id", id))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    actorID,
		Action:     auditlog.ActionDelete,
		Resource:   "users",
		ResourceID: id,
		Details:    "Usuario desactivado: " + u.Name,
	})
	return nil
}
