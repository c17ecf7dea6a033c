package auth

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
	autherrors "rikimaka/internal/auth/errors"
	"rikimaka/internal/middleware"
	"rikimaka/internal/user"
)

const hashCost = 10

type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Verify(ctx context.Context, userID string) (user.UserResponse, error)

	// ResolvePrincipal backs the auth middleware: every protected request
	// re-reads the account so deactivation takes effect immediately.
	ResolvePrincipal(ctx context.Context, userID string) (middleware.Principal, error)
}

type service struct {
	db     *sql.DB
	users  user.Repository
	audit  auditlog.Recorder
	logger *zap.Logger
}

func NewService(db *sql.DB, users user.Repository, audit auditlog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, users: users, audit: audit, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("user_id", u.ID.String()))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		s.logger.Warn("login on inactive account", zap.String("user_id", u.ID.String()))
		return AuthResponse{}, autherrors.ErrInactiveAccount
	}

	token, err := generateToken(u.ID.String(), u.Role)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrTokenGeneration
	}

	s.logger.Info("login success",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
	)
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:  u.ID.String(),
		Action:   auditlog.ActionLogin,
		Resource: "auth",
		Details:  "Inicio de sesion: " + u.Name,
	})

	return AuthResponse{Token: token, User: user.MapToResponse(*u)}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	s.logger.Debug("register requested", zap.String("user_name", req.Name))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.users.WithTx(tx)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := qtx.ExistsByNameOrEmail(ctx, req.Name, email, nil)
	if err != nil {
		s.logger.Error("register duplicate check failed", zap.Error(err))
		return AuthResponse{}, err
	}
	if exists {
		s.logger.Warn("register duplicate",
			zap.String("user_name", req.Name),
			zap.String("user_email", email),
		)
		return AuthResponse{}, autherrors.ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), hashCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
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
		s.logger.Error("register persist failed", zap.Error(err))
		return AuthResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return AuthResponse{}, err
	}

	token, err := generateToken(u.ID.String(), u.Role)
	if err != nil {
		s.logger.Error("register token generation failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrTokenGeneration
	}

	s.logger.Info("register success", zap.String("user_id", u.ID.String()))
	s.audit.Record(ctx, auditlog.Entry{
		ActorID:    u.ID.String(),
		Action:     auditlog.ActionCreate,
		Resource:   "users",
		ResourceID: u.ID.String(),
		Details:    "Usuario registrado: " + u.Name,
	})

	return AuthResponse{Token: token, User: user.MapToResponse(*u)}, nil
}

func (s *service) Verify(ctx context.Context, userID string) (user.UserResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, autherrors.ErrInvalidToken
		}
		return user.UserResponse{}, err
	}
	return user.MapToResponse(*u), nil
}

func (s *service) ResolvePrincipal(ctx context.Context, userID string) (middleware.Principal, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return middleware.Principal{}, err
	}
	return middleware.Principal{
		ID:       u.ID.String(),
		Name:     u.Name,
		Role:     u.Role,
		IsActive: u.IsActive,
	}, nil
}
