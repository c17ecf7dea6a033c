package user_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rikimaka/internal/auditlog"
	"rikimaka/internal/user"
	usererrors "rikimaka/internal/user/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	withTxFn              func(tx *sql.Tx) user.Repository
	createFn              func(ctx context.Context, u *user.User) error
	findAllActiveFn       func(ctx context.Context) ([]user.User, error)
	findByIDFn            func(ctx context.Context, id string) (*user.User, error)
	findByEmailFn         func(ctx context.Context, email string) (*user.User, error)
	existsByNameOrEmailFn func(ctx context.Context, name, email string, excludeID *string) (bool, error)
	updateFn              func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepository) WithTx(tx *sql.Tx) user.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindAllActive(ctx context.Context) ([]user.User, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) ExistsByNameOrEmail(ctx context.Context, name, email string, excludeID *string) (bool, error) {
	if f.existsByNameOrEmailFn != nil {
		return f.existsByNameOrEmailFn(ctx, name, email, excludeID)
	}
	return false, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

type userServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service user.Service
	repo    *fakeUserRepository
}

func setupUserServiceTest(t *testing.T) *userServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeUserRepository{}
	svc := user.NewService(db, repo, auditlog.NopRecorder{})

	return &userServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func existing(name string) *user.User {
	return &user.User{
		ID:         uuid.New(),
		Name:       name,
		Email:      name + "@empresa.com",
		Password:   "$2a$10$hash",
		Role:       user.RoleWorker,
		FullName:   "Empleado de Prueba",
		Department: "TI",
		HireDate:   time.Now().UTC(),
		IsActive:   true,
	}
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	req := user.CreateUserRequest{
		Name:       "jperez",
		Email:      "JPerez@Empresa.com",
		Password:   "secreto123",
		Role:       user.RoleWorker,
		FullName:   "Jorge Perez",
		Department: "Operaciones",
	}

	t.Run("success stores a bcrypt hash", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var created *user.User
		deps.repo.createFn = func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		}

		resp, err := deps.service.Create(ctx, actorID, req)
		assert.NoError(t, err)
		assert.Equal(t, "jperez@empresa.com", created.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secreto123")))
		assert.True(t, resp.IsActive)
	})

	t.Run("duplicate name or email", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.existsByNameOrEmailFn = func(ctx context.Context, name, email string, excludeID *string) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Create(ctx, actorID, req)
		assert.ErrorIs(t, err, usererrors.ErrUserExists)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("email change re-runs the duplicate check excluding self", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		u := existing("jperez")
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			return u, nil
		}

		var checkedExclude *string
		deps.repo.existsByNameOrEmailFn = func(ctx context.Context, name, email string, excludeID *string) (bool, error) {
			checkedExclude = excludeID
			return false, nil
		}

		email := "nuevo@empresa.com"
		resp, err := deps.service.Update(ctx, actorID, u.ID.String(), user.UpdateUserRequest{
			Email: &email,
		})
		assert.NoError(t, err)
		assert.Equal(t, "nuevo@empresa.com", resp.Email)
		assert.NotNil(t, checkedExclude)
		assert.Equal(t, u.ID.String(), *checkedExclude)
	})

	t.Run("plain field update skips the duplicate check", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		u := existing("jperez")
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			return u, nil
		}

		checked := false
		deps.repo.existsByNameOrEmailFn = func(ctx context.Context, name, email string, excludeID *string) (bool, error) {
			checked = true
			return false, nil
		}

		dept := "Finanzas"
		_, err := deps.service.Update(ctx, actorID, u.ID.String(), user.UpdateUserRequest{
			Department: &dept,
		})
		assert.NoError(t, err)
		assert.False(t, checked)
	})
}

func TestUserService_Deactivate(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("flips the flag instead of deleting", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		u := existing("jperez")
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			return u, nil
		}

		var saved *user.User
		deps.repo.updateFn = func(ctx context.Context, u *user.User) error {
			saved = u
			return nil
		}

		err := deps.service.Deactivate(ctx, actorID, u.ID.String())
		assert.NoError(t, err)
		assert.False(t, saved.IsActive)
	})

	t.Run("unknown user", func(t *testing.T) {
		deps := setupUserServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Deactivate(ctx, actorID, uuid.New().String())
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
