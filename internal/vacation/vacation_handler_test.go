package vacation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rikimaka/internal/middleware"
	"rikimaka/internal/vacation"
	vacationerrors "rikimaka/internal/vacation/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeError(t *testing.T, body []byte) errorBody {
	t.Helper()
	var e errorBody
	err := json.Unmarshal(body, &e)
	assert.NoError(t, err)
	return e
}

type fakeVacationService struct {
	getAllFn     func(ctx context.Context) ([]vacation.VacationResponse, error)
	getByUserFn  func(ctx context.Context, userID string) ([]vacation.VacationResponse, error)
	getPendingFn func(ctx context.Context) ([]vacation.VacationResponse, error)
	getByIDFn    func(ctx context.Context, id string) (vacation.VacationResponse, error)
	createFn     func(ctx context.Context, actorID, actorRole string, req vacation.CreateVacationRequest) (vacation.VacationResponse, error)
	updateFn     func(ctx context.Context, actorID, actorRole, id string, req vacation.UpdateVacationRequest) (vacation.VacationResponse, error)
	deleteFn     func(ctx context.Context, actorID, actorRole, id string) error
	decideFn     func(ctx context.Context, actorID, id string, req vacation.DecideVacationRequest) (vacation.VacationResponse, error)
}

func (f *fakeVacationService) GetAll(ctx context.Context) ([]vacation.VacationResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeVacationService) GetByUser(ctx context.Context, userID string) ([]vacation.VacationResponse, error) {
	return f.getByUserFn(ctx, userID)
}
func (f *fakeVacationService) GetPending(ctx context.Context) ([]vacation.VacationResponse, error) {
	return f.getPendingFn(ctx)
}
func (f *fakeVacationService) GetByID(ctx context.Context, id string) (vacation.VacationResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeVacationService) Create(ctx context.Context, actorID, actorRole string, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
	return f.createFn(ctx, actorID, actorRole, req)
}
func (f *fakeVacationService) Update(ctx context.Context, actorID, actorRole, id string, req vacation.UpdateVacationRequest) (vacation.VacationResponse, error) {
	return f.updateFn(ctx, actorID, actorRole, id, req)
}
func (f *fakeVacationService) Delete(ctx context.Context, actorID, actorRole, id string) error {
	return f.deleteFn(ctx, actorID, actorRole, id)
}
func (f *fakeVacationService) Decide(ctx context.Context, actorID, id string, req vacation.DecideVacationRequest) (vacation.VacationResponse, error) {
	return f.decideFn(ctx, actorID, id, req)
}

func TestVacationHandler_Create(t *testing.T) {
	t.Run("success defaults owner to actor", func(t *testing.T) {
		actorID := uuid.New().String()

		svc := &fakeVacationService{
			createFn: func(ctx context.Context, aid, role string, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
				assert.Equal(t, actorID, aid)
				assert.Equal(t, "worker", role)
				assert.Empty(t, req.UserID)
				return vacation.VacationResponse{
					ID:        uuid.New().String(),
					StartDate: req.StartDate,
					EndDate:   req.EndDate,
					Days:      2,
					Reason:    req.Reason,
					Status:    vacation.StatusPending,
				}, nil
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"vacationStartDate":"2026-10-05","vacationEndDate":"2026-10-06","vacationReason":"Vacaciones familiares anuales"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/vacations", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set(middleware.CtxUserID, actorID)
		c.Set(middleware.CtxUserRole, "worker")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got vacation.VacationResponse
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, vacation.StatusPending, got.Status)
		assert.Equal(t, 2, got.Days)
	})

	t.Run("missing fields fail binding", func(t *testing.T) {
		svc := &fakeVacationService{}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"vacationStartDate":"2026-10-05"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/vacations", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		e := decodeError(t, w.Body.Bytes())
		assert.False(t, e.Success)
		assert.NotEmpty(t, e.Message)
	})

	t.Run("blocked period conflict surfaces the period name", func(t *testing.T) {
		svc := &fakeVacationService{
			createFn: func(ctx context.Context, aid, role string, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
				return vacation.VacationResponse{}, vacationerrors.BlackoutConflict("Cierre anual", "15/12/2026", "31/12/2026")
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"vacationStartDate":"2026-12-20","vacationEndDate":"2026-12-22","vacationReason":"Vacaciones familiares anuales"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/vacations", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set(middleware.CtxUserID, uuid.New().String())
		c.Set(middleware.CtxUserRole, "worker")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		e := decodeError(t, w.Body.Bytes())
		assert.False(t, e.Success)
		assert.Contains(t, e.Message, "Cierre anual")
	})
}

func TestVacationHandler_GetByUser(t *testing.T) {
	t.Run("worker reads own history", func(t *testing.T) {
		ownerID := uuid.New().String()

		svc := &fakeVacationService{
			getByUserFn: func(ctx context.Context, userID string) ([]vacation.VacationResponse, error) {
				assert.Equal(t, ownerID, userID)
				return []vacation.VacationResponse{{ID: uuid.New().String(), Status: vacation.StatusPending}}, nil
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/vacations/user/"+ownerID, nil)
		c.Params = gin.Params{{Key: "userId", Value: ownerID}}
		c.Set(middleware.CtxUserID, ownerID)
		c.Set(middleware.CtxUserRole, "worker")

		h.GetByUser(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var got []vacation.VacationResponse
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("worker cannot read another history", func(t *testing.T) {
		ownerID := uuid.New().String()

		svc := &fakeVacationService{}
		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/vacations/user/"+ownerID, nil)
		c.Params = gin.Params{{Key: "userId", Value: ownerID}}
		c.Set(middleware.CtxUserID, uuid.New().String())
		c.Set(middleware.CtxUserRole, "worker")

		h.GetByUser(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin reads any history", func(t *testing.T) {
		ownerID := uuid.New().String()

		svc := &fakeVacationService{
			getByUserFn: func(ctx context.Context, userID string) ([]vacation.VacationResponse, error) {
				return nil, nil
			},
		}
		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/vacations/user/"+ownerID, nil)
		c.Params = gin.Params{{Key: "userId", Value: ownerID}}
		c.Set(middleware.CtxUserID, uuid.New().String())
		c.Set(middleware.CtxUserRole, "admin")

		h.GetByUser(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestVacationHandler_Decide(t *testing.T) {
	t.Run("invalid status fails binding", func(t *testing.T) {
		svc := &fakeVacationService{}
		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := uuid.New().String()
		body := `{"vacationStatus":"maybe"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/vacations/"+id+"/approve", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set(middleware.CtxUserID, uuid.New().String())

		h.Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("already decided maps to bad request", func(t *testing.T) {
		svc := &fakeVacationService{
			decideFn: func(ctx context.Context, actorID, id string, req vacation.DecideVacationRequest) (vacation.VacationResponse, error) {
				return vacation.VacationResponse{}, vacationerrors.ErrAlreadyDecided
			},
		}
		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := uuid.New().String()
		body := `{"vacationStatus":"approved"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/vacations/"+id+"/approve", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Set(middleware.CtxUserID, uuid.New().String())

		h.Decide(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		e := decodeError(t, w.Body.Bytes())
		assert.Equal(t, "Solo se pueden procesar solicitudes pendientes", e.Message)
	})
}
