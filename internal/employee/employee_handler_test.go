package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ponto/internal/employee"
	employeeerrors "go-ponto/internal/employee/errors"
	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn            func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetByDepartmentFn   func(ctx context.Context, department string) ([]employee.EmployeeResponse, error)
	GetByRegistrationFn func(ctx context.Context, registration string) (employee.EmployeeResponse, error)
	GetByIDFn           func(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetByDepartment(ctx context.Context, department string) ([]employee.EmployeeResponse, error) {
	return f.GetByDepartmentFn(ctx, department)
}
func (f *fakeEmployeeService) GetByRegistration(ctx context.Context, registration string) (employee.EmployeeResponse, error) {
	return f.GetByRegistrationFn(ctx, registration)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}

type recordingAudit struct {
	entries []audit.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry audit.AuditLog) {
	r.entries = append(r.entries, entry)
}

func init() {
	apperror.Init()
}

func postCreate(h *employee.Handler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("user_id", "admin-1")

	h.Create(c)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestEmployeeHandler_Create(t *testing.T) {
	const validBody = `{"name":"Maria","cpf":"12345678901","email":"maria@example.com","role":"Analista","department":"TI"}`

	t.Run("success", func(t *testing.T) {
		rec := &recordingAudit{}
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Maria", req.Name)
				assert.Equal(t, "12345678901", req.CPF)
				return employee.EmployeeResponse{ID: "e-1", Name: req.Name, Registration: "12345", Department: req.Department}, nil
			},
		}

		w := postCreate(employee.NewHandler(svc, rec), validBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, employee.MsgEmployeeCreated, decodeMessage(t, w))
		assert.Len(t, rec.entries, 1)
		assert.Equal(t, audit.ActionEmployeeCreated, rec.entries[0].Action)
		assert.Equal(t, "admin-1", rec.entries[0].ActorID)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postCreate(employee.NewHandler(&fakeEmployeeService{}, nil), `{"name":"Maria"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, employeeerrors.ErrMissingRequiredFields.Message, decodeMessage(t, w))
	})

	t.Run("invalid cpf", func(t *testing.T) {
		body := strings.Replace(validBody, "12345678901", "1234", 1)
		w := postCreate(employee.NewHandler(&fakeEmployeeService{}, nil), body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, employeeerrors.ErrInvalidCPF.Message, decodeMessage(t, w))
	})

	t.Run("malformed json", func(t *testing.T) {
		w := postCreate(employee.NewHandler(&fakeEmployeeService{}, nil), `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
			},
		}
		w := postCreate(employee.NewHandler(svc, nil), validBody)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, employeeerrors.ErrEmailAlreadyExists.Message, decodeMessage(t, w))
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("connection reset")
			},
		}
		w := postCreate(employee.NewHandler(svc, nil), validBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestEmployeeHandler_GetByDepartment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEmployeeService{
		GetByDepartmentFn: func(_ context.Context, department string) ([]employee.EmployeeResponse, error) {
			if department == "" {
				return nil, employeeerrors.ErrMissingDepartment
			}
			return []employee.EmployeeResponse{
				{ID: "1", Name: "Ana", Department: department},
				{ID: "2", Name: "Bruno", Department: department},
				{ID: "3", Name: "Carla", Department: department},
			}, nil
		},
	}
	h := employee.NewHandler(svc, nil)
	r := gin.New()
	r.GET("/api/admin/users", h.GetByDepartment)

	t.Run("paginated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/users?department=TI&page=2&page_size=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data []employee.EmployeeResponse `json:"data"`
			Meta struct {
				Total int `json:"total"`
				Page  int `json:"page"`
			} `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data, 1)
		assert.Equal(t, "Carla", body.Data[0].Name)
		assert.Equal(t, 3, body.Meta.Total)
		assert.Equal(t, 2, body.Meta.Page)
	})

	t.Run("department required", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
