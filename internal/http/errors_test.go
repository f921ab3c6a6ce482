package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"bookstore/internal/domain"
	"bookstore/internal/service"
)

// stub services with function fields, for exercising the failure branches a
// healthy database never produces.

type stubUserService struct {
	register func(ctx context.Context, username, email, password string) (*domain.User, error)
	auth     func(ctx context.Context, username, password string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.register(ctx, username, email, password)
}

func (s *stubUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	return s.auth(ctx, username, password)
}

func (s *stubUserService) Search(ctx context.Context, term string) ([]domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserService) CreateUser(ctx context.Context, username, email, password, role string) (int64, error) {
	return 0, errors.New("not implemented")
}

func (s *stubUserService) UpdateUser(ctx context.Context, id int64, username, email, role string) error {
	return errors.New("not implemented")
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return errors.New("not implemented")
}

type stubCatalogService struct {
	list func(ctx context.Context) ([]domain.Book, error)
	get  func(ctx context.Context, id int64) (*domain.Book, error)
}

func (s *stubCatalogService) ListVisible(ctx context.Context) ([]domain.Book, error) {
	return s.list(ctx)
}

func (s *stubCatalogService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	return s.get(ctx, id)
}

type stubSummaryService struct {
	summarize func(ctx context.Context) (*domain.Summary, error)
}

func (s *stubSummaryService) Summarize(ctx context.Context) (*domain.Summary, error) {
	return s.summarize(ctx)
}

func newStubRouter(users service.UserService, catalog service.CatalogService, summary service.SummaryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewHandler(users, catalog, summary, nil, "", "covers", "", "", logger)
	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func TestRegister_StoreFailure(t *testing.T) {
	router := newStubRouter(&stubUserService{
		register: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, errors.New("insert user: disk I/O error")
		},
	}, nil, nil)
	f := &fixture{router: router}

	rec := f.do(t, http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "pw"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Đăng ký thất bại", decodeBody(t, rec)["error"])
}

func TestLogin_StoreFailure(t *testing.T) {
	router := newStubRouter(&stubUserService{
		auth: func(context.Context, string, string) (*domain.User, error) {
			return nil, errors.New("scan user: disk I/O error")
		},
	}, nil, nil)
	f := &fixture{router: router}

	rec := f.do(t, http.MethodPost, "/api/login", gin.H{"username": "alice", "password": "pw"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Lỗi server", decodeBody(t, rec)["error"])
}

func TestAdminSummary_StoreFailureSurfacesMessage(t *testing.T) {
	router := newStubRouter(nil, nil, &stubSummaryService{
		summarize: func(context.Context) (*domain.Summary, error) {
			return nil, errors.New("count users: disk I/O error")
		},
	})
	f := &fixture{router: router}

	rec := f.do(t, http.MethodGet, "/api/admin/summary", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "count users: disk I/O error", decodeBody(t, rec)["error"])
}

func TestListBooks_StoreFailure(t *testing.T) {
	router := newStubRouter(nil, &stubCatalogService{
		list: func(context.Context) ([]domain.Book, error) {
			return nil, errors.New("list books: disk I/O error")
		},
	}, nil)
	f := &fixture{router: router}

	rec := f.do(t, http.MethodGet, "/api/books", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Không thể truy xuất dữ liệu", decodeBody(t, rec)["error"])
}

func TestGetBook_StoreFailure(t *testing.T) {
	router := newStubRouter(nil, &stubCatalogService{
		get: func(context.Context, int64) (*domain.Book, error) {
			return nil, errors.New("scan book: disk I/O error")
		},
	}, nil)
	f := &fixture{router: router}

	rec := f.do(t, http.MethodGet, "/api/books/1", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Lỗi truy vấn database", decodeBody(t, rec)["error"])
}
