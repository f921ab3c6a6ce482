package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bookstore/internal/domain"
	"bookstore/internal/service"
	"bookstore/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users      service.UserService
	catalog    service.CatalogService
	summary    service.SummaryService
	storage    storage.Service
	bucket     string
	keyPrefix  string
	staticRoot string
	assetsDir  string
	logger     *logrus.Logger
}

func NewHandler(
	users service.UserService,
	catalog service.CatalogService,
	summary service.SummaryService,
	store storage.Service,
	bucket, keyPrefix string,
	staticRoot, assetsDir string,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:      users,
		catalog:    catalog,
		summary:    summary,
		storage:    store,
		bucket:     bucket,
		keyPrefix:  keyPrefix,
		staticRoot: staticRoot,
		assetsDir:  assetsDir,
		logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.GET("/books", h.listBooks)
		api.GET("/books/:id", h.getBook)
		api.GET("/users", h.listUsers)
		api.POST("/users", h.createUser)
		api.PUT("/users/:id", h.updateUser)
		api.DELETE("/users/:id", h.deleteUser)
		api.GET("/admin/summary", h.adminSummary)
		api.GET("/admin/assets", h.listAssets)
		api.POST("/admin/assets", h.uploadAsset)
		api.DELETE("/admin/assets", h.deleteAsset)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	h.registerStatic(router)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu tên đăng nhập hoặc mật khẩu"})
		return
	}

	_, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu tên đăng nhập hoặc mật khẩu"})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên đăng nhập đã tồn tại"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Đăng ký thất bại"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Đăng ký thành công!"})
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sai tên đăng nhập"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrUnknownUsername):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sai tên đăng nhập"})
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sai mật khẩu"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi server"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Đăng nhập thành công",
			"user":    loginUserToResponse(user),
		})
	}
}

func (h *Handler) listBooks(c *gin.Context) {
	books, err := h.catalog.ListVisible(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể truy xuất dữ liệu"})
		return
	}

	resp := make([]BookResponse, len(books))
	for i := range books {
		resp[i] = bookToResponse(books[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy sản phẩm"})
		return
	}

	book, err := h.catalog.GetBook(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy sản phẩm"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi truy vấn database"})
	default:
		c.JSON(http.StatusOK, bookToResponse(*book))
	}
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu thông tin"})
		return
	}

	id, err := h.users.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu thông tin"})
	case errors.Is(err, service.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vai trò không hợp lệ"})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên đăng nhập đã tồn tại"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Thêm người dùng thành công", "id": id})
	}
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (h *Handler) updateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu thông tin"})
		return
	}

	err = h.users.UpdateUser(c.Request.Context(), id, req.Username, req.Email, req.Role)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu thông tin"})
	case errors.Is(err, service.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vai trò không hợp lệ"})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên đăng nhập đã tồn tại"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Cập nhật thành công"})
	}
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

func (h *Handler) adminSummary(c *gin.Context) {
	summary, err := h.summary.Summarize(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		UserCount:    summary.UserCount,
		ProductCount: summary.ProductCount,
		OrderCount:   summary.OrderCount,
		TotalRevenue: summary.TotalRevenue,
	})
}

// registerStatic serves the storefront pages: /assets from disk, index.html
// at the root, sibling HTML pages by name.
func (h *Handler) registerStatic(router *gin.Engine) {
	if h.assetsDir != "" {
		router.Static("/assets", h.assetsDir)
	}
	if h.staticRoot == "" {
		return
	}

	root := filepath.Clean(h.staticRoot)
	router.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(root, "index.html"))
	})
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		name := filepath.Clean(strings.TrimPrefix(c.Request.URL.Path, "/"))
		if name == "." || strings.HasPrefix(name, "..") || !strings.HasSuffix(name, ".html") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(filepath.Join(root, name))
	})
}

type BookResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Visible     bool    `json:"visible"`
}

type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Role     string  `json:"role"`
}

// LoginUserResponse is the minimal public profile returned on login.
type LoginUserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

type SummaryResponse struct {
	UserCount    int64   `json:"user_count"`
	ProductCount int64   `json:"product_count"`
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

func bookToResponse(book domain.Book) BookResponse {
	return BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		Price:       book.Price,
		Image:       book.Image,
		Visible:     book.Visible,
	}
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func loginUserToResponse(user *domain.User) LoginUserResponse {
	return LoginUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
