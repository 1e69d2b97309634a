package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-manager/internal/domain"
	"task-manager/internal/service"
	"task-manager/internal/validation"
)

// context keys set by the auth middleware
const (
	ctxUserKey  = "authUser"
	ctxTokenKey = "authToken"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	tasks service.TaskService
	users service.UserService
}

func NewHandler(tasks service.TaskService, users service.UserService) *Handler {
	return &Handler{
		tasks: tasks,
		users: users,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	tasks := router.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("", h.listTasks)
		tasks.GET("/:id", h.getTask)
		tasks.PATCH("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
	}

	users := router.Group("/users")
	{
		users.POST("", h.registerUser)
		users.POST("/login", h.login)
		users.GET("/me", h.authRequired(), h.currentUser)
		users.POST("/logout", h.authRequired(), h.logout)
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// authRequired resolves the bearer token to a user and aborts with 401 when
// the token is forged, expired, revoked, or bound to an unknown subject.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		user, err := h.users.GetByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

// boolFlag accepts JSON true/false and the 0/1 coercions; every other shape
// (arrays, objects, arbitrary strings) is a type mismatch.
type boolFlag bool

var errInvalidBoolFlag = errors.New("value is not a boolean")

func (b *boolFlag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*b = true
	case "false", "0":
		*b = false
	default:
		return errInvalidBoolFlag
	}
	return nil
}

type createTaskRequest struct {
	Description string    `json:"description"`
	Completed   *boolFlag `json:"completed"`
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type taskResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// userResponse is the outward projection of a user: password hash, token set,
// and repository timestamps never leave the system boundary.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeBindError(c, "task", err)
		return
	}

	completed := false
	if req.Completed != nil {
		completed = bool(*req.Completed)
	}

	task, err := h.tasks.Create(c.Request.Context(), req.Description, completed)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskToResponse(*task))
}

func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]taskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) updateTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid updates!"})
		return
	}

	if err := validation.CheckPatch("task", body, "description", "completed"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid updates!"})
		return
	}

	var patch service.TaskPatch
	if raw, ok := body["description"]; ok {
		var description string
		if err := json.Unmarshal(raw, &description); err != nil {
			h.writeError(c, validation.Errors{{Entity: "task", Field: "description", Reason: validation.ReasonTypeMismatch}})
			return
		}
		patch.Description = &description
	}
	if raw, ok := body["completed"]; ok {
		var completed boolFlag
		if err := json.Unmarshal(raw, &completed); err != nil {
			h.writeError(c, validation.Errors{{Entity: "task", Field: "completed", Reason: validation.ReasonTypeMismatch}})
			return
		}
		value := bool(completed)
		patch.Completed = &value
	}

	task, err := h.tasks.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) registerUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeBindError(c, "user", err)
		return
	}

	user, token, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{User: userToResponse(user), Token: token})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to login!"})
		return
	}

	user, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{User: userToResponse(user), Token: token})
}

func (h *Handler) currentUser(c *gin.Context) {
	user := c.MustGet(ctxUserKey).(*domain.User)
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) logout(c *gin.Context) {
	user := c.MustGet(ctxUserKey).(*domain.User)
	token := c.MustGet(ctxTokenKey).(string)

	if err := h.users.Logout(c.Request.Context(), user.ID, token); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// taskID validates the path id; a non-uuid value is malformed and reported as
// 400, distinct from the 404 of a well-formed but absent id.
func (h *Handler) taskID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return "", false
	}
	return id, true
}

// writeBindError maps JSON decoding failures onto the validation error shape
// so a type mismatch names the offending field.
func (h *Handler) writeBindError(c *gin.Context, entity string, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		h.writeError(c, validation.Errors{{Entity: entity, Field: typeErr.Field, Reason: validation.ReasonTypeMismatch}})
		return
	}
	if errors.Is(err, errInvalidBoolFlag) {
		h.writeError(c, validation.Errors{{Entity: entity, Field: "completed", Reason: validation.ReasonTypeMismatch}})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}

// writeError maps domain and validation errors onto the response contract.
// Internal failures are never echoed back to the client.
func (h *Handler) writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": verrs.Error(), "errors": verrs})
	case errors.Is(err, domain.ErrDuplicateEmail):
		dup := validation.Errors{{Entity: "user", Field: "email", Reason: "already registered"}}
		c.JSON(http.StatusBadRequest, gin.H{"error": dup.Error(), "errors": dup})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to login!"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func taskToResponse(task domain.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

func userToResponse(user *domain.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Age:   user.Age,
	}
}
