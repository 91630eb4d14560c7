package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	dom "github.com/hotspoon/full-stack-todo-app/internal/domain"
	"github.com/hotspoon/full-stack-todo-app/internal/dto"
	"github.com/hotspoon/full-stack-todo-app/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// Ping godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /ping [get]
func (h *TodoHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Pong 123!"})
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	status := false
	if req.Status != nil {
		status = *req.Status
	}

	t, err := h.svc.Create(c.Request.Context(), req.Title, status)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(t))
}

// List godoc
// @Summary      List all todos, most recently updated first
// @Tags         todos
// @Produce      json
// @Success      200  {array}   dto.TodoResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, todosToResponses(list))
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Update godoc
// @Summary      Overwrite a todo's title and status
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "New title and status"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, req.Title, *req.Status); err != nil {
		respondStoreError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Todo updated successfully")
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        id   path      int  true  "Todo ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.MessageResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Todo deleted successfully")
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondMessage(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.MessageResponse{Message: msg})
}

// respondStoreError maps a store outcome to a status code. Anything that is
// not a not-found is logged in full and answered with the generic 500 body;
// database error text never reaches the client.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		respondMessage(c, http.StatusNotFound, "Not Found")
		return
	}
	log.Printf("store error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	respondMessage(c, http.StatusInternalServerError, "Internal Server Error")
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:         t.ID,
		Title:      t.Title,
		Status:     t.Status,
		LastUpdate: t.LastUpdate,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
