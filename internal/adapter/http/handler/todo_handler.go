package handler

import (
	"fmt"
	"net/http"

	. "todoapi/internal/adapter/http/helper"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/shared"

	"github.com/gin-gonic/gin"
)

var (
	createFailure = Failure{Field: "todo", Message: "Error occurred while creating the Todo item."}
	updateFailure = Failure{Field: "todo", Message: "Error occurred while updating the Todo item."}
	deleteFailure = Failure{Field: "todo", Message: "Error occurred while deleting the Todo item or the item does not exist."}
)

type TodoHandler struct {
	svc    port.TodoService
	Logger *shared.Logger
}

func NewTodoHandler(todoService port.TodoService, logger *shared.Logger) *TodoHandler {
	return &TodoHandler{
		svc:    todoService,
		Logger: logger,
	}
}

func (t *TodoHandler) CreateTodo(c *gin.Context) {
	params, err := BindJSON[request.CreateTodoRequest](c)

	if err != nil {
		SendInvalidBody(c)
		return
	}

	todo, err := t.svc.Create(c.Request.Context(), params)

	if err != nil {
		SendServiceError(c, t.Logger, err, createFailure)
		return
	}

	SendSuccess(c, http.StatusOK, response.NewTodoResponse(todo), "Todo item created successfully.")
}

func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	params, err := BindJSON[request.UpdateTodoRequest](c)

	if err != nil {
		SendInvalidBody(c)
		return
	}

	if err := t.svc.Update(c.Request.Context(), params); err != nil {
		SendServiceError(c, t.Logger, err, updateFailure)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Todo item updated successfully.")
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")

	if err := t.svc.Delete(c.Request.Context(), id); err != nil {
		SendServiceError(c, t.Logger, err, deleteFailure)
		return
	}

	SendSuccess(c, http.StatusOK, nil, fmt.Sprintf("Todo item with ID %s deleted successfully.", id))
}

func (t *TodoHandler) GetTodos(c *gin.Context) {
	todos, err := t.svc.GetAll(c.Request.Context())

	if err != nil {
		SendServiceError(c, t.Logger, err, Failure{})
		return
	}

	sendList(c, todos)
}

func (t *TodoHandler) GetTodosByUser(c *gin.Context) {
	todos, err := t.svc.GetByUser(c.Request.Context(), c.Param("userId"))

	if err != nil {
		SendServiceError(c, t.Logger, err, Failure{})
		return
	}

	sendList(c, todos)
}

func (t *TodoHandler) GetTodoByID(c *gin.Context) {
	todo, err := t.svc.GetByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		SendServiceError(c, t.Logger, err, Failure{})
		return
	}

	SendSuccess(c, http.StatusOK, response.NewTodoResponse(todo))
}
