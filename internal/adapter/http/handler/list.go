package handler

import (
	"net/http"

	. "todoapi/internal/adapter/http/helper"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"

	"github.com/gin-gonic/gin"
)

// sendList answers 204 with no body for an empty result.
func sendList(c *gin.Context, todos []domain.Todo) {
	if len(todos) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	SendSuccess(c, http.StatusOK, response.NewTodoListResponse(todos))
}
