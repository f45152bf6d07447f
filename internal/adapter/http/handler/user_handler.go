package handler

import (
	"net/http"

	. "todoapi/internal/adapter/http/helper"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/shared"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc    port.UserService
	Logger *shared.Logger
}

func NewUserHandler(svc port.UserService, logger *shared.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		Logger: logger,
	}
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		SendServiceError(c, h.Logger, err, Failure{})
		return
	}

	SendSuccess(c, http.StatusOK, response.NewUserResponse(user))
}
