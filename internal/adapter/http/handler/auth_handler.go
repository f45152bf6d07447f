package handler

import (
	"net/http"

	. "todoapi/internal/adapter/http/helper"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/internal/shared"

	"github.com/gin-gonic/gin"
)

var loginFailure = Failure{Field: "credentials", Message: "Error during login, please check your credentials."}

type AuthHandler struct {
	svc    port.AuthService
	Logger *shared.Logger
}

func NewAuthHandler(svc port.AuthService, logger *shared.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		Logger: logger,
	}
}

func (a *AuthHandler) Login(c *gin.Context) {
	params, err := BindJSON[request.LoginRequest](c)

	if err != nil {
		SendInvalidBody(c)
		return
	}

	token, err := a.svc.Login(c.Request.Context(), params)

	if err != nil {
		SendServiceError(c, a.Logger, err, loginFailure)
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}
