package handler_test

import (
	"net/http"
	"testing"

	"todoapi/internal/core/model/response"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
)

type UserHandlerSuite struct {
	apiSuite
}

func TestUserHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) TestGetUserByID() {
	user := s.createUser(map[string]any{
		"FirstName": "Ada",
		"LastName":  "Lovelace",
		"Email":     "ada@example.com",
	})

	rr := s.do(http.MethodGet, "/api/user/"+user.ID.String(), "")

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).NotTo(ContainSubstring("password"))

	body := decode[struct {
		Data response.UserResponse `json:"data"`
	}](rr)

	Expect(body.Data).To(Equal(response.UserResponse{
		ID:        user.ID.String(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}))
}

func (s *UserHandlerSuite) TestGetUserByID_Errors() {
	Expect(s.do(http.MethodGet, "/api/user/nope", "").Code).To(Equal(http.StatusBadRequest))
	Expect(s.do(http.MethodGet, "/api/user/"+uuid.NewString(), "").Code).To(Equal(http.StatusNotFound))
}
