package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	. "todoapi/pkg/test"

	"todoapi/internal/adapter/database"
	"todoapi/internal/adapter/database/repository"
	server "todoapi/internal/adapter/http"
	"todoapi/internal/core/domain"
	"todoapi/internal/shared"
	"todoapi/pkg/test/factory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

var ctx = context.Background()

// apiSuite serves the full router over a fresh in-memory store per test.
type apiSuite struct {
	suite.Suite
	DB       *database.DB
	UserRepo *repository.UserRepository
	Router   *gin.Engine
}

func (s *apiSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.DB = SetupTestDB(s.T())
	s.UserRepo = repository.NewUserRepository(s.DB, nil)

	config := shared.GetDefaultConfig()
	config.Database.ConnectionString = ":memory:"
	config.Identity.JWTSecret = "test-secret"

	logger := shared.NewNopLogger()

	container, err := server.NewContainer(s.DB, config, logger, nil)
	s.Require().NoError(err)

	s.Router = server.NewRouter(container, "todoapi-test", nil, logger)
}

func (s *apiSuite) createUser(overrides ...map[string]any) domain.User {
	user := factory.NewUser[domain.User](overrides...)
	s.Require().NoError(s.UserRepo.Create(ctx, user))

	return user
}

func (s *apiSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader

	if body != "" {
		reader = strings.NewReader(body)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	return rr
}

func decode[T any](rr *httptest.ResponseRecorder) T {
	var out T
	_ = json.Unmarshal(rr.Body.Bytes(), &out)

	return out
}
