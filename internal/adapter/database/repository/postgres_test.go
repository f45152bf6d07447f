package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"todoapi/internal/adapter/database"
	"todoapi/internal/adapter/database/repository"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	"todoapi/internal/shared"
	"todoapi/pkg/test/factory"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresRepositoryTestSuite runs the repositories against a real
// PostgreSQL. Set TESTCONTAINERS_ENABLED to run it.
type PostgresRepositoryTestSuite struct {
	suite.Suite
	pgContainer testcontainers.Container
	DB          *database.DB
	TodoRepo    port.TodoRepository
	UserRepo    *repository.UserRepository
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	if os.Getenv("TESTCONTAINERS_ENABLED") == "" {
		t.Skip("TESTCONTAINERS_ENABLED not set")
	}

	RegisterTestingT(t)
	suite.Run(t, new(PostgresRepositoryTestSuite))
}

func (s *PostgresRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	req := testcontainers.GenericContainerRequest{
		Started: true,
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "testdb",
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, req)
	s.Require().NoError(err)
	s.pgContainer = pgContainer

	host, err := pgContainer.Host(ctx)
	s.Require().NoError(err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	s.Require().NoError(err)

	url := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	s.DB, err = database.Open(ctx, shared.DatabaseConfig{
		ConnectionString: url,
		MaxOpenConns:     5,
		MaxIdleConns:     2,
		ConnMaxLifetime:  time.Minute,
	})
	s.Require().NoError(err)

	s.TodoRepo = repository.NewTodoRepository(s.DB, nil)
	s.UserRepo = repository.NewUserRepository(s.DB, nil)
}

func (s *PostgresRepositoryTestSuite) TearDownSuite() {
	if s.DB != nil {
		s.DB.Close()
	}

	if s.pgContainer != nil {
		s.pgContainer.Terminate(context.Background())
	}
}

func (s *PostgresRepositoryTestSuite) TestRepository_Lifecycle() {
	ctx := context.Background()

	user := factory.NewUser[domain.User]()
	s.Require().NoError(s.UserRepo.Create(ctx, user))

	found, err := s.UserRepo.GetByID(ctx, user.ID)
	Expect(err).To(BeNil())
	Expect(found.Email).To(Equal(user.Email))

	todo := factory.NewTodo(user.ID, factory.WithTask("buy milk"))
	affected, err := s.TodoRepo.Create(ctx, todo)
	Expect(err).To(BeNil())
	Expect(affected).To(BeEquivalentTo(1))

	_, err = s.TodoRepo.Update(ctx, domain.TodoPatch{ID: todo.ID, Completed: domain.Some(true)})
	Expect(err).To(BeNil())

	stored, err := s.TodoRepo.GetByID(ctx, todo.ID)
	Expect(err).To(BeNil())
	Expect(stored.Task).To(Equal("buy milk"))
	Expect(stored.Completed).To(Equal(domain.Some(true)))

	_, err = s.TodoRepo.SoftDelete(ctx, todo.ID)
	Expect(err).To(BeNil())

	byUser, err := s.TodoRepo.GetByUser(ctx, user.ID)
	Expect(err).To(BeNil())
	Expect(byUser).To(BeEmpty())
}
