package repository_test

import (
	"context"
	"testing"

	. "todoapi/pkg/test"

	"todoapi/internal/adapter/database/repository"
	"todoapi/internal/core/domain"
	"todoapi/pkg/test/factory"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	UserRepo *repository.UserRepository
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.UserRepo = repository.NewUserRepository(SetupTestDB(s.T()), nil)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestRepository_GetByID_OmitsPassword() {
	user := factory.NewUser[domain.User](map[string]any{
		"FirstName": "Ada",
		"LastName":  "Lovelace",
		"Email":     "ada@example.com",
	})
	s.Require().NoError(s.UserRepo.Create(context.Background(), user))

	found, err := s.UserRepo.GetByID(context.Background(), user.ID)

	Expect(err).To(BeNil())
	Expect(found.ID).To(Equal(user.ID))
	Expect(found.FirstName).To(Equal("Ada"))
	Expect(found.LastName).To(Equal("Lovelace"))
	Expect(found.Email).To(Equal("ada@example.com"))
	Expect(found.Password).To(BeEmpty())
}

func (s *UserRepositoryTestSuite) TestRepository_GetByID_NotFound() {
	_, err := s.UserRepo.GetByID(context.Background(), uuid.New())

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func (s *UserRepositoryTestSuite) TestRepository_GetByEmail_LoadsPassword() {
	user := factory.NewUser[domain.User](map[string]any{"Email": "ada@example.com"})
	s.Require().NoError(s.UserRepo.Create(context.Background(), user))

	found, err := s.UserRepo.GetByEmail(context.Background(), "ada@example.com")

	Expect(err).To(BeNil())
	Expect(found.ID).To(Equal(user.ID))
	Expect(found.Password).To(Equal(user.Password))
}

func (s *UserRepositoryTestSuite) TestRepository_GetByEmail_NotFound() {
	_, err := s.UserRepo.GetByEmail(context.Background(), "nobody@example.com")

	Expect(err).To(MatchError(domain.ErrNotFound))
}
