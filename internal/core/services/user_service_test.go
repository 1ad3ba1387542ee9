package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/praveentp099/uforce-accounting/internal/apperrors"
	"github.com/praveentp099/uforce-accounting/internal/core/domain"
	portssvc "github.com/praveentp099/uforce-accounting/internal/core/ports/services"
	"github.com/praveentp099/uforce-accounting/internal/core/services"
	"github.com/praveentp099/uforce-accounting/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func activeUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		UserID:       "user-1",
		Username:     "site.admin",
		Name:         "Site Admin",
		Role:         domain.RoleAdmin,
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func (suite *UserServiceTestSuite) TestCreateUser_StoresHashNotPassword() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "site.admin" &&
			u.PasswordHash != "s3cret-pass" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")) == nil
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "site.admin",
		Password: "s3cret-pass",
		Name:     "Site Admin",
		Role:     domain.RoleAdmin,
	}, "user-0")

	suite.Require().NoError(err)
	suite.True(user.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_ValidCredentials() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "site.admin").Return(activeUser("s3cret-pass"), nil).Once()

	user, err := suite.service.Authenticate(ctx, "site.admin", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "site.admin").Return(activeUser("s3cret-pass"), nil).Once()

	_, err := suite.service.Authenticate(ctx, "site.admin", "wrong-pass")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveUserSameError() {
	ctx := context.Background()
	user := activeUser("s3cret-pass")
	user.IsActive = false
	suite.mockRepo.On("FindUserByUsername", ctx, "site.admin").Return(user, nil).Once()

	_, err := suite.service.Authenticate(ctx, "site.admin", "s3cret-pass")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserSameError() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	_, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestDeleteUser_MissingUser() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByID", ctx, "ghost").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	err := suite.service.DeleteUser(ctx, "ghost")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
