package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/khazna-app/khazna_backend/internal/core/services"
	"github.com/khazna-app/khazna_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	actor := &domain.User{UserID: uuid.NewString(), Name: "أماني ريديس"}
	req := dto.CreateUserRequest{
		Name:  "تحارقا",
		Email: "taharqa@pharaohs.com",
		Role:  "accountant",
	}

	suite.mockUserRepo.On("CurrentUser", ctx).Return(actor, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == req.Name &&
			user.Role == domain.RoleAccountant &&
			user.CreatedBy == actor.UserID &&
			user.UserID != ""
	})).Return(nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdUser)
	suite.NotEmpty(createdUser.UserID)
	suite.Equal(req.Email, createdUser.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_NoCurrentActor() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "تحارقا", Email: "taharqa@pharaohs.com", Role: "viewer"}

	suite.mockUserRepo.On("CurrentUser", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.CreatedBy == ""
	})).Return(nil).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotNil(createdUser)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "تحارقا", Email: "taharqa@pharaohs.com", Role: "viewer"}
	expectedErr := assert.AnError

	suite.mockUserRepo.On("CurrentUser", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(expectedErr).Once()

	createdUser, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdUser)
	suite.ErrorIs(err, expectedErr)
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedUser := &domain.User{UserID: userID, Name: "أماني ريديس"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(expectedUser, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expectedUser, user)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- CurrentUser Tests ---
func (suite *UserServiceTestSuite) TestCurrentUser_NoneDesignated() {
	ctx := context.Background()

	suite.mockUserRepo.On("CurrentUser", ctx).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.CurrentUser(ctx)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- UpdateCurrentUser Tests ---
func (suite *UserServiceTestSuite) TestUpdateCurrentUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.User{
		UserID: userID,
		Name:   "أماني ريديس",
		Email:  "amenirdis@pharaohs.com",
		Role:   domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			LastUpdatedAt: time.Now().Add(-time.Hour),
		},
	}
	req := dto.UpdateProfileRequest{
		Name:  "أماني ريديس الثانية",
		Email: "amenirdis@pharaohs.com",
		Role:  "admin",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == userID && user.Name == req.Name
	})).Return(nil).Once()
	suite.mockUserRepo.On("SetCurrentUser", ctx, userID).Return(nil).Once()

	updated, err := suite.service.UpdateCurrentUser(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(req.Name, updated.Name)
	suite.Equal(userID, updated.UserID)
	suite.True(updated.LastUpdatedAt.After(existing.CreatedAt))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateCurrentUser_UnknownUserRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.UpdateProfileRequest{Name: "X", Email: "x@y.com", Role: "viewer"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateCurrentUser(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SetCurrentUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateCurrentUser_UpdateError() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.User{UserID: userID, Name: "أماني ريديس"}
	req := dto.UpdateProfileRequest{Name: "X", Email: "x@y.com", Role: "viewer"}
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(expectedErr).Once()

	updated, err := suite.service.UpdateCurrentUser(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SetCurrentUser", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
