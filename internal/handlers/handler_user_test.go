package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/khazna-app/khazna_backend/internal/dto"
	"github.com/khazna-app/khazna_backend/internal/handlers"
	"github.com/khazna-app/khazna_backend/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockUserService = new(MockUserService)

	container := &portssvc.ServiceContainer{
		Ledger:  new(MockLedgerService),
		Client:  new(MockClientService),
		User:    suite.mockUserService,
		Rate:    new(MockRateService),
		Advisor: new(MockAdvisorService),
	}

	cfg := &config.Config{IsProduction: true, AppName: "khazna"}
	rate, _ := limiter.NewRateFromFormatted("1000-S")
	limiterInstance := limiter.New(limitermem.NewStore(), rate)

	handlers.RegisterRoutes(suite.router, cfg, container, limiterInstance)
}

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	reqBody := dto.CreateUserRequest{
		Name:  "أماني ريديس",
		Email: "amani@example.com",
		Role:  "accountant",
	}
	created := &domain.User{
		UserID: uuid.NewString(),
		Name:   reqBody.Name,
		Email:  reqBody.Email,
		Role:   domain.RoleAccountant,
	}
	created.CreatedAt = time.Now()

	suite.mockUserService.On("CreateUser", mock.Anything, mock.MatchedBy(func(r dto.CreateUserRequest) bool {
		return r.Email == reqBody.Email && r.Role == "accountant"
	})).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.UserID, resp.UserID)
	suite.Equal("accountant", resp.Role)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestCreateUser_BadRoleRejectedAtBinding() {
	body := []byte(`{"name":"x","email":"x@example.com","role":"superuser"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestGetUserByID_NotFound() {
	userID := uuid.NewString()

	suite.mockUserService.On("GetUserByID", mock.Anything, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/users/"+userID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestGetProfile_Success() {
	current := &domain.User{
		UserID: uuid.NewString(),
		Name:   "أماني ريديس",
		Email:  "amani@example.com",
		Role:   domain.RoleAdmin,
	}

	suite.mockUserService.On("CurrentUser", mock.Anything).Return(current, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(current.UserID, resp.UserID)
}

func (suite *UserHandlerTestSuite) TestGetProfile_NoneDesignated() {
	suite.mockUserService.On("CurrentUser", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdateProfile_Success() {
	current := &domain.User{
		UserID: uuid.NewString(),
		Name:   "أماني ريديس",
		Email:  "amani@example.com",
		Role:   domain.RoleAdmin,
	}
	reqBody := dto.UpdateProfileRequest{
		Name:  "أماني ر.",
		Email: "amani@example.com",
		Role:  "admin",
	}
	updated := &domain.User{
		UserID: current.UserID,
		Name:   reqBody.Name,
		Email:  reqBody.Email,
		Role:   domain.RoleAdmin,
	}

	suite.mockUserService.On("CurrentUser", mock.Anything).Return(current, nil).Once()
	suite.mockUserService.On("UpdateCurrentUser", mock.Anything, current.UserID, reqBody).
		Return(updated, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("أماني ر.", resp.Name)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestUpdateProfile_NoneDesignated() {
	suite.mockUserService.On("CurrentUser", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	body := []byte(`{"name":"x","email":"x@example.com","role":"admin"}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "UpdateCurrentUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
