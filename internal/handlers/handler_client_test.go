package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

type ClientHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockClientService *MockClientService
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockClientService = new(MockClientService)

	container := &portssvc.ServiceContainer{
		Ledger:  new(MockLedgerService),
		Client:  suite.mockClientService,
		User:    new(MockUserService),
		Rate:    new(MockRateService),
		Advisor: new(MockAdvisorService),
	}

	cfg := &config.Config{IsProduction: true, AppName: "khazna"}
	rate, _ := limiter.NewRateFromFormatted("1000-S")
	limiterInstance := limiter.New(limitermem.NewStore(), rate)

	handlers.RegisterRoutes(suite.router, cfg, container, limiterInstance)
}

func (suite *ClientHandlerTestSuite) TestCreateClient_Success() {
	reqBody := dto.CreateClientRequest{
		Name:        "شركة النور",
		Type:        "vendor",
		ContactInfo: "0123456789",
	}
	created := &domain.Client{
		ClientID:    uuid.NewString(),
		Name:        reqBody.Name,
		Type:        domain.ClientVendor,
		ContactInfo: reqBody.ContactInfo,
	}

	suite.mockClientService.On("CreateClient", mock.Anything, mock.MatchedBy(func(r dto.CreateClientRequest) bool {
		return r.Name == reqBody.Name && r.Type == "vendor"
	})).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ClientID, resp.ClientID)
	suite.Equal("vendor", resp.Type)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_BadTypeRejectedAtBinding() {
	body := []byte(`{"name":"x","type":"partner"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "CreateClient", mock.Anything, mock.Anything)
}

func (suite *ClientHandlerTestSuite) TestListClients_Success() {
	clients := []domain.Client{
		{ClientID: uuid.NewString(), Name: "الأول", Type: domain.ClientCustomer},
		{ClientID: uuid.NewString(), Name: "الثاني", Type: domain.ClientBeneficiary},
	}

	suite.mockClientService.On("ListClients", mock.Anything).Return(clients, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("الأول", resp[0].Name)
}

func (suite *ClientHandlerTestSuite) TestGetClientByID_NotFound() {
	clientID := uuid.NewString()

	suite.mockClientService.On("GetClientByID", mock.Anything, clientID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/"+clientID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestClientHandler(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
