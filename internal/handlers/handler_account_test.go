package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goldenhorse/ghs_backend/internal/apperrors"
	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	portsrepo "github.com/goldenhorse/ghs_backend/internal/core/ports/repositories"
	portssvc "github.com/goldenhorse/ghs_backend/internal/core/ports/services"
	"github.com/goldenhorse/ghs_backend/internal/dto"
	"github.com/goldenhorse/ghs_backend/internal/handlers"
	"github.com/goldenhorse/ghs_backend/internal/middleware"
	"github.com/goldenhorse/ghs_backend/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ChartService ---
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) GetSystemAccountBySlug(ctx context.Context, slug string) (*domain.Account, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockChartService) BuildTree(ctx context.Context, rootIDs ...string) ([]domain.AccountNode, error) {
	args := m.Called(ctx, rootIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountNode), args.Error(1)
}
func (m *MockChartService) EnsureInitialChart(ctx context.Context, actor string) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}
func (m *MockChartService) GetOrCreateSystemAccountBySlug(ctx context.Context, slug, name, parentAccountID, currencyCode, actor string) (*domain.Account, error) {
	args := m.Called(ctx, slug, name, parentAccountID, currencyCode, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actor string) (*domain.Account, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) DeleteAccount(ctx context.Context, accountID string, actor string) error {
	args := m.Called(ctx, accountID, actor)
	return args.Error(0)
}

var _ portssvc.ChartSvcFacade = (*MockChartService)(nil)

// --- Test Suite Setup ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockChart *MockChartService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockChart = new(MockChartService)
	container := &portssvc.ServiceContainer{Chart: suite.mockChart}

	suite.router = gin.New()
	suite.router.Use(middleware.ActorMiddleware())
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container)
}

func (suite *AccountHandlerTestSuite) perform(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListAccounts_TreeBootstrapsFirst() {
	roots := []domain.AccountNode{
		{Account: domain.Account{AccountID: "a", Code: "1", Name: "Assets", Level: 1}},
	}
	suite.mockChart.On("EnsureInitialChart", mock.Anything, middleware.DefaultActor).Return(nil).Once()
	suite.mockChart.On("BuildTree", mock.Anything, []string(nil)).Return(roots, nil).Once()

	rec := suite.perform(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.AccountTreeResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Require().Len(resp.Roots, 1)
	suite.Equal("1", resp.Roots[0].Code)
	suite.mockChart.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_FlatWithFilters() {
	expected := portsrepo.AccountFilter{Contains: "veh", Level: 3}
	suite.mockChart.On("ListAccounts", mock.Anything, expected).Return([]domain.Account{
		{AccountID: "d", Code: "1.1.1", Name: "Vehicles", Level: 3},
	}, nil).Once()

	rec := suite.perform(http.MethodGet, "/api/v1/accounts?flat=true&query=veh&level=3", nil)

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Require().Len(resp.Accounts, 1)
	suite.Equal("1.1.1", resp.Accounts[0].Code)
	suite.mockChart.AssertNotCalled(suite.T(), "EnsureInitialChart", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockChart.On("GetAccountByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	rec := suite.perform(http.MethodGet, "/api/v1/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	parentID := uuid.NewString()
	created := &domain.Account{
		AccountID:       uuid.NewString(),
		Code:            "1.2.4",
		Name:            "Vehicles",
		Level:           3,
		ParentAccountID: parentID,
		Nature:          domain.NatureDebit,
	}
	suite.mockChart.On("EnsureInitialChart", mock.Anything, middleware.DefaultActor).Return(nil).Once()
	suite.mockChart.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.Name == "Vehicles" && req.ParentAccountID != nil && *req.ParentAccountID == parentID
	}), middleware.DefaultActor).Return(created, nil).Once()

	rec := suite.perform(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{
		Name:            "Vehicles",
		ParentAccountID: &parentID,
	})

	suite.Equal(http.StatusCreated, rec.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("1.2.4", resp.Code)
	suite.mockChart.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ValidationErrorFromService() {
	suite.mockChart.On("EnsureInitialChart", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockChart.On("CreateAccount", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	parentID := uuid.NewString()
	rec := suite.perform(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{
		Name:            "Bad",
		ParentAccountID: &parentID,
	})

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateMapsToConflict() {
	suite.mockChart.On("EnsureInitialChart", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockChart.On("CreateAccount", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	parentID := uuid.NewString()
	rec := suite.perform(http.MethodPost, "/api/v1/accounts", dto.CreateAccountRequest{
		Name:            "Contested",
		ParentAccountID: &parentID,
	})

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingName() {
	rec := suite.perform(http.MethodPost, "/api/v1/accounts", map[string]any{})

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockChart.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ActorHeaderIsRecorded() {
	parentID := uuid.NewString()
	created := &domain.Account{AccountID: uuid.NewString(), Code: "1.1"}
	suite.mockChart.On("EnsureInitialChart", mock.Anything, "jsmith").Return(nil).Once()
	suite.mockChart.On("CreateAccount", mock.Anything, mock.Anything, "jsmith").Return(created, nil).Once()

	body, err := json.Marshal(dto.CreateAccountRequest{Name: "Petty Cash", ParentAccountID: &parentID})
	suite.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.ActorHeader, "jsmith")
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.mockChart.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_InvalidCodeRejectedByBinding() {
	badCode := "1.x.2"
	rec := suite.perform(http.MethodPut, "/api/v1/accounts/"+uuid.NewString(), dto.UpdateAccountRequest{
		Code: &badCode,
	})

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockChart.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_Success() {
	accountID := uuid.NewString()
	newName := "Plant and Machinery"
	updated := &domain.Account{AccountID: accountID, Code: "1.2", Name: newName}

	suite.mockChart.On("UpdateAccount", mock.Anything, accountID, mock.Anything, mock.Anything).Return(updated, nil).Once()

	rec := suite.perform(http.MethodPut, "/api/v1/accounts/"+accountID, dto.UpdateAccountRequest{Name: &newName})

	suite.Equal(http.StatusOK, rec.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(newName, resp.Name)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_GuardsMapToBadRequest() {
	accountID := uuid.NewString()
	suite.mockChart.On("DeleteAccount", mock.Anything, accountID, mock.Anything).
		Return(apperrors.ErrValidation).Once()

	rec := suite.perform(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Success() {
	accountID := uuid.NewString()
	suite.mockChart.On("DeleteAccount", mock.Anything, accountID, mock.Anything).Return(nil).Once()

	rec := suite.perform(http.MethodDelete, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNoContent, rec.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
