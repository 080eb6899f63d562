package services_test

import (
	"context"
	"testing"

	"github.com/goldenhorse/ghs_backend/internal/apperrors"
	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	portssvc "github.com/goldenhorse/ghs_backend/internal/core/ports/services"
	"github.com/goldenhorse/ghs_backend/internal/core/services"
	"github.com/goldenhorse/ghs_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_DefaultsToActive() {
	ctx := context.Background()

	var saved domain.Currency
	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Currency)
	}).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		CurrencyCode: "LYD",
		Symbol:       "LD",
		Name:         "Libyan Dinar",
	}, "admin")

	suite.Require().NoError(err)
	suite.True(currency.IsActive)
	suite.True(saved.IsActive)
	suite.Equal("admin", saved.CreatedBy)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_ExplicitInactive() {
	ctx := context.Background()
	inactive := false

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{
		CurrencyCode: "EUR",
		Symbol:       "€",
		Name:         "Euro",
		IsActive:     &inactive,
	}, "admin")

	suite.Require().NoError(err)
	suite.False(currency.IsActive)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "XTS").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GetCurrencyByCode(ctx, "XTS")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil)

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
