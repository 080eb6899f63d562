package services_test

import (
	"context"
	"testing"

	"github.com/goldenhorse/ghs_backend/internal/apperrors"
	"github.com/goldenhorse/ghs_backend/internal/core/domain"
	portssvc "github.com/goldenhorse/ghs_backend/internal/core/ports/services"
	"github.com/goldenhorse/ghs_backend/internal/core/services"
	"github.com/goldenhorse/ghs_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockChart   *MockChartService
	mockJournal *MockJournalService
	service     portssvc.PostingSvcFacade
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockChart = new(MockChartService)
	suite.mockJournal = new(MockJournalService)
	suite.service = services.NewPostingService(suite.mockChart, suite.mockJournal)
}

func systemAccountFixture(slug string, nature domain.Nature) *domain.Account {
	return &domain.Account{
		AccountID:    uuid.NewString(),
		Slug:         slug,
		Nature:       nature,
		CurrencyCode: "LYD",
		IsSystem:     true,
	}
}

func (suite *PostingServiceTestSuite) TestRegisterFixedAsset_CreatesChildUnderFixedAssets() {
	ctx := context.Background()
	parent := systemAccountFixture(services.SlugFixedAssets, domain.NatureDebit)
	created := &domain.Account{AccountID: uuid.NewString(), Name: "Truck 07", ParentAccountID: parent.AccountID}

	suite.mockChart.On("GetSystemAccountBySlug", ctx, services.SlugFixedAssets).Return(parent, nil)
	suite.mockChart.On("CreateAccount", ctx, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.Name == "Truck 07" && req.ParentAccountID != nil && *req.ParentAccountID == parent.AccountID
	}), "registrar").Return(created, nil)

	account, err := suite.service.RegisterFixedAsset(ctx, dto.RegisterFixedAssetRequest{Name: "Truck 07"}, "registrar")

	suite.Require().NoError(err)
	suite.Equal(created.AccountID, account.AccountID)
}

func (suite *PostingServiceTestSuite) TestRegisterFixedAsset_ChartNotInitialized() {
	ctx := context.Background()
	suite.mockChart.On("GetSystemAccountBySlug", ctx, services.SlugFixedAssets).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.RegisterFixedAsset(ctx, dto.RegisterFixedAssetRequest{Name: "Truck 07"}, "registrar")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingServiceTestSuite) TestRecordDepreciation_PostsBalancedJournal() {
	ctx := context.Background()
	amount := decimal.NewFromInt(1200)
	expense := systemAccountFixture(services.SlugDepreciationExpense, domain.NatureDebit)
	accumulated := systemAccountFixture(services.SlugAccumulatedDepreciation, domain.NatureCredit)
	journal := &domain.Journal{JournalID: uuid.NewString(), Status: domain.Posted}

	suite.mockChart.On("GetSystemAccountBySlug", ctx, services.SlugDepreciationExpense).Return(expense, nil)
	suite.mockChart.On("GetSystemAccountBySlug", ctx, services.SlugAccumulatedDepreciation).Return(accumulated, nil)

	var captured dto.CreateJournalRequest
	suite.mockJournal.On("CreateJournal", ctx, mock.AnythingOfType("dto.CreateJournalRequest"), "accountant").
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(dto.CreateJournalRequest)
		}).
		Return(journal, []domain.Transaction{{}, {}}, nil)

	posted, transactions, err := suite.service.RecordDepreciation(ctx, dto.RecordDepreciationRequest{Amount: amount}, "accountant")

	suite.Require().NoError(err)
	suite.Equal(journal.JournalID, posted.JournalID)
	suite.Len(transactions, 2)

	suite.Equal("Periodic depreciation", captured.Description)
	suite.Equal("LYD", captured.CurrencyCode)
	suite.Require().Len(captured.Transactions, 2)
	suite.Equal(expense.AccountID, captured.Transactions[0].AccountID)
	suite.Equal(domain.Debit, captured.Transactions[0].TransactionType)
	suite.Equal(accumulated.AccountID, captured.Transactions[1].AccountID)
	suite.Equal(domain.Credit, captured.Transactions[1].TransactionType)
	suite.True(captured.Transactions[0].Amount.Equal(captured.Transactions[1].Amount))
}

func (suite *PostingServiceTestSuite) TestRecordDepreciation_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, _, err := suite.service.RecordDepreciation(ctx, dto.RecordDepreciationRequest{Amount: decimal.Zero}, "accountant")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournal.AssertNotCalled(suite.T(), "CreateJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRecordEmployeeAdvance_ReusesEmployeeSlug() {
	ctx := context.Background()
	amount := decimal.NewFromInt(500)
	advances := systemAccountFixture(services.SlugAdvances, domain.NatureDebit)
	payable := systemAccountFixture(services.SlugEmployeesPayable, domain.NatureCredit)
	employee := &domain.Account{AccountID: uuid.NewString(), Slug: "employee_advance_E42", CurrencyCode: "LYD"}
	journal := &domain.Journal{JournalID: uuid.NewString(), Status: domain.Posted}

	suite.mockChart.On("GetSystemAccountBySlug", ctx, services.SlugAdvances).Return(advances, nil)
	suite.mockChart.On("GetSystemAccountBySlug", ctx, services.SlugEmployeesPayable).Return(payable, nil)
	suite.mockChart.On("GetOrCreateSystemAccountBySlug", ctx, "employee_advance_E42", "Ali", advances.AccountID, "LYD", "hr").Return(employee, nil)

	var captured dto.CreateJournalRequest
	suite.mockJournal.On("CreateJournal", ctx, mock.AnythingOfType("dto.CreateJournalRequest"), "hr").
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(dto.CreateJournalRequest)
		}).
		Return(journal, []domain.Transaction{{}, {}}, nil)

	account, posted, transactions, err := suite.service.RecordEmployeeAdvance(ctx, dto.RecordEmployeeAdvanceRequest{
		EmployeeRef:  "E42",
		EmployeeName: "Ali",
		Amount:       amount,
	}, "hr")

	suite.Require().NoError(err)
	suite.Equal(employee.AccountID, account.AccountID)
	suite.Equal(journal.JournalID, posted.JournalID)
	suite.Len(transactions, 2)

	suite.Equal("Advance to Ali", captured.Description)
	suite.Require().Len(captured.Transactions, 2)
	suite.Equal(employee.AccountID, captured.Transactions[0].AccountID)
	suite.Equal(domain.Debit, captured.Transactions[0].TransactionType)
	suite.Equal(payable.AccountID, captured.Transactions[1].AccountID)
	suite.Equal(domain.Credit, captured.Transactions[1].TransactionType)
}

func (suite *PostingServiceTestSuite) TestRecordEmployeeAdvance_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, _, _, err := suite.service.RecordEmployeeAdvance(ctx, dto.RecordEmployeeAdvanceRequest{
		EmployeeRef:  "E42",
		EmployeeName: "Ali",
		Amount:       decimal.NewFromInt(-1),
	}, "hr")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PostingServiceTestSuite) TestRecordDepreciation_ChartNotInitialized() {
	ctx := context.Background()
	suite.mockChart.On("GetSystemAccountBySlug", ctx, services.SlugDepreciationExpense).Return(nil, apperrors.ErrNotFound)

	_, _, err := suite.service.RecordDepreciation(ctx, dto.RecordDepreciationRequest{Amount: decimal.NewFromInt(10)}, "accountant")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
