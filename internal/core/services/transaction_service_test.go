package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	"github.com/corebank/retail_banking_app/internal/core/domain"
	portsrepo "github.com/corebank/retail_banking_app/internal/core/ports/repositories"
	portssvc "github.com/corebank/retail_banking_app/internal/core/ports/services"
	"github.com/corebank/retail_banking_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCustomerID(ctx context.Context, customerID int64) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SoftDeleteAccountByUUID(ctx context.Context, accountUUID string, customerID int64, now time.Time) error {
	args := m.Called(ctx, accountUUID, customerID, now)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransfer(ctx context.Context, donorUUID, recipientUUID string, debit, credit domain.Transaction) (*domain.TransferResult, error) {
	args := m.Called(ctx, donorUUID, recipientUUID, debit, credit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByAccountIDs(ctx context.Context, accountIDs []int64, searchTerm string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountIDs, searchTerm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.TransactionSvcFacade
	customerID      int64
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockAccountRepo, suite.mockTxnRepo)
	suite.customerID = 42
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateDeposit_Success() {
	ctx := context.Background()

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Credit && txn.Amount == 500 && txn.AccountID == 7 && txn.UUID != ""
	})).Return(int64(1500), nil).Once()

	result, err := suite.service.CreateDeposit(ctx, 7, 500)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(int64(1500), result.NewBalance)
	suite.Equal("15.00", result.NewBalanceDisplay)
	suite.NotEmpty(result.TransactionUUID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateWithdrawal_Success() {
	ctx := context.Background()

	// Account holds 100, a debit of 30 must leave 70.
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Debit && txn.Amount == 30 && txn.AccountID == 7
	})).Return(int64(70), nil).Once()

	result, err := suite.service.CreateWithdrawal(ctx, 7, 30)

	suite.Require().NoError(err)
	suite.Equal(int64(70), result.NewBalance)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateWithdrawal_CanGoNegative() {
	ctx := context.Background()

	// No sufficient-funds check: overdrawing must succeed.
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(int64(-250), nil).Once()

	result, err := suite.service.CreateWithdrawal(ctx, 7, 350)

	suite.Require().NoError(err)
	suite.Equal(int64(-250), result.NewBalance)
	suite.Equal("-2.50", result.NewBalanceDisplay)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_NonPositiveAmount() {
	ctx := context.Background()

	result, err := suite.service.CreateDeposit(ctx, 7, 0)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)

	result, err = suite.service.CreateWithdrawal(ctx, 7, -10)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)

	// The repository must never be touched for rejected amounts.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRecordTransaction_AccountNotFound() {
	ctx := context.Background()

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(int64(0), apperrors.ErrNotFound).Once()

	result, err := suite.service.CreateDeposit(ctx, 999, 100)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestTransferFunds_Success() {
	ctx := context.Background()
	donorUUID := uuid.NewString()
	recipientUUID := uuid.NewString()

	// Donor holds 50, recipient 10; transferring 20 must leave 30 and 30.
	repoResult := &domain.TransferResult{
		DonorAccountID:      1,
		RecipientAccountID:  2,
		DonorNewBalance:     30,
		RecipientNewBalance: 30,
	}
	suite.mockTxnRepo.On("SaveTransfer", ctx, donorUUID, recipientUUID,
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Type == domain.Debit && txn.Amount == 20
		}),
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Type == domain.Credit && txn.Amount == 20
		}),
	).Return(repoResult, nil).Once()

	result, err := suite.service.TransferFunds(ctx, donorUUID, recipientUUID, 20)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(int64(30), result.DonorNewBalance)
	suite.Equal(int64(30), result.RecipientNewBalance)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestTransferFunds_SameAccount() {
	ctx := context.Background()
	accountUUID := uuid.NewString()

	result, err := suite.service.TransferFunds(ctx, accountUUID, accountUUID, 100)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSameAccount)
	suite.Nil(result)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestTransferFunds_NonPositiveAmount() {
	ctx := context.Background()

	result, err := suite.service.TransferFunds(ctx, uuid.NewString(), uuid.NewString(), 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(result)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestTransferFunds_AccountMissing() {
	ctx := context.Background()
	donorUUID := uuid.NewString()
	recipientUUID := uuid.NewString()

	// One of the two accounts doesn't resolve: the repository reports
	// not-found and neither balance may change.
	suite.mockTxnRepo.On("SaveTransfer", ctx, donorUUID, recipientUUID,
		mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.Transaction")).
		Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.TransferFunds(ctx, donorUUID, recipientUUID, 100)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	now := time.Now().UTC()

	accounts := []domain.Account{
		{ID: 1, UUID: uuid.NewString(), Name: "Salary", Number: 12345678, AccountType: domain.Personal, Balance: 1000, CustomerID: suite.customerID},
		{ID: 2, UUID: uuid.NewString(), Name: "Savings", Number: 87654321, AccountType: domain.Personal, Balance: 5000, CustomerID: suite.customerID},
	}
	transactions := []domain.Transaction{
		{ID: 11, UUID: uuid.NewString(), Type: domain.Credit, Amount: 1000, AccountID: 1, Timestamps: domain.Timestamps{CreatedAt: now}},
		{ID: 10, UUID: uuid.NewString(), Type: domain.Debit, Amount: 200, AccountID: 2, Timestamps: domain.Timestamps{CreatedAt: now.Add(-time.Hour)}},
	}

	suite.mockAccountRepo.On("FindAccountsByCustomerID", ctx, suite.customerID).Return(accounts, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByAccountIDs", ctx, []int64{1, 2}, "").Return(transactions, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.customerID, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Transactions, 2)
	suite.Len(resp.Accounts, 2)

	// Records are enriched with their owning account's display attributes.
	suite.Equal("Salary", resp.Transactions[0].AccountName)
	suite.Equal(int64(12345678), resp.Transactions[0].AccountNumber)
	suite.Equal("Savings", resp.Transactions[1].AccountName)
	suite.Equal("10.00", resp.Transactions[0].AmountDisplay)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_SearchTermPassedThrough() {
	ctx := context.Background()

	accounts := []domain.Account{
		{ID: 1, Name: "Salary", Number: 12345678, CustomerID: suite.customerID},
	}
	filtered := []domain.Transaction{
		{ID: 5, UUID: uuid.NewString(), Type: domain.Credit, Amount: 300, AccountID: 1},
	}

	suite.mockAccountRepo.On("FindAccountsByCustomerID", ctx, suite.customerID).Return(accounts, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByAccountIDs", ctx, []int64{1}, "CREDIT").Return(filtered, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.customerID, "CREDIT")

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 1)
	suite.Equal(domain.Credit, resp.Transactions[0].Type)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NoAccounts() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountsByCustomerID", ctx, suite.customerID).Return([]domain.Account{}, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByAccountIDs", ctx, []int64{}, "").Return([]domain.Transaction{}, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.customerID, "")

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.Empty(resp.Accounts)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_AccountLookupFails() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountsByCustomerID", ctx, suite.customerID).
		Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.customerID, "")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsByAccountIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
