package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	portssvc "github.com/corebank/retail_banking_app/internal/core/ports/services"
	"github.com/corebank/retail_banking_app/internal/dto"
	"github.com/corebank/retail_banking_app/internal/handlers"
	"github.com/corebank/retail_banking_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) CreateDeposit(ctx context.Context, accountID int64, amount int64) (*dto.TransactionResult, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionResult), args.Error(1)
}

func (m *MockTransactionService) CreateWithdrawal(ctx context.Context, accountID int64, amount int64) (*dto.TransactionResult, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionResult), args.Error(1)
}

func (m *MockTransactionService) TransferFunds(ctx context.Context, donorUUID, recipientUUID string, amount int64) (*dto.TransferResult, error) {
	args := m.Called(ctx, donorUUID, recipientUUID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransferResult), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, customerID int64, searchTerm string) (*dto.TransactionListResponse, error) {
	args := m.Called(ctx, customerID, searchTerm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionListResponse), args.Error(1)
}

// envelope mirrors the wire format for assertions.
type envelope struct {
	Success int             `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockSvc    *MockTransactionService
	jwtSecret  string
	customerID int64
}

func (suite *TransactionHandlerTestSuite) generateTestToken(customerID int64) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   strconv.FormatInt(customerID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.customerID = 42
	suite.mockSvc = new(MockTransactionService)

	handler := handlers.NewTransactionHandler(suite.mockSvc)

	suite.router = gin.New()
	authed := suite.router.Group("/api/v1.0", middleware.AuthMiddleware(suite.jwtSecret))
	authed.POST("/transaction", handler.CreateTransaction)
	authed.POST("/transaction/transfer", handler.TransferFunds)
	authed.GET("/transaction", handler.ListTransactions)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.customerID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Deposit() {
	suite.mockSvc.On("CreateDeposit", mock.Anything, int64(7), int64(500)).
		Return(&dto.TransactionResult{TransactionUUID: uuid.NewString(), NewBalance: 1500, NewBalanceDisplay: "15.00"}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1.0/transaction", gin.H{
		"accountId":         7,
		"transactionType":   "CREDIT",
		"transactionAmount": 500,
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Success)

	var result dto.TransactionResult
	suite.Require().NoError(json.Unmarshal(resp.Data, &result))
	suite.Equal(int64(1500), result.NewBalance)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_WithdrawalRoutesToDebit() {
	suite.mockSvc.On("CreateWithdrawal", mock.Anything, int64(7), int64(30)).
		Return(&dto.TransactionResult{TransactionUUID: uuid.NewString(), NewBalance: 70, NewBalanceDisplay: "0.70"}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1.0/transaction", gin.H{
		"accountId":         7,
		"transactionType":   "DEBIT",
		"transactionAmount": 30,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateDeposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_AccountNotFound() {
	suite.mockSvc.On("CreateDeposit", mock.Anything, int64(999), int64(100)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1.0/transaction", gin.H{
		"accountId":         999,
		"transactionType":   "CREDIT",
		"transactionAmount": 100,
	})

	suite.Equal(http.StatusNotFound, w.Code)
	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(0, resp.Success)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_RejectsInvalidBody() {
	// Zero amount fails binding; the service must never be called.
	w := suite.doRequest(http.MethodPost, "/api/v1.0/transaction", gin.H{
		"accountId":         7,
		"transactionType":   "CREDIT",
		"transactionAmount": 0,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateDeposit", mock.Anything, mock.Anything, mock.Anything)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateWithdrawal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_RejectsUnknownType() {
	w := suite.doRequest(http.MethodPost, "/api/v1.0/transaction", gin.H{
		"accountId":         7,
		"transactionType":   "TRANSFER",
		"transactionAmount": 100,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestTransferFunds_Success() {
	donorUUID := uuid.NewString()
	recipientUUID := uuid.NewString()

	suite.mockSvc.On("TransferFunds", mock.Anything, donorUUID, recipientUUID, int64(20)).
		Return(&dto.TransferResult{DonorNewBalance: 30, RecipientNewBalance: 30}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1.0/transaction/transfer", gin.H{
		"donorId":           donorUUID,
		"recipientId":       recipientUUID,
		"transactionAmount": 20,
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	var result dto.TransferResult
	suite.Require().NoError(json.Unmarshal(resp.Data, &result))
	suite.Equal(int64(30), result.DonorNewBalance)
	suite.Equal(int64(30), result.RecipientNewBalance)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestTransferFunds_SameAccount() {
	accountUUID := uuid.NewString()

	suite.mockSvc.On("TransferFunds", mock.Anything, accountUUID, accountUUID, int64(100)).
		Return(nil, apperrors.ErrSameAccount).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1.0/transaction/transfer", gin.H{
		"donorId":           accountUUID,
		"recipientId":       accountUUID,
		"transactionAmount": 100,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestTransferFunds_AccountMissing() {
	donorUUID := uuid.NewString()
	recipientUUID := uuid.NewString()

	suite.mockSvc.On("TransferFunds", mock.Anything, donorUUID, recipientUUID, int64(100)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1.0/transaction/transfer", gin.H{
		"donorId":           donorUUID,
		"recipientId":       recipientUUID,
		"transactionAmount": 100,
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	expected := &dto.TransactionListResponse{
		Transactions: []dto.TransactionRecord{
			{ID: 1, UUID: uuid.NewString(), Type: "CREDIT", Amount: 1000, AmountDisplay: "10.00", AccountID: 1, AccountName: "Salary", AccountNumber: 12345678},
		},
		Accounts: []dto.AccountResponse{{ID: 1, Name: "Salary", Number: 12345678}},
	}

	suite.mockSvc.On("ListTransactions", mock.Anything, suite.customerID, "").
		Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1.0/transaction", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	var result dto.TransactionListResponse
	suite.Require().NoError(json.Unmarshal(resp.Data, &result))
	suite.Len(result.Transactions, 1)
	suite.Equal("Salary", result.Transactions[0].AccountName)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_SearchTerm() {
	suite.mockSvc.On("ListTransactions", mock.Anything, suite.customerID, "DEBIT").
		Return(&dto.TransactionListResponse{Transactions: []dto.TransactionRecord{}, Accounts: []dto.AccountResponse{}}, nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1.0/transaction?q=%s", "DEBIT"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("No transactions found.", resp.Message)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRequestsWithoutTokenAreRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1.0/transaction", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
