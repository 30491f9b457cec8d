package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/currency_money/cmd/docs"
	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/SscSPs/currency_money/internal/core/domain"
	portssvc "github.com/SscSPs/currency_money/internal/core/ports/services"
	"github.com/SscSPs/currency_money/internal/dto"
	"github.com/SscSPs/currency_money/internal/handlers"
	"github.com/SscSPs/currency_money/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrency(ctx context.Context, code, namespace string) (*domain.CurrencyInfo, error) {
	args := m.Called(ctx, code, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyInfo), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context, params dto.ListCurrenciesParams) (*dto.ListCurrenciesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListCurrenciesResponse), args.Error(1)
}

func (m *MockCurrencyService) ListNamespaces(ctx context.Context) (*dto.ListNamespacesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListNamespacesResponse), args.Error(1)
}

func (m *MockCurrencyService) RegisterCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.CurrencyInfo, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyInfo), args.Error(1)
}

func (m *MockCurrencyService) ReplaceCurrency(ctx context.Context, code, namespace string, req dto.UpdateCurrencyRequest, userID string) (*domain.CurrencyInfo, error) {
	args := m.Called(ctx, code, namespace, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyInfo), args.Error(1)
}

func (m *MockCurrencyService) UnregisterCurrency(ctx context.Context, code, namespace, userID string) (*domain.CurrencyInfo, error) {
	args := m.Called(ctx, code, namespace, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyInfo), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock MoneyService ---
type MockMoneyService struct {
	mock.Mock
}

func (m *MockMoneyService) Evaluate(ctx context.Context, operation string, req dto.MoneyOperationRequest) (*dto.MoneyOperationResponse, error) {
	args := m.Called(ctx, operation, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MoneyOperationResponse), args.Error(1)
}

func (m *MockMoneyService) Split(ctx context.Context, req dto.SplitMoneyRequest) (*dto.SplitMoneyResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SplitMoneyResponse), args.Error(1)
}

func (m *MockMoneyService) Sum(ctx context.Context, req dto.SumMoneyRequest) (*dto.MoneyJSON, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MoneyJSON), args.Error(1)
}

var _ portssvc.MoneySvcFacade = (*MockMoneyService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	cfg                 *config.Config
	mockCurrencyService *MockCurrencyService
	mockMoneyService    *MockMoneyService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret: "test-secret-key-that-is-long-enough",
		JWTIssuer: "currency-money-test",
		RateLimit: "1000-M",
	}
	suite.mockCurrencyService = new(MockCurrencyService)
	suite.mockMoneyService = new(MockMoneyService)

	suite.router = gin.New()
	err := handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Currency: suite.mockCurrencyService,
		Money:    suite.mockMoneyService,
	})
	suite.Require().NoError(err)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockCurrencyService.AssertExpectations(suite.T())
	suite.mockMoneyService.AssertExpectations(suite.T())
}

// generateTestToken creates a signed JWT accepted by the configured middleware.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    suite.cfg.JWTIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.cfg.JWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) euro() *domain.CurrencyInfo {
	info, err := domain.NewCurrencyInfo(domain.CurrencyInfoParams{
		Code:          "EUR",
		Namespace:     domain.NamespaceISO4217,
		NumericCode:   "978",
		DecimalDigits: domain.MustDigits(2),
		EnglishName:   "Euro",
		Symbol:        "€",
	})
	suite.Require().NoError(err)
	return &info
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestGetCurrency_Success() {
	suite.mockCurrencyService.On("GetCurrency", mock.Anything, "EUR", "").Return(suite.euro(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/EUR", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("EUR", resp.Code)
	suite.Equal(domain.NamespaceISO4217, resp.Namespace)
	suite.Equal(2, resp.DecimalDigits)
	suite.Equal("0.01", resp.MinorUnit)
}

func (suite *HandlerTestSuite) TestGetCurrency_NamespaceQuery() {
	suite.mockCurrencyService.On("GetCurrency", mock.Anything, "GLD", "GAME").
		Return(nil, apperrors.UnknownCurrency("GLD", "GAME")).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/GLD?namespace=GAME", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "GLD")
}

func (suite *HandlerTestSuite) TestGetCurrency_InvalidCode() {
	suite.mockCurrencyService.On("GetCurrency", mock.Anything, "eu", "").
		Return(nil, apperrors.ArgumentOutOfRange("code", "must be three uppercase ASCII letters")).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/eu", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListCurrencies_Defaults() {
	suite.mockCurrencyService.On("ListCurrencies", mock.Anything, mock.MatchedBy(func(p dto.ListCurrenciesParams) bool {
		return p.Limit == 100 && p.IncludeObsolete && p.Namespace == "" && p.NextToken == ""
	})).Return(&dto.ListCurrenciesResponse{Currencies: []dto.CurrencyResponse{{Code: "EUR"}}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCurrenciesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Currencies, 1)
	suite.Nil(resp.NextToken)
}

func (suite *HandlerTestSuite) TestListCurrencies_QueryParams() {
	suite.mockCurrencyService.On("ListCurrencies", mock.Anything, dto.ListCurrenciesParams{
		Namespace:       "GAME",
		IncludeObsolete: false,
		Limit:           5,
		NextToken:       "abc",
	}).Return(&dto.ListCurrenciesResponse{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies?namespace=GAME&includeObsolete=false&limit=5&nextToken=abc", nil, "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestListCurrencies_InvalidLimit() {
	w := suite.do(http.MethodGet, "/api/v1/currencies?limit=0", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListNamespaces() {
	suite.mockCurrencyService.On("ListNamespaces", mock.Anything).Return(&dto.ListNamespacesResponse{
		Namespaces: []dto.NamespaceResponse{{Name: domain.NamespaceISO4217, Priority: 0, CurrencyCount: 150}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/namespaces", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), domain.NamespaceISO4217)
}

func (suite *HandlerTestSuite) TestRegisterCurrency_RequiresToken() {
	body := dto.CreateCurrencyRequest{Code: "GLD", Namespace: "GAME"}
	w := suite.do(http.MethodPost, "/api/v1/currencies", body, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestRegisterCurrency_Success() {
	body := dto.CreateCurrencyRequest{Code: "GLD", Namespace: "GAME", EnglishName: "Gold coin"}
	created, err := domain.NewCurrencyInfo(domain.CurrencyInfoParams{
		Code: "GLD", Namespace: "GAME", NumericCode: domain.NoNumericCode,
		DecimalDigits: domain.MustDigits(2), EnglishName: "Gold coin", Symbol: domain.GenericCurrencySign,
	})
	suite.Require().NoError(err)
	suite.mockCurrencyService.On("RegisterCurrency", mock.Anything, body, "user-1").Return(&created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies", body, suite.generateTestToken("user-1"))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("GLD", resp.Code)
	suite.Equal("GAME", resp.Namespace)
}

func (suite *HandlerTestSuite) TestRegisterCurrency_InvalidCode() {
	body := dto.CreateCurrencyRequest{Code: "gl", Namespace: "GAME"}
	w := suite.do(http.MethodPost, "/api/v1/currencies", body, suite.generateTestToken("user-1"))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRegisterCurrency_Duplicate() {
	body := dto.CreateCurrencyRequest{Code: "EUR", Namespace: domain.NamespaceISO4217}
	suite.mockCurrencyService.On("RegisterCurrency", mock.Anything, body, "user-1").
		Return(nil, apperrors.AlreadyRegistered("EUR", domain.NamespaceISO4217)).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies", body, suite.generateTestToken("user-1"))
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestReplaceCurrency_NotFound() {
	name := "Gold"
	body := dto.UpdateCurrencyRequest{EnglishName: &name}
	suite.mockCurrencyService.On("ReplaceCurrency", mock.Anything, "GLD", "GAME", body, "user-1").
		Return(nil, apperrors.CurrencyNotFound("GLD", "GAME")).Once()

	w := suite.do(http.MethodPut, "/api/v1/currencies/GAME/GLD", body, suite.generateTestToken("user-1"))
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUnregisterCurrency_Success() {
	suite.mockCurrencyService.On("UnregisterCurrency", mock.Anything, "EUR", domain.NamespaceISO4217, "user-2").
		Return(suite.euro(), nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/currencies/"+domain.NamespaceISO4217+"/EUR", nil, suite.generateTestToken("user-2"))
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"code":"EUR"`)
}

func (suite *HandlerTestSuite) TestUnregisterCurrency_UnexpectedError() {
	suite.mockCurrencyService.On("UnregisterCurrency", mock.Anything, "EUR", domain.NamespaceISO4217, "user-2").
		Return(nil, errors.New("boom")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/currencies/"+domain.NamespaceISO4217+"/EUR", nil, suite.generateTestToken("user-2"))
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to unregister currency")
	suite.NotContains(w.Body.String(), "boom")
}

func (suite *HandlerTestSuite) TestEvaluate_Add() {
	body := dto.MoneyOperationRequest{
		Left:  dto.MoneyJSON{Amount: "10.00", Currency: "EUR"},
		Right: &dto.MoneyJSON{Amount: "5.25", Currency: "EUR"},
	}
	suite.mockMoneyService.On("Evaluate", mock.Anything, "add", body).Return(&dto.MoneyOperationResponse{
		Operation: "add",
		Result:    &dto.MoneyJSON{Amount: "15.25", Currency: "EUR"},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/money/add", body, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MoneyOperationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Result)
	suite.Equal("15.25", resp.Result.Amount)
}

func (suite *HandlerTestSuite) TestEvaluate_Mismatch() {
	body := dto.MoneyOperationRequest{
		Left:  dto.MoneyJSON{Amount: "10", Currency: "EUR"},
		Right: &dto.MoneyJSON{Amount: "5", Currency: "USD"},
	}
	suite.mockMoneyService.On("Evaluate", mock.Anything, "subtract", body).
		Return(nil, apperrors.CurrencyMismatch("EUR", domain.NamespaceISO4217, "USD", domain.NamespaceISO4217)).Once()

	w := suite.do(http.MethodPost, "/api/v1/money/subtract", body, "")
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestEvaluate_InvalidBody() {
	tests := []struct {
		name string
		body dto.MoneyOperationRequest
	}{
		{name: "non numeric amount", body: dto.MoneyOperationRequest{Left: dto.MoneyJSON{Amount: "ten", Currency: "EUR"}}},
		{name: "bad currency code", body: dto.MoneyOperationRequest{Left: dto.MoneyJSON{Amount: "10", Currency: "euro"}}},
		{name: "unknown rounding", body: dto.MoneyOperationRequest{Left: dto.MoneyJSON{Amount: "10", Currency: "EUR"}, Rounding: "sideways"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/money/negate", tt.body, "")
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestSplit_RoutesToAllocator() {
	body := dto.SplitMoneyRequest{Money: dto.MoneyJSON{Amount: "10", Currency: "EUR"}, Parts: 3}
	suite.mockMoneyService.On("Split", mock.Anything, body).Return(&dto.SplitMoneyResponse{
		Shares: []dto.MoneyJSON{
			{Amount: "3.34", Currency: "EUR"},
			{Amount: "3.33", Currency: "EUR"},
			{Amount: "3.33", Currency: "EUR"},
		},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/money/split", body, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SplitMoneyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Shares, 3)
	suite.mockMoneyService.AssertNotCalled(suite.T(), "Evaluate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSum() {
	body := dto.SumMoneyRequest{Values: []dto.MoneyJSON{
		{Amount: "1.10", Currency: "EUR"},
		{Amount: "2.20", Currency: "EUR"},
	}}
	suite.mockMoneyService.On("Sum", mock.Anything, body).Return(&dto.MoneyJSON{Amount: "3.30", Currency: "EUR"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/money/sum", body, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"amount":"3.30"`)
}

func (suite *HandlerTestSuite) TestSum_EmptyValues() {
	w := suite.do(http.MethodPost, "/api/v1/money/sum", dto.SumMoneyRequest{Values: []dto.MoneyJSON{}}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestRegisterRoutes_InvalidRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	err := handlers.RegisterRoutes(gin.New(), &config.Config{RateLimit: "lots"}, &portssvc.ServiceContainer{
		Currency: new(MockCurrencyService),
		Money:    new(MockMoneyService),
	})
	if err == nil {
		t.Fatal("expected an error for a malformed rate")
	}
}

func (suite *HandlerTestSuite) TestSwaggerDocsCoverEveryRoute() {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	suite.Require().NoError(json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	for _, route := range suite.router.Routes() {
		if strings.HasPrefix(route.Path, "/swagger") {
			continue
		}
		segments := strings.Split(strings.TrimPrefix(route.Path, "/api/v1"), "/")
		for i, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				segments[i] = "{" + seg[1:] + "}"
			}
		}
		path := strings.Join(segments, "/")
		_, ok := doc.Paths[path][strings.ToLower(route.Method)]
		suite.True(ok, "route %s %s is not documented", route.Method, path)
	}
}
