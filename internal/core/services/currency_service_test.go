package services_test

import (
	"context"
	"iter"
	"strings"
	"testing"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/SscSPs/currency_money/internal/core/domain"
	"github.com/SscSPs/currency_money/internal/core/registry"
	"github.com/SscSPs/currency_money/internal/core/services"
	"github.com/SscSPs/currency_money/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRegistry ---
type MockCurrencyRegistry struct {
	mock.Mock
}

func (m *MockCurrencyRegistry) Get(code string) (domain.CurrencyInfo, error) {
	args := m.Called(code)
	return args.Get(0).(domain.CurrencyInfo), args.Error(1)
}

func (m *MockCurrencyRegistry) GetInNamespace(code, namespace string) (domain.CurrencyInfo, error) {
	args := m.Called(code, namespace)
	return args.Get(0).(domain.CurrencyInfo), args.Error(1)
}

func (m *MockCurrencyRegistry) All() iter.Seq[domain.CurrencyInfo] {
	args := m.Called()
	return args.Get(0).(iter.Seq[domain.CurrencyInfo])
}

func (m *MockCurrencyRegistry) InNamespace(namespace string) iter.Seq[domain.CurrencyInfo] {
	args := m.Called(namespace)
	return args.Get(0).(iter.Seq[domain.CurrencyInfo])
}

func (m *MockCurrencyRegistry) Namespaces() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockCurrencyRegistry) NamespaceIndex(namespace string) (int, bool) {
	args := m.Called(namespace)
	return args.Int(0), args.Bool(1)
}

func (m *MockCurrencyRegistry) TryAdd(code, namespace string, info domain.CurrencyInfo) (bool, error) {
	args := m.Called(code, namespace, info)
	return args.Bool(0), args.Error(1)
}

func (m *MockCurrencyRegistry) TryRemove(code, namespace string) (domain.CurrencyInfo, bool) {
	args := m.Called(code, namespace)
	return args.Get(0).(domain.CurrencyInfo), args.Bool(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	reg     *registry.Registry
	service *services.CurrencyService
	ctx     context.Context
	userID  string
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	reg, err := registry.NewWithDefaults()
	suite.Require().NoError(err)
	suite.reg = reg
	suite.service = services.NewCurrencyService(reg)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
}

func ptr[T any](v T) *T { return &v }

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestGetCurrency_PriorityAndNamespace() {
	eur, err := suite.service.GetCurrency(suite.ctx, "EUR", "")
	suite.Require().NoError(err)
	suite.Equal(domain.NamespaceISO4217, eur.Namespace())

	dem, err := suite.service.GetCurrency(suite.ctx, "DEM", "")
	suite.Require().NoError(err)
	suite.Equal(domain.NamespaceISO4217Historic, dem.Namespace())

	_, err = suite.service.GetCurrency(suite.ctx, "DEM", domain.NamespaceISO4217)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)

	_, err = suite.service.GetCurrency(suite.ctx, "EUR", "NOWHERE")
	suite.ErrorIs(err, apperrors.ErrUnknownNamespace)
}

func (suite *CurrencyServiceTestSuite) TestRegisterCurrency_Success() {
	req := dto.CreateCurrencyRequest{
		Code:          "GLD",
		Namespace:     "GAME",
		EnglishName:   "Gold Coin",
		DecimalDigits: ptr(0),
	}

	info, err := suite.service.RegisterCurrency(suite.ctx, req, suite.userID)
	suite.Require().NoError(err)
	suite.Equal("GLD", info.Code())
	suite.Equal("GAME", info.Namespace())
	suite.Equal(domain.GenericCurrencySign, info.Symbol())
	suite.Equal(domain.NoNumericCode, info.NumericCode())
	suite.Equal("1", info.MinorUnit().String())

	got, err := suite.service.GetCurrency(suite.ctx, "GLD", "")
	suite.Require().NoError(err)
	suite.True(got.Same(*info))
}

func (suite *CurrencyServiceTestSuite) TestRegisterCurrency_FiveBased() {
	req := dto.CreateCurrencyRequest{Code: "PTS", Namespace: "GAME", FiveBased: true, DecimalDigits: ptr(3)}
	info, err := suite.service.RegisterCurrency(suite.ctx, req, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(domain.DigitsFiveBased, info.DecimalDigits().Kind())
}

func (suite *CurrencyServiceTestSuite) TestRegisterCurrency_Duplicate() {
	req := dto.CreateCurrencyRequest{Code: "EUR", Namespace: domain.NamespaceISO4217}
	info, err := suite.service.RegisterCurrency(suite.ctx, req, suite.userID)
	suite.Nil(info)
	suite.ErrorIs(err, apperrors.ErrAlreadyRegistered)
}

func (suite *CurrencyServiceTestSuite) TestRegisterCurrency_InvalidDigits() {
	req := dto.CreateCurrencyRequest{Code: "GLD", Namespace: "GAME", DecimalDigits: ptr(-2)}
	_, err := suite.service.RegisterCurrency(suite.ctx, req, suite.userID)
	suite.ErrorIs(err, apperrors.ErrArgumentOutOfRange)
}

func (suite *CurrencyServiceTestSuite) TestReplaceCurrency_KeepsUnchangedFields() {
	info, err := suite.service.ReplaceCurrency(suite.ctx, "JPY", domain.NamespaceISO4217,
		dto.UpdateCurrencyRequest{Symbol: ptr("JP¥"), DecimalDigits: ptr(2)}, suite.userID)
	suite.Require().NoError(err)
	suite.Equal("JP¥", info.Symbol())
	suite.Equal("0.01", info.MinorUnit().String())
	suite.Equal("Yen", info.EnglishName())
	suite.Equal("392", info.NumericCode())

	got, err := suite.service.GetCurrency(suite.ctx, "JPY", "")
	suite.Require().NoError(err)
	suite.True(got.Same(*info))
}

func (suite *CurrencyServiceTestSuite) TestReplaceCurrency_NotFound() {
	_, err := suite.service.ReplaceCurrency(suite.ctx, "GLD", "GAME", dto.UpdateCurrencyRequest{}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
}

func (suite *CurrencyServiceTestSuite) TestReplaceCurrency_RestoresOnInvalidUpdate() {
	before, err := suite.reg.GetInNamespace("EUR", domain.NamespaceISO4217)
	suite.Require().NoError(err)

	_, err = suite.service.ReplaceCurrency(suite.ctx, "EUR", domain.NamespaceISO4217,
		dto.UpdateCurrencyRequest{DecimalDigits: ptr(-5)}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrArgumentOutOfRange)

	after, err := suite.reg.GetInNamespace("EUR", domain.NamespaceISO4217)
	suite.Require().NoError(err)
	suite.True(after.Same(before))
}

func (suite *CurrencyServiceTestSuite) TestReplaceCurrency_RestoresOnInvalidDescriptor() {
	before, err := suite.reg.GetInNamespace("EUR", domain.NamespaceISO4217)
	suite.Require().NoError(err)

	_, err = suite.service.ReplaceCurrency(suite.ctx, "EUR", domain.NamespaceISO4217,
		dto.UpdateCurrencyRequest{NumericCode: ptr("9X8")}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrArgumentOutOfRange)

	after, err := suite.reg.GetInNamespace("EUR", domain.NamespaceISO4217)
	suite.Require().NoError(err)
	suite.True(after.Same(before))
}

func (suite *CurrencyServiceTestSuite) TestUnregisterCurrency() {
	removed, err := suite.service.UnregisterCurrency(suite.ctx, "EUR", domain.NamespaceISO4217, suite.userID)
	suite.Require().NoError(err)
	suite.Equal("EUR", removed.Code())

	_, err = suite.service.UnregisterCurrency(suite.ctx, "EUR", domain.NamespaceISO4217, suite.userID)
	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_PaginatesInPriorityOrder() {
	params := dto.ListCurrenciesParams{IncludeObsolete: true, Limit: 50}
	seen := map[string]bool{}
	var codes []string
	pages := 0

	for {
		resp, err := suite.service.ListCurrencies(suite.ctx, params)
		suite.Require().NoError(err)
		suite.LessOrEqual(len(resp.Currencies), 50)
		for _, c := range resp.Currencies {
			key := c.Namespace + "::" + c.Code
			suite.False(seen[key], "duplicate %s", key)
			seen[key] = true
			codes = append(codes, key)
		}
		pages++
		if resp.NextToken == nil {
			break
		}
		params.NextToken = *resp.NextToken
	}

	suite.Equal(suite.reg.Len(), len(seen))
	suite.Greater(pages, 1)
	// every ISO entry comes before every historic one
	lastISO, firstHistoric := -1, len(codes)
	for i, k := range codes {
		if strings.HasPrefix(k, domain.NamespaceISO4217+"::") {
			lastISO = i
		} else if i < firstHistoric {
			firstHistoric = i
		}
	}
	suite.Less(lastISO, firstHistoric)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_FiltersObsoleteAndNamespace() {
	resp, err := suite.service.ListCurrencies(suite.ctx, dto.ListCurrenciesParams{
		Namespace: domain.NamespaceISO4217Historic, IncludeObsolete: false, Limit: 500,
	})
	suite.Require().NoError(err)
	for _, c := range resp.Currencies {
		suite.False(c.IsObsolete)
		suite.Equal(domain.NamespaceISO4217Historic, c.Namespace)
	}

	resp, err = suite.service.ListCurrencies(suite.ctx, dto.ListCurrenciesParams{
		Namespace: domain.NamespaceISO4217, IncludeObsolete: true, Limit: 500,
	})
	suite.Require().NoError(err)
	suite.Nil(resp.NextToken)
	for _, c := range resp.Currencies {
		suite.Equal(domain.NamespaceISO4217, c.Namespace)
	}
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_InvalidInput() {
	_, err := suite.service.ListCurrencies(suite.ctx, dto.ListCurrenciesParams{Namespace: "NOWHERE"})
	suite.ErrorIs(err, apperrors.ErrUnknownNamespace)

	_, err = suite.service.ListCurrencies(suite.ctx, dto.ListCurrenciesParams{NextToken: "%%%"})
	suite.ErrorIs(err, apperrors.ErrArgumentOutOfRange)
}

func (suite *CurrencyServiceTestSuite) TestListNamespaces() {
	_, err := suite.service.RegisterCurrency(suite.ctx, dto.CreateCurrencyRequest{Code: "GLD", Namespace: "GAME"}, suite.userID)
	suite.Require().NoError(err)

	resp, err := suite.service.ListNamespaces(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(resp.Namespaces, 3)
	suite.Equal(domain.NamespaceISO4217, resp.Namespaces[0].Name)
	suite.Equal(0, resp.Namespaces[0].Priority)
	suite.Equal("GAME", resp.Namespaces[2].Name)
	suite.Equal(1, resp.Namespaces[2].CurrencyCount)
}

// TestCurrencyServiceTestSuite runs the test suite
func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

func TestReplaceCurrency_RestoresWhenKeyIsTakenConcurrently(t *testing.T) {
	mockReg := new(MockCurrencyRegistry)
	service := services.NewCurrencyService(mockReg)
	ctx := context.Background()

	old, err := domain.NewCurrencyInfo(domain.CurrencyInfoParams{
		Code: "GLD", Namespace: "GAME", NumericCode: "000",
		DecimalDigits: domain.MustDigits(0), EnglishName: "Gold Coin", Symbol: "G",
	})
	require.NoError(t, err)

	mockReg.On("TryRemove", "GLD", "GAME").Return(old, true).Once()
	// someone else registers the key between remove and add
	mockReg.On("TryAdd", "GLD", "GAME", mock.MatchedBy(func(info domain.CurrencyInfo) bool {
		return info.Symbol() == "GC"
	})).Return(false, nil).Once()
	mockReg.On("TryAdd", "GLD", "GAME", old).Return(true, nil).Once()

	info, err := service.ReplaceCurrency(ctx, "GLD", "GAME", dto.UpdateCurrencyRequest{Symbol: ptr("GC")}, uuid.NewString())

	assert.Nil(t, info)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
	mockReg.AssertExpectations(t)
}

func TestRegisterCurrency_PropagatesRegistryError(t *testing.T) {
	mockReg := new(MockCurrencyRegistry)
	service := services.NewCurrencyService(mockReg)

	capacityErr := apperrors.ArgumentOutOfRange("store", "capacity exceeded")
	mockReg.On("TryAdd", "GLD", "GAME", mock.AnythingOfType("domain.CurrencyInfo")).Return(false, capacityErr).Once()

	info, err := service.RegisterCurrency(context.Background(), dto.CreateCurrencyRequest{Code: "GLD", Namespace: "GAME"}, uuid.NewString())

	assert.Nil(t, info)
	assert.ErrorIs(t, err, apperrors.ErrArgumentOutOfRange)
	mockReg.AssertExpectations(t)
}
