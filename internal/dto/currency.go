package dto

import (
	"time"
)

// CreateCurrencyRequest defines the data needed to register a new currency.
// Unset optional fields fall back to the builder defaults: numeric code "000",
// two decimal digits, the generic currency sign and the code as English name.
type CreateCurrencyRequest struct {
	Code          string     `json:"code" binding:"required,currencycode"`
	Namespace     string     `json:"namespace" binding:"required,max=64"`
	EnglishName   string     `json:"englishName" binding:"max=128"`
	Symbol        string     `json:"symbol" binding:"max=16"`
	NumericCode   string     `json:"numericCode" binding:"omitempty,numeric,len=3"`
	DecimalDigits *int       `json:"decimalDigits" binding:"omitempty,min=-1,max=28"` // -1 means not applicable
	FiveBased     bool       `json:"fiveBased"`
	ValidFrom     *time.Time `json:"validFrom"`
	ValidTo       *time.Time `json:"validTo"`
}

// UpdateCurrencyRequest defines the fields that can change when an existing
// currency is replaced. Nil fields keep the current value.
type UpdateCurrencyRequest struct {
	EnglishName   *string    `json:"englishName" binding:"omitempty,min=1,max=128"`
	Symbol        *string    `json:"symbol" binding:"omitempty,min=1,max=16"`
	NumericCode   *string    `json:"numericCode" binding:"omitempty,numeric,len=3"`
	DecimalDigits *int       `json:"decimalDigits" binding:"omitempty,min=-1,max=28"`
	FiveBased     *bool      `json:"fiveBased"`
	ValidFrom     *time.Time `json:"validFrom"`
	ValidTo       *time.Time `json:"validTo"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code          string     `json:"code"`
	Namespace     string     `json:"namespace"`
	NumericCode   string     `json:"numericCode"`
	EnglishName   string     `json:"englishName"`
	Symbol        string     `json:"symbol"`
	DecimalDigits int        `json:"decimalDigits"`
	DigitsKind    string     `json:"digitsKind"`
	Digits        float64    `json:"digits"`
	MinorUnit     string     `json:"minorUnit"`
	ValidFrom     *time.Time `json:"validFrom,omitempty"`
	ValidTo       *time.Time `json:"validTo,omitempty"`
	IsObsolete    bool       `json:"isObsolete"`
}

// ListCurrenciesParams defines query parameters for listing currencies.
type ListCurrenciesParams struct {
	Namespace       string `form:"namespace"`
	IncludeObsolete bool   `form:"includeObsolete,default=true"`
	Limit           int    `form:"limit,default=100" binding:"min=1,max=500"`
	NextToken       string `form:"nextToken"`
}

// ListCurrenciesResponse wraps a page of currencies.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
	NextToken  *string            `json:"nextToken,omitempty"`
}

// NamespaceResponse describes one registered namespace.
type NamespaceResponse struct {
	Name          string `json:"name"`
	Priority      int    `json:"priority"`
	CurrencyCount int    `json:"currencyCount"`
}

// ListNamespacesResponse lists namespaces in lookup priority order.
type ListNamespacesResponse struct {
	Namespaces []NamespaceResponse `json:"namespaces"`
}
