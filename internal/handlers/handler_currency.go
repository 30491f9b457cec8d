package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_money/internal/core/ports/services"
	"github.com/SscSPs/currency_money/internal/dto"
	"github.com/SscSPs/currency_money/internal/middleware"
	"github.com/SscSPs/currency_money/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies. Reads go on
// public, registry mutations on protected.
func RegisterCurrencyRoutes(public, protected *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	public.GET("/namespaces", h.listNamespaces)
	currencies := public.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrency)
	}

	admin := protected.Group("/currencies")
	{
		admin.POST("", h.registerCurrency)
		admin.PUT("/:namespace/:code", h.replaceCurrency)
		admin.DELETE("/:namespace/:code", h.unregisterCurrency)
	}
}

// getCurrency godoc
// @Summary Get a currency by code
// @Description Resolves a 3-letter code. Without a namespace, namespaces are searched in priority order (ISO-4217 first).
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   namespace query string false "Namespace to search"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")
	namespace := c.Query("namespace")

	logger = logger.With(slog.String("currency_code", code), slog.String("namespace", namespace))

	currency, err := h.currencyService.GetCurrency(c.Request.Context(), code, namespace)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, mapping.ToCurrencyResponse(*currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists registered currencies ordered by namespace priority, then code
// @Tags currencies
// @Produce  json
// @Param   namespace query string false "Restrict to one namespace"
// @Param   includeObsolete query bool false "Include currencies past their validity window" default(true)
// @Param   limit query int false "Page size" default(100)
// @Param   nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListCurrenciesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Unknown namespace"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCurrenciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCurrencies", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.currencyService.ListCurrencies(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Debug("Currencies listed", slog.Int("count", len(resp.Currencies)))
	c.JSON(http.StatusOK, resp)
}

// listNamespaces godoc
// @Summary List namespaces
// @Description Lists registered namespaces in lookup priority order
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.ListNamespacesResponse
// @Router /namespaces [get]
func (h *currencyHandler) listNamespaces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.currencyService.ListNamespaces(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list namespaces")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// registerCurrency godoc
// @Summary Register a currency
// @Description Adds a currency to the registry. Unset fields use the builder defaults.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Currency already registered"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) registerCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.currencyService.RegisterCurrency(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to register currency")
		return
	}

	c.JSON(http.StatusCreated, mapping.ToCurrencyResponse(*created))
}

// replaceCurrency godoc
// @Summary Replace a currency
// @Description Unregisters the currency and registers a copy with the given fields changed. On failure the original stays registered.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   namespace path string true "Namespace"
// @Param   code path string true "Currency Code (3 letters)"
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /currencies/{namespace}/{code} [put]
func (h *currencyHandler) replaceCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	namespace, code := c.Param("namespace"), c.Param("code")

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	replaced, err := h.currencyService.ReplaceCurrency(c.Request.Context(), code, namespace, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to replace currency")
		return
	}

	c.JSON(http.StatusOK, mapping.ToCurrencyResponse(*replaced))
}

// unregisterCurrency godoc
// @Summary Unregister a currency
// @Description Removes a currency from the registry and returns it
// @Tags currencies
// @Produce  json
// @Param   namespace path string true "Namespace"
// @Param   code path string true "Currency Code (3 letters)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Security BearerAuth
// @Router /currencies/{namespace}/{code} [delete]
func (h *currencyHandler) unregisterCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	namespace, code := c.Param("namespace"), c.Param("code")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	removed, err := h.currencyService.UnregisterCurrency(c.Request.Context(), code, namespace, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to unregister currency")
		return
	}

	c.JSON(http.StatusOK, mapping.ToCurrencyResponse(*removed))
}
