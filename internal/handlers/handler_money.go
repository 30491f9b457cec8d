package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_money/internal/core/ports/services"
	"github.com/SscSPs/currency_money/internal/dto"
	"github.com/SscSPs/currency_money/internal/middleware"
	"github.com/gin-gonic/gin"
)

type moneyHandler struct {
	moneyService portssvc.MoneySvcFacade
}

// RegisterMoneyRoutes registers the money arithmetic routes.
func RegisterMoneyRoutes(rg *gin.RouterGroup, moneyService portssvc.MoneySvcFacade) {
	h := &moneyHandler{moneyService: moneyService}

	money := rg.Group("/money")
	{
		money.POST("/split", h.split)
		money.POST("/sum", h.sum)
		money.POST("/:operation", h.evaluate)
	}
}

// evaluate godoc
// @Summary Evaluate a money operation
// @Description Applies add, subtract, compare, negate, increment, decrement, multiply, divide or round. Operands must share a currency.
// @Tags money
// @Accept  json
// @Produce  json
// @Param   operation path string true "Operation" Enums(add, subtract, compare, negate, increment, decrement, multiply, divide, round)
// @Param   request body dto.MoneyOperationRequest true "Operands"
// @Success 200 {object} dto.MoneyOperationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency"
// @Failure 422 {object} map[string]string "Currency mismatch"
// @Router /money/{operation} [post]
func (h *moneyHandler) evaluate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operation := c.Param("operation")

	var req dto.MoneyOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for money operation", slog.String("operation", operation), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.moneyService.Evaluate(c.Request.Context(), operation, req)
	if err != nil {
		respondWithError(c, logger.With(slog.String("operation", operation)), err, "Failed to evaluate money operation")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// split godoc
// @Summary Split money
// @Description Splits an amount into equal parts, or proportionally to ratios, in whole minor units. Shares always sum to the input.
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.SplitMoneyRequest true "Amount and parts or ratios"
// @Success 200 {object} dto.SplitMoneyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency"
// @Router /money/split [post]
func (h *moneyHandler) split(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SplitMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for split", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.moneyService.Split(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to split money")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// sum godoc
// @Summary Sum money values
// @Description Adds values that all share one currency
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.SumMoneyRequest true "Values"
// @Success 200 {object} dto.MoneyJSON
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency"
// @Failure 422 {object} map[string]string "Currency mismatch"
// @Router /money/sum [post]
func (h *moneyHandler) sum(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SumMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for sum", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.moneyService.Sum(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to sum money")
		return
	}
	c.JSON(http.StatusOK, resp)
}
