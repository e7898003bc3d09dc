package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"idealPrice/domain"
	"idealPrice/internal/middleware"
	"idealPrice/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PricingService interface {
	CalculatePrice(ctx context.Context, q domain.PriceQuery) (*domain.PriceResult, error)
}

type PricingHandler struct {
	pricingService PricingService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewPricingHandler(pricingService PricingService, validate *validator.Validate, timeout time.Duration) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
		validator:      validate,
		timeout:        timeout,
	}
}

type CalculatePriceRequest struct {
	ProductID int64  `param:"product_id" validate:"gte=0"`
	Date      string `query:"date" validate:"max=32"`
	Seasonal  string `query:"seasonal"`
}

func (r CalculatePriceRequest) Query() domain.PriceQuery {
	return domain.PriceQuery{
		ProductID: r.ProductID,
		Date:      strings.TrimSpace(r.Date),
		Seasonal:  strings.EqualFold(strings.TrimSpace(r.Seasonal), "true"),
	}
}

// CalculatePrice godoc
// @Summary Calculate the ideal price of a product
// @Tags Pricing
// @Produce json
// @Param product_id path int true "Product ID"
// @Param date query string false "Calculation date (YYYY-MM-DD)"
// @Param seasonal query bool false "Apply the seasonal price increase"
// @Success 200 {object} domain.PriceResult
// @Failure 400 {object} PricingErrorResponse
// @Failure 404 {object} PricingErrorResponse
// @Failure 500 {object} PricingErrorResponse
// @Router /api/calculate_price/{product_id} [get]
func (h *PricingHandler) CalculatePrice(c echo.Context) error {
	// An id that is not a non-negative integer matches no product route.
	var req CalculatePriceRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid price request", "error", err, "request_id", middleware.RequestIDFrom(c))
		return c.JSON(http.StatusNotFound, PricingErrorResponse{Error: "Product ID must be a non-negative integer."})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Warn("Failed to validate price request", "error", err, "request_id", middleware.RequestIDFrom(c))
		return c.JSON(http.StatusNotFound, PricingErrorResponse{Error: "Product ID must be a non-negative integer."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.pricingService.CalculatePrice(ctx, req.Query())
	if err != nil {
		status, message := pricingErrorStatus(err)
		logger.Error("Failed to calculate price",
			"product_id", req.ProductID,
			"kind", domain.KindName(err),
			"error", err,
			"request_id", middleware.RequestIDFrom(c),
		)
		return c.JSON(status, PricingErrorResponse{Error: message})
	}

	return c.JSON(http.StatusOK, result)
}

// pricingErrorStatus maps an error kind to its HTTP status and client message.
func pricingErrorStatus(err error) (int, string) {
	var perr *domain.PricingError
	if errors.As(err, &perr) {
		switch {
		case errors.Is(err, domain.ErrInvalidDate):
			return http.StatusBadRequest, perr.Message
		case errors.Is(err, domain.ErrProductNotFound):
			return http.StatusNotFound, perr.Message
		default:
			return http.StatusInternalServerError, perr.Message
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "Price calculation timed out."
	}

	return http.StatusInternalServerError, "Internal server error."
}
