package rest

import (
	"context"
	"net/http"
	"time"

	"idealPrice/domain"
	"idealPrice/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type DatasetSummaryService interface {
	DatasetSummary(ctx context.Context, group domain.DatasetGroup) (*domain.DatasetSummary, error)
}

type DatasetCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type DatasetAdminHandler struct {
	datasetService DatasetSummaryService
	cache          DatasetCacheInvalidator
	timeout        time.Duration
}

// NewDatasetAdminHandler builds the admin handler. cache may be nil when the
// dataset cache is disabled.
func NewDatasetAdminHandler(datasetService DatasetSummaryService, cache DatasetCacheInvalidator, timeout time.Duration) *DatasetAdminHandler {
	return &DatasetAdminHandler{
		datasetService: datasetService,
		cache:          cache,
		timeout:        timeout,
	}
}

func (h *DatasetAdminHandler) GetDatasetSummary(c echo.Context) error {
	group := domain.DatasetGroup(c.Param("group"))
	if !group.Valid() {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "group must be group_a or group_b"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.datasetService.DatasetSummary(ctx, group)
	if err != nil {
		logger.Error("Failed to summarise dataset", "group", group, "error", err)
		status, message := pricingErrorStatus(err)
		return c.JSON(status, ResponseError{Message: message})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}

func (h *DatasetAdminHandler) InvalidateCache(c echo.Context) error {
	if h.cache == nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "dataset cache is disabled"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cache.Invalidate(ctx); err != nil {
		logger.Error("Failed to invalidate dataset cache", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to invalidate dataset cache"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Dataset cache invalidated"))
}
