package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yudhaprm/skillorbit/internal/middleware"
	"yudhaprm/skillorbit/internal/services"
)

type AnalyticsHandler struct {
	analytics services.AnalyticsService
}

func NewAnalyticsHandler(analytics services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// HandleCategoryAverages handles GET /analytics/categories
func (h *AnalyticsHandler) HandleCategoryAverages(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	averages, err := h.analytics.CategoryAverages(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Empty is a valid state, not an error
	if len(averages) == 0 {
		return c.JSON(fiber.Map{
			"categories": []services.CategoryAverage{},
			"message":    "no data",
		})
	}

	return c.JSON(fiber.Map{
		"categories": averages,
	})
}

// HandleTimeSeries handles GET /analytics/timeseries?window=week|month|year
func (h *AnalyticsHandler) HandleTimeSeries(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	window := services.TimeWindow(c.Query("window", string(services.WindowMonth)))
	switch window {
	case services.WindowWeek, services.WindowMonth, services.WindowYear:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid window, expected week, month or year",
		})
	}

	points, err := h.analytics.TimeSeries(userID, window)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if len(points) == 0 {
		return c.JSON(fiber.Map{
			"points":  []services.TimeSeriesPoint{},
			"message": "insufficient data",
		})
	}

	return c.JSON(fiber.Map{
		"points": points,
	})
}

// HandleInsights handles GET /analytics/insights
func (h *AnalyticsHandler) HandleInsights(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	summary, err := h.analytics.Insights(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summary)
}
