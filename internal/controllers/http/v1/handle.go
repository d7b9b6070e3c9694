package http

import (
	"github.com/gofiber/fiber/v2"

	"precip-viewer/internal/models"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"fixture has no data: week"`
}

// HealthResponse represents the health endpoint body
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Weather API is running"`
}

// GetTodayForecast godoc
// @Summary Get today's forecast
// @Description Returns today's precipitation forecast with a human-readable message
// @Tags Forecast
// @Produce json
// @Success 200 {object} models.TodayForecast "Today's forecast"
// @Failure 500 {object} ErrorResponse "Forecast source failed"
// @Router /api/weather/today/ [get]
func (r *routes) handleToday(c *fiber.Ctx) error {
	today, err := r.repo.FetchToday(c.UserContext())
	if err != nil {
		r.l.Error(err, map[string]any{"repository": r.repo.Name(), "endpoint": "today"})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(today)
}

// GetWeekForecast godoc
// @Summary Get the 5-day forecast
// @Description Returns the Monday to Friday forecast, always five entries
// @Tags Forecast
// @Produce json
// @Success 200 {object} models.WeekResponse "Weekly forecast"
// @Failure 500 {object} ErrorResponse "Forecast source failed"
// @Router /api/weather/week/ [get]
func (r *routes) handleWeek(c *fiber.Ctx) error {
	week, err := r.repo.FetchWeek(c.UserContext())
	if err != nil {
		r.l.Error(err, map[string]any{"repository": r.repo.Name(), "endpoint": "week"})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(models.WeekResponse{
		Predictions: week,
		Location:    r.location,
	})
}

// GetHealth godoc
// @Summary Provider health
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Provider is running"
// @Router /api/weather/health/ [get]
func (r *routes) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  "ok",
		Message: "Weather API is running",
	})
}
