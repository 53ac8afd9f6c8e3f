package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the stock routes. Forecasts require a valid access
// token; the catalog listing is public.
func RegisterRoutes(app *fiber.App, h *StockHandler, requireAuth fiber.Handler) {
	app.Get("/api/v1/stocks", h.GetStocks)
	app.Get("/api/v1/predict", requireAuth, h.Predict)
}
