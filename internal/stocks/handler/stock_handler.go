package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/rcatalasan0/491-Project/internal/errors"
	"github.com/rcatalasan0/491-Project/internal/stocks/service"
)

type StockHandler struct {
	forecastService *service.ForecastService
}

func NewStockHandler(forecastService *service.ForecastService) *StockHandler {
	return &StockHandler{forecastService: forecastService}
}

func (h *StockHandler) GetStocks(c *fiber.Ctx) error {
	stocks, err := h.forecastService.ListStocks(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"stocks": stocks})
}

func (h *StockHandler) Predict(c *fiber.Ctx) error {
	days := 0
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 {
			return writeError(c, autherror.Validation("days must be a positive integer"))
		}
		days = parsed
	}

	forecast, err := h.forecastService.Predict(c.Context(), c.Query("ticker"), days)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(forecast)
}

func writeError(c *fiber.Ctx, err error) error {
	kind, ok := autherror.KindOf(err)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"kind":    "InternalError",
			"message": "internal server error",
		})
	}

	var status int
	switch kind {
	case autherror.KindValidation:
		status = fiber.StatusBadRequest
	case autherror.KindNotFound:
		status = fiber.StatusNotFound
	case autherror.KindStoreUnavailable:
		status = fiber.StatusServiceUnavailable
	default:
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"kind":    string(kind),
		"message": err.Error(),
	})
}
