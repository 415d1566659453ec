package handler

import (
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	uc *usecase.StatsUsecase
}

func NewStatsHandler(uc *usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(api fiber.Router, requireAdmin fiber.Handler) {
	api.Get("/admin/stats", requireAdmin, h.Dashboard)
}

func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return internalError(c, "Failed to fetch stats", err)
	}
	return util.EntityResponse(c, stats)
}
