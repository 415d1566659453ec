package handler

import (
	"errors"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(api fiber.Router, requireAdmin fiber.Handler) {
	api.Post("/applications", h.Submit)

	admin := api.Group("/admin/applications", requireAdmin)
	admin.Get("/", h.List)
	admin.Get("/:id", h.Get)
	admin.Put("/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	app, err := h.uc.Submit(c.UserContext(), req)
	if err != nil {
		return internalError(c, "Failed to submit application", err)
	}
	return util.EntityResponse(c, app)
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	apps, err := h.uc.List(c.UserContext())
	if err != nil {
		return internalError(c, "Failed to fetch applications", err)
	}
	return util.EntityResponse(c, apps)
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c, "Application not found")
	}
	app, err := h.uc.Get(c.UserContext(), id)
	if errors.Is(err, usecase.ErrApplicationNotFound) {
		return notFound(c, "Application not found")
	}
	if err != nil {
		return internalError(c, "Failed to fetch application", err)
	}
	return util.EntityResponse(c, app)
}

// UpdateStatus rejects anything outside pending/approved/rejected before
// touching storage.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil || util.ValidateStruct(req) != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid status",
		})
	}
	id, ok := paramID(c)
	if !ok {
		return notFound(c, "Application not found")
	}
	app, err := h.uc.UpdateStatus(c.UserContext(), id, model.ApplicationStatus(req.Status))
	if errors.Is(err, usecase.ErrApplicationNotFound) {
		return notFound(c, "Application not found")
	}
	if err != nil {
		return internalError(c, "Failed to update application status", err)
	}
	return util.EntityResponse(c, app)
}
