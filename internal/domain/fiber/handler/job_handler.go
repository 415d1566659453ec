package handler

import (
	"errors"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(api fiber.Router, requireAdmin fiber.Handler) {
	api.Get("/jobs", h.ListActive)
	api.Get("/jobs/:id", h.GetActive)

	admin := api.Group("/admin/jobs", requireAdmin)
	admin.Get("/", h.ListAll)
	admin.Post("/", h.Create)
	admin.Put("/:id", h.Update)
	admin.Post("/:id/toggle", h.Toggle)
	admin.Delete("/:id", h.Delete)
}

func (h *JobHandler) ListActive(c *fiber.Ctx) error {
	var q dto.JobListQuery
	if err := c.QueryParser(&q); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid query",
		}, err)
	}
	if err := util.ValidateStruct(q); err != nil {
		return util.ValidationErrorResponse(c, err)
	}
	jobs, err := h.uc.ListActive(c.UserContext(), q)
	if err != nil {
		return internalError(c, "Failed to fetch jobs", err)
	}
	return util.EntityResponse(c, jobs)
}

func (h *JobHandler) GetActive(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c, "Job not found")
	}
	job, err := h.uc.GetActive(c.UserContext(), id)
	if errors.Is(err, usecase.ErrJobNotFound) {
		return notFound(c, "Job not found")
	}
	if err != nil {
		return internalError(c, "Failed to fetch job", err)
	}
	return util.EntityResponse(c, job)
}

func (h *JobHandler) ListAll(c *fiber.Ctx) error {
	jobs, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return internalError(c, "Failed to fetch jobs", err)
	}
	return util.EntityResponse(c, jobs)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	job, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return internalError(c, "Failed to create job", err)
	}
	return util.EntityResponse(c, job)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c, "Job not found")
	}
	var req dto.UpdateJobRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	job, err := h.uc.Update(c.UserContext(), id, req)
	if errors.Is(err, usecase.ErrJobNotFound) {
		return notFound(c, "Job not found")
	}
	if err != nil {
		return internalError(c, "Failed to update job", err)
	}
	return util.EntityResponse(c, job)
}

func (h *JobHandler) Toggle(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c, "Job not found")
	}
	job, err := h.uc.ToggleActive(c.UserContext(), id)
	if errors.Is(err, usecase.ErrJobNotFound) {
		return notFound(c, "Job not found")
	}
	if err != nil {
		return internalError(c, "Failed to toggle job status", err)
	}
	return util.EntityResponse(c, job)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c, "Job not found")
	}
	deleted, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return internalError(c, "Failed to delete job", err)
	}
	if !deleted {
		return notFound(c, "Job not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job deleted successfully",
	})
}
