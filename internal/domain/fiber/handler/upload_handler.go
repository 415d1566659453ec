package handler

import (
	"errors"

	"github.com/fadilmartias/job-board/internal/service"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
)

const resumeField = "resume"

type UploadHandler struct {
	resumes service.ResumeServiceInterface
}

func NewUploadHandler(resumes service.ResumeServiceInterface) *UploadHandler {
	return &UploadHandler{resumes: resumes}
}

func (h *UploadHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/upload", h.Upload)
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile(resumeField)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "No file uploaded",
		}, err)
	}

	res, err := h.resumes.Store(file)
	switch {
	case errors.Is(err, service.ErrNoFile):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "No file uploaded",
		})
	case errors.Is(err, service.ErrUnsupportedFileType):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid file type. Only PDF, DOC, and DOCX files are allowed.",
		})
	case errors.Is(err, service.ErrFileTooLarge):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusRequestEntityTooLarge,
			Message: "File too large",
		})
	case err != nil:
		return internalError(c, "File upload failed", err)
	}
	return util.EntityResponse(c, res)
}
