package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/job-board/internal/config"
	"github.com/fadilmartias/job-board/internal/domain/fiber/handler"
	"github.com/fadilmartias/job-board/internal/middleware"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/fadilmartias/job-board/internal/service"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// multipartOverhead is the slack allowed on top of the resume size limit
// for multipart framing and the other form fields.
const multipartOverhead = 1 << 20

// Deps is everything the HTTP layer needs. All of it is created at startup
// and owned by the caller.
type Deps struct {
	DB       *gorm.DB
	Sessions *repository.SessionRepository
	Files    afero.Fs
	App      *config.AppConfig
	Session  *config.SessionConfig
	Upload   *config.UploadConfig
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		if e.Message != "" {
			message = e.Message
		}
	}

	return util.ErrorResponse(ctx, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}

// New assembles the fiber app: middleware, API routes and the public
// uploads path.
func New(deps Deps) (*fiber.App, error) {
	appConfig := deps.App

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		BodyLimit:    int(deps.Upload.MaxBytes) + multipartOverhead,
		ErrorHandler: errorHandler,
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.CORSOrigins,
		AllowCredentials: true,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(appConfig.RateLimitMax, 1*time.Minute))

	jobRepo := repository.NewJobRepository(deps.DB)
	applicationRepo := repository.NewApplicationRepository(deps.DB)
	adminRepo := repository.NewAdminRepository(deps.DB)

	sessions := service.NewSessionService(deps.Sessions, deps.Session)
	resumes, err := service.NewResumeService(deps.Files, deps.Upload)
	if err != nil {
		return nil, fmt.Errorf("init resume storage: %w", err)
	}

	requireAdmin := middleware.RequireAdmin(sessions)

	api := app.Group("/api")
	handler.NewAuthHandler(usecase.NewAuthUsecase(adminRepo), sessions).RegisterRoutes(api, requireAdmin)
	handler.NewUploadHandler(resumes).RegisterRoutes(api)
	handler.NewJobHandler(usecase.NewJobUsecase(jobRepo)).RegisterRoutes(api, requireAdmin)
	handler.NewApplicationHandler(usecase.NewApplicationUsecase(applicationRepo)).RegisterRoutes(api, requireAdmin)
	handler.NewStatsHandler(usecase.NewStatsUsecase(jobRepo, applicationRepo)).RegisterRoutes(api, requireAdmin)

	api.All("*", func(c *fiber.Ctx) error {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: fmt.Sprintf("Path: %v does not exist on this server", c.Path()),
		})
	})

	// Resumes are public to anyone holding the URL.
	app.Use(strings.TrimRight(deps.Upload.PublicPrefix, "/"), filesystem.New(filesystem.Config{
		Root: afero.NewHttpFs(deps.Files).Dir(deps.Upload.Dir),
	}))

	return app, nil
}
