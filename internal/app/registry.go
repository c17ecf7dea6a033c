package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"rikimaka/internal/auditlog"
	"rikimaka/internal/auth"
	"rikimaka/internal/holiday"
	"rikimaka/internal/middleware"
	"rikimaka/internal/project"
	"rikimaka/internal/report"
	"rikimaka/internal/user"
	"rikimaka/internal/vacation"
	"rikimaka/internal/vacationperiod"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ClientInfo())

	// --- Repositories ---
	auditRepo := auditlog.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	vacationRepo := vacation.NewRepository(gormDB)
	periodRepo := vacationperiod.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)

	// --- Services ---
	auditService := auditlog.NewService(auditRepo)
	authService := auth.NewService(db, userRepo, auditService)
	userService := user.NewService(db, userRepo, auditService)
	projectService := project.NewService(db, projectRepo, auditService)
	reportService := report.NewService(db, reportRepo, auditService)
	periodService := vacationperiod.NewService(periodRepo, auditService)
	vacationService := vacation.NewService(db, vacationRepo, periodService, auditService)
	holidayService := holiday.NewService(db, holidayRepo, auditService)

	// --- Handlers ---
	auditHandler := auditlog.NewHandler(auditService)
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	projectHandler := project.NewHandler(projectService)
	reportHandler := report.NewHandler(reportService)
	vacationHandler := vacation.NewHandlerWithRedis(vacationService, rdb)
	periodHandler := vacationperiod.NewHandler(periodService)
	holidayHandler := holiday.NewHandler(holidayService)

	// authService doubles as the token-to-live-user resolver for the gate.
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authService)
		user.RegisterRoutes(api, userHandler, authService)
		project.RegisterRoutes(api, projectHandler, authService)
		report.RegisterRoutes(api, reportHandler, authService)
		vacation.RegisterRoutes(api, vacationHandler, authService, rdb)
		vacationperiod.RegisterRoutes(api, periodHandler, authService)
		holiday.RegisterRoutes(api, holidayHandler, authService)
		auditlog.RegisterRoutes(api, auditHandler, authService)
	}

	return nil
}
