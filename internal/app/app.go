package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rikimaka/internal/auditlog"
	"rikimaka/internal/holiday"
	"rikimaka/internal/project"
	"rikimaka/internal/report"
	"rikimaka/internal/shared/connection"
	"rikimaka/internal/user"
	"rikimaka/internal/vacation"
	"rikimaka/internal/vacationperiod"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := gormDB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&report.DailyReport{},
		&report.Activity{},
		&vacation.Vacation{},
		&vacationperiod.VacationPeriod{},
		&holiday.Holiday{},
		&auditlog.AuditLog{},
	); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	return registerModules(router, db, gormDB, rdb)
}
