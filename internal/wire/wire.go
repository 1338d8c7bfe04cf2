// Package wire provides dependency injection for the camptrack
// application. It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/camptrack/internal/adapters/sqlite"
	"github.com/example/camptrack/internal/app"
	"github.com/example/camptrack/internal/config"
	"github.com/example/camptrack/internal/db"
	"github.com/example/camptrack/internal/ports/primary"
)

var (
	authService         primary.AuthService
	userService         primary.UserService
	campService         primary.CampService
	rosterService       primary.RosterService
	messageService      primary.MessageService
	notificationService primary.NotificationService
	activityService     primary.ActivityService
	attendanceService   primary.AttendanceService
	stockService        primary.StockService
	statsService        primary.StatsService
	logger              *zap.Logger
	once                sync.Once
)

// AuthService returns the singleton AuthService instance.
func AuthService() primary.AuthService {
	once.Do(initServices)
	return authService
}

// UserService returns the singleton UserService instance.
func UserService() primary.UserService {
	once.Do(initServices)
	return userService
}

// CampService returns the singleton CampService instance.
func CampService() primary.CampService {
	once.Do(initServices)
	return campService
}

// RosterService returns the singleton RosterService instance.
func RosterService() primary.RosterService {
	once.Do(initServices)
	return rosterService
}

// MessageService returns the singleton MessageService instance.
func MessageService() primary.MessageService {
	once.Do(initServices)
	return messageService
}

// NotificationService returns the singleton NotificationService instance.
func NotificationService() primary.NotificationService {
	once.Do(initServices)
	return notificationService
}

// ActivityService returns the singleton ActivityService instance.
func ActivityService() primary.ActivityService {
	once.Do(initServices)
	return activityService
}

// AttendanceService returns the singleton AttendanceService instance.
func AttendanceService() primary.AttendanceService {
	once.Do(initServices)
	return attendanceService
}

// StockService returns the singleton StockService instance.
func StockService() primary.StockService {
	once.Do(initServices)
	return stockService
}

// StatsService returns the singleton StatsService instance.
func StatsService() primary.StatsService {
	once.Do(initServices)
	return statsService
}

// Logger returns the singleton application logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	logger = newLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DataDir != "" {
		db.DataDir = cfg.DataDir
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	userRepo := sqlite.NewUserRepository(database)
	messageRepo := sqlite.NewMessageRepository(database)
	campRepo := sqlite.NewCampRepository(database)
	camperRepo := sqlite.NewCamperRepository(database)
	notificationRepo := sqlite.NewNotificationRepository(database)
	activityRepo := sqlite.NewActivityRepository(database)
	attendanceRepo := sqlite.NewAttendanceRepository(database)
	stockRepo := sqlite.NewStockRepository(database)
	statsRepo := sqlite.NewStatsRepository(database)

	authService = app.NewAuthService(userRepo, logger)
	userService = app.NewUserService(userRepo, logger)
	campService = app.NewCampService(campRepo, userRepo, logger)
	rosterService = app.NewRosterService(camperRepo, campRepo, logger)
	messageService = app.NewMessageService(messageRepo, userRepo, logger)
	notificationService = app.NewNotificationService(notificationRepo, campRepo, logger)
	activityService = app.NewActivityService(activityRepo, camperRepo, logger)
	attendanceService = app.NewAttendanceService(attendanceRepo, camperRepo, logger)
	stockService = app.NewStockService(stockRepo, campRepo, attendanceRepo, logger)
	statsService = app.NewStatsService(statsRepo)
}

// newLogger builds the application logger. Quiet by default for a CLI;
// CAMPTRACK_DEBUG=1 switches on development output.
func newLogger() *zap.Logger {
	if os.Getenv("CAMPTRACK_DEBUG") == "1" {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("failed to build logger: %v", err)
		}
		return l
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return l
}
