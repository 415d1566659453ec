package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/job-board/internal/config"
	"github.com/fadilmartias/job-board/internal/domain/fiber/server"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/fadilmartias/job-board/internal/scheduler"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	sessionConfig := config.LoadSessionConfig()

	db := ConnectDB()
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	defer sqlDB.Close()

	sessions := repository.NewSessionRepository(db)

	app, err := server.New(server.Deps{
		DB:       db,
		Sessions: sessions,
		Files:    afero.NewOsFs(),
		App:      appConfig,
		Session:  sessionConfig,
		Upload:   config.LoadUploadConfig(),
	})
	if err != nil {
		log.Fatal(err)
	}

	cron, err := scheduler.New(sessionConfig.CleanupSpec, sessions)
	if err != nil {
		log.Fatal(err)
	}
	cron.Start()
	defer cron.Stop()

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	logLevel := logger.Info
	if appConfig.IsProduction() {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pgDB.PingContext(ctx); err != nil {
		log.Fatalf("Could not reach database: %v", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
