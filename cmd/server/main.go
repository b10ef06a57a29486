package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"campustime.com/campustime/chatbot"
	"campustime.com/campustime/core"
	"campustime.com/campustime/core/models"
	"campustime.com/campustime/infrastructure/communication"
	"campustime.com/campustime/infrastructure/devops"
	"campustime.com/campustime/infrastructure/filesystem"
	"campustime.com/campustime/schedule"
	"campustime.com/campustime/web/handlers"
	"campustime.com/campustime/web/middlewares"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	dsn := os.Getenv("CAMPUSTIME_DSN")
	secret := os.Getenv("CAMPUSTIME_SIGNING_SECRET")
	workbook := os.Getenv("CAMPUSTIME_SCHEDULE_WORKBOOK")
	archiveBucket := os.Getenv("CAMPUSTIME_ARCHIVE_BUCKET")

	if dsn == "" || secret == "" {
		cfg, err := devops.LoadAppConfig(ctx)
		if err != nil {
			log.Fatalf("load configuration: %v", err)
		}
		if dsn == "" {
			dsn = cfg.DSN
		}
		if secret == "" {
			secret = cfg.SigningSecret
		}
		if workbook == "" {
			workbook = cfg.ScheduleWorkbook
		}
		if archiveBucket == "" {
			archiveBucket = cfg.ArchiveBucket
		}
	}

	secretBytes, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		log.Fatalf("signing secret must be base64: %v", err)
	}

	dm, err := core.New(dsn, 10)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer dm.Close()

	if err := dm.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := handlers.NewScheduleStore()
	if workbook != "" {
		records, err := loadWorkbook(ctx, workbook)
		if err != nil {
			log.Fatalf("load schedule workbook %s: %v", workbook, err)
		}
		store.Replace(records)
		fmt.Printf("[INFO] loaded %d schedule records from %s\n", len(records), workbook)
	}

	var notifier communication.Notifier
	if slack := communication.ConnectSlack(); slack != nil {
		notifier = slack
	}

	responder := chatbot.New(ctx)

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	handlers.RegisterAuth(public, dm, secret)
	handlers.RegisterCourseCodes(public)
	handlers.RegisterChatbot(public, responder)

	faculty := r.Group("/")
	faculty.Use(middlewares.Authentication(secretBytes), middlewares.RequireRole(models.RoleFaculty))
	handlers.RegisterTimesheet(faculty, dm, notifier)

	finance := r.Group("/")
	finance.Use(middlewares.Authentication(secretBytes), middlewares.RequireRole(models.RoleFinance))
	handlers.RegisterFinance(finance, dm, store)
	handlers.RegisterSchedule(finance, store, archiveBucket)

	addr := ":8090"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// loadWorkbook reads the master schedule from a local path or an
// "s3://bucket/key" location.
func loadWorkbook(ctx context.Context, location string) ([]schedule.Record, error) {
	if after, ok := strings.CutPrefix(location, "s3://"); ok {
		bucket, key, ok := strings.Cut(after, "/")
		if !ok {
			return nil, fmt.Errorf("invalid s3 location %s", location)
		}
		var buf bytes.Buffer
		if err := filesystem.ReadFile(bucket, key, ctx, &buf); err != nil {
			return nil, err
		}
		return schedule.Import(&buf)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return schedule.Import(f)
}
