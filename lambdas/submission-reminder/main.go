package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"campustime.com/campustime/core"
	"campustime.com/campustime/core/models"
	"campustime.com/campustime/infrastructure/communication"
	"campustime.com/campustime/infrastructure/devops"
	"campustime.com/campustime/lambdas/submission-reminder/helper"
	"campustime.com/campustime/utils"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"gorm.io/gorm"
)

type recipient struct {
	Username string
	Email    string
}

// HandleRequest runs on a schedule and emails faculty members who have not
// submitted a timesheet for the trailing fortnight.
func HandleRequest(ctx context.Context, event events.CloudWatchEvent) error {
	cfg, err := devops.LoadAppConfig(ctx)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	dsn := os.Getenv("CAMPUSTIME_DSN")
	if dsn == "" {
		dsn = cfg.DSN
	}

	dm, err := core.New(dsn, 2)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer dm.Close()

	from, to := helper.PeriodWindow(time.Now())
	fmt.Printf("[INFO] checking submissions for %s to %s\n", from, to)

	var pending []recipient
	if err := dm.Exec(ctx, func(db *gorm.DB) error {
		users, err := helper.FindPendingFaculty(db, from, to)
		if err != nil {
			return err
		}
		pending = utils.Map(users, func(u models.User) recipient {
			return recipient{Username: u.Username, Email: u.Email}
		})
		return nil
	}); err != nil {
		return err
	}

	fmt.Printf("[INFO] %d faculty pending\n", len(pending))

	hasError := false
	for _, p := range pending {
		if p.Email == "" {
			fmt.Printf("[WARN] no email on record for %s\n", p.Username)
			continue
		}
		if err := communication.SendEmail(ctx,
			cfg.ReminderFromEmail,
			[]string{p.Email},
			helper.ReminderSubject(from, to),
			helper.ReminderBody(p.Username, from, to)); err != nil {
			fmt.Printf("[ERROR] remind %s: %v\n", p.Username, err)
			hasError = true
			continue
		}
		fmt.Printf("[INFO] reminder sent to %s\n", p.Username)
	}

	if hasError {
		return fmt.Errorf("some reminders failed to send")
	}
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
