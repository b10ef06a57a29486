package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"campustime.com/campustime/core"
	"campustime.com/campustime/core/models"
	"campustime.com/campustime/infrastructure/communication"
	"campustime.com/campustime/timesheet"
	"campustime.com/campustime/utils"
	"campustime.com/campustime/web/common"
	"campustime.com/campustime/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TimesheetEndpoint struct {
	base     Handler
	notifier communication.Notifier
}

func RegisterTimesheet(r *gin.RouterGroup, dm *core.DatabaseManager, notifier communication.Notifier) {
	endpoint := &TimesheetEndpoint{base: Handler{Dm: dm}, notifier: notifier}
	r.POST("/submit_timesheet", endpoint.Submit)
	r.GET("/view_timesheet", endpoint.View)
}

type TimesheetEntryDTO struct {
	Date        string `json:"date" binding:"required"`
	Day         string `json:"day"`
	CourseCode  string `json:"course_code" binding:"required"`
	HoursWorked string `json:"hours_worked" binding:"required"`
	Comments    string `json:"comments"`
}

// SubmissionDTO accepts both the first submission and the override resend.
// The resend carries only confirm_override and the entries, so the window
// dates are optional.
type SubmissionDTO struct {
	StartDate       *common.DateOnly    `json:"start_date,omitempty"`
	EndDate         *common.DateOnly    `json:"end_date,omitempty"`
	TimesheetData   []TimesheetEntryDTO `json:"timesheet_data" binding:"required,min=1,dive"`
	ConfirmOverride bool                `json:"confirm_override"`
}

// Submit stores a fortnight of entries. A resubmission for the same date and
// course with different hours is answered with a 409 warning; the client
// resends with confirm_override to replace the stored entry.
func (ep *TimesheetEndpoint) Submit(c *gin.Context) {
	var dto SubmissionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	hours := make([]float64, len(dto.TimesheetData))
	for i, e := range dto.TimesheetData {
		h, err := strconv.ParseFloat(e.HoursWorked, 64)
		if err != nil || h <= 0 {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(
				fmt.Sprintf("Invalid hours worked for %s on %s", e.CourseCode, e.Date)))
			return
		}
		hours[i] = h
	}

	db := ep.base.Dm.DB(c.Request.Context())

	var user models.User
	if err := db.Where("username = ?", middlewares.ClaimUsername(c)).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Unauthorized access!"))
		return
	}

	var startDate, endDate string
	if dto.StartDate != nil {
		startDate = dto.StartDate.ISO()
	}
	if dto.EndDate != nil {
		endDate = dto.EndDate.ISO()
	}

	overridden := false
	err := db.Transaction(func(tx *gorm.DB) error {
		for i, e := range dto.TimesheetData {
			var existing models.TimesheetEntry
			found := tx.Where("user_id = ? AND date = ? AND course_code = ?",
				user.ID, e.Date, e.CourseCode).First(&existing).Error == nil

			if found && existing.HoursWorked != hours[i] {
				if !dto.ConfirmOverride {
					return &duplicateEntryError{
						CourseCode: e.CourseCode,
						Date:       e.Date,
						Hours:      existing.HoursWorked,
					}
				}
				if err := tx.Delete(&existing).Error; err != nil {
					return err
				}
				overridden = true
			} else if found {
				// Identical resubmission, nothing to change.
				continue
			}

			day := e.Day
			if day == "" {
				if derived, err := utils.DayOfWeek(e.Date); err == nil {
					day = derived
				}
			}

			entry := models.TimesheetEntry{
				UserID:      user.ID,
				Date:        e.Date,
				Day:         day,
				CourseCode:  e.CourseCode,
				HoursWorked: hours[i],
				Comments:    e.Comments,
				StartDate:   startDate,
				EndDate:     endDate,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		if dup, ok := err.(*duplicateEntryError); ok {
			c.JSON(http.StatusConflict, common.NewStatusResponse(
				"warning", dup.Message()))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if overridden && ep.notifier != nil {
		go func() {
			if err := ep.notifier.Info(fmt.Sprintf(
				"%s overrode previously submitted timesheet hours", user.Username)); err != nil {
				fmt.Printf("[ERROR] slack notify: %v\n", err)
			}
		}()
	}

	c.JSON(http.StatusOK, common.NewStatusResponse("success", "Timesheet submitted successfully"))
}

type duplicateEntryError struct {
	CourseCode string
	Date       string
	Hours      float64
}

func (e *duplicateEntryError) Error() string {
	return e.Message()
}

func (e *duplicateEntryError) Message() string {
	return fmt.Sprintf("Timesheet for %s on %s already exists with %s hours. Do you want to override?",
		e.CourseCode, e.Date, strconv.FormatFloat(e.Hours, 'f', -1, 64))
}

// StoredEntryDTO is the read-side entry shape. The dashboard renders
// camelCase keys, unlike the snake_case submit direction.
type StoredEntryDTO struct {
	Date        string  `json:"date"`
	Day         string  `json:"day"`
	CourseCode  string  `json:"courseCode"`
	HoursWorked float64 `json:"hoursWorked"`
	Comments    string  `json:"comments"`
}

func storedEntries(entries []models.TimesheetEntry) []StoredEntryDTO {
	return utils.Map(entries, func(e models.TimesheetEntry) StoredEntryDTO {
		return StoredEntryDTO{
			Date:        e.Date,
			Day:         e.Day,
			CourseCode:  e.CourseCode,
			HoursWorked: e.HoursWorked,
			Comments:    e.Comments,
		}
	})
}

// View lists the caller's submitted entries, newest first, each wrapped in
// its own week group the way the dashboard renders them.
func (ep *TimesheetEndpoint) View(c *gin.Context) {
	db := ep.base.Dm.DB(c.Request.Context())

	var user models.User
	if err := db.Where("username = ?", middlewares.ClaimUsername(c)).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Unauthorized access!"))
		return
	}

	var entries []models.TimesheetEntry
	if err := db.Where("user_id = ?", user.ID).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	timesheets := utils.Map(storedEntries(entries), func(dto StoredEntryDTO) gin.H {
		return gin.H{"week1": []StoredEntryDTO{dto}}
	})

	c.JSON(http.StatusOK, gin.H{"timesheets": timesheets})
}

// RegisterCourseCodes exposes the course vocabulary the entry form offers.
func RegisterCourseCodes(r *gin.RouterGroup) {
	r.GET("/course_codes", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"course_codes": timesheet.CourseCodes})
	})
}
