package handlers

import (
	"bytes"
	"net/http"

	"campustime.com/campustime/core"
	"campustime.com/campustime/core/models"
	"campustime.com/campustime/finance"
	"campustime.com/campustime/utils"
	"campustime.com/campustime/web/common"
	"github.com/gin-gonic/gin"
)

type FinanceEndpoint struct {
	base  Handler
	store *ScheduleStore
}

func RegisterFinance(r *gin.RouterGroup, dm *core.DatabaseManager, store *ScheduleStore) {
	endpoint := &FinanceEndpoint{base: Handler{Dm: dm}, store: store}
	r.GET("/finance", endpoint.Dashboard)
	r.GET("/faculty_details/:name", endpoint.FacultyDetails)
	r.POST("/update_status", endpoint.UpdateStatus)
	r.GET("/download_finance_report", endpoint.DownloadReport)
}

// facultySheets assembles every faculty member's stored status and entries.
func (ep *FinanceEndpoint) facultySheets(c *gin.Context) ([]finance.FacultySheet, bool) {
	db := ep.base.Dm.DB(c.Request.Context())

	var users []models.User
	if err := db.Where("role = ?", models.RoleFaculty).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return nil, false
	}

	var entries []models.TimesheetEntry
	if err := db.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return nil, false
	}
	byUser := utils.GroupBy(entries, func(e models.TimesheetEntry) uint { return e.UserID })

	sheets := make([]finance.FacultySheet, 0, len(users))
	for _, u := range users {
		sheets = append(sheets, finance.FacultySheet{
			Name:    u.Username,
			Status:  u.Status,
			Entries: byUser[u.ID],
		})
	}
	return sheets, true
}

// Dashboard serves the hours comparison the finance landing page renders:
// one transaction per faculty member plus the discrepancy notes.
func (ep *FinanceEndpoint) Dashboard(c *gin.Context) {
	sheets, ok := ep.facultySheets(c)
	if !ok {
		return
	}

	overview := finance.BuildOverview(sheets, ep.store.Records(),
		c.Query("from_date"), c.Query("to_date"))
	c.JSON(http.StatusOK, overview)
}

// FacultyDetails serves one faculty member's submitted entries to finance.
func (ep *FinanceEndpoint) FacultyDetails(c *gin.Context) {
	name := c.Param("name")

	db := ep.base.Dm.DB(c.Request.Context())

	var user models.User
	if err := db.Where("username = ? AND role = ?", name, models.RoleFaculty).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Faculty not found"))
		return
	}

	var entries []models.TimesheetEntry
	if err := db.Where("user_id = ?", user.ID).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"faculty_name": user.Username,
		"status":       user.Status,
		"entries":      storedEntries(entries),
	})
}

type UpdateStatusDTO struct {
	FacultyName string `json:"faculty_name" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=✓ ✗"`
}

// UpdateStatus marks a faculty member's hours as matched or unmatched on the
// finance dashboard.
func (ep *FinanceEndpoint) UpdateStatus(c *gin.Context) {
	var dto UpdateStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid data"))
		return
	}

	db := ep.base.Dm.DB(c.Request.Context())

	result := db.Model(&models.User{}).
		Where("username = ? AND role = ?", dto.FacultyName, models.RoleFaculty).
		Update("status", dto.Status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(result.Error.Error()))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("No changes made"))
		return
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("Status updated successfully!"))
}

// DownloadReport streams the per-faculty hours report for a date range.
// CSV is the default; format=xlsx switches to a workbook.
func (ep *FinanceEndpoint) DownloadReport(c *gin.Context) {
	fromDate := c.Query("from_date")
	toDate := c.Query("to_date")
	format := c.DefaultQuery("format", "csv")

	sheets, ok := ep.facultySheets(c)
	if !ok {
		return
	}

	transactions, _ := finance.BuildReport(sheets, ep.store.Records(), fromDate, toDate)
	if len(transactions) == 0 {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No transactions found for the given date range."))
		return
	}

	var buf bytes.Buffer
	switch format {
	case "xlsx":
		if err := finance.WriteXLSX(&buf, transactions); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="finance_report.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		if err := finance.WriteCSV(&buf, transactions); err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="finance_report.csv"`)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	}
}
