package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"campustime.com/campustime/infrastructure/filesystem"
	"campustime.com/campustime/schedule"
	"campustime.com/campustime/web/common"
	"github.com/gin-gonic/gin"
)

type ScheduleEndpoint struct {
	store         *ScheduleStore
	archiveBucket string
}

func RegisterSchedule(r *gin.RouterGroup, store *ScheduleStore, archiveBucket string) {
	endpoint := &ScheduleEndpoint{store: store, archiveBucket: archiveBucket}
	r.POST("/import_schedule", endpoint.Import)
	r.GET("/schedule", endpoint.List)
	r.GET("/schedule_archive", endpoint.Archive)
}

// Import replaces the semester schedule with the uploaded workbook and
// archives the original file.
func (ep *ScheduleEndpoint) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("No file uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	records, err := schedule.Import(io.TeeReader(file, &buf))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	ep.store.Replace(records)

	if ep.archiveBucket != "" {
		archive := buf.Bytes()
		key := fmt.Sprintf("schedules/%s-%s", time.Now().Format("20060102T150405"), fileHeader.Filename)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := filesystem.WriteFile(ep.archiveBucket, key, ctx, bytes.NewReader(archive)); err != nil {
				fmt.Printf("[ERROR] archive schedule workbook: %v\n", err)
			}
		}()
	}

	c.JSON(http.StatusOK, common.NewMessageResponse(
		fmt.Sprintf("%d schedule records imported", len(records))))
}

// Archive lists the workbooks archived by previous imports.
func (ep *ScheduleEndpoint) Archive(c *gin.Context) {
	if ep.archiveBucket == "" {
		c.JSON(http.StatusOK, gin.H{"files": []string{}})
		return
	}

	keys, err := filesystem.ListFiles(ep.archiveBucket, c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": keys})
}

// List serves one page of the filtered schedule. Filter options always come
// from the full record set so narrowing one field never empties the others.
func (ep *ScheduleEndpoint) List(c *gin.Context) {
	var filters schedule.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	records := ep.store.Records()
	filtered := schedule.Apply(records, filters)

	pager := schedule.NewPager()
	if size, err := strconv.Atoi(c.DefaultQuery("page_size", "")); err == nil {
		pager.SetPageSize(size)
	}
	totalPages := schedule.TotalPages(len(filtered), pager.PageSize)
	if page, err := strconv.Atoi(c.DefaultQuery("page", "")); err == nil {
		pager.SetPage(page, totalPages)
	}

	c.JSON(http.StatusOK, common.NewPageResponse(
		pager.Slice(filtered),
		schedule.CollectOptions(records),
		common.Pagination{
			Total:      len(filtered),
			Page:       pager.Page,
			PageSize:   pager.PageSize,
			TotalPages: totalPages,
		},
	))
}
