package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/brandoline/Kanbanize.me/internal/database"
	"github.com/brandoline/Kanbanize.me/internal/export"
	"github.com/brandoline/Kanbanize.me/internal/filter"
	"github.com/brandoline/Kanbanize.me/internal/models"

	"github.com/gin-gonic/gin"
)

func serveCSV(c *gin.Context, filename string, rows []export.Row) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
	if err := export.WriteCSV(c.Writer, rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export"})
	}
}

// ExportTasks handles GET /api/export/tasks
// Exports the current filtered task view of the active category as CSV.
func ExportTasks(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	db := database.GetDB()

	active, ok := firstCategory(db, userID)
	if requested := c.Query("category"); requested != "" {
		var cat models.Category
		if err := db.Where("id = ? AND user_id = ?", requested, userID).First(&cat).Error; err == nil {
			active = cat
			ok = true
		}
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to export"})
		return
	}

	var tasks []models.Task
	if err := db.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	var contacts []models.Contact
	if err := db.Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}

	f := taskFilterFromQuery(c)
	f.CategoryID = active.ID
	visible := f.Apply(tasks)

	rows := export.TaskRows(visible, contacts, active.Name)
	serveCSV(c, "tarefas-"+strings.ToLower(active.Name), rows)
}

// ExportContacts handles GET /api/export/contacts
func ExportContacts(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var contacts []models.Contact
	if err := database.GetDB().Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}

	f := filter.ContactFilter{
		Search:      c.Query("search"),
		Faculty:     c.Query("faculty"),
		City:        c.Query("city"),
		Institution: c.Query("institution"),
		CourseID:    c.Query("course"),
	}

	serveCSV(c, "contatos", export.ContactRows(f.Apply(contacts)))
}

// ExportCourses handles GET /api/export/courses
func ExportCourses(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var courses []models.Course
	if err := database.GetDB().Where("user_id = ?", userID).Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	f := filter.CourseFilter{
		Search:   c.Query("search"),
		Period:   models.CoursePeriod(c.Query("period")),
		Modality: models.CourseModality(c.Query("modality")),
		Priority: models.CoursePriority(c.Query("priority")),
		Color:    c.Query("color"),
	}

	serveCSV(c, "infotec", export.CourseRows(f.Apply(courses)))
}
