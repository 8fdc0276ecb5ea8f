package handlers

import (
	"errors"
	"net/http"

	"github.com/brandoline/Kanbanize.me/internal/database"
	"github.com/brandoline/Kanbanize.me/internal/filter"
	"github.com/brandoline/Kanbanize.me/internal/models"
	"github.com/brandoline/Kanbanize.me/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaveCourseRequest represents the payload for creating or updating a
// course
type SaveCourseRequest struct {
	Name        string                `json:"name" binding:"required"`
	Period      models.CoursePeriod   `json:"period"`
	Modality    models.CourseModality `json:"modality"`
	Color       string                `json:"color"`
	StartDate   string                `json:"startDate"`
	StudentDays string                `json:"studentDays"`
	ClassDays   string                `json:"classDays"`
	Duration    int                   `json:"duration"`
	Priority    models.CoursePriority `json:"priority"`
}

func (r SaveCourseRequest) validate() string {
	if r.Duration < 0 {
		return "Duration must be non-negative"
	}
	switch r.Period {
	case "", models.PeriodMorning, models.PeriodAfternoon, models.PeriodEvening:
	default:
		return "Invalid period"
	}
	switch r.Modality {
	case "", models.CourseInPerson, models.CourseRemote:
	default:
		return "Invalid modality"
	}
	switch r.Priority {
	case "", models.CoursePriorityHigh, models.CoursePriorityMedium, models.CoursePriorityLow:
	default:
		return "Invalid priority"
	}
	return ""
}

func (r SaveCourseRequest) apply(course *models.Course) {
	course.Name = r.Name
	if r.Period != "" {
		course.Period = r.Period
	}
	if r.Modality != "" {
		course.Modality = r.Modality
	}
	course.Color = r.Color
	course.StartDate = r.StartDate
	course.StudentDays = r.StudentDays
	course.ClassDays = r.ClassDays
	course.Duration = r.Duration
	if r.Priority != "" {
		course.Priority = r.Priority
	}
}

// GetCourses handles GET /api/courses
// Applies the course search and facets, then the fixed priority-rank
// sort. Facet option lists are derived from the full snapshot.
func GetCourses(c *gin.Context) {
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
	visible := f.Apply(courses)

	c.JSON(http.StatusOK, gin.H{
		"courses":    visible,
		"count":      len(visible),
		"total":      len(courses),
		"periods":    filter.UniquePeriods(courses),
		"modalities": filter.UniqueModalities(courses),
		"priorities": filter.UniqueCoursePriorities(courses),
		"colors":     filter.UniqueColors(courses),
	})
}

// CreateCourse handles POST /api/courses
func CreateCourse(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	course := models.Course{
		ID:       uuid.NewString(),
		Period:   models.PeriodMorning,
		Modality: models.CourseInPerson,
		Priority: models.CoursePriorityMedium,
		UserID:   userID,
	}
	req.apply(&course)

	if err := database.GetDB().Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}

	realtime.GetHub().Notify("course_created", "course", course.ID, userID)

	c.JSON(http.StatusCreated, course)
}

// UpdateCourse handles PUT /api/courses/:id
func UpdateCourse(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	courseID := c.Param("id")
	var course models.Course
	result := database.GetDB().Where("id = ? AND user_id = ?", courseID, userID).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch course"})
		}
		return
	}

	var req SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	req.apply(&course)

	if err := database.GetDB().Save(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		return
	}

	realtime.GetHub().Notify("course_updated", "course", course.ID, userID)

	c.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /api/courses/:id
// Removes the course and cascades removal of its id from every faculty
// contact's course list.
func DeleteCourse(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	courseID := c.Param("id")
	db := database.GetDB()

	var course models.Course
	result := db.Where("id = ? AND user_id = ?", courseID, userID).First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch course"})
		}
		return
	}

	if err := db.Delete(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}

	var contacts []models.Contact
	if err := db.Where("user_id = ? AND is_faculty = ?", userID, true).Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts for cascade"})
		return
	}
	for i := range contacts {
		kept := make([]string, 0, len(contacts[i].Courses))
		removed := false
		for _, id := range contacts[i].Courses {
			if id == courseID {
				removed = true
				continue
			}
			kept = append(kept, id)
		}
		if !removed {
			continue
		}
		contacts[i].Courses = kept
		if err := db.Save(&contacts[i]).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact references"})
			return
		}
	}

	realtime.GetHub().Notify("course_deleted", "course", courseID, userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Course deleted successfully",
		"id":      courseID,
	})
}
