package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/brandoline/Kanbanize.me/internal/board"
	"github.com/brandoline/Kanbanize.me/internal/database"
	"github.com/brandoline/Kanbanize.me/internal/filter"
	"github.com/brandoline/Kanbanize.me/internal/models"
	"github.com/brandoline/Kanbanize.me/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title           string              `json:"title" binding:"required"`
	Priority        models.TaskPriority `json:"priority"`
	Status          models.TaskStatus   `json:"status"`
	ContactIDs      []string            `json:"contactIds"`
	CategoryID      string              `json:"categoryId"`
	StartDate       string              `json:"startDate"`
	DueDate         string              `json:"dueDate"`
	Attachments     []string            `json:"attachments"`
	Notes           string              `json:"notes"`
	ReminderEnabled bool                `json:"reminderEnabled"`
}

// UpdateTaskRequest represents the request payload for updating a task
type UpdateTaskRequest struct {
	Title           *string              `json:"title"`
	Priority        *models.TaskPriority `json:"priority"`
	Status          *models.TaskStatus   `json:"status"`
	IsInterrupted   *bool                `json:"isInterrupted"`
	ContactIDs      *[]string            `json:"contactIds"`
	CategoryID      *string              `json:"categoryId"`
	StartDate       *string              `json:"startDate"`
	DueDate         *string              `json:"dueDate"`
	Attachments     *[]string            `json:"attachments"`
	Notes           *string              `json:"notes"`
	ReminderEnabled *bool                `json:"reminderEnabled"`
}

// UpdateTaskStatusRequest represents a minimal request to change status
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// stampNow returns the LastUpdated value for a mutation happening now.
func stampNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// firstCategory returns the user's first category in creation order,
// the deterministic "first in the current category list" every
// reassignment and default falls back to.
func firstCategory(db *gorm.DB, userID string) (models.Category, bool) {
	var cat models.Category
	err := db.Where("user_id = ?", userID).Order("created_at asc").First(&cat).Error
	if err != nil {
		return models.Category{}, false
	}
	return cat, true
}

// categoryExists reports whether the id references one of the user's
// categories.
func categoryExists(db *gorm.DB, userID, categoryID string) bool {
	var count int64
	db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count)
	return count > 0
}

// taskFilterFromQuery builds the task filter from the request's search
// and multi-select facet params.
func taskFilterFromQuery(c *gin.Context) filter.TaskFilter {
	f := filter.TaskFilter{
		Search:     c.Query("search"),
		ContactIDs: c.QueryArray("contact"),
		CategoryID: c.Query("category"),
	}
	for _, p := range c.QueryArray("priority") {
		f.Priorities = append(f.Priorities, models.TaskPriority(p))
	}
	for _, s := range c.QueryArray("status") {
		f.Statuses = append(f.Statuses, models.TaskStatus(s))
	}
	return f
}

/*
*
GetTasks handles GET /api/tasks
Returns the authenticated user's tasks after applying the search term,
facet filters and the optional user-chosen sort (sortBy, order).
*/
func GetTasks(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var tasks []models.Task
	if err := database.GetDB().Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch tasks",
		})
		return
	}

	visible := taskFilterFromQuery(c).Apply(tasks)

	sortBy := filter.TaskSortField(c.DefaultQuery("sortBy", string(filter.SortByPriority)))
	ascending := strings.ToLower(c.DefaultQuery("order", "asc")) != "desc"
	filter.SortTasks(visible, sortBy, ascending)

	c.JSON(http.StatusOK, gin.H{
		"tasks": visible,
		"count": len(visible),
		"total": len(tasks),
	})
}

// GetBoard handles GET /api/board
// Runs the full pipeline: active-category resolution, filtering, then
// partition into ordered workflow columns.
func GetBoard(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	db := database.GetDB()

	// Self-heal the active category: an unknown or missing id falls
	// back to the first remaining category; with no categories at all
	// the board answers its empty state instead of an error.
	activeID := c.Query("category")
	var active models.Category
	if activeID != "" {
		if err := db.Where("id = ? AND user_id = ?", activeID, userID).First(&active).Error; err != nil {
			activeID = ""
		}
	}
	if activeID == "" {
		if cat, ok := firstCategory(db, userID); ok {
			active = cat
			activeID = cat.ID
		}
	}
	if activeID == "" {
		c.JSON(http.StatusOK, gin.H{
			"activeCategory": nil,
			"columns":        []gin.H{},
		})
		return
	}

	var tasks []models.Task
	if err := db.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch tasks",
		})
		return
	}

	f := taskFilterFromQuery(c)
	f.CategoryID = activeID
	visible := f.Apply(tasks)

	partitioned := board.Partition(visible, time.Now())
	columns := make([]gin.H, 0, len(board.Columns))
	for _, status := range board.Columns {
		columns = append(columns, gin.H{
			"status": status,
			"tasks":  partitioned[status],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"activeCategory": active,
		"columns":        columns,
		"count":          len(visible),
	})
}

/*
*
CreateTask handles POST /api/tasks
Creates a new task for the authenticated user
*/
func CreateTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Set default values if not provided
	status := req.Status
	if status == "" {
		status = models.StatusNotStarted
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	db := database.GetDB()

	// Default the category to the active one (query param) or the
	// first in the list; an explicit id must reference an existing
	// category.
	categoryID := strings.TrimSpace(req.CategoryID)
	if categoryID == "" {
		categoryID = c.Query("category")
	}
	if categoryID == "" {
		cat, ok := firstCategory(db, userID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No category exists; create a category first"})
			return
		}
		categoryID = cat.ID
	} else if !categoryExists(db, userID, categoryID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoryId: category not found"})
		return
	}

	contactIDs := req.ContactIDs
	if contactIDs == nil {
		contactIDs = []string{}
	}
	attachments := req.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	task := models.Task{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Priority:        priority,
		Status:          status,
		IsInterrupted:   false,
		ContactIDs:      contactIDs,
		CategoryID:      categoryID,
		StartDate:       req.StartDate,
		DueDate:         req.DueDate,
		Attachments:     attachments,
		Notes:           req.Notes,
		ReminderEnabled: req.ReminderEnabled,
		LastUpdated:     stampNow(),
		UserID:          userID,
	}

	if err := db.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create task",
		})
		return
	}

	realtime.GetHub().Notify("task_created", "task", task.ID, userID)

	c.JSON(http.StatusCreated, task)
}

// GetTaskByID handles GET /api/tasks/:id
// Returns a single task owned by the authenticated user
func GetTaskByID(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var task models.Task
	result := database.GetDB().Where("id = ? AND user_id = ?", taskID, userID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /api/tasks/:id
// Updates a task owned by the authenticated user
func UpdateTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Task ID is required",
		})
		return
	}

	// Check if task exists and belongs to user
	var existingTask models.Task
	result := database.GetDB().Where("id = ? AND user_id = ?", taskID, userID).First(&existingTask)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Task not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch task",
			})
		}
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Update fields if provided
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		existingTask.Title = *req.Title
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		existingTask.Priority = *req.Priority
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		existingTask.Status = *req.Status
	}
	if req.IsInterrupted != nil {
		existingTask.IsInterrupted = *req.IsInterrupted
	}
	if req.ContactIDs != nil {
		existingTask.ContactIDs = *req.ContactIDs
	}
	if req.CategoryID != nil {
		if !categoryExists(database.GetDB(), userID, *req.CategoryID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoryId: category not found"})
			return
		}
		existingTask.CategoryID = *req.CategoryID
	}
	if req.StartDate != nil {
		existingTask.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		existingTask.DueDate = *req.DueDate
	}
	if req.Attachments != nil {
		existingTask.Attachments = *req.Attachments
	}
	if req.Notes != nil {
		existingTask.Notes = *req.Notes
	}
	if req.ReminderEnabled != nil {
		existingTask.ReminderEnabled = *req.ReminderEnabled
	}

	existingTask.LastUpdated = stampNow()

	result = database.GetDB().Save(&existingTask)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update task",
		})
		return
	}

	realtime.GetHub().Notify("task_updated", "task", existingTask.ID, userID)

	c.JSON(http.StatusOK, existingTask)
}

// UpdateTaskStatus handles PATCH /api/tasks/:id/status
// Moves a task between workflow columns (the drag-and-drop write path)
func UpdateTaskStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var task models.Task
	result := database.GetDB().Where("id = ? AND user_id = ?", taskID, userID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	task.Status = req.Status
	task.LastUpdated = stampNow()
	updates := map[string]any{
		"status":       task.Status,
		"last_updated": task.LastUpdated,
	}
	if err := database.GetDB().Model(&task).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	realtime.GetHub().Notify("task_updated", "task", task.ID, userID)

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
// Deletes a task owned by the authenticated user
func DeleteTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Task ID is required",
		})
		return
	}

	// Check if task exists and belongs to user
	var task models.Task
	result := database.GetDB().Where("id = ? AND user_id = ?", taskID, userID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Task not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch task",
			})
		}
		return
	}

	result = database.GetDB().Delete(&task)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete task",
		})
		return
	}

	realtime.GetHub().Notify("task_deleted", "task", taskID, userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      taskID,
	})
}
