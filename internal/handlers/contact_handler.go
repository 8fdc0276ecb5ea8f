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

// SaveContactRequest represents the payload for creating or updating a
// contact. The faculty sub-fields are only kept when isFaculty is true.
type SaveContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Institution string `json:"institution"`
	City        string `json:"city"`
	Position    string `json:"position"`
	Notes       string `json:"notes"`
	IsFaculty   bool   `json:"isFaculty"`

	Courses         []string                     `json:"courses"`
	SGNLink         string                       `json:"sgnLink"`
	CourseModality  models.ContactCourseModality `json:"courseModality"`
	ClassDays       []string                     `json:"classDays"`
	AvailableDays   []string                     `json:"availableDays"`
	AvailableShifts []string                     `json:"availableShifts"`
}

func (r SaveContactRequest) apply(contact *models.Contact) {
	contact.Name = r.Name
	contact.Email = r.Email
	contact.Phone = r.Phone
	contact.Institution = r.Institution
	contact.City = r.City
	contact.Position = r.Position
	contact.Notes = r.Notes
	contact.IsFaculty = r.IsFaculty
	contact.Courses = r.Courses
	contact.SGNLink = r.SGNLink
	contact.CourseModality = r.CourseModality
	contact.ClassDays = r.ClassDays
	contact.AvailableDays = r.AvailableDays
	contact.AvailableShifts = r.AvailableShifts
	contact.Normalize()
}

// GetContacts handles GET /api/contacts
// Applies the contact search and facets, and returns the facet option
// lists (cities and institutions actually in use) alongside the page.
func GetContacts(c *gin.Context) {
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
	visible := f.Apply(contacts)

	c.JSON(http.StatusOK, gin.H{
		"contacts":     visible,
		"count":        len(visible),
		"total":        len(contacts),
		"cities":       filter.UniqueCities(contacts),
		"institutions": filter.UniqueInstitutions(contacts),
	})
}

// CreateContact handles POST /api/contacts
func CreateContact(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req SaveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := models.Contact{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	req.apply(&contact)

	if err := database.GetDB().Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}

	realtime.GetHub().Notify("contact_created", "contact", contact.ID, userID)

	c.JSON(http.StatusCreated, contact)
}

// UpdateContact handles PUT /api/contacts/:id
func UpdateContact(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	contactID := c.Param("id")
	var contact models.Contact
	result := database.GetDB().Where("id = ? AND user_id = ?", contactID, userID).First(&contact)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact"})
		}
		return
	}

	var req SaveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.apply(&contact)

	if err := database.GetDB().Save(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}

	realtime.GetHub().Notify("contact_updated", "contact", contact.ID, userID)

	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /api/contacts/:id
// Removes the contact and cascades removal of its id from every task's
// contact list before answering, so no task keeps a dangling reference.
func DeleteContact(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	contactID := c.Param("id")
	db := database.GetDB()

	var contact models.Contact
	result := db.Where("id = ? AND user_id = ?", contactID, userID).First(&contact)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact"})
		}
		return
	}

	if err := db.Delete(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}

	// Cascade: drop the id from every task that references it. The
	// JSON column means the match has to happen in memory.
	var tasks []models.Task
	if err := db.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks for cascade"})
		return
	}
	for i := range tasks {
		kept := make([]string, 0, len(tasks[i].ContactIDs))
		removed := false
		for _, id := range tasks[i].ContactIDs {
			if id == contactID {
				removed = true
				continue
			}
			kept = append(kept, id)
		}
		if !removed {
			continue
		}
		tasks[i].ContactIDs = kept
		tasks[i].LastUpdated = stampNow()
		if err := db.Save(&tasks[i]).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task references"})
			return
		}
	}

	realtime.GetHub().Notify("contact_deleted", "contact", contactID, userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact deleted successfully",
		"id":      contactID,
	})
}
