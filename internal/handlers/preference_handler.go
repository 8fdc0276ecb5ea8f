package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/brandoline/Kanbanize.me/internal/cache"
	"github.com/brandoline/Kanbanize.me/internal/database"
	"github.com/brandoline/Kanbanize.me/internal/models"
	"github.com/brandoline/Kanbanize.me/internal/realtime"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// prefCache keeps per-user preference snapshots for a short TTL; the
// single write path below invalidates it.
var prefCache = cache.New[string, models.Preference]()

const prefCacheTTL = 30 * time.Second

// UpdatePreferencesRequest carries any subset of the three scalars.
type UpdatePreferencesRequest struct {
	DefaultView *models.DefaultView `json:"defaultView"`
	FontSize    *models.FontSize    `json:"fontSize"`
	Theme       *models.Theme       `json:"theme"`
}

func (r UpdatePreferencesRequest) validate() string {
	if r.DefaultView != nil {
		switch *r.DefaultView {
		case models.ViewKanban, models.ViewAll:
		default:
			return "Invalid defaultView"
		}
	}
	if r.FontSize != nil {
		switch *r.FontSize {
		case models.FontSmall, models.FontMedium, models.FontLarge:
		default:
			return "Invalid fontSize"
		}
	}
	if r.Theme != nil {
		switch *r.Theme {
		case models.ThemeLight, models.ThemeDark:
		default:
			return "Invalid theme"
		}
	}
	return ""
}

// loadPreference reads the user's preference row, falling back to the
// hardcoded defaults when none was ever written.
func loadPreference(db *gorm.DB, userID string) (models.Preference, error) {
	if pref, ok := prefCache.Get(userID); ok {
		return pref, nil
	}

	var pref models.Preference
	err := db.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.DefaultPreference(userID)
		err = nil
	}
	if err != nil {
		return models.Preference{}, err
	}

	prefCache.Set(userID, pref, prefCacheTTL)
	return pref, nil
}

// GetPreferences handles GET /api/preferences
func GetPreferences(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	pref, err := loadPreference(database.GetDB(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}

	c.JSON(http.StatusOK, pref)
}

// UpdatePreferences handles PUT /api/preferences
// The single write path for the three UI scalars; persists before the
// cached snapshot is dropped.
func UpdatePreferences(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	db := database.GetDB()
	pref, err := loadPreference(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}

	if req.DefaultView != nil {
		pref.DefaultView = *req.DefaultView
	}
	if req.FontSize != nil {
		pref.FontSize = *req.FontSize
	}
	if req.Theme != nil {
		pref.Theme = *req.Theme
	}

	var existing models.Preference
	err = db.Where("user_id = ?", userID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Create(&pref).Error
	} else if err == nil {
		err = db.Model(&models.Preference{}).Where("user_id = ?", userID).
			Updates(map[string]any{
				"default_view": pref.DefaultView,
				"font_size":    pref.FontSize,
				"theme":        pref.Theme,
			}).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}

	prefCache.Delete(userID)

	realtime.GetHub().Notify("preferences_updated", "preferences", "", userID)

	c.JSON(http.StatusOK, pref)
}
