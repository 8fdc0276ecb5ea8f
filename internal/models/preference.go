package models

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "claro"
	ThemeDark  Theme = "escuro"
)

// FontSize is the UI font-size tier.
type FontSize string

const (
	FontSmall  FontSize = "pequena"
	FontMedium FontSize = "medio"
	FontLarge  FontSize = "grande"
)

// DefaultView is the landing view shown after sign-in.
type DefaultView string

const (
	ViewKanban DefaultView = "kanban"
	ViewAll    DefaultView = "viewall"
)

// Preference holds the three scalar UI preferences for one user.
// A missing row means the hardcoded defaults apply.
type Preference struct {
	UserID      string      `json:"-" gorm:"column:user_id;primaryKey"`
	DefaultView DefaultView `json:"defaultView" gorm:"column:default_view"`
	FontSize    FontSize    `json:"fontSize" gorm:"column:font_size"`
	Theme       Theme       `json:"theme"`
}

// DefaultPreference returns the fallback used before any write.
func DefaultPreference(userID string) Preference {
	return Preference{
		UserID:      userID,
		DefaultView: ViewKanban,
		FontSize:    FontMedium,
		Theme:       ThemeLight,
	}
}

// TableName specifies the table name for Preference Model
func (Preference) TableName() string {
	return "preferences"
}
