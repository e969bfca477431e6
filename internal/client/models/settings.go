package models

// Settings is the user-configurable branding persisted in durable storage.
type Settings struct {
	Title   string `json:"title"`
	LogoURL string `json:"logoUrl"`
}

// DefaultSettings is used when nothing (or nothing readable) is stored.
func DefaultSettings() Settings {
	return Settings{Title: "OliLab", LogoURL: ""}
}

// SettingsPatch is a partial update. Nil fields are left untouched.
type SettingsPatch struct {
	Title   *string `json:"title,omitempty"`
	LogoURL *string `json:"logoUrl,omitempty"`
}

// Merge shallow-merges p onto s and returns the result; s is not modified.
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.LogoURL != nil {
		s.LogoURL = *p.LogoURL
	}
	return s
}
