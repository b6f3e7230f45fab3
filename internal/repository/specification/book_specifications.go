package specification

import "gorm.io/gorm"

// Visible selects catalog books eligible as recommendation candidates.
type Visible struct{}

func (s Visible) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_visible = ?", true)
}

// NeedsTagging selects books queued for the tagging pipeline.
type NeedsTagging struct{}

func (s NeedsTagging) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("needs_tagging = ?", true)
}
