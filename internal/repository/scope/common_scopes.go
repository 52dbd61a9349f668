package scope

import "gorm.io/gorm"

// OrderByCreatedDesc lists newest records first.
func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
