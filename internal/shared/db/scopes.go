package db

import (
	"gorm.io/gorm"
)

// Paginate is a GORM scope applying 1-based page / pageSize to a query.
//
// Example usage:
//
//	db.Model(&models.IssueModel{}).Scopes(db.Paginate(page, pageSize)).Find(&rows)
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		if pageSize < 1 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// WhereIfNotEmpty adds an equality filter only when value is non-empty.
func WhereIfNotEmpty(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}
