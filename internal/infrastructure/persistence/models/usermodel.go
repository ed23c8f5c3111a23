package models

import "campusvoice/internal/shared/constants"

type UserModel struct {
	ID           string `gorm:"primaryKey;size:32"`
	Name         string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;index"`
	Credibility  int    `gorm:"not null;default:50"`
	DepartmentID string `gorm:"size:32;index"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

type DepartmentModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	Name      string `gorm:"size:100;not null"`
	Code      string `gorm:"size:20;not null;uniqueIndex"`
	CreatedAt int64  `gorm:"not null"`
}

func (DepartmentModel) TableName() string {
	return constants.TableDepartments
}
