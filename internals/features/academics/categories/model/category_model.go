// file: internals/features/academics/categories/model/category_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	CategoryID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:category_id" json:"category_id"`
	CategoryName string    `gorm:"type:varchar(100);not null;unique;column:category_name" json:"category_name"`

	CategoryDescription *string `gorm:"type:text;column:category_description" json:"category_description,omitempty"`
	CategoryIsActive    bool    `gorm:"not null;default:true;column:category_is_active" json:"category_is_active"`

	CategoryCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:category_created_at" json:"category_created_at"`
	CategoryUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:category_updated_at" json:"category_updated_at"`
	CategoryDeletedAt gorm.DeletedAt `gorm:"column:category_deleted_at;index" json:"category_deleted_at,omitempty"`
}

func (CategoryModel) TableName() string { return "categories" }

func (m *CategoryModel) BeforeSave(tx *gorm.DB) error {
	m.CategoryName = strings.TrimSpace(m.CategoryName)
	return nil
}
