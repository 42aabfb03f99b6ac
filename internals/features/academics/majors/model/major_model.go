// file: internals/features/academics/majors/model/major_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MajorModel struct {
	MajorID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:major_id" json:"major_id"`
	MajorFacultyID uuid.UUID `gorm:"type:uuid;not null;column:major_faculty_id;index" json:"major_faculty_id"`

	MajorName string `gorm:"type:varchar(100);not null;column:major_name" json:"major_name"`
	MajorCode string `gorm:"type:varchar(20);not null;unique;column:major_code" json:"major_code"`

	MajorDescription *string `gorm:"type:text;column:major_description" json:"major_description,omitempty"`

	MajorCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:major_created_at" json:"major_created_at"`
	MajorUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:major_updated_at" json:"major_updated_at"`
	MajorDeletedAt gorm.DeletedAt `gorm:"column:major_deleted_at;index" json:"major_deleted_at,omitempty"`
}

func (MajorModel) TableName() string { return "majors" }

func (m *MajorModel) BeforeSave(tx *gorm.DB) error {
	m.MajorName = strings.TrimSpace(m.MajorName)
	m.MajorCode = strings.ToUpper(strings.TrimSpace(m.MajorCode))
	return nil
}
