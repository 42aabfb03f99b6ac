// file: internals/features/academics/faculties/model/faculty_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacultyModel struct {
	FacultyID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:faculty_id" json:"faculty_id"`
	FacultyName string    `gorm:"type:varchar(100);not null;unique;column:faculty_name" json:"faculty_name"`
	FacultyCode string    `gorm:"type:varchar(20);not null;unique;column:faculty_code" json:"faculty_code"`

	FacultyDescription *string `gorm:"type:text;column:faculty_description" json:"faculty_description,omitempty"`

	FacultyCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:faculty_created_at" json:"faculty_created_at"`
	FacultyUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:faculty_updated_at" json:"faculty_updated_at"`
	FacultyDeletedAt gorm.DeletedAt `gorm:"column:faculty_deleted_at;index" json:"faculty_deleted_at,omitempty"`
}

func (FacultyModel) TableName() string { return "faculties" }

func (m *FacultyModel) BeforeSave(tx *gorm.DB) error {
	m.FacultyName = strings.TrimSpace(m.FacultyName)
	m.FacultyCode = strings.ToUpper(strings.TrimSpace(m.FacultyCode))
	if m.FacultyDescription != nil {
		d := strings.TrimSpace(*m.FacultyDescription)
		if d == "" {
			m.FacultyDescription = nil
		} else {
			m.FacultyDescription = &d
		}
	}
	return nil
}
