// file: internals/features/academics/registration_periods/model/registration_period_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Status periode pendaftaran
const (
	PeriodStatusActive   = "active"
	PeriodStatusInactive = "inactive"
	PeriodStatusClosed   = "closed"
)

type RegistrationPeriodModel struct {
	// ============ PK ============
	RegistrationPeriodID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:registration_period_id" json:"registration_period_id"`

	// ============ Identitas ============
	// Example name: "Pendaftaran Skripsi Ganjil 2026/2027"
	RegistrationPeriodName string `gorm:"type:varchar(150);not null;column:registration_period_name" json:"registration_period_name"`

	RegistrationPeriodStartDate time.Time `gorm:"type:timestamptz;not null;column:registration_period_start_date" json:"registration_period_start_date"`
	RegistrationPeriodEndDate   time.Time `gorm:"type:timestamptz;not null;column:registration_period_end_date" json:"registration_period_end_date"`

	RegistrationPeriodStatus string `gorm:"type:varchar(20);not null;default:'inactive';column:registration_period_status" json:"registration_period_status"`

	// ============ Aturan aksi ============
	RegistrationPeriodAllowProposal     bool `gorm:"not null;default:true;column:registration_period_allow_proposal" json:"registration_period_allow_proposal"`
	RegistrationPeriodAllowRegistration bool `gorm:"not null;default:true;column:registration_period_allow_registration" json:"registration_period_allow_registration"`

	// Kuota simultan per mahasiswa (pending+approved)
	RegistrationPeriodMaxTopicsPerStudent int `gorm:"type:integer;not null;default:1;column:registration_period_max_topics_per_student" json:"registration_period_max_topics_per_student"`

	// Batas atas anggota per topik yang dibuat pada periode ini
	RegistrationPeriodMaxMembersPerTopic int `gorm:"type:integer;not null;default:5;column:registration_period_max_members_per_topic" json:"registration_period_max_members_per_topic"`

	// Allow-list prodi (kosong = semua prodi boleh)
	RegistrationPeriodAllowedMajorIDs pq.StringArray `gorm:"type:text[];column:registration_period_allowed_major_ids" json:"registration_period_allowed_major_ids,omitempty"`

	RegistrationPeriodDescription *string `gorm:"type:text;column:registration_period_description" json:"registration_period_description,omitempty"`

	// ============ Audit / Soft delete ============
	RegistrationPeriodCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:registration_period_created_at" json:"registration_period_created_at"`
	RegistrationPeriodUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:registration_period_updated_at" json:"registration_period_updated_at"`
	RegistrationPeriodDeletedAt gorm.DeletedAt `gorm:"column:registration_period_deleted_at;index" json:"registration_period_deleted_at,omitempty"`
}

func (RegistrationPeriodModel) TableName() string { return "registration_periods" }

// ============ Hooks: validation & light normalization ============
func (m *RegistrationPeriodModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: end >= start
	if m.RegistrationPeriodEndDate.Before(m.RegistrationPeriodStartDate) {
		return errors.New("registration_period_end_date must be >= registration_period_start_date")
	}
	if m.RegistrationPeriodMaxTopicsPerStudent < 1 {
		m.RegistrationPeriodMaxTopicsPerStudent = 1
	}
	if m.RegistrationPeriodMaxMembersPerTopic < 1 {
		m.RegistrationPeriodMaxMembersPerTopic = 1
	}
	m.RegistrationPeriodName = strings.TrimSpace(m.RegistrationPeriodName)
	return nil
}

/* ============================================
   Keputusan window (pure, dipakai service topik)
============================================ */

// IsOpen: status aktif & waktu sekarang di dalam window [start, end]
func (m *RegistrationPeriodModel) IsOpen(now time.Time) bool {
	if m.RegistrationPeriodStatus != PeriodStatusActive {
		return false
	}
	return !now.Before(m.RegistrationPeriodStartDate) && !now.After(m.RegistrationPeriodEndDate)
}

// AllowsMajor: allow-list kosong berarti semua prodi boleh
func (m *RegistrationPeriodModel) AllowsMajor(majorID *uuid.UUID) bool {
	if len(m.RegistrationPeriodAllowedMajorIDs) == 0 {
		return true
	}
	if majorID == nil {
		return false
	}
	target := majorID.String()
	for _, id := range m.RegistrationPeriodAllowedMajorIDs {
		if strings.EqualFold(strings.TrimSpace(id), target) {
			return true
		}
	}
	return false
}

// CanPropose: boleh mengajukan topik sekarang?
func (m *RegistrationPeriodModel) CanPropose(now time.Time) bool {
	return m.IsOpen(now) && m.RegistrationPeriodAllowProposal
}

// CanRegister: boleh mendaftar topik sekarang untuk prodi tsb?
func (m *RegistrationPeriodModel) CanRegister(now time.Time, majorID *uuid.UUID) bool {
	return m.IsOpen(now) && m.RegistrationPeriodAllowRegistration && m.AllowsMajor(majorID)
}

/* ============================================
   Query helpers
============================================ */

// FindOpenPeriod mengambil periode aktif yang windownya mencakup `now`.
// Kalau ada lebih dari satu, ambil yang paling baru dimulai.
func FindOpenPeriod(db *gorm.DB, now time.Time) (*RegistrationPeriodModel, error) {
	var p RegistrationPeriodModel
	err := db.
		Where("registration_period_status = ?", PeriodStatusActive).
		Where("registration_period_start_date <= ? AND registration_period_end_date >= ?", now, now).
		Order("registration_period_start_date desc").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
