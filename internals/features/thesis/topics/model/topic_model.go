// file: internals/features/thesis/topics/model/topic_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TopicModel struct {
	// ============ PK ============
	TopicID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:topic_id" json:"topic_id"`

	// ============ Isi topik ============
	TopicTitle       string `gorm:"type:varchar(200);not null;column:topic_title" json:"topic_title"`
	TopicDescription string `gorm:"type:text;not null;column:topic_description" json:"topic_description"`

	// ============ Referensi akademik ============
	TopicCategoryID           *uuid.UUID `gorm:"type:uuid;index;column:topic_category_id" json:"topic_category_id,omitempty"`
	TopicMajorID              *uuid.UUID `gorm:"type:uuid;index;column:topic_major_id" json:"topic_major_id,omitempty"`
	TopicRegistrationPeriodID uuid.UUID  `gorm:"type:uuid;not null;index;column:topic_registration_period_id" json:"topic_registration_period_id"`

	// ============ Pihak terkait ============
	TopicCreatedBy    uuid.UUID  `gorm:"type:uuid;not null;index;column:topic_created_by" json:"topic_created_by"`
	TopicCreatorRole  string     `gorm:"type:varchar(20);not null;column:topic_creator_role" json:"topic_creator_role"`
	TopicInstructorID *uuid.UUID `gorm:"type:uuid;index;column:topic_instructor_id" json:"topic_instructor_id,omitempty"`
	TopicReviewerID   *uuid.UUID `gorm:"type:uuid;column:topic_reviewer_id" json:"topic_reviewer_id,omitempty"`

	// ============ Kapasitas ============
	TopicMaxMembers int `gorm:"type:integer;not null;default:1;column:topic_max_members" json:"topic_max_members"`

	// ============ Status workflow ============
	TopicTeacherStatus TeacherStatus `gorm:"type:varchar(20);not null;default:'pending';column:topic_teacher_status" json:"topic_teacher_status"`
	TopicLeaderStatus  LeaderStatus  `gorm:"type:varchar(20);not null;default:'pending';column:topic_leader_status" json:"topic_leader_status"`

	TopicTeacherNotes       *string `gorm:"type:text;column:topic_teacher_notes" json:"topic_teacher_notes,omitempty"`
	TopicAdvisorRequestText *string `gorm:"type:text;column:topic_advisor_request_text" json:"topic_advisor_request_text,omitempty"`

	// ============ Lifecycle flags ============
	TopicIsActive    bool `gorm:"not null;default:true;index;column:topic_is_active" json:"topic_is_active"`
	TopicIsCompleted bool `gorm:"not null;default:false;column:topic_is_completed" json:"topic_is_completed"`

	// Agregat ringan (views, jumlah pendaftar historis) — bukan sumber kebenaran slot
	TopicStats datatypes.JSON `gorm:"type:jsonb;column:topic_stats" json:"topic_stats,omitempty"`

	// ============ Audit / Soft delete ============
	TopicCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:topic_created_at" json:"topic_created_at"`
	TopicUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:topic_updated_at" json:"topic_updated_at"`
	TopicDeletedAt gorm.DeletedAt `gorm:"column:topic_deleted_at;index" json:"topic_deleted_at,omitempty"`

	// ============ Relasi ============
	TopicMembers []TopicMemberModel `gorm:"foreignKey:TopicMemberTopicID;references:TopicID" json:"topic_members,omitempty"`

	// Diisi query (COUNT member approved), tidak pernah disimpan
	TopicApprovedCount int `gorm:"-" json:"topic_approved_count"`
}

func (TopicModel) TableName() string { return "topics" }

// ============ Hooks ============
func (m *TopicModel) BeforeSave(tx *gorm.DB) error {
	m.TopicTitle = strings.TrimSpace(m.TopicTitle)
	m.TopicDescription = strings.TrimSpace(m.TopicDescription)

	if len(m.TopicTitle) < 10 {
		return errors.New("topic_title must be at least 10 characters")
	}
	if len(m.TopicDescription) < 50 {
		return errors.New("topic_description must be at least 50 characters")
	}
	// Mirror CHECK: 1..5
	if m.TopicMaxMembers < 1 {
		m.TopicMaxMembers = 1
	}
	if m.TopicMaxMembers > 5 {
		m.TopicMaxMembers = 5
	}
	if !m.TopicTeacherStatus.IsValid() {
		return errors.New("invalid topic_teacher_status")
	}
	if !m.TopicLeaderStatus.IsValid() {
		return errors.New("invalid topic_leader_status")
	}
	return nil
}

/* ============================================
   Virtual slot (dihitung, bukan kolom)
============================================ */

// AvailableSlots dihitung dari TopicApprovedCount yang diisi query.
func (m *TopicModel) AvailableSlots() int {
	slots := m.TopicMaxMembers - m.TopicApprovedCount
	if slots < 0 {
		return 0
	}
	return slots
}

func (m *TopicModel) HasAvailableSlots() bool { return m.AvailableSlots() > 0 }
func (m *TopicModel) IsFull() bool            { return !m.HasAvailableSlots() }

// Topik bisa menerima pendaftar: aktif, belum selesai, sudah disetujui dosen
func (m *TopicModel) IsOpenForRegistration() bool {
	return m.TopicIsActive && !m.TopicIsCompleted && m.TopicTeacherStatus == TeacherStatusApproved
}
