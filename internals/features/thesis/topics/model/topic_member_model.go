// file: internals/features/thesis/topics/model/topic_member_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicMemberModel: satu baris per pasangan (topik, mahasiswa).
// Unique index komposit menjamin mahasiswa tidak bisa punya dua
// keanggotaan di topik yang sama; index student dipakai query
// "semua topik si mahasiswa".
type TopicMemberModel struct {
	TopicMemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:topic_member_id" json:"topic_member_id"`

	TopicMemberTopicID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_topic_member_pair;column:topic_member_topic_id" json:"topic_member_topic_id"`
	TopicMemberStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_topic_member_pair;index:idx_topic_member_student;column:topic_member_student_id" json:"topic_member_student_id"`

	TopicMemberStatus MemberStatus `gorm:"type:varchar(20);not null;default:'pending';column:topic_member_status" json:"topic_member_status"`

	// true untuk baris milik pembuat topik (ketua kelompok)
	TopicMemberIsLeader bool `gorm:"not null;default:false;column:topic_member_is_leader" json:"topic_member_is_leader"`

	TopicMemberJoinedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:topic_member_joined_at" json:"topic_member_joined_at"`
	TopicMemberFeedback *string   `gorm:"type:text;column:topic_member_feedback" json:"topic_member_feedback,omitempty"`

	TopicMemberUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:topic_member_updated_at" json:"topic_member_updated_at"`
}

func (TopicMemberModel) TableName() string { return "topic_members" }

func (m *TopicMemberModel) BeforeSave(tx *gorm.DB) error {
	if !m.TopicMemberStatus.IsValid() {
		return errors.New("invalid topic_member_status")
	}
	return nil
}

func (m *TopicMemberModel) IsApproved() bool { return m.TopicMemberStatus == MemberStatusApproved }
func (m *TopicMemberModel) IsPending() bool  { return m.TopicMemberStatus == MemberStatusPending }
