// file: internals/features/home/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tipe notifikasi (dipakai di kolom notification_type)
const (
	NotificationTypeInfo             = 1
	NotificationTypeTopicDecision    = 2 // keputusan dosen atas topik yang diajukan
	NotificationTypeMemberDecision   = 3 // keputusan dosen atas pendaftaran mahasiswa
	NotificationTypeMemberRemoved    = 4
	NotificationTypeNewRegistration  = 5 // pendaftar baru masuk ke topik dosen
	NotificationTypeTopicNewProposal = 6
)

type NotificationModel struct {
	NotificationID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`
	NotificationUserID uuid.UUID `gorm:"type:uuid;not null;index;column:notification_user_id" json:"notification_user_id"`

	NotificationTitle   string `gorm:"type:varchar(150);not null;column:notification_title" json:"notification_title"`
	NotificationMessage string `gorm:"type:text;not null;column:notification_message" json:"notification_message"`
	NotificationType    int    `gorm:"type:integer;not null;default:1;column:notification_type" json:"notification_type"`

	NotificationTags pq.StringArray `gorm:"type:text[];column:notification_tags" json:"notification_tags,omitempty"`
	// Payload bebas (topic_id, student_id, dst) untuk deep-link di client
	NotificationData datatypes.JSON `gorm:"type:jsonb;column:notification_data" json:"notification_data,omitempty"`

	NotificationIsRead bool `gorm:"not null;default:false;column:notification_is_read" json:"notification_is_read"`

	NotificationCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:notification_created_at" json:"notification_created_at"`
	NotificationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:notification_updated_at" json:"notification_updated_at"`
	NotificationDeletedAt gorm.DeletedAt `gorm:"column:notification_deleted_at;index" json:"notification_deleted_at,omitempty"`
}

func (NotificationModel) TableName() string { return "notifications" }
