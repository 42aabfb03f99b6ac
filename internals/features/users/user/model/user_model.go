package model

import (
	"time"

	"github.com/google/uuid"

	"skripsiku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database.
// Mahasiswa membawa referensi fakultas/prodi + topik aktif;
// dosen hanya membawa fakultas.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null;unique" json:"user_name"`
	FullName string    `gorm:"size:100;not null" json:"full_name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	// Identitas akademik
	StudentNumber *string    `gorm:"size:20;column:student_number" json:"student_number,omitempty"` // NIM (mahasiswa)
	FacultyID     *uuid.UUID `gorm:"type:uuid;column:faculty_id" json:"faculty_id,omitempty"`
	MajorID       *uuid.UUID `gorm:"type:uuid;column:major_id" json:"major_id,omitempty"`

	// Topik yang sedang dikerjakan (diisi saat pendaftaran pertama di-approve)
	CurrentTopicID *uuid.UUID `gorm:"type:uuid;column:current_topic_id" json:"current_topic_id,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum disimpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
}

func (u *UserModel) IsStudent() bool { return u.Role == constants.RoleStudent }
func (u *UserModel) IsTeacher() bool { return u.Role == constants.RoleTeacher }
