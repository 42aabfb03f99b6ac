// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"skripsiku_backend/internals/features/users/user/model"
)

// =======================
// Request DTO
// =======================

// Profil yang boleh diubah user sendiri
type UserUpdateProfileDTO struct {
	FullName      *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	StudentNumber *string `json:"student_number,omitempty" validate:"omitempty,min=5,max=20"`
	FacultyID     *string `json:"faculty_id,omitempty" validate:"omitempty,uuid4"`
	MajorID       *string `json:"major_id,omitempty" validate:"omitempty,uuid4"`
}

func (p *UserUpdateProfileDTO) Normalize() {
	if p.FullName != nil {
		f := strings.TrimSpace(*p.FullName)
		p.FullName = &f
	}
	if p.StudentNumber != nil {
		n := strings.TrimSpace(*p.StudentNumber)
		p.StudentNumber = &n
	}
}

func (p *UserUpdateProfileDTO) ApplyUpdates(u *model.UserModel) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.StudentNumber != nil {
		u.StudentNumber = p.StudentNumber
	}
	if p.FacultyID != nil {
		if id, err := uuid.Parse(*p.FacultyID); err == nil {
			u.FacultyID = &id
		}
	}
	if p.MajorID != nil {
		if id, err := uuid.Parse(*p.MajorID); err == nil {
			u.MajorID = &id
		}
	}
}

// Perubahan yang hanya boleh dilakukan admin
type UserAdminUpdateDTO struct {
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=student teacher admin owner"`
	IsActive *bool   `json:"is_active,omitempty"`
}
