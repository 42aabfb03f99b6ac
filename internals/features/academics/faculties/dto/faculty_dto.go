// file: internals/features/academics/faculties/dto/faculty_dto.go
package dto

import (
	"strings"

	"skripsiku_backend/internals/features/academics/faculties/model"
)

// =======================
// Request DTO
// =======================

type FacultyCreateDTO struct {
	FacultyName        string  `json:"faculty_name" validate:"required,min=3,max=100"`
	FacultyCode        string  `json:"faculty_code" validate:"required,min=2,max=20"`
	FacultyDescription *string `json:"faculty_description,omitempty"`
}

type FacultyUpdateDTO struct {
	FacultyName        *string `json:"faculty_name,omitempty" validate:"omitempty,min=3,max=100"`
	FacultyCode        *string `json:"faculty_code,omitempty" validate:"omitempty,min=2,max=20"`
	FacultyDescription *string `json:"faculty_description,omitempty"`
}

func (p *FacultyCreateDTO) Normalize() {
	p.FacultyName = strings.TrimSpace(p.FacultyName)
	p.FacultyCode = strings.ToUpper(strings.TrimSpace(p.FacultyCode))
}

func (p *FacultyCreateDTO) ToModel() model.FacultyModel {
	return model.FacultyModel{
		FacultyName:        p.FacultyName,
		FacultyCode:        p.FacultyCode,
		FacultyDescription: p.FacultyDescription,
	}
}

func (u *FacultyUpdateDTO) ApplyUpdates(ent *model.FacultyModel) {
	if u.FacultyName != nil {
		ent.FacultyName = strings.TrimSpace(*u.FacultyName)
	}
	if u.FacultyCode != nil {
		ent.FacultyCode = strings.ToUpper(strings.TrimSpace(*u.FacultyCode))
	}
	if u.FacultyDescription != nil {
		ent.FacultyDescription = u.FacultyDescription
	}
}
