// file: internals/features/academics/majors/dto/major_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"skripsiku_backend/internals/features/academics/majors/model"
)

type MajorCreateDTO struct {
	MajorFacultyID   string  `json:"major_faculty_id" validate:"required,uuid4"`
	MajorName        string  `json:"major_name" validate:"required,min=3,max=100"`
	MajorCode        string  `json:"major_code" validate:"required,min=2,max=20"`
	MajorDescription *string `json:"major_description,omitempty"`
}

type MajorUpdateDTO struct {
	MajorFacultyID   *string `json:"major_faculty_id,omitempty" validate:"omitempty,uuid4"`
	MajorName        *string `json:"major_name,omitempty" validate:"omitempty,min=3,max=100"`
	MajorCode        *string `json:"major_code,omitempty" validate:"omitempty,min=2,max=20"`
	MajorDescription *string `json:"major_description,omitempty"`
}

func (p *MajorCreateDTO) Normalize() {
	p.MajorName = strings.TrimSpace(p.MajorName)
	p.MajorCode = strings.ToUpper(strings.TrimSpace(p.MajorCode))
}

func (p *MajorCreateDTO) ToModel(facultyID uuid.UUID) model.MajorModel {
	return model.MajorModel{
		MajorFacultyID:   facultyID,
		MajorName:        p.MajorName,
		MajorCode:        p.MajorCode,
		MajorDescription: p.MajorDescription,
	}
}

func (u *MajorUpdateDTO) ApplyUpdates(ent *model.MajorModel) {
	if u.MajorFacultyID != nil {
		if id, err := uuid.Parse(*u.MajorFacultyID); err == nil {
			ent.MajorFacultyID = id
		}
	}
	if u.MajorName != nil {
		ent.MajorName = strings.TrimSpace(*u.MajorName)
	}
	if u.MajorCode != nil {
		ent.MajorCode = strings.ToUpper(strings.TrimSpace(*u.MajorCode))
	}
	if u.MajorDescription != nil {
		ent.MajorDescription = u.MajorDescription
	}
}
