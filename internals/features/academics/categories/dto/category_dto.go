// file: internals/features/academics/categories/dto/category_dto.go
package dto

import (
	"strings"

	"skripsiku_backend/internals/features/academics/categories/model"
)

type CategoryCreateDTO struct {
	CategoryName        string  `json:"category_name" validate:"required,min=3,max=100"`
	CategoryDescription *string `json:"category_description,omitempty"`
	CategoryIsActive    *bool   `json:"category_is_active,omitempty"`
}

type CategoryUpdateDTO struct {
	CategoryName        *string `json:"category_name,omitempty" validate:"omitempty,min=3,max=100"`
	CategoryDescription *string `json:"category_description,omitempty"`
	CategoryIsActive    *bool   `json:"category_is_active,omitempty"`
}

func (p *CategoryCreateDTO) Normalize() {
	p.CategoryName = strings.TrimSpace(p.CategoryName)
}

func (p *CategoryCreateDTO) ToModel() model.CategoryModel {
	isActive := true
	if p.CategoryIsActive != nil {
		isActive = *p.CategoryIsActive
	}
	return model.CategoryModel{
		CategoryName:        p.CategoryName,
		CategoryDescription: p.CategoryDescription,
		CategoryIsActive:    isActive,
	}
}

func (u *CategoryUpdateDTO) ApplyUpdates(ent *model.CategoryModel) {
	if u.CategoryName != nil {
		ent.CategoryName = strings.TrimSpace(*u.CategoryName)
	}
	if u.CategoryDescription != nil {
		ent.CategoryDescription = u.CategoryDescription
	}
	if u.CategoryIsActive != nil {
		ent.CategoryIsActive = *u.CategoryIsActive
	}
}
