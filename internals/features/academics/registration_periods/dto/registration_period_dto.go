// file: internals/features/academics/registration_periods/dto/registration_period_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/lib/pq"

	"skripsiku_backend/internals/features/academics/registration_periods/model"
)

// =======================
// Request DTO
// =======================

type RegistrationPeriodCreateDTO struct {
	RegistrationPeriodName      string    `json:"registration_period_name" validate:"required,min=5,max=150"`
	RegistrationPeriodStartDate time.Time `json:"registration_period_start_date" validate:"required"`
	// gtefield agar sejalan dg DB CHECK (end >= start)
	RegistrationPeriodEndDate time.Time `json:"registration_period_end_date" validate:"required,gtefield=RegistrationPeriodStartDate"`

	RegistrationPeriodStatus *string `json:"registration_period_status,omitempty" validate:"omitempty,oneof=active inactive closed"`

	// pointer: bedakan "tidak dikirim" vs "false"
	RegistrationPeriodAllowProposal     *bool `json:"registration_period_allow_proposal,omitempty"`
	RegistrationPeriodAllowRegistration *bool `json:"registration_period_allow_registration,omitempty"`

	RegistrationPeriodMaxTopicsPerStudent *int `json:"registration_period_max_topics_per_student,omitempty" validate:"omitempty,gte=1,lte=10"`
	RegistrationPeriodMaxMembersPerTopic  *int `json:"registration_period_max_members_per_topic,omitempty" validate:"omitempty,gte=1,lte=5"`

	RegistrationPeriodAllowedMajorIDs []string `json:"registration_period_allowed_major_ids,omitempty" validate:"omitempty,dive,uuid4"`
	RegistrationPeriodDescription     *string  `json:"registration_period_description,omitempty"`
}

type RegistrationPeriodUpdateDTO struct {
	RegistrationPeriodName      *string    `json:"registration_period_name,omitempty" validate:"omitempty,min=5,max=150"`
	RegistrationPeriodStartDate *time.Time `json:"registration_period_start_date,omitempty"`
	RegistrationPeriodEndDate   *time.Time `json:"registration_period_end_date,omitempty"`

	RegistrationPeriodStatus *string `json:"registration_period_status,omitempty" validate:"omitempty,oneof=active inactive closed"`

	RegistrationPeriodAllowProposal     *bool `json:"registration_period_allow_proposal,omitempty"`
	RegistrationPeriodAllowRegistration *bool `json:"registration_period_allow_registration,omitempty"`

	RegistrationPeriodMaxTopicsPerStudent *int `json:"registration_period_max_topics_per_student,omitempty" validate:"omitempty,gte=1,lte=10"`
	RegistrationPeriodMaxMembersPerTopic  *int `json:"registration_period_max_members_per_topic,omitempty" validate:"omitempty,gte=1,lte=5"`

	RegistrationPeriodAllowedMajorIDs *[]string `json:"registration_period_allowed_major_ids,omitempty" validate:"omitempty,dive,uuid4"`
	RegistrationPeriodDescription     *string   `json:"registration_period_description,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *RegistrationPeriodCreateDTO) Normalize() {
	p.RegistrationPeriodName = strings.TrimSpace(p.RegistrationPeriodName)
}

func (p *RegistrationPeriodCreateDTO) ToModel() model.RegistrationPeriodModel {
	ent := model.RegistrationPeriodModel{
		RegistrationPeriodName:                p.RegistrationPeriodName,
		RegistrationPeriodStartDate:           p.RegistrationPeriodStartDate,
		RegistrationPeriodEndDate:             p.RegistrationPeriodEndDate,
		RegistrationPeriodStatus:              model.PeriodStatusInactive,
		RegistrationPeriodAllowProposal:       true,
		RegistrationPeriodAllowRegistration:   true,
		RegistrationPeriodMaxTopicsPerStudent: 1,
		RegistrationPeriodMaxMembersPerTopic:  5,
		RegistrationPeriodDescription:         p.RegistrationPeriodDescription,
	}
	if p.RegistrationPeriodStatus != nil {
		ent.RegistrationPeriodStatus = *p.RegistrationPeriodStatus
	}
	if p.RegistrationPeriodAllowProposal != nil {
		ent.RegistrationPeriodAllowProposal = *p.RegistrationPeriodAllowProposal
	}
	if p.RegistrationPeriodAllowRegistration != nil {
		ent.RegistrationPeriodAllowRegistration = *p.RegistrationPeriodAllowRegistration
	}
	if p.RegistrationPeriodMaxTopicsPerStudent != nil {
		ent.RegistrationPeriodMaxTopicsPerStudent = *p.RegistrationPeriodMaxTopicsPerStudent
	}
	if p.RegistrationPeriodMaxMembersPerTopic != nil {
		ent.RegistrationPeriodMaxMembersPerTopic = *p.RegistrationPeriodMaxMembersPerTopic
	}
	if len(p.RegistrationPeriodAllowedMajorIDs) > 0 {
		ent.RegistrationPeriodAllowedMajorIDs = pq.StringArray(p.RegistrationPeriodAllowedMajorIDs)
	}
	return ent
}

func (u *RegistrationPeriodUpdateDTO) ApplyUpdates(ent *model.RegistrationPeriodModel) {
	if u.RegistrationPeriodName != nil {
		ent.RegistrationPeriodName = strings.TrimSpace(*u.RegistrationPeriodName)
	}
	if u.RegistrationPeriodStartDate != nil {
		ent.RegistrationPeriodStartDate = *u.RegistrationPeriodStartDate
	}
	if u.RegistrationPeriodEndDate != nil {
		ent.RegistrationPeriodEndDate = *u.RegistrationPeriodEndDate
	}
	if u.RegistrationPeriodStatus != nil {
		ent.RegistrationPeriodStatus = *u.RegistrationPeriodStatus
	}
	if u.RegistrationPeriodAllowProposal != nil {
		ent.RegistrationPeriodAllowProposal = *u.RegistrationPeriodAllowProposal
	}
	if u.RegistrationPeriodAllowRegistration != nil {
		ent.RegistrationPeriodAllowRegistration = *u.RegistrationPeriodAllowRegistration
	}
	if u.RegistrationPeriodMaxTopicsPerStudent != nil {
		ent.RegistrationPeriodMaxTopicsPerStudent = *u.RegistrationPeriodMaxTopicsPerStudent
	}
	if u.RegistrationPeriodMaxMembersPerTopic != nil {
		ent.RegistrationPeriodMaxMembersPerTopic = *u.RegistrationPeriodMaxMembersPerTopic
	}
	if u.RegistrationPeriodAllowedMajorIDs != nil {
		ent.RegistrationPeriodAllowedMajorIDs = pq.StringArray(*u.RegistrationPeriodAllowedMajorIDs)
	}
	if u.RegistrationPeriodDescription != nil {
		ent.RegistrationPeriodDescription = u.RegistrationPeriodDescription
	}
}
