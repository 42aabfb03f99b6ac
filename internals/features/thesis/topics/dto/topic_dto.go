// file: internals/features/thesis/topics/dto/topic_dto.go
package dto

import (
	"strings"
)

// =======================
// Request DTO — mahasiswa
// =======================

type TopicProposeDTO struct {
	TopicTitle       string `json:"topic_title" validate:"required,min=10,max=200"`
	TopicDescription string `json:"topic_description" validate:"required,min=50"`

	TopicCategoryID   *string `json:"topic_category_id,omitempty" validate:"omitempty,uuid4"`
	TopicInstructorID *string `json:"topic_instructor_id,omitempty" validate:"omitempty,uuid4"`

	TopicMaxMembers *int `json:"topic_max_members,omitempty" validate:"omitempty,gte=1,lte=5"`

	// Pesan permohonan ke calon dosen pembimbing
	TopicAdvisorRequestText *string `json:"topic_advisor_request_text,omitempty" validate:"omitempty,max=2000"`
}

func (p *TopicProposeDTO) Normalize() {
	p.TopicTitle = strings.TrimSpace(p.TopicTitle)
	p.TopicDescription = strings.TrimSpace(p.TopicDescription)
	if p.TopicAdvisorRequestText != nil {
		t := strings.TrimSpace(*p.TopicAdvisorRequestText)
		p.TopicAdvisorRequestText = &t
	}
}

type TopicUpdateDTO struct {
	TopicTitle       *string `json:"topic_title,omitempty" validate:"omitempty,min=10,max=200"`
	TopicDescription *string `json:"topic_description,omitempty" validate:"omitempty,min=50"`

	TopicCategoryID *string `json:"topic_category_id,omitempty" validate:"omitempty,uuid4"`
	TopicMaxMembers *int    `json:"topic_max_members,omitempty" validate:"omitempty,gte=1,lte=5"`

	TopicAdvisorRequestText *string `json:"topic_advisor_request_text,omitempty" validate:"omitempty,max=2000"`
}

func (u *TopicUpdateDTO) Normalize() {
	if u.TopicTitle != nil {
		t := strings.TrimSpace(*u.TopicTitle)
		u.TopicTitle = &t
	}
	if u.TopicDescription != nil {
		d := strings.TrimSpace(*u.TopicDescription)
		u.TopicDescription = &d
	}
}

// =======================
// Request DTO — dosen
// =======================

// PUT /api/t/students/:student_id/registrations/:topic_id
type MemberDecisionDTO struct {
	Action   string  `json:"action" validate:"required,oneof=approve reject"`
	Feedback *string `json:"feedback,omitempty" validate:"omitempty,max=2000"`
}

// PUT /api/t/topics/:id/approve
type TopicDecisionDTO struct {
	Status   string  `json:"status" validate:"required,oneof=approved rejected need_revision"`
	Feedback *string `json:"feedback,omitempty" validate:"omitempty,max=2000"`
}

// DELETE /api/t/students/:student_id/topics/:topic_id
type RemoveMemberDTO struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=2000"`
}
