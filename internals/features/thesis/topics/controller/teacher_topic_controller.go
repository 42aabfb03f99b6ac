// file: internals/features/thesis/topics/controller/teacher_topic_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skripsiku_backend/internals/features/thesis/topics/dto"
	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
	topicService "skripsiku_backend/internals/features/thesis/topics/service"
	helper "skripsiku_backend/internals/helpers"
)

/* ============================================
   Controller: sisi dosen pembimbing
============================================ */

type TeacherTopicController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Approval  *topicService.ApprovalService
	Lifecycle *topicService.LifecycleService
	Query     *topicService.QueryService
}

func NewTeacherTopicController(db *gorm.DB, v *validator.Validate) *TeacherTopicController {
	if v == nil {
		v = validator.New()
	}
	return &TeacherTopicController{
		DB:        db,
		Validator: v,
		Approval:  topicService.NewApprovalService(db),
		Lifecycle: topicService.NewLifecycleService(db),
		Query:     topicService.NewQueryService(db),
	}
}

// PUT /api/t/students/:student_id/registrations/:topic_id
// body: {"action": "approve"|"reject", "feedback": "..."}
func (ctl *TeacherTopicController) DecideRegistration(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mahasiswa tidak valid")
	}
	topicID, err := uuid.Parse(c.Params("topic_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID topik tidak valid")
	}

	var p dto.MemberDecisionDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	var member *topicModel.TopicMemberModel
	switch p.Action {
	case "approve":
		member, err = ctl.Approval.ApproveMember(teacherID, studentID, topicID, p.Feedback)
	case "reject":
		member, err = ctl.Approval.RejectMember(teacherID, studentID, topicID, p.Feedback)
	}
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Pendaftaran mahasiswa disetujui"
	if p.Action == "reject" {
		msg = "Pendaftaran mahasiswa ditolak"
	}
	return helper.JsonUpdated(c, msg, member)
}

// DELETE /api/t/students/:student_id/topics/:topic_id
// body: {"reason": "..."}
func (ctl *TeacherTopicController) RemoveStudent(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mahasiswa tidak valid")
	}
	topicID, err := uuid.Parse(c.Params("topic_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID topik tidak valid")
	}

	var p dto.RemoveMemberDTO
	// body opsional
	_ = c.BodyParser(&p)

	if err := ctl.Approval.RemoveStudent(teacherID, studentID, topicID, p.Reason); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Mahasiswa dikeluarkan dari topik", fiber.Map{
		"topic_id":   topicID,
		"student_id": studentID,
	})
}

// PUT /api/t/topics/:id/approve
// body: {"status": "approved"|"rejected"|"need_revision", "feedback": "..."}
func (ctl *TeacherTopicController) DecideTopic(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID topik tidak valid")
	}

	var p dto.TopicDecisionDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}

	topic, err := ctl.Approval.DecideTopic(teacherID, topicID, topicModel.TeacherStatus(p.Status), p.Feedback)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Keputusan topik disimpan", topic)
}

// PATCH /api/t/topics/:id/complete
func (ctl *TeacherTopicController) MarkCompleted(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID topik tidak valid")
	}

	topic, err := ctl.Lifecycle.MarkCompleted(teacherID, topicID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Topik ditandai selesai", topic)
}

// GET /api/t/topics — topik yang saya bimbing
func (ctl *TeacherTopicController) MySupervisedTopics(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	topics, total, err := ctl.Query.ListSupervised(teacherID, paging.Offset, paging.Limit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Topik yang Anda bimbing", topics, &p)
}

// GET /api/t/registrations/pending — antrian pendaftar
func (ctl *TeacherTopicController) PendingRegistrations(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	list, err := ctl.Query.ListPendingRegistrations(teacherID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Pendaftaran menunggu persetujuan", list)
}
