// file: internals/features/thesis/topics/controller/student_topic_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skripsiku_backend/internals/features/thesis/topics/dto"
	topicService "skripsiku_backend/internals/features/thesis/topics/service"
	helper "skripsiku_backend/internals/helpers"
)

/* ============================================
   Controller: sisi mahasiswa
============================================ */

type StudentTopicController struct {
	DB           *gorm.DB
	Validator    *validator.Validate
	Registration *topicService.RegistrationService
	Lifecycle    *topicService.LifecycleService
}

func NewStudentTopicController(db *gorm.DB, v *validator.Validate) *StudentTopicController {
	if v == nil {
		v = validator.New()
	}
	return &StudentTopicController{
		DB:           db,
		Validator:    v,
		Registration: topicService.NewRegistrationService(db),
		Lifecycle:    topicService.NewLifecycleService(db),
	}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

// POST /api/u/topics/propose
func (ctl *StudentTopicController) Propose(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.TopicProposeDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	topic, err := ctl.Registration.Propose(studentID, &p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Topik berhasil diajukan, menunggu persetujuan dosen", topic)
}

// POST /api/u/topics/:id/register
func (ctl *StudentTopicController) Register(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID topik tidak valid")
	}

	member, err := ctl.Registration.Register(studentID, topicID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Berhasil mendaftar, menunggu persetujuan dosen", member)
}

// DELETE /api/u/topics/:id/register
func (ctl *StudentTopicController) Cancel(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID topik tidak valid")
	}

	if err := ctl.Registration.Cancel(studentID, topicID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Pendaftaran dibatalkan", fiber.Map{"topic_id": topicID})
}

// GET /api/u/topics/registrations
func (ctl *StudentTopicController) MyRegistrations(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	list, err := ctl.Registration.ListStudentRegistrations(studentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Daftar pendaftaran Anda", list)
}

// PATCH /api/u/topics/:id — pembuat mengubah topiknya
func (ctl *StudentTopicController) Update(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID topik tidak valid")
	}

	var p dto.TopicUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.FromFiberError(c, err)
	}
	p.Normalize()

	topic, err := ctl.Lifecycle.Update(callerID, topicID, &p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Topik berhasil diperbarui", topic)
}

// DELETE /api/u/topics/:id — pembuat menghapus topiknya
func (ctl *StudentTopicController) Delete(c *fiber.Ctx) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	topicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID topik tidak valid")
	}

	if err := ctl.Lifecycle.SoftDelete(callerID, topicID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Topik berhasil dihapus", fiber.Map{"topic_id": topicID})
}
