// file: internals/features/academics/registration_periods/controller/registration_period_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "skripsiku_backend/internals/features/academics/registration_periods/dto"
	model "skripsiku_backend/internals/features/academics/registration_periods/model"
	helper "skripsiku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type RegistrationPeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRegistrationPeriodController(db *gorm.DB, v *validator.Validate) *RegistrationPeriodController {
	if v == nil {
		v = validator.New()
	}
	return &RegistrationPeriodController{DB: db, Validator: v}
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

/* ============================================
   CREATE (admin)
   POST /api/a/registration-periods
============================================ */

func (ctl *RegistrationPeriodController) Create(c *fiber.Ctx) error {
	var p dto.RegistrationPeriodCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	if p.RegistrationPeriodEndDate.Before(p.RegistrationPeriodStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal akhir harus >= tanggal mulai")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat periode pendaftaran")
	}
	return helper.JsonCreated(c, "Berhasil membuat periode pendaftaran", ent)
}

/* ============================================
   PATCH (admin)
   PATCH /api/a/registration-periods/:id
============================================ */

func (ctl *RegistrationPeriodController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.RegistrationPeriodModel
	if err := ctl.DB.First(&ent, "registration_period_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periode tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.RegistrationPeriodUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	// Validasi tanggal jika diubah
	start := ent.RegistrationPeriodStartDate
	end := ent.RegistrationPeriodEndDate
	if p.RegistrationPeriodStartDate != nil {
		start = *p.RegistrationPeriodStartDate
	}
	if p.RegistrationPeriodEndDate != nil {
		end = *p.RegistrationPeriodEndDate
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal akhir harus >= tanggal mulai")
	}

	p.ApplyUpdates(&ent)

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui periode pendaftaran", ent)
}

/* ============================================
   DELETE (admin, soft delete)
   DELETE /api/a/registration-periods/:id
============================================ */

func (ctl *RegistrationPeriodController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.RegistrationPeriodModel{}, "registration_period_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus periode")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Periode tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus periode pendaftaran", fiber.Map{"registration_period_id": id})
}

/* ============================================
   LIST (admin) & CURRENT (public)
============================================ */

// GET /api/a/registration-periods
func (ctl *RegistrationPeriodController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.RegistrationPeriodModel{})
	if s := c.Query("status"); s != "" {
		q = q.Where("registration_period_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.RegistrationPeriodModel
	if err := q.Order("registration_period_start_date desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar periode pendaftaran", list, &p)
}

// GET /api/public/registration-periods/current
func (ctl *RegistrationPeriodController) Current(c *fiber.Ctx) error {
	period, err := model.FindOpenPeriod(ctl.DB, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada periode pendaftaran yang sedang dibuka")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Periode pendaftaran aktif", period)
}
