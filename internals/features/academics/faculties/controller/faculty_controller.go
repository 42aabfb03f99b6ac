// file: internals/features/academics/faculties/controller/faculty_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "skripsiku_backend/internals/features/academics/faculties/dto"
	model "skripsiku_backend/internals/features/academics/faculties/model"
	helper "skripsiku_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type FacultyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFacultyController(db *gorm.DB, v *validator.Validate) *FacultyController {
	if v == nil {
		v = validator.New()
	}
	return &FacultyController{DB: db, Validator: v}
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
   POST /api/a/faculties
============================================ */

func (ctl *FacultyController) Create(c *fiber.Ctx) error {
	var p dto.FacultyCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	// cek unik nama/kode
	var cnt int64
	if err := ctl.DB.Model(&model.FacultyModel{}).
		Where("faculty_name = ? OR faculty_code = ?", p.FacultyName, p.FacultyCode).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama/kode fakultas sudah dipakai")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat fakultas")
	}
	return helper.JsonCreated(c, "Berhasil membuat fakultas", ent)
}

/* ============================================
   PATCH (admin)
   PATCH /api/a/faculties/:id
============================================ */

func (ctl *FacultyController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.FacultyModel
	if err := ctl.DB.First(&ent, "faculty_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fakultas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.FacultyUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.ApplyUpdates(&ent)

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui fakultas", ent)
}

/* ============================================
   DELETE (admin, soft delete)
   DELETE /api/a/faculties/:id
============================================ */

func (ctl *FacultyController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.FacultyModel{}, "faculty_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus fakultas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fakultas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus fakultas", fiber.Map{"faculty_id": id})
}

/* ============================================
   LIST (public)
   GET /api/public/faculties
============================================ */

func (ctl *FacultyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FacultyModel{})
	if s := c.Query("q"); s != "" {
		q = q.Where("faculty_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.FacultyModel
	if err := q.Order("faculty_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar fakultas", list, &p)
}
