// file: internals/features/academics/majors/controller/major_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	facultyModel "skripsiku_backend/internals/features/academics/faculties/model"
	dto "skripsiku_backend/internals/features/academics/majors/dto"
	model "skripsiku_backend/internals/features/academics/majors/model"
	helper "skripsiku_backend/internals/helpers"
)

type MajorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMajorController(db *gorm.DB, v *validator.Validate) *MajorController {
	if v == nil {
		v = validator.New()
	}
	return &MajorController{DB: db, Validator: v}
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
   POST /api/a/majors
============================================ */

func (ctl *MajorController) Create(c *fiber.Ctx) error {
	var p dto.MajorCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	facultyID, err := uuid.Parse(p.MajorFacultyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "faculty_id tidak valid")
	}

	// FK: fakultas harus ada
	var facCnt int64
	if err := ctl.DB.Model(&facultyModel.FacultyModel{}).
		Where("faculty_id = ?", facultyID).Count(&facCnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa fakultas")
	}
	if facCnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fakultas tidak ditemukan")
	}

	var cnt int64
	if err := ctl.DB.Model(&model.MajorModel{}).
		Where("major_code = ?", p.MajorCode).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kode")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kode program studi sudah dipakai")
	}

	ent := p.ToModel(facultyID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat program studi")
	}
	return helper.JsonCreated(c, "Berhasil membuat program studi", ent)
}

/* ============================================
   PATCH (admin)
   PATCH /api/a/majors/:id
============================================ */

func (ctl *MajorController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.MajorModel
	if err := ctl.DB.First(&ent, "major_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program studi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.MajorUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.ApplyUpdates(&ent)

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui program studi", ent)
}

/* ============================================
   DELETE (admin, soft delete)
   DELETE /api/a/majors/:id
============================================ */

func (ctl *MajorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.MajorModel{}, "major_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus program studi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Program studi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus program studi", fiber.Map{"major_id": id})
}

/* ============================================
   LIST (public)
   GET /api/public/majors?faculty_id=
============================================ */

func (ctl *MajorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.MajorModel{})
	if s := c.Query("faculty_id"); s != "" {
		fid, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "faculty_id tidak valid")
		}
		q = q.Where("major_faculty_id = ?", fid)
	}
	if s := c.Query("q"); s != "" {
		q = q.Where("major_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.MajorModel
	if err := q.Order("major_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar program studi", list, &p)
}
