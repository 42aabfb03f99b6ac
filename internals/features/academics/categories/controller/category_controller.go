// file: internals/features/academics/categories/controller/category_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "skripsiku_backend/internals/features/academics/categories/dto"
	model "skripsiku_backend/internals/features/academics/categories/model"
	helper "skripsiku_backend/internals/helpers"
)

type CategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCategoryController(db *gorm.DB, v *validator.Validate) *CategoryController {
	if v == nil {
		v = validator.New()
	}
	return &CategoryController{DB: db, Validator: v}
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

// POST /api/a/categories
func (ctl *CategoryController) Create(c *fiber.Ctx) error {
	var p dto.CategoryCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.Normalize()

	var cnt int64
	if err := ctl.DB.Model(&model.CategoryModel{}).
		Where("category_name = ?", p.CategoryName).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama kategori sudah dipakai")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}
	return helper.JsonCreated(c, "Berhasil membuat kategori", ent)
}

// PATCH /api/a/categories/:id
func (ctl *CategoryController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ent model.CategoryModel
	if err := ctl.DB.First(&ent, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.CategoryUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	p.ApplyUpdates(&ent)

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui kategori", ent)
}

// DELETE /api/a/categories/:id (soft delete)
func (ctl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.CategoryModel{}, "category_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus kategori", fiber.Map{"category_id": id})
}

// GET /api/public/categories
func (ctl *CategoryController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.CategoryModel{})
	if c.Query("active") == "true" {
		q = q.Where("category_is_active = true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var list []model.CategoryModel
	if err := q.Order("category_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar kategori", list, &p)
}
