// file: internals/features/academics/categories/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skripsiku_backend/internals/constants"
	categoryCtl "skripsiku_backend/internals/features/academics/categories/controller"
	authMiddleware "skripsiku_backend/internals/middlewares/auth"
)

func CategoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := categoryCtl.NewCategoryController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola kategori topik"),
			constants.AdminAndAbove,
		),
	)

	base.Post("/categories", ctl.Create)
	base.Patch("/categories/:id", ctl.Patch)
	base.Delete("/categories/:id", ctl.Delete)
}

func CategoryPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := categoryCtl.NewCategoryController(db, nil)
	api.Get("/categories", ctl.List)
}
