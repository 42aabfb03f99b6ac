// file: internals/features/academics/majors/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skripsiku_backend/internals/constants"
	majorCtl "skripsiku_backend/internals/features/academics/majors/controller"
	authMiddleware "skripsiku_backend/internals/middlewares/auth"
)

func MajorAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := majorCtl.NewMajorController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola program studi"),
			constants.AdminAndAbove,
		),
	)

	base.Post("/majors", ctl.Create)
	base.Patch("/majors/:id", ctl.Patch)
	base.Delete("/majors/:id", ctl.Delete)
}

func MajorPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := majorCtl.NewMajorController(db, nil)
	api.Get("/majors", ctl.List)
}
