// file: internals/features/academics/faculties/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skripsiku_backend/internals/constants"
	facultyCtl "skripsiku_backend/internals/features/academics/faculties/controller"
	authMiddleware "skripsiku_backend/internals/middlewares/auth"
)

func FacultyAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := facultyCtl.NewFacultyController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola fakultas"),
			constants.AdminAndAbove,
		),
	)

	base.Post("/faculties", ctl.Create)
	base.Patch("/faculties/:id", ctl.Patch)
	base.Delete("/faculties/:id", ctl.Delete)
}

func FacultyPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := facultyCtl.NewFacultyController(db, nil)
	api.Get("/faculties", ctl.List)
}
