// file: internals/features/academics/registration_periods/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skripsiku_backend/internals/constants"
	periodCtl "skripsiku_backend/internals/features/academics/registration_periods/controller"
	authMiddleware "skripsiku_backend/internals/middlewares/auth"
)

func RegistrationPeriodAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := periodCtl.NewRegistrationPeriodController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola periode pendaftaran"),
			constants.AdminAndAbove,
		),
	)

	base.Post("/registration-periods", ctl.Create)
	base.Get("/registration-periods", ctl.List)
	base.Patch("/registration-periods/:id", ctl.Patch)
	base.Delete("/registration-periods/:id", ctl.Delete)
}

func RegistrationPeriodPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := periodCtl.NewRegistrationPeriodController(db, nil)
	api.Get("/registration-periods/current", ctl.Current)
}
