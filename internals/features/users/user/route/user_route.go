// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skripsiku_backend/internals/constants"
	userCtl "skripsiku_backend/internals/features/users/user/controller"
	authMiddleware "skripsiku_backend/internals/middlewares/auth"
)

func UserProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db, nil)
	api.Patch("/profile", ctl.UpdateProfile)
}

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola user"),
			constants.AdminAndAbove,
		),
	)
	base.Get("/users", ctl.List)
	base.Patch("/users/:id", ctl.AdminUpdate)
}
