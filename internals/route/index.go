// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "skripsiku_backend/internals/features/users/auth/route"
	"skripsiku_backend/internals/route/details"

	"skripsiku_backend/internals/constants"
	authMiddleware "skripsiku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua route aplikasi:
//
//	/api/auth    → register/login/refresh dsb
//	/api/public  → tanpa login (browse topik, data referensi)
//	/api/u       → semua user login (profil, notifikasi, aksi mahasiswa)
//	/api/t       → dosen ke atas
//	/api/a       → admin ke atas
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	public := app.Group("/api/public")
	details.PublicRoutes(public, db)

	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	details.UserRoutes(user, db)

	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("mengakses fitur dosen"),
			constants.TeacherAndAbove,
		),
	)
	details.TeacherRoutes(teacher, db)

	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))
	details.AdminRoutes(admin, db)
}
