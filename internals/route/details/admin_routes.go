// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryRoute "skripsiku_backend/internals/features/academics/categories/route"
	facultyRoute "skripsiku_backend/internals/features/academics/faculties/route"
	majorRoute "skripsiku_backend/internals/features/academics/majors/route"
	periodRoute "skripsiku_backend/internals/features/academics/registration_periods/route"
	userRoute "skripsiku_backend/internals/features/users/user/route"
)

// Guard role admin ada di masing-masing route file
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	facultyRoute.FacultyAdminRoutes(api, db)
	majorRoute.MajorAdminRoutes(api, db)
	categoryRoute.CategoryAdminRoutes(api, db)
	periodRoute.RegistrationPeriodAdminRoutes(api, db)
	userRoute.UserAdminRoutes(api, db)
}
