// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryRoute "skripsiku_backend/internals/features/academics/categories/route"
	facultyRoute "skripsiku_backend/internals/features/academics/faculties/route"
	majorRoute "skripsiku_backend/internals/features/academics/majors/route"
	periodRoute "skripsiku_backend/internals/features/academics/registration_periods/route"
	topicRoute "skripsiku_backend/internals/features/thesis/topics/route"
)

func PublicRoutes(api fiber.Router, db *gorm.DB) {
	topicRoute.TopicPublicRoutes(api, db)
	facultyRoute.FacultyPublicRoutes(api, db)
	majorRoute.MajorPublicRoutes(api, db)
	categoryRoute.CategoryPublicRoutes(api, db)
	periodRoute.RegistrationPeriodPublicRoutes(api, db)
}
