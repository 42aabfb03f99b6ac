// file: internals/route/details/teacher_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	topicRoute "skripsiku_backend/internals/features/thesis/topics/route"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	topicRoute.TopicTeacherRoutes(api, db)
}
