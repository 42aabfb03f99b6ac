// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skripsiku_backend/internals/constants"
	notifRoute "skripsiku_backend/internals/features/home/notifications/route"
	topicRoute "skripsiku_backend/internals/features/thesis/topics/route"
	userRoute "skripsiku_backend/internals/features/users/user/route"
	authMiddleware "skripsiku_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	// Semua role login
	userRoute.UserProfileRoutes(api, db)
	notifRoute.NotificationUserRoutes(api, db)

	// Workflow topik: khusus mahasiswa
	student := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorStudent("mengajukan dan mendaftar topik"),
			constants.StudentOnly,
		),
	)
	topicRoute.TopicStudentRoutes(student, db)
}
