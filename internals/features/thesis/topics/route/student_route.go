// file: internals/features/thesis/topics/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	topicCtl "skripsiku_backend/internals/features/thesis/topics/controller"
)

// Dipasang di group /api/u (sudah lewat auth + role mahasiswa)
func TopicStudentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := topicCtl.NewStudentTopicController(db, nil)

	api.Post("/topics/propose", ctl.Propose)
	api.Get("/topics/registrations", ctl.MyRegistrations)
	api.Post("/topics/:id/register", ctl.Register)
	api.Delete("/topics/:id/register", ctl.Cancel)
	api.Patch("/topics/:id", ctl.Update)
	api.Delete("/topics/:id", ctl.Delete)
}
