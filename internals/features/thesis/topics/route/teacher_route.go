// file: internals/features/thesis/topics/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	topicCtl "skripsiku_backend/internals/features/thesis/topics/controller"
)

// Dipasang di group /api/t (sudah lewat auth + role dosen ke atas)
func TopicTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := topicCtl.NewTeacherTopicController(db, nil)

	api.Get("/topics", ctl.MySupervisedTopics)
	api.Get("/registrations/pending", ctl.PendingRegistrations)

	api.Put("/topics/:id/approve", ctl.DecideTopic)
	api.Patch("/topics/:id/complete", ctl.MarkCompleted)

	api.Put("/students/:student_id/registrations/:topic_id", ctl.DecideRegistration)
	api.Delete("/students/:student_id/topics/:topic_id", ctl.RemoveStudent)
}
