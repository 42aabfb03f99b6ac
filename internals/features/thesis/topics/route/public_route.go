// file: internals/features/thesis/topics/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	topicCtl "skripsiku_backend/internals/features/thesis/topics/controller"
)

func TopicPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := topicCtl.NewTopicQueryController(db)

	api.Get("/topics", ctl.List)
	api.Get("/topics/:id", ctl.Detail)
}
