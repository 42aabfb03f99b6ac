// file: internals/features/home/notifications/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtl "skripsiku_backend/internals/features/home/notifications/controller"
)

func NotificationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := notifCtl.NewNotificationController(db)

	api.Get("/notifications", ctl.ListMine)
	api.Patch("/notifications/read-all", ctl.MarkAllRead)
	api.Patch("/notifications/:id/read", ctl.MarkRead)
}
