// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "skripsiku_backend/internals/features/users/auth/controller"
	middlewares "skripsiku_backend/internals/middlewares"
	authMiddleware "skripsiku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	api := app.Group("/api/auth")

	// Public
	api.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	api.Post("/refresh-token", ctl.RefreshToken)
	api.Post("/reset-password", ctl.ResetPassword)

	// Protected
	secured := api.Group("", authMiddleware.AuthMiddleware(db))
	secured.Get("/me", ctl.Me)
	secured.Post("/logout", ctl.Logout)
	secured.Post("/change-password", ctl.ChangePassword)
}
