package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tatthien/church-equipment/internal/controllers"
)

func runUserRouter(secure *echo.Group, ctrl *controllers.UserController) {
	secure.GET("/users", ctrl.GetUsers)
	secure.POST("/users", ctrl.CreateUser)
	secure.PUT("/users/:id", ctrl.UpdateUser)
	secure.DELETE("/users/:id", ctrl.DeleteUser)
}
