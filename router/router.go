package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studyplan/pkg/middleware"
)

func New(
	e *echo.Echo,
	plannerCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		ToggleTask(echo.Context) error
	},
	resourceCtrl interface{ Preview(echo.Context) error },
	reminderCtrl interface{ Today(echo.Context) error },
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	g := e.Group("/planners")
	g.POST("", plannerCtrl.Create)
	g.GET("", plannerCtrl.List)
	g.GET("/:id", plannerCtrl.Get)
	g.PATCH("/:id", plannerCtrl.Update)
	g.DELETE("/:id", plannerCtrl.Delete)
	g.PATCH("/:id/tasks/:task_id", plannerCtrl.ToggleTask)

	api.POST("/resources/preview", resourceCtrl.Preview)
	api.GET("/reminders/today", reminderCtrl.Today)

	return e
}
