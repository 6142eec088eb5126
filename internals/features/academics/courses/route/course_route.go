package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigaa_backend/internals/features/academics/courses/controller"
)

func CursoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCursoController(db)

	r := api.Group("/Curso")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Detail)
}
