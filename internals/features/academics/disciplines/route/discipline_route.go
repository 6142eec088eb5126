package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigaa_backend/internals/features/academics/disciplines/controller"
)

func DisciplinaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDisciplinaController(db)

	r := api.Group("/Disciplina")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Detail)
}
