package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigaa_backend/internals/features/academics/students/controller"
)

func AlunoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAlunoController(db)

	r := api.Group("/Aluno")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Detail)
}
