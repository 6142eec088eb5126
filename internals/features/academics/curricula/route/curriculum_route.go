package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigaa_backend/internals/features/academics/curricula/controller"
)

func CurriculoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCurriculoController(db)

	r := api.Group("/Curriculo")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.Detail)
	r.Get("/:id/disciplina", ctl.ListDisciplinas)
	r.Get("/:id/disciplina/:disciplina", ctl.DetailDisciplina)
}
