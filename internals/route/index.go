package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	coursesRoute "sigaa_backend/internals/features/academics/courses/route"
	curriculaRoute "sigaa_backend/internals/features/academics/curricula/route"
	disciplinesRoute "sigaa_backend/internals/features/academics/disciplines/route"
	studentsRoute "sigaa_backend/internals/features/academics/students/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Mounting Aluno routes...")
	studentsRoute.AlunoRoutes(app, db)

	log.Println("[INFO] Mounting Curso routes...")
	coursesRoute.CursoRoutes(app, db)

	log.Println("[INFO] Mounting Curriculo routes...")
	curriculaRoute.CurriculoRoutes(app, db)

	log.Println("[INFO] Mounting Disciplina routes...")
	disciplinesRoute.DisciplinaRoutes(app, db)
}
