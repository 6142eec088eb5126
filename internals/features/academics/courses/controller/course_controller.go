package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigaa_backend/internals/features/academics/catalog"
	"sigaa_backend/internals/features/academics/courses/dto"
	helper "sigaa_backend/internals/helpers"
)

type CursoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCursoController(db *gorm.DB) *CursoController {
	return &CursoController{DB: db, Validator: validator.New()}
}

// List handles GET /Curso.
func (ctl *CursoController) List(c *fiber.Ctx) error {
	size, offset, fieldErrs := helper.ParsePaging(c)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	q := dto.CursoListQuery{
		Nome:    helper.QueryStrPtr(c, "nome"),
		Unidade: helper.QueryStrPtr(c, "unidade"),
		Size:    size,
		Offset:  offset,
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var rows []dto.CursoListRow
	err := ctl.DB.Raw(catalog.SQL(catalog.CursoList), map[string]any{
		"nome":       q.Nome,
		"unidade":    q.Unidade,
		"pageOffset": q.Offset,
		"pageSize":   q.Size,
	}).Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var total int64
	if len(rows) > 0 {
		total = rows[0].Total
	}

	filters := make([]helper.Filter, 0, 2)
	if q.Nome != nil {
		filters = append(filters, helper.Filter{Key: "nome", Value: *q.Nome})
	}
	if q.Unidade != nil {
		filters = append(filters, helper.Filter{Key: "unidade", Value: *q.Unidade})
	}

	return helper.JsonSearchSet(c, helper.SearchSet{
		Total:  total,
		Size:   q.Size,
		Offset: q.Offset,
		Links:  helper.BuildPageLinks("Curso", filters, q.Size, q.Offset, total),
		Values: dto.FromListRows(rows),
	})
}

// Detail handles GET /Curso/:id. The unit list comes from a secondary query,
// one extra dispatch, embedded ordered by unit name.
func (ctl *CursoController) Detail(c *fiber.Ctx) error {
	id := c.Params("id")

	var row dto.CursoDetailRow
	res := ctl.DB.Raw(catalog.SQL(catalog.CursoDetail), map[string]any{"id": id}).Scan(&row)
	if handled, err := helper.JsonDetailError(c, res); handled {
		return err
	}

	var unidades []dto.UnidadeRow
	err := ctl.DB.Raw(catalog.SQL(catalog.CursoUnidades), map[string]any{"curso": id}).
		Scan(&unidades).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromDetailRow(id, row, unidades))
}
