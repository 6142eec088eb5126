package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigaa_backend/internals/constants"
	"sigaa_backend/internals/features/academics/catalog"
	"sigaa_backend/internals/features/academics/curricula/dto"
	helper "sigaa_backend/internals/helpers"
)

type CurriculoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCurriculoController(db *gorm.DB) *CurriculoController {
	return &CurriculoController{DB: db, Validator: validator.New()}
}

// List handles GET /Curriculo. curso is mandatory. The status filter is NOT
// pushed into SQL; it runs in memory over the fetched page, and total counts
// only matches inside that window (see dto.PaginateByStatus).
func (ctl *CurriculoController) List(c *fiber.Ctx) error {
	size, offset, fieldErrs := helper.ParsePaging(c)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	q := dto.CurriculoListQuery{
		Curso:  helper.QueryStrPtr(c, "curso"),
		Status: helper.QueryStrPtr(c, "status"),
		Size:   size,
		Offset: offset,
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var rows []dto.CurriculoListRow
	err := ctl.DB.Raw(catalog.SQL(catalog.CurriculoList), map[string]any{
		"curso":      q.Curso,
		"pageOffset": q.Offset,
		"pageSize":   q.Size,
	}).Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	status := ""
	if q.Status != nil {
		status = *q.Status
	}
	items := dto.FromListRows(*q.Curso, rows)
	total, page := dto.PaginateByStatus(items, status, q.Offset, q.Size)

	filters := []helper.Filter{{Key: "curso", Value: *q.Curso}}
	if q.Status != nil {
		filters = append(filters, helper.Filter{Key: "status", Value: *q.Status})
	}

	return helper.JsonSearchSet(c, helper.SearchSet{
		Total:  total,
		Size:   q.Size,
		Offset: q.Offset,
		Links:  helper.BuildPageLinks("Curriculo", filters, q.Size, q.Offset, total),
		Values: page,
	})
}

// Detail handles GET /Curriculo/:id with id in the public "<curso>.<sufixo>"
// form.
func (ctl *CurriculoController) Detail(c *fiber.Ctx) error {
	id := c.Params("id")

	var row dto.CurriculoDetailRow
	res := ctl.DB.Raw(catalog.SQL(catalog.CurriculoDetail), map[string]any{
		"id": dto.StorageID(id),
	}).Scan(&row)
	if handled, err := helper.JsonDetailError(c, res); handled {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromDetailRow(id, row))
}

// ListDisciplinas handles GET /Curriculo/:id/disciplina. No pagination: the
// full link set of a curriculum comes back as a bare array.
func (ctl *CurriculoController) ListDisciplinas(c *fiber.Ctx) error {
	id := c.Params("id")

	nivel, ok := helper.QueryIntPtr(c, "nivel")
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{"nivel": {"must be an integer"}})
	}
	q := dto.DisciplinaListQuery{
		Nivel:   nivel,
		Tipo:    helper.QueryStrPtr(c, "tipo"),
		Unidade: helper.QueryStrPtr(c, "unidade"),
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	// tipo travels as the storage code (OBR/OPT)
	var tipo *string
	if q.Tipo != nil {
		if code := constants.TipoVinculoCode(*q.Tipo); code != "" {
			tipo = &code
		}
	}

	var rows []dto.DisciplinaVinculoRow
	err := ctl.DB.Raw(catalog.SQL(catalog.CurriculoDisciplinaList), map[string]any{
		"id":      dto.StorageID(id),
		"nivel":   q.Nivel,
		"tipo":    tipo,
		"unidade": q.Unidade,
	}).Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromVinculoRows(rows))
}

// DetailDisciplina handles GET /Curriculo/:id/disciplina/:disciplina.
func (ctl *CurriculoController) DetailDisciplina(c *fiber.Ctx) error {
	id := c.Params("id")
	disciplina := c.Params("disciplina")

	var row dto.DisciplinaVinculoDetailRow
	res := ctl.DB.Raw(catalog.SQL(catalog.CurriculoDisciplinaDetail), map[string]any{
		"id":         dto.StorageID(id),
		"disciplina": disciplina,
	}).Scan(&row)
	if handled, err := helper.JsonDetailError(c, res); handled {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromVinculoDetailRow(disciplina, row))
}
