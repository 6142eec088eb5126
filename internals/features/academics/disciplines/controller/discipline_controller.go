package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigaa_backend/internals/constants"
	"sigaa_backend/internals/features/academics/catalog"
	"sigaa_backend/internals/features/academics/disciplines/dto"
	helper "sigaa_backend/internals/helpers"
)

type DisciplinaController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDisciplinaController(db *gorm.DB) *DisciplinaController {
	return &DisciplinaController{DB: db, Validator: validator.New()}
}

// List handles GET /Disciplina.
func (ctl *DisciplinaController) List(c *fiber.Ctx) error {
	size, offset, fieldErrs := helper.ParsePaging(c)
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	q := dto.DisciplinaListQuery{
		Nome:       helper.QueryStrPtr(c, "nome"),
		Modalidade: helper.QueryStrPtr(c, "modalidade"),
		Unidade:    helper.QueryStrPtr(c, "unidade"),
		Size:       size,
		Offset:     offset,
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	// modalidade travels as the storage code (P/D)
	var modalidade *string
	if q.Modalidade != nil {
		if code := constants.ModalidadeCode(*q.Modalidade); code != "" {
			modalidade = &code
		}
	}

	var rows []dto.DisciplinaListRow
	err := ctl.DB.Raw(catalog.SQL(catalog.DisciplinaList), map[string]any{
		"nome":       q.Nome,
		"modalidade": modalidade,
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

	filters := make([]helper.Filter, 0, 3)
	if q.Nome != nil {
		filters = append(filters, helper.Filter{Key: "nome", Value: *q.Nome})
	}
	if q.Modalidade != nil {
		filters = append(filters, helper.Filter{Key: "modalidade", Value: *q.Modalidade})
	}
	if q.Unidade != nil {
		filters = append(filters, helper.Filter{Key: "unidade", Value: *q.Unidade})
	}

	return helper.JsonSearchSet(c, helper.SearchSet{
		Total:  total,
		Size:   q.Size,
		Offset: q.Offset,
		Links:  helper.BuildPageLinks("Disciplina", filters, q.Size, q.Offset, total),
		Values: dto.FromListRows(rows),
	})
}

// Detail handles GET /Disciplina/:id.
func (ctl *DisciplinaController) Detail(c *fiber.Ctx) error {
	id := c.Params("id")

	var row dto.DisciplinaDetailRow
	res := ctl.DB.Raw(catalog.SQL(catalog.DisciplinaDetail), map[string]any{"id": id}).Scan(&row)
	if handled, err := helper.JsonDetailError(c, res); handled {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromDetailRow(id, row))
}
