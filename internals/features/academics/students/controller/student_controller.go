package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigaa_backend/internals/features/academics/catalog"
	"sigaa_backend/internals/features/academics/students/dto"
	helper "sigaa_backend/internals/helpers"
)

type AlunoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAlunoController(db *gorm.DB) *AlunoController {
	return &AlunoController{DB: db, Validator: validator.New()}
}

// List handles GET /Aluno.
func (ctl *AlunoController) List(c *fiber.Ctx) error {
	// ==== Query → DTO + validation ====
	size, offset, fieldErrs := helper.ParsePaging(c)
	ano, okAno := helper.QueryIntPtr(c, "periodoIngresso.ano")
	if !okAno {
		if fieldErrs == nil {
			fieldErrs = map[string][]string{}
		}
		fieldErrs["periodoIngresso.ano"] = []string{"must be an integer"}
	}
	periodo, okPeriodo := helper.QueryIntPtr(c, "periodoIngresso.periodo")
	if !okPeriodo {
		if fieldErrs == nil {
			fieldErrs = map[string][]string{}
		}
		fieldErrs["periodoIngresso.periodo"] = []string{"must be an integer"}
	}
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	q := dto.AlunoListQuery{
		Nome:    helper.QueryStrPtr(c, "nome"),
		Unidade: helper.QueryStrPtr(c, "unidade"),
		Curso:   helper.QueryStrPtr(c, "curso"),
		Ano:     ano,
		Periodo: periodo,
		Size:    size,
		Offset:  offset,
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	// ==== Dispatch ====
	var rows []dto.AlunoListRow
	err := ctl.DB.Raw(catalog.SQL(catalog.AlunoList), map[string]any{
		"nome":            q.Nome,
		"curso":           q.Curso,
		"unidade":         q.Unidade,
		"periodoIngresso": dto.PeriodoIngressoParam(q.Ano, q.Periodo),
		"pageOffset":      q.Offset,
		"pageSize":        q.Size,
	}).Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Query failed")
	}

	var total int64
	if len(rows) > 0 {
		total = rows[0].Total
	}

	// ==== Page assembly ====
	filters := make([]helper.Filter, 0, 5)
	if q.Nome != nil {
		filters = append(filters, helper.Filter{Key: "nome", Value: *q.Nome})
	}
	if q.Unidade != nil {
		filters = append(filters, helper.Filter{Key: "unidade", Value: *q.Unidade})
	}
	if q.Curso != nil {
		filters = append(filters, helper.Filter{Key: "curso", Value: *q.Curso})
	}
	if q.Ano != nil {
		filters = append(filters, helper.Filter{Key: "periodoIngresso.ano", Value: strconv.Itoa(*q.Ano)})
	}
	if q.Periodo != nil {
		filters = append(filters, helper.Filter{Key: "periodoIngresso.periodo", Value: strconv.Itoa(*q.Periodo)})
	}

	return helper.JsonSearchSet(c, helper.SearchSet{
		Total:  total,
		Size:   q.Size,
		Offset: q.Offset,
		Links:  helper.BuildPageLinks("Aluno", filters, q.Size, q.Offset, total),
		Values: dto.FromListRows(rows),
	})
}

// Detail handles GET /Aluno/:id.
func (ctl *AlunoController) Detail(c *fiber.Ctx) error {
	id := c.Params("id")

	var row dto.AlunoDetailRow
	res := ctl.DB.Raw(catalog.SQL(catalog.AlunoDetail), map[string]any{"id": id}).Scan(&row)
	if handled, err := helper.JsonDetailError(c, res); handled {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromDetailRow(id, row))
}
