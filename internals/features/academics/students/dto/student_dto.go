package dto

import (
	"fmt"
	"strconv"

	"sigaa_backend/internals/features/academics/shared"
)

/* ================= Query DTO ================= */

// AlunoListQuery carries the normalized /Aluno filters. Ano and Periodo are
// the halves of the compound periodoIngresso parameter; the derived filter
// only exists when both are present.
type AlunoListQuery struct {
	Nome    *string
	Unidade *string
	Curso   *string
	Ano     *int `validate:"omitempty,gte=2000,lte=2040"`
	Periodo *int `validate:"omitempty,gte=1,lte=2"`
	Size    int  `validate:"gte=1,lte=100"`
	Offset  int  `validate:"gte=0"`
}

// PeriodoIngressoParam derives the "<ano>.<periodo>" bind value. With only
// one half supplied no filter is produced at all, never a partial one.
func PeriodoIngressoParam(ano, periodo *int) *string {
	if ano == nil || periodo == nil {
		return nil
	}
	v := fmt.Sprintf("%d.%d", *ano, *periodo)
	return &v
}

/* ================= Result rows ================= */

type AlunoListRow struct {
	Total     int64   `gorm:"column:_total"`
	Matricula *string `gorm:"column:matricula"`
	Nome      *string `gorm:"column:nome"`
}

type AlunoDetailRow struct {
	Matricula             *string  `gorm:"column:matricula"`
	Nome                  *string  `gorm:"column:nome"`
	CursoCodigo           *string  `gorm:"column:curso_codigo"`
	CursoNome             *string  `gorm:"column:curso_nome"`
	Curriculo             *string  `gorm:"column:curriculo"`
	IRA                   *float64 `gorm:"column:ira"`
	PeriodoIngressoAno    *string  `gorm:"column:periodo_ingresso_ano"`
	PeriodoIngressoNumero *string  `gorm:"column:periodo_ingresso_numero"`
}

/* ================= Response DTO ================= */

type AlunoShort struct {
	Type      string `json:"@type"`
	ID        string `json:"id"`
	Matricula string `json:"matricula"`
	Nome      string `json:"nome"`
}

type AlunoResponse struct {
	Type            string                `json:"@type"`
	ID              string                `json:"id"`
	Matricula       string                `json:"matricula"`
	Nome            string                `json:"nome"`
	IRA             *float64              `json:"ira,omitempty"`
	PeriodoIngresso *shared.PeriodoLetivo `json:"periodoIngresso,omitempty"`
	Curso           *shared.CursoRef      `json:"curso,omitempty"`
	Curriculo       string                `json:"curriculo,omitempty"`
}

/* ================= Mapping ================= */

// FromListRows strips the window count and builds the page items.
func FromListRows(rows []AlunoListRow) []AlunoShort {
	items := make([]AlunoShort, 0, len(rows))
	for _, r := range rows {
		items = append(items, AlunoShort{
			Type:      "Aluno",
			ID:        strOr(r.Matricula, ""),
			Matricula: strOr(r.Matricula, ""),
			Nome:      strOr(r.Nome, ""),
		})
	}
	return items
}

// FromDetailRow applies the presence rules of the Aluno detail contract:
// ira only when the row has one, periodoIngresso only when both halves parse,
// curso only when the row carries a course code, and curriculo rendered as a
// "Curriculo/<curso>.<sufixo>" reference when both parts exist.
func FromDetailRow(id string, r AlunoDetailRow) AlunoResponse {
	resp := AlunoResponse{
		Type:      "Aluno",
		ID:        id,
		Matricula: strOr(r.Matricula, id),
		Nome:      strOr(r.Nome, ""),
		IRA:       r.IRA,
	}

	if r.PeriodoIngressoAno != nil && r.PeriodoIngressoNumero != nil {
		ano, errA := strconv.Atoi(*r.PeriodoIngressoAno)
		num, errN := strconv.Atoi(*r.PeriodoIngressoNumero)
		if errA == nil && errN == nil {
			resp.PeriodoIngresso = &shared.PeriodoLetivo{Ano: ano, Periodo: num}
		}
	}

	resp.Curso = shared.NewCursoRef(r.CursoCodigo, r.CursoNome)

	if r.Curriculo != nil && *r.Curriculo != "" && r.CursoCodigo != nil && *r.CursoCodigo != "" {
		resp.Curriculo = fmt.Sprintf("Curriculo/%s.%s", *r.CursoCodigo, *r.Curriculo)
	}

	return resp
}

func strOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
