package dto

import (
	"sigaa_backend/internals/constants"
	"sigaa_backend/internals/features/academics/shared"
)

/* ================= Query DTO ================= */

type DisciplinaListQuery struct {
	Nome       *string
	Modalidade *string `validate:"omitempty,oneof=presencial ead"`
	Unidade    *string
	Size       int `validate:"gte=1,lte=100"`
	Offset     int `validate:"gte=0"`
}

/* ================= Result rows ================= */

type DisciplinaListRow struct {
	Total         int64   `gorm:"column:_total"`
	ID            *string `gorm:"column:id"`
	Nome          *string `gorm:"column:nome"`
	UnidadeCodigo *string `gorm:"column:unidade_codigo"`
	UnidadeNome   *string `gorm:"column:unidade_nome"`
}

type DisciplinaDetailRow struct {
	ID            *string `gorm:"column:id"`
	Nome          *string `gorm:"column:nome"`
	Modalidade    *string `gorm:"column:modalidade"`
	CHTeorica     *int    `gorm:"column:carga_horaria_teorica"`
	CHPratica     *int    `gorm:"column:carga_horaria_pratica"`
	CHTotal       *int    `gorm:"column:carga_horaria_total"`
	UnidadeCodigo *string `gorm:"column:unidade_codigo"`
	UnidadeNome   *string `gorm:"column:unidade_nome"`
}

/* ================= Response DTO ================= */

type DisciplinaShort struct {
	Type    string             `json:"@type"`
	ID      string             `json:"id"`
	Codigo  string             `json:"codigo"`
	Nome    string             `json:"nome"`
	Unidade *shared.UnidadeRef `json:"unidade,omitempty"`
}

type CargaHoraria struct {
	Teorica *int `json:"teorica,omitempty"`
	Pratica *int `json:"pratica,omitempty"`
	Total   *int `json:"total,omitempty"`
}

type DisciplinaResponse struct {
	Type         string             `json:"@type"`
	ID           string             `json:"id"`
	Codigo       string             `json:"codigo"`
	Nome         string             `json:"nome"`
	Modalidade   string             `json:"modalidade,omitempty"`
	CargaHoraria *CargaHoraria      `json:"cargaHoraria,omitempty"`
	Unidade      *shared.UnidadeRef `json:"unidade,omitempty"`
}

/* ================= Mapping ================= */

func FromListRows(rows []DisciplinaListRow) []DisciplinaShort {
	items := make([]DisciplinaShort, 0, len(rows))
	for _, r := range rows {
		id := strOr(r.ID, "")
		items = append(items, DisciplinaShort{
			Type:    "Disciplina",
			ID:      id,
			Codigo:  id,
			Nome:    strOr(r.Nome, ""),
			Unidade: shared.NewUnidadeRef(r.UnidadeCodigo, r.UnidadeNome),
		})
	}
	return items
}

// FromDetailRow projects the discipline detail; the workload group appears
// only when at least one of its values is present.
func FromDetailRow(id string, r DisciplinaDetailRow) DisciplinaResponse {
	resp := DisciplinaResponse{
		Type:    "Disciplina",
		ID:      strOr(r.ID, id),
		Codigo:  strOr(r.ID, id),
		Nome:    strOr(r.Nome, ""),
		Unidade: shared.NewUnidadeRef(r.UnidadeCodigo, r.UnidadeNome),
	}

	if r.Modalidade != nil && *r.Modalidade != "" {
		resp.Modalidade = constants.ModalidadeLabel(*r.Modalidade)
	}

	ch := CargaHoraria{
		Teorica: r.CHTeorica,
		Pratica: r.CHPratica,
		Total:   r.CHTotal,
	}
	if ch != (CargaHoraria{}) {
		resp.CargaHoraria = &ch
	}

	return resp
}

func strOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
