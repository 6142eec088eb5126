package dto

import (
	"sigaa_backend/internals/constants"
	"sigaa_backend/internals/features/academics/shared"
)

/* ================= Query DTO ================= */

type CursoListQuery struct {
	Nome    *string
	Unidade *string
	Size    int `validate:"gte=1,lte=100"`
	Offset  int `validate:"gte=0"`
}

/* ================= Result rows ================= */

type CursoListRow struct {
	Total int64   `gorm:"column:_total"`
	ID    *string `gorm:"column:id"`
	Nome  *string `gorm:"column:nome"`
}

type CursoDetailRow struct {
	ID            *string `gorm:"column:id"`
	Nome          *string `gorm:"column:nome"`
	GrauAcademico *string `gorm:"column:grau_academico"`
	Turno         *string `gorm:"column:turno"`
	Modalidade    *string `gorm:"column:modalidade"`
	Coordenador   *string `gorm:"column:coordenador"`
}

type UnidadeRow struct {
	Codigo *string `gorm:"column:codigo"`
	Nome   *string `gorm:"column:nome"`
}

/* ================= Response DTO ================= */

type CursoShort struct {
	Type   string `json:"@type"`
	ID     string `json:"id"`
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

type Coordenador struct {
	Nome string `json:"nome"`
}

type CursoResponse struct {
	Type          string              `json:"@type"`
	ID            string              `json:"id"`
	Codigo        string              `json:"codigo"`
	Nome          string              `json:"nome"`
	GrauAcademico string              `json:"grauAcademico,omitempty"`
	Modalidade    string              `json:"modalidade,omitempty"`
	Turno         string              `json:"turno,omitempty"`
	Unidade       []shared.UnidadeRef `json:"unidade"`
	Coordenador   *Coordenador        `json:"coordenador,omitempty"`
}

/* ================= Mapping ================= */

func FromListRows(rows []CursoListRow) []CursoShort {
	items := make([]CursoShort, 0, len(rows))
	for _, r := range rows {
		// course code and identifier are the same value
		id := strOr(r.ID, "")
		items = append(items, CursoShort{
			Type:   "Curso",
			ID:     id,
			Codigo: id,
			Nome:   strOr(r.Nome, ""),
		})
	}
	return items
}

// FromDetailRow projects the course detail. Modality and shift codes go
// through the fixed translation tables; unknown codes pass through. The
// unidade array is part of the contract even when empty.
func FromDetailRow(id string, r CursoDetailRow, unidades []UnidadeRow) CursoResponse {
	resp := CursoResponse{
		Type:    "Curso",
		ID:      id,
		Codigo:  id,
		Nome:    strOr(r.Nome, ""),
		Unidade: make([]shared.UnidadeRef, 0, len(unidades)),
	}

	if r.GrauAcademico != nil && *r.GrauAcademico != "" {
		resp.GrauAcademico = *r.GrauAcademico
	}
	if r.Modalidade != nil && *r.Modalidade != "" {
		resp.Modalidade = constants.ModalidadeLabel(*r.Modalidade)
	}
	if r.Turno != nil && *r.Turno != "" {
		resp.Turno = constants.TurnoLabel(*r.Turno)
	}

	for _, u := range unidades {
		resp.Unidade = append(resp.Unidade, shared.UnidadeRef{
			Codigo: strOr(u.Codigo, ""),
			Nome:   strOr(u.Nome, ""),
		})
	}

	if r.Coordenador != nil && *r.Coordenador != "" {
		resp.Coordenador = &Coordenador{Nome: *r.Coordenador}
	}

	return resp
}

func strOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
