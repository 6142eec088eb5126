package dto

import "sigaa_backend/internals/features/academics/shared"

// Disciplines inside a curriculum (the SIGAA_RL_CURRICULO_DISCIPLINA link).
// Nivel and tipo are part of the contract and always serialized, null/empty
// when the link lacks them.

/* ================= Result rows ================= */

type DisciplinaVinculoRow struct {
	ID            *string `gorm:"column:id"`
	Nome          *string `gorm:"column:nome"`
	Nivel         *int    `gorm:"column:nivel"`
	Tipo          *string `gorm:"column:tipo"`
	UnidadeCodigo *string `gorm:"column:unidade_codigo"`
	UnidadeNome   *string `gorm:"column:unidade_nome"`
}

type DisciplinaVinculoDetailRow struct {
	ID            *string `gorm:"column:id"`
	Nome          *string `gorm:"column:nome"`
	Nivel         *int    `gorm:"column:nivel"`
	Tipo          *string `gorm:"column:tipo"`
	CHTeorica     *int    `gorm:"column:carga_horaria_teorica"`
	CHPratica     *int    `gorm:"column:carga_horaria_pratica"`
	CHExtensao    *int    `gorm:"column:carga_horaria_extensionista"`
	UnidadeCodigo *string `gorm:"column:unidade_codigo"`
	UnidadeNome   *string `gorm:"column:unidade_nome"`
}

/* ================= Response DTO ================= */

type DisciplinaVinculo struct {
	Type    string             `json:"@type"`
	ID      string             `json:"id"`
	Codigo  string             `json:"codigo"`
	Nome    string             `json:"nome"`
	Nivel   *int               `json:"nivel"`
	Tipo    string             `json:"tipo"`
	Unidade *shared.UnidadeRef `json:"unidade,omitempty"`
}

type CargaHorariaPresencial struct {
	Teorica       *int `json:"teorica,omitempty"`
	Pratica       *int `json:"pratica,omitempty"`
	Extensionista *int `json:"extensionista,omitempty"`
}

type DisciplinaVinculoDetail struct {
	Type                   string                  `json:"@type"`
	ID                     string                  `json:"id"`
	Codigo                 string                  `json:"codigo"`
	Nome                   string                  `json:"nome"`
	Nivel                  *int                    `json:"nivel"`
	Tipo                   string                  `json:"tipo"`
	CargaHorariaPresencial *CargaHorariaPresencial `json:"cargaHorariaPresencial,omitempty"`
	Unidade                *shared.UnidadeRef      `json:"unidade,omitempty"`
}

/* ================= Mapping ================= */

func FromVinculoRows(rows []DisciplinaVinculoRow) []DisciplinaVinculo {
	items := make([]DisciplinaVinculo, 0, len(rows))
	for _, r := range rows {
		items = append(items, DisciplinaVinculo{
			Type:    "Disciplina",
			ID:      strOr(r.ID, ""),
			Codigo:  strOr(r.ID, ""),
			Nome:    strOr(r.Nome, ""),
			Nivel:   r.Nivel,
			Tipo:    strOr(r.Tipo, ""),
			Unidade: shared.NewUnidadeRef(r.UnidadeCodigo, r.UnidadeNome),
		})
	}
	return items
}

// FromVinculoDetailRow keeps the requested discipline code as the identifier
// when the row lacks one. The in-person workload group appears only when at
// least one of its values is present.
func FromVinculoDetailRow(disciplina string, r DisciplinaVinculoDetailRow) DisciplinaVinculoDetail {
	id := strOr(r.ID, disciplina)
	resp := DisciplinaVinculoDetail{
		Type:    "Disciplina",
		ID:      id,
		Codigo:  id,
		Nome:    strOr(r.Nome, ""),
		Nivel:   r.Nivel,
		Tipo:    strOr(r.Tipo, ""),
		Unidade: shared.NewUnidadeRef(r.UnidadeCodigo, r.UnidadeNome),
	}

	chp := CargaHorariaPresencial{
		Teorica:       r.CHTeorica,
		Pratica:       r.CHPratica,
		Extensionista: r.CHExtensao,
	}
	if chp != (CargaHorariaPresencial{}) {
		resp.CargaHorariaPresencial = &chp
	}

	return resp
}
