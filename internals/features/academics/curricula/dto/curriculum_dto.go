package dto

import (
	"strconv"
	"strings"

	"sigaa_backend/internals/features/academics/shared"
)

/* ================= Composite identifier ================= */

// Curricula are keyed in storage as "<prefix>/<sufixo>" with a fixed
// 4-character prefix; the public identifier swaps the slash for a dot.
// Parsing is positional and deliberately permissive: identifiers shorter
// than the prefix keep their whole text as the prefix and simply match
// nothing downstream.

// FormatID renders the public curriculum identifier.
func FormatID(curso, sufixo string) string {
	return curso + "." + sufixo
}

// SplitID splits a public identifier back into its two parts, satisfying
// SplitID(FormatID(c, s)) == (c, s) for the fixed-width course codes the
// store uses.
func SplitID(id string) (curso, sufixo string) {
	if len(id) <= 4 {
		return id, ""
	}
	return id[:4], id[5:]
}

// StorageID translates a public identifier into the storage key.
func StorageID(id string) string {
	curso, sufixo := SplitID(id)
	return curso + "/" + sufixo
}

/* ================= Query DTO ================= */

type CurriculoListQuery struct {
	Curso  *string `validate:"required"`
	Status *string `validate:"omitempty,oneof=ativo inativo"`
	Size   int     `validate:"gte=1,lte=100"`
	Offset int     `validate:"gte=0"`
}

type DisciplinaListQuery struct {
	Nivel   *int    `validate:"omitempty,gte=1,lte=14"`
	Tipo    *string `validate:"omitempty,oneof=obrigatoria optativa"`
	Unidade *string
}

/* ================= Result rows ================= */

type CurriculoListRow struct {
	Total       int64   `gorm:"column:_total"`
	ID          *string `gorm:"column:id"`
	Status      *string `gorm:"column:status"`
	VigorAno    *string `gorm:"column:periodo_letivo_vigor_ano"`
	VigorNumero *string `gorm:"column:periodo_letivo_vigor_numero"`
	CursoCodigo *string `gorm:"column:curso_codigo"`
	CursoNome   *string `gorm:"column:curso_nome"`
}

type CurriculoDetailRow struct {
	ID          *string `gorm:"column:id"`
	Status      *string `gorm:"column:status"`
	VigorAno    *string `gorm:"column:periodo_letivo_vigor_ano"`
	VigorNumero *string `gorm:"column:periodo_letivo_vigor_numero"`

	CargaHorariaMinimaTotal *int `gorm:"column:carga_horaria_minima_total"`
	CargaHorariaMinimaOpt   *int `gorm:"column:carga_horaria_minima_opt"`
	CargaHorariaObr         *int `gorm:"column:carga_horaria_obr"`
	CargaHorariaEletivaMax  *int `gorm:"column:carga_horaria_eletiva_max"`
	CargaHorariaMaxPeriodo  *int `gorm:"column:carga_horaria_max_periodo"`

	NumPeriodos *int `gorm:"column:num_periodos"`
	MinPeriodos *int `gorm:"column:min_periodos"`
	MaxPeriodos *int `gorm:"column:max_periodos"`

	CursoID   *string `gorm:"column:curso_id"`
	CursoNome *string `gorm:"column:curso_nome"`
}

/* ================= Response DTO ================= */

// FimVigencia has no backing column yet; the contract still serializes the
// key, always as null.

type CurriculoShort struct {
	Type           string                `json:"@type"`
	ID             string                `json:"id"`
	Codigo         string                `json:"codigo"`
	Status         string                `json:"status"`
	Curso          *shared.CursoRef      `json:"curso,omitempty"`
	InicioVigencia *shared.PeriodoLetivo `json:"inicioVigencia,omitempty"`
	FimVigencia    *shared.PeriodoLetivo `json:"fimVigencia"`
}

type CargaHoraria struct {
	TotalMinima               *int `json:"totalMinima,omitempty"`
	Obrigatoria               *int `json:"obrigatoria,omitempty"`
	OptativaMinima            *int `json:"optativaMinima,omitempty"`
	ComponentesEletivosMaxima *int `json:"componentesEletivosMaxima,omitempty"`
	PeriodoLetivoMaxima       *int `json:"periodoLetivoMaxima,omitempty"`
}

type PrazoConclusao struct {
	Minimo *int `json:"minimo,omitempty"`
	Medio  *int `json:"medio,omitempty"`
	Maximo *int `json:"maximo,omitempty"`
}

type CurriculoResponse struct {
	Type           string                `json:"@type"`
	ID             string                `json:"id"`
	Codigo         string                `json:"codigo"`
	Status         string                `json:"status"`
	CargaHoraria   *CargaHoraria         `json:"cargaHoraria,omitempty"`
	PrazoConclusao *PrazoConclusao       `json:"prazoConclusao,omitempty"`
	Curso          *shared.CursoRef      `json:"curso,omitempty"`
	InicioVigencia *shared.PeriodoLetivo `json:"inicioVigencia,omitempty"`
	FimVigencia    *shared.PeriodoLetivo `json:"fimVigencia"`
}

/* ================= Mapping ================= */

// FromListRows builds list items for one fetched page. The query returns only
// the numeric suffix; the public identifier is rebuilt with the requested
// course code.
func FromListRows(curso string, rows []CurriculoListRow) []CurriculoShort {
	items := make([]CurriculoShort, 0, len(rows))
	for _, r := range rows {
		sufixo := strOr(r.ID, "")
		id := sufixo
		if curso != "" && sufixo != "" {
			id = FormatID(curso, sufixo)
		}
		items = append(items, CurriculoShort{
			Type:           "Curriculo",
			ID:             id,
			Codigo:         id,
			Status:         strings.ToLower(strOr(r.Status, "")),
			Curso:          shared.NewCursoRef(r.CursoCodigo, r.CursoNome),
			InicioVigencia: periodoLetivo(r.VigorAno, r.VigorNumero),
		})
	}
	return items
}

// FromDetailRow projects the curriculum detail. The workload and duration
// groups appear only when at least one constituent value is present.
func FromDetailRow(id string, r CurriculoDetailRow) CurriculoResponse {
	resp := CurriculoResponse{
		Type:           "Curriculo",
		ID:             strOr(r.ID, id),
		Codigo:         strOr(r.ID, id),
		Status:         strings.ToLower(strOr(r.Status, "")),
		Curso:          shared.NewCursoRef(r.CursoID, r.CursoNome),
		InicioVigencia: periodoLetivo(r.VigorAno, r.VigorNumero),
	}

	ch := CargaHoraria{
		TotalMinima:               r.CargaHorariaMinimaTotal,
		Obrigatoria:               r.CargaHorariaObr,
		OptativaMinima:            r.CargaHorariaMinimaOpt,
		ComponentesEletivosMaxima: r.CargaHorariaEletivaMax,
		PeriodoLetivoMaxima:       r.CargaHorariaMaxPeriodo,
	}
	if ch != (CargaHoraria{}) {
		resp.CargaHoraria = &ch
	}

	pc := PrazoConclusao{
		Minimo: r.MinPeriodos,
		Medio:  r.NumPeriodos,
		Maximo: r.MaxPeriodos,
	}
	if pc != (PrazoConclusao{}) {
		resp.PrazoConclusao = &pc
	}

	return resp
}

// PaginateByStatus reproduces the /Curriculo list behavior: the SQL page is
// fetched first, the status filter runs over that window only, and the
// offset/size slice is applied again to the filtered items. total therefore
// counts matches inside the fetched window, not the whole backing set; this
// is kept as-is for wire compatibility.
func PaginateByStatus(items []CurriculoShort, status string, offset, size int) (int64, []CurriculoShort) {
	if status != "" {
		kept := make([]CurriculoShort, 0, len(items))
		for _, it := range items {
			if it.Status == status {
				kept = append(kept, it)
			}
		}
		items = kept
	}

	total := int64(len(items))
	if offset >= len(items) {
		return total, []CurriculoShort{}
	}
	end := offset + size
	if end > len(items) {
		end = len(items)
	}
	return total, items[offset:end]
}

func periodoLetivo(ano, numero *string) *shared.PeriodoLetivo {
	if ano == nil || numero == nil {
		return nil
	}
	a, errA := strconv.Atoi(*ano)
	n, errN := strconv.Atoi(*numero)
	if errA != nil || errN != nil {
		return nil
	}
	return &shared.PeriodoLetivo{Ano: a, Periodo: n}
}

func strOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
