package shared

// Value objects and resource references embedded across the academic
// resources. These never stand alone in a response.

// PeriodoLetivo is a (year, term) pair; term is 1 or 2.
type PeriodoLetivo struct {
	Ano     int `json:"ano"`
	Periodo int `json:"periodo"`
}

// CursoRef is the short course reference embedded in other resources.
type CursoRef struct {
	Type   string `json:"@type"`
	ID     string `json:"id"`
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

// UnidadeRef is the organizational-unit reference embedded in courses and
// disciplines.
type UnidadeRef struct {
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

// NewCursoRef builds a course reference, nil when the code is absent.
func NewCursoRef(codigo, nome *string) *CursoRef {
	if codigo == nil || *codigo == "" {
		return nil
	}
	ref := &CursoRef{Type: "Curso", ID: *codigo, Codigo: *codigo}
	if nome != nil {
		ref.Nome = *nome
	}
	return ref
}

// NewUnidadeRef builds a unit reference, nil when the code is absent.
func NewUnidadeRef(codigo, nome *string) *UnidadeRef {
	if codigo == nil || *codigo == "" {
		return nil
	}
	ref := &UnidadeRef{Codigo: *codigo}
	if nome != nil {
		ref.Nome = *nome
	}
	return ref
}
