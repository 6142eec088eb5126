package constants

// SIGAA stores several attributes as single-letter codes. The API renders the
// human labels; codes without a mapping pass through unchanged so new values
// in the store never break serialization.

var modalidadeLabels = map[string]string{
	"P": "Presencial",
	"D": "Ead",
}

var turnoLabels = map[string]string{
	"D": "Diurno",
	"N": "Noturno",
}

// Filter input → storage code (the inverse direction: these normalize query
// parameters before binding, not row values after fetching).

var tipoVinculoCodes = map[string]string{
	"obrigatoria": "OBR",
	"optativa":    "OPT",
}

var modalidadeCodes = map[string]string{
	"presencial": "P",
	"ead":        "D",
}

func ModalidadeLabel(code string) string {
	if label, ok := modalidadeLabels[code]; ok {
		return label
	}
	return code
}

func TurnoLabel(code string) string {
	if label, ok := turnoLabels[code]; ok {
		return label
	}
	return code
}

// TipoVinculoCode maps a tipo filter value (obrigatoria, optativa) to the
// storage code; unknown values return "" and the filter stays unset.
func TipoVinculoCode(tipo string) string {
	return tipoVinculoCodes[tipo]
}

// ModalidadeCode maps a modalidade filter value (presencial, ead) to the
// storage code; unknown values return "" and the filter stays unset.
func ModalidadeCode(modalidade string) string {
	return modalidadeCodes[modalidade]
}
