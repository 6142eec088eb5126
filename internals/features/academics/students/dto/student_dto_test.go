package dto

import (
	"encoding/json"
	"testing"
)

func intPtr(n int) *int          { return &n }
func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestPeriodoIngressoParam(t *testing.T) {
	cases := []struct {
		name    string
		ano     *int
		periodo *int
		want    string
		present bool
	}{
		{"both present", intPtr(2024), intPtr(1), "2024.1", true},
		{"only ano", intPtr(2024), nil, "", false},
		{"only periodo", nil, intPtr(2), "", false},
		{"neither", nil, nil, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PeriodoIngressoParam(tc.ano, tc.periodo)
			if tc.present {
				if got == nil || *got != tc.want {
					t.Fatalf("got %v, want %q", got, tc.want)
				}
				return
			}
			if got != nil {
				t.Fatalf("got %q, want no filter at all", *got)
			}
		})
	}
}

func TestFromDetailRowSuppressesMissingIRA(t *testing.T) {
	row := AlunoDetailRow{
		Matricula: strPtr("20240001"),
		Nome:      strPtr("Maria Silva"),
	}

	out, err := json.Marshal(FromDetailRow("20240001", row))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}

	if _, ok := m["ira"]; ok {
		t.Error("ira key must be omitted entirely when the row has no value")
	}
	if _, ok := m["periodoIngresso"]; ok {
		t.Error("periodoIngresso must be omitted without both halves")
	}
	if _, ok := m["curso"]; ok {
		t.Error("curso must be omitted without a course code")
	}
}

func TestFromDetailRowFullRow(t *testing.T) {
	row := AlunoDetailRow{
		Matricula:             strPtr("20240001"),
		Nome:                  strPtr("Maria Silva"),
		CursoCodigo:           strPtr("6351"),
		CursoNome:             strPtr("Engenharia"),
		Curriculo:             strPtr("2"),
		IRA:                   floatPtr(8.7),
		PeriodoIngressoAno:    strPtr("2024"),
		PeriodoIngressoNumero: strPtr("1"),
	}

	resp := FromDetailRow("20240001", row)

	if resp.IRA == nil || *resp.IRA != 8.7 {
		t.Errorf("ira = %v, want 8.7", resp.IRA)
	}
	if resp.PeriodoIngresso == nil || resp.PeriodoIngresso.Ano != 2024 || resp.PeriodoIngresso.Periodo != 1 {
		t.Errorf("periodoIngresso = %+v, want 2024.1", resp.PeriodoIngresso)
	}
	if resp.Curso == nil || resp.Curso.Codigo != "6351" || resp.Curso.Nome != "Engenharia" {
		t.Errorf("curso = %+v", resp.Curso)
	}
	if want := "Curriculo/6351.2"; resp.Curriculo != want {
		t.Errorf("curriculo = %q, want %q", resp.Curriculo, want)
	}
}

func TestFromDetailRowFallsBackToPathID(t *testing.T) {
	resp := FromDetailRow("999", AlunoDetailRow{Nome: strPtr("X")})
	if resp.Matricula != "999" {
		t.Errorf("matricula = %q, want path id fallback", resp.Matricula)
	}
}

func TestFromListRowsStripsTotal(t *testing.T) {
	rows := []AlunoListRow{
		{Total: 42, Matricula: strPtr("1"), Nome: strPtr("A")},
		{Total: 42, Matricula: strPtr("2"), Nome: strPtr("B")},
	}
	items := FromListRows(rows)
	if len(items) != 2 {
		t.Fatalf("len = %d", len(items))
	}

	out, _ := json.Marshal(items[0])
	var m map[string]any
	_ = json.Unmarshal(out, &m)
	if _, ok := m["_total"]; ok {
		t.Error("_total must never reach a serialized item")
	}
	if m["@type"] != "Aluno" {
		t.Errorf("@type = %v", m["@type"])
	}
}
