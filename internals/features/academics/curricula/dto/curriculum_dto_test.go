package dto

import (
	"encoding/json"
	"testing"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestCompositeIDRoundTrip(t *testing.T) {
	cases := []struct {
		curso  string
		sufixo string
	}{
		{"6351", "2"},
		{"1234", "10"},
		{"0001", ""},
	}
	for _, tc := range cases {
		id := FormatID(tc.curso, tc.sufixo)
		curso, sufixo := SplitID(id)
		if curso != tc.curso || sufixo != tc.sufixo {
			t.Errorf("SplitID(FormatID(%q, %q)) = (%q, %q)", tc.curso, tc.sufixo, curso, sufixo)
		}
	}
}

func TestStorageID(t *testing.T) {
	cases := map[string]string{
		"6351.2":  "6351/2",
		"1234.10": "1234/10",
		"abc":     "abc/", // short ids pass through positionally, matching nothing
	}
	for public, want := range cases {
		if got := StorageID(public); got != want {
			t.Errorf("StorageID(%q) = %q, want %q", public, got, want)
		}
	}
}

func TestPaginateByStatusFiltersFetchedWindowOnly(t *testing.T) {
	// The backing set has a third 'ativo' row, but only the fetched page of
	// two rows is visible to the filter; total must count matches inside it.
	fetched := []CurriculoShort{
		{ID: "6351.1", Status: "ativo"},
		{ID: "6351.2", Status: "inativo"},
	}

	total, page := PaginateByStatus(fetched, "ativo", 0, 2)
	if total != 1 {
		t.Errorf("total = %d, want 1 (matches inside the fetched window)", total)
	}
	if len(page) != 1 || page[0].ID != "6351.1" {
		t.Errorf("page = %+v", page)
	}
}

func TestPaginateByStatusReslicesFilteredItems(t *testing.T) {
	fetched := []CurriculoShort{
		{ID: "a", Status: "ativo"},
		{ID: "b", Status: "ativo"},
	}

	// offset applies a second time over the filtered window
	total, page := PaginateByStatus(fetched, "ativo", 2, 2)
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if len(page) != 0 {
		t.Errorf("page = %+v, want empty slice", page)
	}
}

func TestPaginateByStatusNoFilter(t *testing.T) {
	fetched := []CurriculoShort{
		{ID: "a", Status: "ativo"},
		{ID: "b", Status: "inativo"},
	}
	total, page := PaginateByStatus(fetched, "", 0, 10)
	if total != 2 || len(page) != 2 {
		t.Errorf("total = %d, len(page) = %d", total, len(page))
	}
}

func TestFromDetailRowOmitsEmptyGroups(t *testing.T) {
	row := CurriculoDetailRow{
		ID:     strPtr("6351.2"),
		Status: strPtr("ativo"),
	}

	out, err := json.Marshal(FromDetailRow("6351.2", row))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}

	if _, ok := m["cargaHoraria"]; ok {
		t.Error("cargaHoraria must be absent when every constituent is missing")
	}
	if _, ok := m["prazoConclusao"]; ok {
		t.Error("prazoConclusao must be absent when every constituent is missing")
	}
	// fimVigencia is a long-term placeholder: always present, always null
	v, ok := m["fimVigencia"]
	if !ok {
		t.Fatal("fimVigencia key must always be serialized")
	}
	if v != nil {
		t.Errorf("fimVigencia = %v, want null", v)
	}
}

func TestFromDetailRowPartialGroup(t *testing.T) {
	row := CurriculoDetailRow{
		ID:              strPtr("6351.2"),
		Status:          strPtr("ativo"),
		CargaHorariaObr: intPtr(2400),
	}

	resp := FromDetailRow("6351.2", row)
	if resp.CargaHoraria == nil {
		t.Fatal("cargaHoraria must be present when any constituent exists")
	}
	if resp.CargaHoraria.Obrigatoria == nil || *resp.CargaHoraria.Obrigatoria != 2400 {
		t.Errorf("obrigatoria = %v", resp.CargaHoraria.Obrigatoria)
	}
	if resp.CargaHoraria.TotalMinima != nil {
		t.Error("totalMinima must stay omitted inside a partial group")
	}
}

func TestMappersLowerCaseStatus(t *testing.T) {
	// the store contract is lowercase but the mapper normalizes regardless
	resp := FromDetailRow("6351.2", CurriculoDetailRow{
		ID:     strPtr("6351.2"),
		Status: strPtr("ATIVO"),
	})
	if resp.Status != "ativo" {
		t.Errorf("detail status = %q, want ativo", resp.Status)
	}

	items := FromListRows("6351", []CurriculoListRow{
		{ID: strPtr("2"), Status: strPtr("Inativo")},
	})
	if items[0].Status != "inativo" {
		t.Errorf("list status = %q, want inativo", items[0].Status)
	}
}

func TestFromListRowsBuildsCompositeID(t *testing.T) {
	rows := []CurriculoListRow{
		{
			Total:       3,
			ID:          strPtr("2"),
			Status:      strPtr("ativo"),
			VigorAno:    strPtr("2017"),
			VigorNumero: strPtr("1"),
			CursoCodigo: strPtr("6351"),
			CursoNome:   strPtr("Engenharia"),
		},
	}

	items := FromListRows("6351", rows)
	if len(items) != 1 {
		t.Fatalf("len = %d", len(items))
	}
	it := items[0]
	if it.ID != "6351.2" || it.Codigo != "6351.2" {
		t.Errorf("id = %q codigo = %q, want 6351.2", it.ID, it.Codigo)
	}
	if it.InicioVigencia == nil || it.InicioVigencia.Ano != 2017 || it.InicioVigencia.Periodo != 1 {
		t.Errorf("inicioVigencia = %+v", it.InicioVigencia)
	}
	if it.Curso == nil || it.Curso.Codigo != "6351" {
		t.Errorf("curso = %+v", it.Curso)
	}
	if it.FimVigencia != nil {
		t.Error("fimVigencia must stay null")
	}
}
