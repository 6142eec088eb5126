package dto

import (
	"encoding/json"
	"testing"
)

func TestFromVinculoDetailRowKeepsRequestedID(t *testing.T) {
	resp := FromVinculoDetailRow("MAT101", DisciplinaVinculoDetailRow{
		Nome: strPtr("Cálculo I"),
	})
	if resp.ID != "MAT101" || resp.Codigo != "MAT101" {
		t.Errorf("id = %q codigo = %q, want the requested code", resp.ID, resp.Codigo)
	}
}

func TestFromVinculoDetailRowWorkloadGroup(t *testing.T) {
	// no workload values at all → no group key
	out, _ := json.Marshal(FromVinculoDetailRow("MAT101", DisciplinaVinculoDetailRow{
		ID:   strPtr("MAT101"),
		Nome: strPtr("Cálculo I"),
	}))
	var m map[string]any
	_ = json.Unmarshal(out, &m)
	if _, ok := m["cargaHorariaPresencial"]; ok {
		t.Error("cargaHorariaPresencial must be absent when every value is missing")
	}

	// one value is enough to materialize the group
	resp := FromVinculoDetailRow("MAT101", DisciplinaVinculoDetailRow{
		ID:        strPtr("MAT101"),
		CHTeorica: intPtr(60),
	})
	if resp.CargaHorariaPresencial == nil {
		t.Fatal("group must be present with one value")
	}
	if resp.CargaHorariaPresencial.Teorica == nil || *resp.CargaHorariaPresencial.Teorica != 60 {
		t.Errorf("teorica = %v", resp.CargaHorariaPresencial.Teorica)
	}
	if resp.CargaHorariaPresencial.Pratica != nil {
		t.Error("pratica must stay omitted inside a partial group")
	}
}

func TestFromVinculoRowsNivelAlwaysSerialized(t *testing.T) {
	items := FromVinculoRows([]DisciplinaVinculoRow{
		{ID: strPtr("MAT101"), Nome: strPtr("Cálculo I")},
	})

	out, _ := json.Marshal(items[0])
	var m map[string]any
	_ = json.Unmarshal(out, &m)

	if v, ok := m["nivel"]; !ok {
		t.Error("nivel key is part of the contract even when the link lacks it")
	} else if v != nil {
		t.Errorf("nivel = %v, want null", v)
	}
	if _, ok := m["tipo"]; !ok {
		t.Error("tipo key is part of the contract")
	}
	if _, ok := m["unidade"]; ok {
		t.Error("unidade must be omitted without a unit code")
	}
}
