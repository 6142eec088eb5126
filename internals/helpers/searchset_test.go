package helper

import "testing"

func TestBuildPageLinksPresence(t *testing.T) {
	cases := []struct {
		name     string
		size     int
		offset   int
		total    int64
		wantNext bool
		wantPrev bool
	}{
		{"first page with more", 10, 0, 25, true, false},
		{"middle page", 10, 10, 25, true, true},
		{"last page", 10, 20, 25, false, true},
		{"exact fit", 10, 0, 10, false, false},
		{"empty set", 10, 0, 0, false, false},
		{"offset beyond total", 10, 50, 25, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			links := BuildPageLinks("Aluno", nil, tc.size, tc.offset, tc.total)
			if links.Self == "" {
				t.Fatal("self link must always be present")
			}
			if got := links.Next != ""; got != tc.wantNext {
				t.Errorf("next present = %v, want %v", got, tc.wantNext)
			}
			if got := links.Previous != ""; got != tc.wantPrev {
				t.Errorf("previous present = %v, want %v", got, tc.wantPrev)
			}
		})
	}
}

func TestBuildPageLinksOffsets(t *testing.T) {
	links := BuildPageLinks("Curso", nil, 10, 15, 100)

	if want := "Curso?size=10&offset=15"; links.Self != want {
		t.Errorf("self = %q, want %q", links.Self, want)
	}
	if want := "Curso?size=10&offset=25"; links.Next != want {
		t.Errorf("next = %q, want %q", links.Next, want)
	}
	// previous clamps at zero
	if want := "Curso?size=10&offset=5"; links.Previous != want {
		t.Errorf("previous = %q, want %q", links.Previous, want)
	}

	links = BuildPageLinks("Curso", nil, 10, 5, 100)
	if want := "Curso?size=10&offset=0"; links.Previous != want {
		t.Errorf("clamped previous = %q, want %q", links.Previous, want)
	}
}

func TestBuildPageLinksPreserveFilters(t *testing.T) {
	filters := []Filter{
		{Key: "curso", Value: "6351"},
		{Key: "status", Value: "ativo"},
	}
	links := BuildPageLinks("Curriculo", filters, 10, 10, 30)

	want := "Curriculo?curso=6351&status=ativo&size=10&offset=10"
	if links.Self != want {
		t.Errorf("self = %q, want %q", links.Self, want)
	}
	wantNext := "Curriculo?curso=6351&status=ativo&size=10&offset=20"
	if links.Next != wantNext {
		t.Errorf("next = %q, want %q", links.Next, wantNext)
	}
	wantPrev := "Curriculo?curso=6351&status=ativo&size=10&offset=0"
	if links.Previous != wantPrev {
		t.Errorf("previous = %q, want %q", links.Previous, wantPrev)
	}
}

func TestBuildPageLinksEscapesValues(t *testing.T) {
	links := BuildPageLinks("Aluno", []Filter{{Key: "nome", Value: "ana maria"}}, 10, 0, 0)
	if want := "Aluno?nome=ana+maria&size=10&offset=0"; links.Self != want {
		t.Errorf("self = %q, want %q", links.Self, want)
	}
}
