package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Validation failures are rejected before any query dispatch, so the routes
// can be exercised without a database behind them.
func newTestApp() *fiber.App {
	app := fiber.New()
	ctl := NewAlunoController(nil)
	app.Get("/Aluno", ctl.List)
	return app
}

func TestListRejectsPagingOutOfBounds(t *testing.T) {
	cases := []struct {
		name   string
		target string
	}{
		{"size zero", "/Aluno?size=0"},
		{"size above cap", "/Aluno?size=101"},
		{"size not a number", "/Aluno?size=abc"},
		{"negative offset", "/Aluno?offset=-1"},
	}

	app := newTestApp()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.target, nil))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != fiber.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422", resp.StatusCode)
			}
		})
	}
}

func TestListRejectsAdmissionPeriodOutOfBounds(t *testing.T) {
	cases := []string{
		"/Aluno?periodoIngresso.ano=1999",
		"/Aluno?periodoIngresso.ano=2041",
		"/Aluno?periodoIngresso.periodo=3",
		"/Aluno?periodoIngresso.periodo=x",
	}

	app := newTestApp()
	for _, target := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusUnprocessableEntity {
			t.Errorf("%s: status = %d, want 422", target, resp.StatusCode)
		}
	}
}
