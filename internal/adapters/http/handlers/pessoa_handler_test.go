package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/core/services"
	"sema-licenca/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPessoaApp(upstream http.HandlerFunc) (*fiber.App, *httptest.Server) {
	srv := httptest.NewServer(upstream)
	client := postgrest.New(postgrest.Config{BaseURL: srv.URL, AnonKey: "anon", ServiceRole: "service"})
	handler := NewPessoaHandler(services.NewPessoaService(client))

	app := fiber.New()
	app.Post("/api/v1/pessoas/estrangeira", handler.CreateEstrangeira)
	return app, srv
}

func TestCreateEstrangeiraRequiresIdentificacao(t *testing.T) {
	app, srv := newPessoaApp(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach PostgREST")
	})
	defer srv.Close()

	raw, err := json.Marshal(map[string]any{"nome": "John Smith"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pessoas/estrangeira", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body response.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Identificação estrangeira é obrigatória", body.Message)
}
