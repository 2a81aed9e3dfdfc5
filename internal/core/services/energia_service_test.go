package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sema-licenca/internal/adapters/postgrest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergiaUpsertReplacesFuelList(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var calls []call
	var insertedFuels []map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		switch {
		case r.Method == http.MethodPatch:
			writeRows(w, http.StatusOK, []map[string]any{{"processo_id": "p1"}})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPost && strings.Contains(r.URL.Path, "combustiveis"):
			json.NewDecoder(r.Body).Decode(&insertedFuels)
			writeRows(w, http.StatusCreated, insertedFuels)
		}
	}))
	defer srv.Close()

	client := postgrest.New(postgrest.Config{BaseURL: srv.URL, AnonKey: "anon", ServiceRole: "service"})
	svc := NewEnergiaService(client)

	result, err := svc.Upsert(context.Background(), "", &UsoRecursosInput{
		ProcessoID: "p1",
		UsaLenha:   true,
		Combustiveis: []CombustivelItem{
			{TipoFonte: "Lenha", Equipamento: "Caldeira Principal", Quantidade: 250, Unidade: "m³"},
			{TipoFonte: "Gás Natural", Equipamento: "Forno Industrial I", Quantidade: 80, Unidade: "m³"},
		},
	})
	require.NoError(t, err)

	// PATCH the form, DELETE old fuels, POST the new list
	require.Len(t, calls, 3)
	assert.Equal(t, http.MethodPatch, calls[0].method)
	assert.Equal(t, http.MethodDelete, calls[1].method)
	assert.Contains(t, calls[1].path, "f_form_combustiveis_energia")
	assert.Equal(t, http.MethodPost, calls[2].method)

	require.Len(t, insertedFuels, 2)
	assert.Equal(t, "p1", insertedFuels[0]["processo_id"])
	assert.Equal(t, "Lenha", insertedFuels[0]["tipo_fonte"])
	assert.Equal(t, "Caldeira Principal", insertedFuels[0]["equipamento"])
	assert.Len(t, result.CombustiveisEnergia, 2)
}

func TestEnergiaUpsertColumnNames(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			json.NewDecoder(r.Body).Decode(&gotBody)
		}
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeRows(w, http.StatusOK, []map[string]any{{"processo_id": "p1"}})
	}))
	defer srv.Close()

	client := postgrest.New(postgrest.Config{BaseURL: srv.URL, AnonKey: "anon", ServiceRole: "service"})
	svc := NewEnergiaService(client)

	lenha := 250.0
	ceprof := "CEPROF-12345"
	chamine := 15.0
	captacao := "Filtros ciclônicos"
	_, err := svc.Upsert(context.Background(), "", &UsoRecursosInput{
		ProcessoID:          "p1",
		UsaLenha:            true,
		QuantidadeLenhaM3:   &lenha,
		NumCeprof:           &ceprof,
		PossuiCaldeira:      true,
		AlturaChamineMetros: &chamine,
		PossuiFornos:        true,
		SistemaCaptacao:     &captacao,
	})
	require.NoError(t, err)

	assert.Equal(t, true, gotBody["usa_lenha"])
	assert.Equal(t, 250.0, gotBody["quantidade_lenha_m3"])
	assert.Equal(t, "CEPROF-12345", gotBody["num_ceprof"])
	assert.Equal(t, true, gotBody["possui_caldeira"])
	assert.Equal(t, 15.0, gotBody["altura_chamine_metros"])
	assert.Equal(t, true, gotBody["possui_fornos"])
	assert.Equal(t, "Filtros ciclônicos", gotBody["sistema_captacao"])
}

func TestEnergiaUpsertEmptyListClearsFuels(t *testing.T) {
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeRows(w, http.StatusOK, []map[string]any{{"processo_id": "p1"}})
	}))
	defer srv.Close()

	client := postgrest.New(postgrest.Config{BaseURL: srv.URL, AnonKey: "anon", ServiceRole: "service"})
	svc := NewEnergiaService(client)

	result, err := svc.Upsert(context.Background(), "", &UsoRecursosInput{ProcessoID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, []string{http.MethodPatch, http.MethodDelete}, methods, "no POST for an empty fuel list")
	assert.Empty(t, result.CombustiveisEnergia)
}
