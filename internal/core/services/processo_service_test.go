package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRESTService(handler http.HandlerFunc) (*ProcessoService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := postgrest.New(postgrest.Config{
		BaseURL:     srv.URL,
		AnonKey:     "anon",
		ServiceRole: "service",
	})
	return NewProcessoService(client), srv
}

func writeRows(w http.ResponseWriter, status int, rows []map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(rows)
}

func TestCreateDefaultsToDraft(t *testing.T) {
	var gotBody map[string]any
	svc, srv := newRESTService(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeRows(w, http.StatusCreated, []map[string]any{{"id": "p1", "status": "draft"}})
	})
	defer srv.Close()

	row, err := svc.Create(context.Background(), "", &CreateProcessoInput{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, "draft", gotBody["status"])
	assert.Equal(t, "p1", row["id"])
}

func TestUpsertDadosGeraisPatchHit(t *testing.T) {
	var methods []string
	svc, srv := newRESTService(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		writeRows(w, http.StatusOK, []map[string]any{{"processo_id": "p1"}})
	})
	defer srv.Close()

	row, err := svc.UpsertDadosGerais(context.Background(), "", &DadosGeraisInput{ProcessoID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, []string{http.MethodPatch}, methods, "no POST when the PATCH matched a row")
	assert.Equal(t, "p1", row["processo_id"])
}

func TestUpsertDadosGeraisFallsBackToInsert(t *testing.T) {
	var methods []string
	svc, srv := newRESTService(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodPatch {
			writeRows(w, http.StatusOK, []map[string]any{})
			return
		}
		writeRows(w, http.StatusCreated, []map[string]any{{"processo_id": "p1"}})
	})
	defer srv.Close()

	row, err := svc.UpsertDadosGerais(context.Background(), "", &DadosGeraisInput{ProcessoID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, []string{http.MethodPatch, http.MethodPost}, methods)
	assert.Equal(t, "p1", row["processo_id"])
}

func TestGetWizardStatusEscapesProcessoID(t *testing.T) {
	var gotRawQuery string
	svc, srv := newRESTService(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		writeRows(w, http.StatusOK, []map[string]any{{"id": "p1"}})
	})
	defer srv.Close()

	_, err := svc.GetWizardStatus(context.Background(), "", "p1&status=eq.draft")
	require.NoError(t, err)

	assert.Equal(t, "id=eq.p1%26status%3Deq.draft", gotRawQuery)
}

func TestGetWizardStatusNotFound(t *testing.T) {
	svc, srv := newRESTService(func(w http.ResponseWriter, r *http.Request) {
		writeRows(w, http.StatusOK, []map[string]any{})
	})
	defer srv.Close()

	_, err := svc.GetWizardStatus(context.Background(), "", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmitRejectsIncompleteWizard(t *testing.T) {
	svc, srv := newRESTService(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method, "an invalid wizard must never reach the PATCH")
		writeRows(w, http.StatusOK, []map[string]any{{
			"id":             "p1",
			"n_localizacoes": 0,
			"n_atividades":   1,
			"v_dados_gerais": true,
			"v_resp_tecnico": false,
		}})
	})
	defer srv.Close()

	_, err := svc.Submit(context.Background(), "", "p1")
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Errors, 2)
}

func TestSubmitMovesToInReview(t *testing.T) {
	var patched map[string]any
	svc, srv := newRESTService(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeRows(w, http.StatusOK, []map[string]any{{
				"id":             "p1",
				"n_localizacoes": 2,
				"n_atividades":   1,
				"v_dados_gerais": true,
				"v_resp_tecnico": true,
			}})
			return
		}
		json.NewDecoder(r.Body).Decode(&patched)
		writeRows(w, http.StatusOK, []map[string]any{{"id": "p1", "status": "in_review"}})
	})
	defer srv.Close()

	row, err := svc.Submit(context.Background(), "", "p1")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"status": "in_review"}, patched)
	assert.Equal(t, "in_review", row["status"])
}
