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

func newAguaService(handler http.HandlerFunc) (*ConsumoAguaService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := postgrest.New(postgrest.Config{BaseURL: srv.URL, AnonKey: "anon", ServiceRole: "service"})
	return NewConsumoAguaService(client), srv
}

func TestAguaUpsertColumnNames(t *testing.T) {
	var gotBody map[string]any
	svc, srv := newAguaService(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeRows(w, http.StatusOK, []map[string]any{{"processo_id": "p1"}})
	})
	defer srv.Close()

	humano := 15.5
	despejo := 35.0
	_, err := svc.Upsert(context.Background(), "", &ConsumoAguaInput{
		ProcessoID:                "p1",
		OrigemPocoCacimba:         true,
		OrigemCaptacaoSuperficial: true,
		ConsumoUsoHumanoM3Dia:     &humano,
		VolumeDespejoDiarioM3Dia:  &despejo,
	})
	require.NoError(t, err)

	assert.Equal(t, true, gotBody["origem_poco_cacimba"])
	assert.Equal(t, true, gotBody["origem_captacao_superficial"])
	assert.Equal(t, false, gotBody["origem_captacao_pluvial"])
	assert.Equal(t, false, gotBody["origem_outro"])
	assert.Equal(t, 15.5, gotBody["consumo_uso_humano_m3_dia"])
	assert.Equal(t, 35.0, gotBody["volume_despejo_diario_m3_dia"])
}

func TestAguaGetEscapesProcessoID(t *testing.T) {
	var gotRawQuery string
	svc, srv := newAguaService(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		writeRows(w, http.StatusOK, []map[string]any{{"processo_id": "p1"}})
	})
	defer srv.Close()

	_, err := svc.Get(context.Background(), "", "p1&status=eq.draft")
	require.NoError(t, err)

	assert.Equal(t, "processo_id=eq.p1%26status%3Deq.draft", gotRawQuery,
		"filter metacharacters in the id must not reach PostgREST unescaped")
}

func TestAguaDeleteMissingForm(t *testing.T) {
	svc, srv := newAguaService(func(w http.ResponseWriter, r *http.Request) {
		writeRows(w, http.StatusOK, []map[string]any{})
	})
	defer srv.Close()

	err := svc.Delete(context.Background(), "", "p-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
