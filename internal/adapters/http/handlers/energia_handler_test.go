package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergiaRequestFuelListKey(t *testing.T) {
	body := `{
		"processo_id": "PROC-2025-001",
		"usa_lenha": true,
		"quantidade_lenha_m3": 250,
		"combustiveis_energia": [
			{"tipo_fonte": "Lenha", "equipamento": "Caldeira Principal", "quantidade": 250, "unidade": "m³"}
		]
	}`

	var req energiaRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "PROC-2025-001", req.ProcessoID)
	assert.True(t, req.UsaLenha)
	require.Len(t, req.CombustiveisEnergia, 1)
	assert.Equal(t, "Lenha", req.CombustiveisEnergia[0].TipoFonte)
	assert.Equal(t, "Caldeira Principal", req.CombustiveisEnergia[0].Equipamento)
}
