package services

import (
	"context"
	"net/url"

	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/core/domain"
)

// ConsumoAguaService forwards the water-consumption form to PostgREST
type ConsumoAguaService struct {
	rest *postgrest.Client
}

// NewConsumoAguaService creates a new consumo-de-água service
func NewConsumoAguaService(rest *postgrest.Client) *ConsumoAguaService {
	return &ConsumoAguaService{rest: rest}
}

// ConsumoAguaInput is the 1:1 water-consumption form of a process
type ConsumoAguaInput struct {
	ProcessoID                string   `json:"processo_id"`
	OrigemRedePublica         bool     `json:"origem_rede_publica"`
	OrigemPocoArtesiano       bool     `json:"origem_poco_artesiano"`
	OrigemPocoCacimba         bool     `json:"origem_poco_cacimba"`
	OrigemCaptacaoSuperficial bool     `json:"origem_captacao_superficial"`
	OrigemCaptacaoPluvial     bool     `json:"origem_captacao_pluvial"`
	OrigemCaminhaoPipa        bool     `json:"origem_caminhao_pipa"`
	OrigemOutro               bool     `json:"origem_outro"`
	ConsumoUsoHumanoM3Dia     *float64 `json:"consumo_uso_humano_m3_dia,omitempty"`
	ConsumoOutrosUsosM3Dia    *float64 `json:"consumo_outros_usos_m3_dia,omitempty"`
	VolumeDespejoDiarioM3Dia  *float64 `json:"volume_despejo_diario_m3_dia,omitempty"`
	DestinoFinalEfluente      *string  `json:"destino_final_efluente,omitempty"`
}

const consumoAguaResource = "/f_form_consumo_de_agua"

// Upsert updates the form for the process, inserting when no row matched
func (s *ConsumoAguaService) Upsert(ctx context.Context, bearer string, input *ConsumoAguaInput) (postgrest.Row, error) {
	headers := s.rest.HeadersFor(bearer)

	rows, err := s.rest.Patch(ctx, consumoAguaResource+"?processo_id=eq."+url.QueryEscape(input.ProcessoID), input, headers)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		rows, err = s.rest.Post(ctx, consumoAguaResource, input, headers)
		if err != nil {
			return nil, err
		}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Get fetches the form of a process
func (s *ConsumoAguaService) Get(ctx context.Context, bearer, processoID string) (postgrest.Row, error) {
	rows, err := s.rest.Get(ctx, consumoAguaResource+"?processo_id=eq."+url.QueryEscape(processoID), s.rest.HeadersFor(bearer))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0], nil
}

// Delete removes the form of a process after confirming it exists
func (s *ConsumoAguaService) Delete(ctx context.Context, bearer, processoID string) error {
	if _, err := s.Get(ctx, bearer, processoID); err != nil {
		return err
	}
	return s.rest.Delete(ctx, consumoAguaResource+"?processo_id=eq."+url.QueryEscape(processoID), s.rest.HeadersFor(bearer))
}
