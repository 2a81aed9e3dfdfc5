package services

import (
	"context"
	"net/url"

	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/core/domain"
)

// EnergiaService forwards the energy-resources form and its fuel list
// to PostgREST
type EnergiaService struct {
	rest *postgrest.Client
}

// NewEnergiaService creates a new uso-recursos-energia service
func NewEnergiaService(rest *postgrest.Client) *EnergiaService {
	return &EnergiaService{rest: rest}
}

// CombustivelItem is one fuel entry of the energy form
type CombustivelItem struct {
	TipoFonte   string  `json:"tipo_fonte"`
	Equipamento string  `json:"equipamento"`
	Quantidade  float64 `json:"quantidade"`
	Unidade     string  `json:"unidade"`
}

// UsoRecursosInput is the 1:1 energy form plus its N:1 fuel list
type UsoRecursosInput struct {
	ProcessoID          string            `json:"processo_id"`
	UsaLenha            bool              `json:"usa_lenha"`
	QuantidadeLenhaM3   *float64          `json:"quantidade_lenha_m3,omitempty"`
	NumCeprof           *string           `json:"num_ceprof,omitempty"`
	PossuiCaldeira      bool              `json:"possui_caldeira"`
	AlturaChamineMetros *float64          `json:"altura_chamine_metros,omitempty"`
	PossuiFornos        bool              `json:"possui_fornos"`
	SistemaCaptacao     *string           `json:"sistema_captacao,omitempty"`
	Combustiveis        []CombustivelItem `json:"-"`
}

// UsoRecursosResult pairs the saved form with its replaced fuel list
type UsoRecursosResult struct {
	UsoRecursos         postgrest.Row   `json:"uso_recursos"`
	CombustiveisEnergia []postgrest.Row `json:"combustiveis_energia"`
}

const (
	usoRecursosResource  = "/f_form_uso_recursos_energia"
	combustiveisResource = "/f_form_combustiveis_energia"
)

// Upsert saves the energy form and wholesale-replaces the fuel list
func (s *EnergiaService) Upsert(ctx context.Context, bearer string, input *UsoRecursosInput) (*UsoRecursosResult, error) {
	headers := s.rest.HeadersFor(bearer)

	rows, err := s.rest.Patch(ctx, usoRecursosResource+"?processo_id=eq."+url.QueryEscape(input.ProcessoID), input, headers)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		rows, err = s.rest.Post(ctx, usoRecursosResource, input, headers)
		if err != nil {
			return nil, err
		}
	}

	result := &UsoRecursosResult{CombustiveisEnergia: []postgrest.Row{}}
	if len(rows) > 0 {
		result.UsoRecursos = rows[0]
	}

	if err := s.rest.Delete(ctx, combustiveisResource+"?processo_id=eq."+url.QueryEscape(input.ProcessoID), headers); err != nil {
		return nil, err
	}
	if len(input.Combustiveis) > 0 {
		items := make([]map[string]any, 0, len(input.Combustiveis))
		for _, c := range input.Combustiveis {
			item, err := toPayload(c)
			if err != nil {
				return nil, err
			}
			item["processo_id"] = input.ProcessoID
			items = append(items, item)
		}
		inserted, err := s.rest.Post(ctx, combustiveisResource, items, headers)
		if err != nil {
			return nil, err
		}
		result.CombustiveisEnergia = inserted
	}

	return result, nil
}

// Get fetches the energy form and its fuel list for a process
func (s *EnergiaService) Get(ctx context.Context, bearer, processoID string) (*UsoRecursosResult, error) {
	headers := s.rest.HeadersFor(bearer)

	rows, err := s.rest.Get(ctx, usoRecursosResource+"?processo_id=eq."+url.QueryEscape(processoID), headers)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	fuels, err := s.rest.Get(ctx, combustiveisResource+"?processo_id=eq."+url.QueryEscape(processoID)+"&order=created_at.asc", headers)
	if err != nil {
		return nil, err
	}

	return &UsoRecursosResult{UsoRecursos: rows[0], CombustiveisEnergia: fuels}, nil
}

// Delete removes the form and its fuel list for a process
func (s *EnergiaService) Delete(ctx context.Context, bearer, processoID string) error {
	if _, err := s.Get(ctx, bearer, processoID); err != nil {
		return err
	}
	headers := s.rest.HeadersFor(bearer)
	if err := s.rest.Delete(ctx, combustiveisResource+"?processo_id=eq."+url.QueryEscape(processoID), headers); err != nil {
		return err
	}
	return s.rest.Delete(ctx, usoRecursosResource+"?processo_id=eq."+url.QueryEscape(processoID), headers)
}
