package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/core/domain"
)

// ValidationError aggregates the wizard checks that failed on submit
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "wizard validation failed: " + strings.Join(e.Errors, "; ")
}

// ProcessoService forwards licensing-process operations to PostgREST
type ProcessoService struct {
	rest *postgrest.Client
}

// NewProcessoService creates a new processo service
func NewProcessoService(rest *postgrest.Client) *ProcessoService {
	return &ProcessoService{rest: rest}
}

// CreateProcessoInput is the payload for opening a new process
type CreateProcessoInput struct {
	UserID string `json:"user_id"`
	Status string `json:"status,omitempty"`
}

// DadosGeraisInput upserts the 1:1 general-data record of a process.
// Covers both pessoa física (cpf) and jurídica (cnpj, razao_social, porte).
type DadosGeraisInput struct {
	ProcessoID            string   `json:"processo_id"`
	NumeroProcessoExterno *string  `json:"numero_processo_externo,omitempty"`
	TipoPessoa            *string  `json:"tipo_pessoa,omitempty"`
	CPF                   *string  `json:"cpf,omitempty"`
	CNPJ                  *string  `json:"cnpj,omitempty"`
	RazaoSocial           *string  `json:"razao_social,omitempty"`
	NomeFantasia          *string  `json:"nome_fantasia,omitempty"`
	Porte                 *string  `json:"porte,omitempty"`
	PotencialPoluidor     *string  `json:"potencial_poluidor,omitempty"`
	DescricaoResumo       *string  `json:"descricao_resumo,omitempty"`
	AreaTotal             *float64 `json:"area_total,omitempty"`
	CnaeCodigo            *string  `json:"cnae_codigo,omitempty"`
	CnaeDescricao         *string  `json:"cnae_descricao,omitempty"`
	PossuiLicencaAnterior *bool    `json:"possui_licenca_anterior,omitempty"`
	TipoLicencaAnterior   *string  `json:"tipo_licenca_anterior,omitempty"`
	NumeroLicencaAnterior *string  `json:"numero_licenca_anterior,omitempty"`
	AnoEmissaoLicenca     *int     `json:"ano_emissao_licenca,omitempty"`
	ValidadeLicenca       *string  `json:"validade_licenca,omitempty"`
	NumeroEmpregados      *int     `json:"numero_empregados,omitempty"`
	HorarioInicio         *string  `json:"horario_funcionamento_inicio,omitempty"`
	HorarioFim            *string  `json:"horario_funcionamento_fim,omitempty"`
	ContatoEmail          *string  `json:"contato_email,omitempty"`
	ContatoTelefone       *string  `json:"contato_telefone,omitempty"`
}

// LocalizacaoInput adds one location to a process (N:1)
type LocalizacaoInput struct {
	ProcessoID    string   `json:"processo_id"`
	Endereco      *string  `json:"endereco,omitempty"`
	MunicipioIBGE *string  `json:"municipio_ibge,omitempty"`
	UF            *string  `json:"uf,omitempty"`
	CEP           *string  `json:"cep,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Referencia    *string  `json:"referencia,omitempty"`
}

// WizardStatus is the registration-wizard completion summary of a process
type WizardStatus struct {
	ID            string `json:"id"`
	NLocalizacoes int    `json:"n_localizacoes"`
	NAtividades   int    `json:"n_atividades"`
	VDadosGerais  bool   `json:"v_dados_gerais"`
	VRespTecnico  bool   `json:"v_resp_tecnico"`
}

// Create opens a new licensing process with status draft
func (s *ProcessoService) Create(ctx context.Context, bearer string, input *CreateProcessoInput) (postgrest.Row, error) {
	if input.Status == "" {
		input.Status = domain.ProcessoStatusDraft
	}
	rows, err := s.rest.Post(ctx, "/processos", input, s.rest.HeadersFor(bearer))
	if err != nil {
		return nil, err
	}
	return firstRow(rows), nil
}

// UpsertDadosGerais updates the general-data record of a process, inserting
// it when the update matched no row.
func (s *ProcessoService) UpsertDadosGerais(ctx context.Context, bearer string, input *DadosGeraisInput) (postgrest.Row, error) {
	headers := s.rest.HeadersFor(bearer)

	rows, err := s.rest.Patch(ctx, "/dados_gerais?processo_id=eq."+url.QueryEscape(input.ProcessoID), input, headers)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		rows, err = s.rest.Post(ctx, "/dados_gerais", input, headers)
		if err != nil {
			return nil, err
		}
	}
	return firstRow(rows), nil
}

// AddLocalizacao inserts a location row for the process
func (s *ProcessoService) AddLocalizacao(ctx context.Context, bearer string, input *LocalizacaoInput) (postgrest.Row, error) {
	rows, err := s.rest.Post(ctx, "/localizacoes", input, s.rest.HeadersFor(bearer))
	if err != nil {
		return nil, err
	}
	return firstRow(rows), nil
}

// GetWizardStatus reads the wizard completion summary of a process
func (s *ProcessoService) GetWizardStatus(ctx context.Context, bearer, processoID string) (*WizardStatus, error) {
	rows, err := s.rest.Get(ctx, "/wizard_status?id=eq."+url.QueryEscape(processoID), s.rest.HeadersFor(bearer))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	var status WizardStatus
	if err := decodeRow(rows[0], &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Submit validates the wizard and moves the process to in_review
func (s *ProcessoService) Submit(ctx context.Context, bearer, processoID string) (postgrest.Row, error) {
	status, err := s.GetWizardStatus(ctx, bearer, processoID)
	if err != nil {
		return nil, err
	}

	var errs []string
	if status.NLocalizacoes < 1 {
		errs = append(errs, "Processo deve ter pelo menos 1 localização cadastrada")
	}
	if status.NAtividades < 1 {
		errs = append(errs, "Processo deve ter pelo menos 1 atividade cadastrada")
	}
	if !status.VRespTecnico {
		errs = append(errs, "Responsável técnico deve ser cadastrado")
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	rows, err := s.rest.Patch(ctx, "/processos?id=eq."+url.QueryEscape(processoID),
		map[string]any{"status": domain.ProcessoStatusInReview},
		s.rest.HeadersFor(bearer))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: processo %s", domain.ErrNotFound, processoID)
	}
	return rows[0], nil
}
