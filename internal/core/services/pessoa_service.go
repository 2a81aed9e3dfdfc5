package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"sema-licenca/internal/adapters/postgrest"
	"sema-licenca/internal/core/domain"
)

// PessoaService forwards person-registry operations to PostgREST
type PessoaService struct {
	rest *postgrest.Client
}

// NewPessoaService creates a new pessoa service
func NewPessoaService(rest *postgrest.Client) *PessoaService {
	return &PessoaService{rest: rest}
}

// ContatoInput is the contact and address block shared by the three
// person kinds, in the f_pessoa column vocabulary
type ContatoInput struct {
	Telefone             *string `json:"telefone,omitempty"`
	TelefoneAlternativo1 *string `json:"telefonealternativo1,omitempty"`
	TelefoneAlternativo2 *string `json:"telefonealternativo2,omitempty"`
	Email                *string `json:"email,omitempty"`
	EmailAlternativo     *string `json:"emailalternativo,omitempty"`
	Fax                  *string `json:"fax,omitempty"`
	Endereco             *string `json:"endereco,omitempty"`
	Complemento          *string `json:"complemento,omitempty"`
	CEP                  *string `json:"cep,omitempty"`
	Cidade               *string `json:"cidade,omitempty"`
	FkEstado             *int    `json:"fkestado,omitempty"`
	FkMunicipio          *int    `json:"fkmunicipio,omitempty"`
	FkPais               *int    `json:"fkpais,omitempty"`
	CaixaPostal          *string `json:"caixapostal,omitempty"`
}

// PessoaFisicaInput registers a natural person (tipo 1)
type PessoaFisicaInput struct {
	ContatoInput
	Nome            string  `json:"nome"`
	CPF             string  `json:"cpf"`
	DataNascimento  *string `json:"datanascimento,omitempty"`
	RG              *string `json:"rg,omitempty"`
	OrgaoEmissor    *string `json:"orgaoemissor,omitempty"`
	FkEstadoEmissor *int    `json:"fkestadoemissor,omitempty"`
	Naturalidade    *string `json:"naturalidade,omitempty"`
	Nacionalidade   *string `json:"nacionalidade,omitempty"`
	EstadoCivil     *string `json:"estadocivil,omitempty"`
	Sexo            *string `json:"sexo,omitempty"`
	Profissao       *string `json:"profissao,omitempty"`
	FkProfissao     *int    `json:"fkprofissao,omitempty"`
	FiliacaoMae     *string `json:"filiacaomae,omitempty"`
	FiliacaoPai     *string `json:"filiacaopai,omitempty"`
	Passaporte      *string `json:"passaporte,omitempty"`
	DataPassaporte  *string `json:"datapassaporte,omitempty"`
	Status          *int    `json:"status,omitempty"`
}

// PessoaJuridicaInput registers a company (tipo 2)
type PessoaJuridicaInput struct {
	ContatoInput
	RazaoSocial            string  `json:"razaosocial"`
	CNPJ                   string  `json:"cnpj"`
	Nome                   *string `json:"nome,omitempty"`
	NomeFantasia           *string `json:"nomefantasia,omitempty"`
	InscricaoEstadual      *string `json:"inscricaoestadual,omitempty"`
	FkUfInscricaoEstadual  *int    `json:"fkufinscricaoestadual,omitempty"`
	InscricaoMunicipal     *string `json:"inscricaomunicipal,omitempty"`
	CnaeFiscal             *string `json:"cnaefiscal,omitempty"`
	DataInicioAtividade    *string `json:"datainicioatividade,omitempty"`
	FkNaturezaJuridica     *int    `json:"fknaturezajuridica,omitempty"`
	FkPorte                *int    `json:"fkporte,omitempty"`
	PorteEmpresa           *string `json:"porteempresa,omitempty"`
	SituacaoPessoaJuridica *string `json:"situacaopessoajuridica,omitempty"`
	SimplesNacional        *bool   `json:"simplesnacional,omitempty"`
	CrcContador            *string `json:"crccontador,omitempty"`
	Status                 *int    `json:"status,omitempty"`
}

// PessoaEstrangeiraInput registers a foreign person (tipo 3)
type PessoaEstrangeiraInput struct {
	ContatoInput
	Nome                         string  `json:"nome"`
	IdentificacaoEstrangeira     string  `json:"identificacaoestrangeira"`
	TipoIdentificacaoEstrangeira *string `json:"tipoidentificacaoestrangeira,omitempty"`
	DataNascimento               *string `json:"datanascimento,omitempty"`
	Nacionalidade                *string `json:"nacionalidade,omitempty"`
	Passaporte                   *string `json:"passaporte,omitempty"`
	DataPassaporte               *string `json:"datapassaporte,omitempty"`
	Status                       *int    `json:"status,omitempty"`
}

// ListPessoasQuery carries optional list filters
type ListPessoasQuery struct {
	Tipo   *int
	Status *int
	Limit  int
	Offset int
}

const pessoasResource = "/f_pessoa"

func (s *PessoaService) create(ctx context.Context, bearer string, tipo int, input any) (postgrest.Row, error) {
	payload, err := toPayload(input)
	if err != nil {
		return nil, err
	}
	payload["tipo"] = tipo
	payload["datacadastro"] = time.Now().UTC().Format(time.RFC3339)
	rows, err := s.rest.Post(ctx, pessoasResource, payload, s.rest.HeadersFor(bearer))
	if err != nil {
		return nil, err
	}
	return firstRow(rows), nil
}

// CreateFisica inserts a pessoa física row
func (s *PessoaService) CreateFisica(ctx context.Context, bearer string, input *PessoaFisicaInput) (postgrest.Row, error) {
	return s.create(ctx, bearer, domain.TipoPessoaFisica, input)
}

// CreateJuridica inserts a pessoa jurídica row. Nome defaults to the
// razão social when omitted.
func (s *PessoaService) CreateJuridica(ctx context.Context, bearer string, input *PessoaJuridicaInput) (postgrest.Row, error) {
	if input.Nome == nil || *input.Nome == "" {
		input.Nome = &input.RazaoSocial
	}
	return s.create(ctx, bearer, domain.TipoPessoaJuridica, input)
}

// CreateEstrangeira inserts a pessoa estrangeira row
func (s *PessoaService) CreateEstrangeira(ctx context.Context, bearer string, input *PessoaEstrangeiraInput) (postgrest.Row, error) {
	return s.create(ctx, bearer, domain.TipoPessoaEstrangeira, input)
}

// List returns pessoas newest first, with optional tipo/status filters
func (s *PessoaService) List(ctx context.Context, bearer string, query *ListPessoasQuery) ([]postgrest.Row, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	params := url.Values{}
	params.Set("order", "pkpessoa.desc")
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("offset", fmt.Sprintf("%d", offset))
	if query.Tipo != nil {
		params.Set("tipo", fmt.Sprintf("eq.%d", *query.Tipo))
	}
	if query.Status != nil {
		params.Set("status", fmt.Sprintf("eq.%d", *query.Status))
	}

	return s.rest.Get(ctx, pessoasResource+"?"+params.Encode(), s.rest.HeadersFor(bearer))
}

// Get fetches a single pessoa by primary key
func (s *PessoaService) Get(ctx context.Context, bearer string, pkPessoa int) (postgrest.Row, error) {
	rows, err := s.rest.Get(ctx, fmt.Sprintf("%s?pkpessoa=eq.%d", pessoasResource, pkPessoa), s.rest.HeadersFor(bearer))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0], nil
}

// Update patches a pessoa row with the non-nil fields of the payload
func (s *PessoaService) Update(ctx context.Context, bearer string, pkPessoa int, fields map[string]any) (postgrest.Row, error) {
	if _, err := s.Get(ctx, bearer, pkPessoa); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nenhum campo para atualizar", domain.ErrInvalidInput)
	}
	fields["dataultimaalteracao"] = time.Now().UTC().Format(time.RFC3339)

	rows, err := s.rest.Patch(ctx, fmt.Sprintf("%s?pkpessoa=eq.%d", pessoasResource, pkPessoa), fields, s.rest.HeadersFor(bearer))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0], nil
}

// Delete removes a pessoa row after confirming it exists
func (s *PessoaService) Delete(ctx context.Context, bearer string, pkPessoa int) error {
	if _, err := s.Get(ctx, bearer, pkPessoa); err != nil {
		return err
	}
	return s.rest.Delete(ctx, fmt.Sprintf("%s?pkpessoa=eq.%d", pessoasResource, pkPessoa), s.rest.HeadersFor(bearer))
}
