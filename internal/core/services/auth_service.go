package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"sema-licenca/internal/adapters/persistence/repositories"
	"sema-licenca/internal/core/domain"
	"sema-licenca/internal/pkg/document"
	"sema-licenca/internal/pkg/password"
	"sema-licenca/internal/pkg/token"

	"gorm.io/gorm"
)

// AuthService authenticates users against f_pessoa
type AuthService struct {
	pessoaRepo   repositories.PessoaRepository
	usuarioRepo  repositories.UsuarioRepository
	rehashLegacy bool
}

// NewAuthService creates a new auth service
func NewAuthService(pessoaRepo repositories.PessoaRepository, usuarioRepo repositories.UsuarioRepository, rehashLegacy bool) *AuthService {
	return &AuthService{
		pessoaRepo:   pessoaRepo,
		usuarioRepo:  usuarioRepo,
		rehashLegacy: rehashLegacy,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Login               string `json:"login"`
	Senha               string `json:"senha"`
	TipoDeIdentificacao string `json:"tipoDeIdentificacao"`
}

// LoginResult represents a successful authentication
type LoginResult struct {
	Token  string `json:"token"`
	Nome   string `json:"nome"`
	Perfil string `json:"perfil,omitempty"`
	UserID string `json:"userId"`
}

// Login authenticates a user by document number and password.
//
// Unknown logins and wrong passwords both map to ErrInvalidCredentials so
// the response cannot be used to enumerate registered documents. Inactive
// or blocked accounts return the distinct ErrAccountDisabled.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	// 1. Resolve identification type, defaulting to CPF
	tdi := domain.IdentificationType(strings.ToUpper(strings.TrimSpace(input.TipoDeIdentificacao)))
	if tdi == "" {
		tdi = domain.IdentCPF
	}
	if !domain.ValidIdentification(tdi) {
		return nil, domain.ErrUnsupportedIdentification
	}

	// 2. Normalize the login
	normalizado := document.Normalize(input.Login)
	if normalizado == "" {
		return nil, domain.ErrEmptyLogin
	}

	// 3. Locate the credential record
	pessoa, err := s.pessoaRepo.FindByDocumento(ctx, normalizado)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 4. Account state checks
	if !pessoa.Ativo() || pessoa.Bloqueado {
		return nil, domain.ErrAccountDisabled
	}

	// 5. Verify the password
	match := password.Check(input.Senha, pessoa.StoredPassword())
	if match == password.MatchNone {
		return nil, domain.ErrInvalidCredentials
	}
	if s.rehashLegacy && match.IsLegacyHash() {
		s.upgradeLegacyPassword(ctx, pessoa.PkPessoa, input.Senha)
	}

	// 6. Resolve the display name, falling back to the registry name
	nome := pessoa.Nome
	if displayName, err := s.usuarioRepo.DisplayNameByPessoa(ctx, pessoa.PkPessoa); err == nil && displayName != "" {
		nome = displayName
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 7. Issue the mock token
	userID := strconv.FormatInt(pessoa.PkPessoa, 10)
	tipo := strings.ToUpper(pessoa.Tipo)
	claims := token.Claims{Sub: userID, Tipo: tipo}
	if tipo == string(domain.IdentEstrangeiro) {
		claims.Tdi = string(tdi)
	}
	tkn, err := token.Issue(claims)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:  tkn,
		Nome:   nome,
		Perfil: pessoa.Perfil,
		UserID: userID,
	}, nil
}

// upgradeLegacyPassword re-hashes a password that matched one of the
// deprecated digest formats. Best effort: a failure here never fails the
// login that triggered it.
func (s *AuthService) upgradeLegacyPassword(ctx context.Context, pkPessoa int64, plain string) {
	hash, err := password.Hash(plain)
	if err != nil {
		log.Printf("⚠️ Legacy password upgrade failed for pessoa %d: %v", pkPessoa, err)
		return
	}
	if err := s.pessoaRepo.UpdateSenhaHash(ctx, pkPessoa, hash); err != nil {
		log.Printf("⚠️ Legacy password upgrade failed for pessoa %d: %v", pkPessoa, err)
	}
}
