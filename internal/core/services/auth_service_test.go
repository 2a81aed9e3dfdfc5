package services

import (
	"context"
	"strings"
	"testing"

	"sema-licenca/internal/adapters/persistence/models"
	"sema-licenca/internal/core/domain"
	"sema-licenca/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePessoaRepo struct {
	pessoa  *models.Pessoa
	findErr error

	updatedPk   int64
	updatedHash string
	updateErr   error
}

func (f *fakePessoaRepo) FindByDocumento(ctx context.Context, normalizado string) (*models.Pessoa, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.pessoa, nil
}

func (f *fakePessoaRepo) UpdateSenhaHash(ctx context.Context, pkPessoa int64, hash string) error {
	f.updatedPk = pkPessoa
	f.updatedHash = hash
	return f.updateErr
}

type fakeUsuarioRepo struct {
	name string
	err  error
}

func (f *fakeUsuarioRepo) DisplayNameByPessoa(ctx context.Context, pkPessoa int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.name, nil
}

func activePessoa() *models.Pessoa {
	return &models.Pessoa{
		PkPessoa: 42,
		Nome:     "Maria da Silva",
		Perfil:   "empreendedor",
		Tipo:     "CPF",
		Senha:    "senha123",
		Status:   1,
	}
}

func TestLoginSuccess(t *testing.T) {
	pessoaRepo := &fakePessoaRepo{pessoa: activePessoa()}
	usuarioRepo := &fakeUsuarioRepo{err: gorm.ErrRecordNotFound}
	svc := NewAuthService(pessoaRepo, usuarioRepo, false)

	result, err := svc.Login(context.Background(), &LoginInput{
		Login: "123.456.789-09",
		Senha: "senha123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria da Silva", result.Nome)
	assert.Equal(t, "empreendedor", result.Perfil)
	assert.Equal(t, "42", result.UserID)

	claims, err := token.Decode(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Sub)
	assert.Equal(t, "CPF", claims.Tipo)
	assert.Empty(t, claims.Tdi)
}

func TestLoginDisplayNameOverridesRegistryName(t *testing.T) {
	pessoaRepo := &fakePessoaRepo{pessoa: activePessoa()}
	usuarioRepo := &fakeUsuarioRepo{name: "Maria S."}
	svc := NewAuthService(pessoaRepo, usuarioRepo, false)

	result, err := svc.Login(context.Background(), &LoginInput{Login: "12345678909", Senha: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, "Maria S.", result.Nome)
}

func TestLoginEstrangeiroCarriesTdi(t *testing.T) {
	pessoa := activePessoa()
	pessoa.Tipo = "estrangeiro"
	pessoaRepo := &fakePessoaRepo{pessoa: pessoa}
	svc := NewAuthService(pessoaRepo, &fakeUsuarioRepo{err: gorm.ErrRecordNotFound}, false)

	result, err := svc.Login(context.Background(), &LoginInput{
		Login:               "AB123456",
		Senha:               "senha123",
		TipoDeIdentificacao: "passaporte",
	})
	require.NoError(t, err)

	claims, err := token.Decode(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "ESTRANGEIRO", claims.Tipo)
	assert.Equal(t, "PASSAPORTE", claims.Tdi)
}

func TestLoginUnknownDocumentAndWrongPasswordLookAlike(t *testing.T) {
	svc := NewAuthService(
		&fakePessoaRepo{findErr: gorm.ErrRecordNotFound},
		&fakeUsuarioRepo{},
		false,
	)
	_, errNotFound := svc.Login(context.Background(), &LoginInput{Login: "00000000000", Senha: "x"})

	svc = NewAuthService(&fakePessoaRepo{pessoa: activePessoa()}, &fakeUsuarioRepo{}, false)
	_, errWrongPass := svc.Login(context.Background(), &LoginInput{Login: "12345678909", Senha: "errada"})

	assert.ErrorIs(t, errNotFound, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	pessoa := activePessoa()
	pessoa.Status = 0
	svc := NewAuthService(&fakePessoaRepo{pessoa: pessoa}, &fakeUsuarioRepo{}, false)

	_, err := svc.Login(context.Background(), &LoginInput{Login: "12345678909", Senha: "senha123"})
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestLoginBlockedAccount(t *testing.T) {
	pessoa := activePessoa()
	pessoa.Bloqueado = true
	svc := NewAuthService(&fakePessoaRepo{pessoa: pessoa}, &fakeUsuarioRepo{}, false)

	_, err := svc.Login(context.Background(), &LoginInput{Login: "12345678909", Senha: "senha123"})
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestLoginUnsupportedIdentification(t *testing.T) {
	svc := NewAuthService(&fakePessoaRepo{}, &fakeUsuarioRepo{}, false)

	_, err := svc.Login(context.Background(), &LoginInput{
		Login:               "12345678909",
		Senha:               "x",
		TipoDeIdentificacao: "rg",
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedIdentification)
}

func TestLoginEmptyAfterNormalization(t *testing.T) {
	svc := NewAuthService(&fakePessoaRepo{}, &fakeUsuarioRepo{}, false)

	_, err := svc.Login(context.Background(), &LoginInput{Login: "..--", Senha: "x"})
	assert.ErrorIs(t, err, domain.ErrEmptyLogin)
}

func TestLoginRehashesLegacyPassword(t *testing.T) {
	pessoa := activePessoa()
	// md5("senha123")
	pessoa.Senha = "e7d80ffeefa212b7c5c55700e4f7193e"
	pessoaRepo := &fakePessoaRepo{pessoa: pessoa}
	svc := NewAuthService(pessoaRepo, &fakeUsuarioRepo{err: gorm.ErrRecordNotFound}, true)

	_, err := svc.Login(context.Background(), &LoginInput{Login: "12345678909", Senha: "senha123"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), pessoaRepo.updatedPk)
	assert.True(t, strings.HasPrefix(pessoaRepo.updatedHash, "$2a$"))
}

func TestLoginDoesNotRehashPlaintextMatch(t *testing.T) {
	pessoaRepo := &fakePessoaRepo{pessoa: activePessoa()}
	svc := NewAuthService(pessoaRepo, &fakeUsuarioRepo{err: gorm.ErrRecordNotFound}, true)

	_, err := svc.Login(context.Background(), &LoginInput{Login: "12345678909", Senha: "senha123"})
	require.NoError(t, err)

	assert.Zero(t, pessoaRepo.updatedPk)
	assert.Empty(t, pessoaRepo.updatedHash)
}

func TestLoginPrefersSenhaHashColumn(t *testing.T) {
	pessoa := activePessoa()
	pessoa.Senha = "antiga"
	pessoa.SenhaHash = "e7d80ffeefa212b7c5c55700e4f7193e" // md5("senha123")
	svc := NewAuthService(&fakePessoaRepo{pessoa: pessoa}, &fakeUsuarioRepo{err: gorm.ErrRecordNotFound}, false)

	_, err := svc.Login(context.Background(), &LoginInput{Login: "12345678909", Senha: "senha123"})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{Login: "12345678909", Senha: "antiga"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
