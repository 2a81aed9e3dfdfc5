package repositories

import (
	"context"

	"sema-licenca/internal/adapters/persistence/models"
)

// PessoaRepository reads credential records from f_pessoa
type PessoaRepository interface {
	// FindByDocumento resolves the unique record whose CPF, CNPJ, passport
	// or foreign-registry number, normalized, equals the already-normalized
	// login. Returns gorm.ErrRecordNotFound when no row matches.
	FindByDocumento(ctx context.Context, normalizado string) (*models.Pessoa, error)

	// UpdateSenhaHash stores a bcrypt hash for the record, used by the
	// opportunistic legacy-password upgrade.
	UpdateSenhaHash(ctx context.Context, pkPessoa int64, hash string) error
}

// UsuarioRepository reads display-name profiles from f_usuario
type UsuarioRepository interface {
	// DisplayNameByPessoa returns the profile display name for a pessoa.
	// Returns gorm.ErrRecordNotFound when the pessoa has no profile row.
	DisplayNameByPessoa(ctx context.Context, pkPessoa int64) (string, error)
}
