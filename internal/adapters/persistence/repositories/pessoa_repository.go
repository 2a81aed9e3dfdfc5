package repositories

import (
	"context"

	"sema-licenca/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// pessoaRepository implements PessoaRepository
type pessoaRepository struct {
	db *gorm.DB
}

// NewPessoaRepository creates a new pessoa repository
func NewPessoaRepository(db *gorm.DB) PessoaRepository {
	return &pessoaRepository{db: db}
}

// FindByDocumento looks up a credential record by normalized document.
// Exact match only, first row wins.
func (r *pessoaRepository) FindByDocumento(ctx context.Context, normalizado string) (*models.Pessoa, error) {
	var pessoa models.Pessoa
	err := r.db.WithContext(ctx).
		Where("regexp_replace(upper(coalesce(cpf, '')), '[^0-9A-Z]', '', 'g') = ?", normalizado).
		Or("regexp_replace(upper(coalesce(cnpj, '')), '[^0-9A-Z]', '', 'g') = ?", normalizado).
		Or("regexp_replace(upper(coalesce(passaporte, '')), '[^0-9A-Z]', '', 'g') = ?", normalizado).
		Or("regexp_replace(upper(coalesce(identificacao_estrangeiro, '')), '[^0-9A-Z]', '', 'g') = ?", normalizado).
		First(&pessoa).Error
	if err != nil {
		return nil, err
	}
	return &pessoa, nil
}

// UpdateSenhaHash writes the upgraded bcrypt hash for a record
func (r *pessoaRepository) UpdateSenhaHash(ctx context.Context, pkPessoa int64, hash string) error {
	return r.db.WithContext(ctx).
		Model(&models.Pessoa{}).
		Where("pkpessoa = ?", pkPessoa).
		Update("senha_hash", hash).Error
}

// usuarioRepository implements UsuarioRepository
type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates a new usuario repository
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

// DisplayNameByPessoa returns the profile display name for a pessoa
func (r *usuarioRepository) DisplayNameByPessoa(ctx context.Context, pkPessoa int64) (string, error) {
	var usuario models.Usuario
	err := r.db.WithContext(ctx).
		Where("fkpessoa = ?", pkPessoa).
		First(&usuario).Error
	if err != nil {
		return "", err
	}
	return usuario.NomeExibicao, nil
}
