package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock, sqlDB
}

func TestFindByDocumento(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	rows := sqlmock.NewRows([]string{"pkpessoa", "nome", "tipo", "cpf", "senha", "status"}).
		AddRow(int64(42), "Maria da Silva", "CPF", "123.456.789-09", "senha123", 1)

	mock.ExpectQuery(`SELECT \* FROM "f_pessoa" WHERE regexp_replace(.|\n)*identificacao_estrangeiro`).
		WithArgs("12345678909", "12345678909", "12345678909", "12345678909").
		WillReturnRows(rows)

	repo := NewPessoaRepository(db)
	pessoa, err := repo.FindByDocumento(context.Background(), "12345678909")
	require.NoError(t, err)

	assert.Equal(t, int64(42), pessoa.PkPessoa)
	assert.Equal(t, "Maria da Silva", pessoa.Nome)
	assert.True(t, pessoa.Ativo())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByDocumentoNotFound(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "f_pessoa"`).
		WillReturnRows(sqlmock.NewRows([]string{"pkpessoa"}))

	repo := NewPessoaRepository(db)
	_, err := repo.FindByDocumento(context.Background(), "00000000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateSenhaHash(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectExec(`UPDATE "f_pessoa" SET "senha_hash"`).
		WithArgs("$2a$12$hash", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPessoaRepository(db)
	err := repo.UpdateSenhaHash(context.Background(), 42, "$2a$12$hash")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisplayNameByPessoa(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	rows := sqlmock.NewRows([]string{"pkusuario", "fkpessoa", "nomeexibicao"}).
		AddRow(int64(7), int64(42), "Maria S.")

	mock.ExpectQuery(`SELECT \* FROM "f_usuario" WHERE fkpessoa`).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	repo := NewUsuarioRepository(db)
	name, err := repo.DisplayNameByPessoa(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Maria S.", name)
}
