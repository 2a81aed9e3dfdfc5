package models

// Pessoa maps the f_pessoa registry table (legacy schema - read-mostly).
// Only the columns used by the authentication flow are mapped; the v1
// registration surface writes to this table through PostgREST, not GORM.
type Pessoa struct {
	PkPessoa                 int64  `gorm:"column:pkpessoa;primaryKey" json:"pkpessoa"`
	Nome                     string `gorm:"column:nome" json:"nome"`
	Perfil                   string `gorm:"column:perfil" json:"perfil"`
	Tipo                     string `gorm:"column:tipo" json:"tipo"`
	CPF                      string `gorm:"column:cpf" json:"cpf"`
	CNPJ                     string `gorm:"column:cnpj" json:"cnpj"`
	Passaporte               string `gorm:"column:passaporte" json:"passaporte"`
	IdentificacaoEstrangeiro string `gorm:"column:identificacao_estrangeiro" json:"identificacao_estrangeiro"`
	Senha                    string `gorm:"column:senha" json:"-"`
	SenhaHash                string `gorm:"column:senha_hash" json:"-"`
	Status                   int    `gorm:"column:status" json:"status"`
	Bloqueado                bool   `gorm:"column:bloqueado" json:"bloqueado"`
}

func (Pessoa) TableName() string {
	return "f_pessoa"
}

// StoredPassword returns the single password representation the verifier
// cascades over: the hash column when present, the plaintext column
// otherwise. The format of either value is inferred structurally.
func (p *Pessoa) StoredPassword() string {
	if p.SenhaHash != "" {
		return p.SenhaHash
	}
	return p.Senha
}

// Ativo reports whether the account may log in at all
func (p *Pessoa) Ativo() bool {
	return p.Status == 1
}

// Usuario maps the f_usuario profile table used for display names
type Usuario struct {
	PkUsuario    int64  `gorm:"column:pkusuario;primaryKey" json:"pkusuario"`
	FkPessoa     int64  `gorm:"column:fkpessoa;index" json:"fkpessoa"`
	NomeExibicao string `gorm:"column:nomeexibicao" json:"nomeexibicao"`
}

func (Usuario) TableName() string {
	return "f_usuario"
}
