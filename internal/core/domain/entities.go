package domain

// IdentificationType is the document kind used to log in
type IdentificationType string

const (
	IdentCPF         IdentificationType = "CPF"
	IdentCNPJ        IdentificationType = "CNPJ"
	IdentPassaporte  IdentificationType = "PASSAPORTE"
	IdentEstrangeiro IdentificationType = "ESTRANGEIRO"
)

// ValidIdentification reports whether t is a supported identification type
func ValidIdentification(t IdentificationType) bool {
	switch t {
	case IdentCPF, IdentCNPJ, IdentPassaporte, IdentEstrangeiro:
		return true
	}
	return false
}

// TipoPessoa values stored in f_pessoa.tipo by the v1 registration surface
const (
	TipoPessoaFisica      = 1
	TipoPessoaJuridica    = 2
	TipoPessoaEstrangeira = 3
)

// Processo status values
const (
	ProcessoStatusDraft    = "draft"
	ProcessoStatusInReview = "in_review"
	ProcessoStatusExpired  = "expired"
)
