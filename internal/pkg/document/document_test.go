package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"cpf with punctuation", "123.456.789-09", "12345678909"},
		{"cnpj with punctuation", "12.345.678/0001-95", "12345678000195"},
		{"passport lowercase", "ab123456", "AB123456"},
		{"already normalized", "12345678909", "12345678909"},
		{"internal spaces", " 123 456 789 09 ", "12345678909"},
		{"accented letters dropped", "áé12ç34", "1234"},
		{"only punctuation", "..--//", ""},
		{"empty", "", ""},
		{"mixed letters and digits", "x1-y2.z3", "X1Y2Z3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
