package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Controle-estoque-api/internal/domain"
)

// FormatarQuantidade reproduz o formato do frontend legado: inteiros ganham
// casa decimal explícita, frações ficam como estão.
func TestFormatarQuantidade(t *testing.T) {
	casos := []struct {
		valor float64
		quer  string
	}{
		{7, "7.0"},
		{0, "0.0"},
		{7.5, "7.5"},
		{0.25, "0.25"},
		{1500, "1500.0"},
		{-3, "-3.0"},
	}
	for _, c := range casos {
		assert.Equal(t, c.quer, domain.FormatarQuantidade(c.valor))
	}
}

func TestEstoqueInsuficienteError_Mensagem(t *testing.T) {
	err := &domain.EstoqueInsuficienteError{Disponivel: 7}
	assert.Equal(t, "Estoque insuficiente. Disponível: 7.0", err.Error())

	err = &domain.EstoqueInsuficienteError{Disponivel: 2.5}
	assert.Equal(t, "Estoque insuficiente. Disponível: 2.5", err.Error())
}
