package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// EstoqueInsuficienteError indica que uma saída excede o saldo atual.
// Carrega a quantidade disponível para que a mensagem ao chamador a informe.
type EstoqueInsuficienteError struct {
	Disponivel float64
}

func (e *EstoqueInsuficienteError) Error() string {
	return "Estoque insuficiente. Disponível: " + FormatarQuantidade(e.Disponivel)
}

// FormatarQuantidade renderiza uma quantidade no formato do frontend legado:
// valores inteiros ganham casa decimal explícita (7 -> "7.0").
func FormatarQuantidade(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
