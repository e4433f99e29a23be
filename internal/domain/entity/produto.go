package entity

import "time"

// Status de estoque derivado de (estoque, estoque_minimo). Nunca é persistido;
// sempre recalculado na leitura.
const (
	StatusEsgotado = "ESGOTADO"
	StatusBaixo    = "BAIXO"
	StatusOK       = "OK"
)

// Valores padrão aplicados na criação quando o campo não é informado.
const (
	UnidadePadrao       = "UNIDADE"
	EstoqueMinimoPadrao = 5.0
)

// Produto representa um item de inventário com saldo de estoque rastreado.
// Estoque nunca fica negativo: toda mutação passa pelo motor de estoque,
// exceto o ajuste administrativo direto via atualização de produto.
type Produto struct {
	ID            int64
	Descricao     string
	Unidade       string
	Fornecimento  float64 // quantidade de referência/meta de fornecimento
	Estoque       float64
	EstoqueMinimo float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StatusEstoque classifica o saldo atual contra o limite mínimo.
func (p *Produto) StatusEstoque() string {
	switch {
	case p.Estoque <= 0:
		return StatusEsgotado
	case p.Estoque <= p.EstoqueMinimo:
		return StatusBaixo
	default:
		return StatusOK
	}
}
