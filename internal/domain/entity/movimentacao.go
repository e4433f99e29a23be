package entity

import "time"

// Tipos de movimentação de estoque.
const (
	TipoEntrada = "ENTRADA"
	TipoSaida   = "SAIDA"
)

// MovimentacaoEstoque é o registro imutável de uma entrada ou saída.
// O ledger é append-only: não existem operações de alteração ou remoção.
type MovimentacaoEstoque struct {
	ID               int64
	ProdutoID        int64
	ProdutoDescricao string // preenchido via JOIN nas listagens, não persistido
	Tipo             string
	Quantidade       float64 // sempre > 0; o tipo indica a direção
	Observacao       string
	DataMovimentacao time.Time
}
