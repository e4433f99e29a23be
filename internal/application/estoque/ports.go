package estoque

import (
	"context"

	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de BD, passando repositórios
// atados a essa transação. Garante a atomicidade do motor de estoque:
// mutação de saldo e gravação no ledger confirmam ou revertem juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error) error
}
