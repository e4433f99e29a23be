package dto

// DashboardResponse resposta de GET /api/dashboard.
//
// ProdutosOK é derivado por subtração (total - esgotados - baixo), nunca por
// contagem direta (ver DashboardUseCase).
type DashboardResponse struct {
	TotalProdutos        int                    `json:"total_produtos"`
	ProdutosEsgotados    int                    `json:"produtos_esgotados"`
	ProdutosBaixoEstoque int                    `json:"produtos_baixo_estoque"`
	ProdutosOK           int                    `json:"produtos_ok"`
	ProdutosCriticos     []ProdutoResponse      `json:"produtos_criticos"`
	UltimasMovimentacoes []MovimentacaoResponse `json:"ultimas_movimentacoes"`
}
