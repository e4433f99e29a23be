// Package analytics contém o agregador de somente leitura que compõe o
// resumo do painel a partir do Store e do ledger.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

const (
	limiteCriticos      = 10 // produtos críticos no painel
	limiteMovimentacoes = 10 // movimentações recentes no painel
)

// DashboardUseCase monta o resumo do painel com cinco consultas paralelas.
//
// ProdutosOK é sempre total - esgotados - baixo. Não existe contagem direta
// de OK: sob escrita concorrente os números podem divergir de um filtro
// direto, e esse é o comportamento definido do sistema.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetResumo compõe o DashboardResponse.
func (uc *DashboardUseCase) GetResumo(ctx context.Context) (*dto.DashboardResponse, error) {
	type countResult struct {
		n   int
		err error
	}
	type produtosResult struct {
		produtos []*entity.Produto
		err      error
	}
	type movsResult struct {
		movs []*entity.MovimentacaoEstoque
		err  error
	}

	totalCh := make(chan countResult, 1)
	esgotadosCh := make(chan countResult, 1)
	baixoCh := make(chan countResult, 1)
	criticosCh := make(chan produtosResult, 1)
	recentesCh := make(chan movsResult, 1)

	go func() {
		n, err := uc.repo.CountProdutos(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountEsgotados(ctx)
		esgotadosCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountBaixoEstoque(ctx)
		baixoCh <- countResult{n, err}
	}()
	go func() {
		produtos, err := uc.repo.ListCriticos(ctx, limiteCriticos)
		criticosCh <- produtosResult{produtos, err}
	}()
	go func() {
		movs, err := uc.repo.UltimasMovimentacoes(ctx, limiteMovimentacoes)
		recentesCh <- movsResult{movs, err}
	}()

	total := <-totalCh
	esgotados := <-esgotadosCh
	baixo := <-baixoCh
	criticos := <-criticosCh
	recentes := <-recentesCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de produtos: %w", total.err)
	}
	if esgotados.err != nil {
		return nil, fmt.Errorf("dashboard: produtos esgotados: %w", esgotados.err)
	}
	if baixo.err != nil {
		return nil, fmt.Errorf("dashboard: produtos em baixo estoque: %w", baixo.err)
	}
	if criticos.err != nil {
		return nil, fmt.Errorf("dashboard: produtos críticos: %w", criticos.err)
	}
	if recentes.err != nil {
		return nil, fmt.Errorf("dashboard: últimas movimentações: %w", recentes.err)
	}

	produtosCriticos := make([]dto.ProdutoResponse, 0, len(criticos.produtos))
	for _, p := range criticos.produtos {
		produtosCriticos = append(produtosCriticos, dto.NewProdutoResponse(p))
	}
	ultimas := make([]dto.MovimentacaoResponse, 0, len(recentes.movs))
	for _, m := range recentes.movs {
		ultimas = append(ultimas, dto.NewMovimentacaoResponse(m))
	}

	return &dto.DashboardResponse{
		TotalProdutos:        total.n,
		ProdutosEsgotados:    esgotados.n,
		ProdutosBaixoEstoque: baixo.n,
		ProdutosOK:           total.n - esgotados.n - baixo.n,
		ProdutosCriticos:     produtosCriticos,
		UltimasMovimentacoes: ultimas,
	}, nil
}
