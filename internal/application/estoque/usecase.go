package estoque

import (
	"context"
	"time"

	"github.com/jhoicas/Controle-estoque-api/internal/application/dto"
	"github.com/jhoicas/Controle-estoque-api/internal/domain"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

// EstoqueUseCase é o único escritor de saldo de estoque. Cada entrada ou
// baixa bloqueia a linha do produto (SELECT FOR UPDATE), muta o saldo e
// grava exatamente uma movimentação no ledger, tudo na mesma transação.
//
// A ordem de validação é fixa: produto inexistente (NotFound) antes de
// qualquer verificação de quantidade.
type EstoqueUseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
}

// NewEstoqueUseCase constrói o caso de uso.
func NewEstoqueUseCase(txRunner TxRunner, produtoRepo repository.ProdutoRepository) *EstoqueUseCase {
	return &EstoqueUseCase{txRunner: txRunner, produtoRepo: produtoRepo}
}

// Entrada soma quantidade ao estoque e registra movimentação ENTRADA.
func (uc *EstoqueUseCase) Entrada(ctx context.Context, produtoID int64, quantidade float64, observacao string) (*dto.OperacaoEstoqueResponse, error) {
	if err := uc.validar(produtoID, quantidade); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var produto *entity.Produto
	var mov *entity.MovimentacaoEstoque

	err := uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		p, err := produtoRepo.GetForUpdate(produtoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		p.Estoque += quantidade
		p.UpdatedAt = now
		if err := produtoRepo.Update(p); err != nil {
			return err
		}
		m := &entity.MovimentacaoEstoque{
			ProdutoID:        p.ID,
			ProdutoDescricao: p.Descricao,
			Tipo:             entity.TipoEntrada,
			Quantidade:       quantidade,
			Observacao:       observacao,
			DataMovimentacao: now,
		}
		if err := movRepo.Create(m); err != nil {
			return err
		}
		produto, mov = p, m
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.OperacaoEstoqueResponse{
		Message:      "Entrada realizada com sucesso",
		Produto:      dto.NewProdutoResponse(produto),
		Movimentacao: dto.NewMovimentacaoResponse(mov),
	}, nil
}

// Baixa subtrai quantidade do estoque e registra movimentação SAIDA.
// Falha com EstoqueInsuficienteError se quantidade > saldo atual; a
// verificação acontece sob o bloqueio de linha, então duas baixas
// concorrentes não conseguem sacar além do saldo.
func (uc *EstoqueUseCase) Baixa(ctx context.Context, produtoID int64, quantidade float64, observacao string) (*dto.OperacaoEstoqueResponse, error) {
	if err := uc.validar(produtoID, quantidade); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var produto *entity.Produto
	var mov *entity.MovimentacaoEstoque

	err := uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentacaoRepository,
	) error {
		p, err := produtoRepo.GetForUpdate(produtoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Estoque < quantidade {
			return &domain.EstoqueInsuficienteError{Disponivel: p.Estoque}
		}
		p.Estoque -= quantidade
		p.UpdatedAt = now
		if err := produtoRepo.Update(p); err != nil {
			return err
		}
		m := &entity.MovimentacaoEstoque{
			ProdutoID:        p.ID,
			ProdutoDescricao: p.Descricao,
			Tipo:             entity.TipoSaida,
			Quantidade:       quantidade,
			Observacao:       observacao,
			DataMovimentacao: now,
		}
		if err := movRepo.Create(m); err != nil {
			return err
		}
		produto, mov = p, m
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.OperacaoEstoqueResponse{
		Message:      "Baixa realizada com sucesso",
		Produto:      dto.NewProdutoResponse(produto),
		Movimentacao: dto.NewMovimentacaoResponse(mov),
	}, nil
}

// validar aplica as pré-condições comuns: produto existe (antes de qualquer
// outra validação) e quantidade positiva.
func (uc *EstoqueUseCase) validar(produtoID int64, quantidade float64) error {
	p, err := uc.produtoRepo.GetByID(produtoID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if quantidade <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}
