// Package export gera a planilha de controle de estoque para download.
package export

import (
	"fmt"
	"time"

	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
)

// GeradorXLSX porta para a geração do arquivo (implementada em
// infrastructure/xlsx sobre excelize).
type GeradorXLSX interface {
	Gerar(produtos []*entity.Produto) ([]byte, error)
}

// ExportUseCase exporta todos os produtos, ordenados por descrição, para um
// arquivo XLSX com nome carimbado com data e hora.
type ExportUseCase struct {
	produtoRepo repository.ProdutoRepository
	gerador     GeradorXLSX
}

// NewExportUseCase constrói o caso de uso.
func NewExportUseCase(produtoRepo repository.ProdutoRepository, gerador GeradorXLSX) *ExportUseCase {
	return &ExportUseCase{produtoRepo: produtoRepo, gerador: gerador}
}

// ExportarProdutos devolve o nome do anexo e o conteúdo binário da planilha.
func (uc *ExportUseCase) ExportarProdutos() (string, []byte, error) {
	produtos, err := uc.produtoRepo.ListAllOrdenado()
	if err != nil {
		return "", nil, err
	}
	conteudo, err := uc.gerador.Gerar(produtos)
	if err != nil {
		return "", nil, fmt.Errorf("gerar planilha: %w", err)
	}
	nome := fmt.Sprintf("controle_estoque_%s.xlsx", time.Now().Format("20060102_150405"))
	return nome, conteudo, nil
}
