// Package xlsx gera a planilha de controle de estoque com excelize,
// reproduzindo o layout da planilha original (cabeçalho estilizado e
// larguras de coluna fixas).
package xlsx

import (
	"fmt"

	"github.com/jhoicas/Controle-estoque-api/internal/application/export"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

var _ export.GeradorXLSX = (*ExcelizeGenerator)(nil)

const nomePlanilha = "Controle de Estoque"

var cabecalhos = []string{"DESCRIÇÃO DO ITEM", "UNIDADE", "FORNECIMENTO", "ESTOQUE"}

// ExcelizeGenerator implementa export.GeradorXLSX sobre excelize.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator constrói o gerador.
func NewExcelizeGenerator() *ExcelizeGenerator {
	return &ExcelizeGenerator{}
}

// Gerar monta o arquivo em memória: linha 1 de cabeçalho em negrito branco
// sobre fundo 366092, centralizado; colunas A=60 e B/C/D=15; uma linha por
// produto na ordem recebida (já ordenada por descrição).
func (g *ExcelizeGenerator) Gerar(produtos []*entity.Produto) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", nomePlanilha); err != nil {
		return nil, fmt.Errorf("renomear aba: %w", err)
	}

	estiloCabecalho, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo do cabeçalho: %w", err)
	}

	for i, h := range cabecalhos {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(nomePlanilha, cell, h); err != nil {
			return nil, fmt.Errorf("escrever cabeçalho: %w", err)
		}
	}
	if err := f.SetCellStyle(nomePlanilha, "A1", "D1", estiloCabecalho); err != nil {
		return nil, fmt.Errorf("aplicar estilo: %w", err)
	}

	for i, p := range produtos {
		row := i + 2
		unidade := p.Unidade
		if unidade == "" {
			unidade = entity.UnidadePadrao
		}
		valores := []any{p.Descricao, unidade, p.Fornecimento, p.Estoque}
		for col, v := range valores {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(nomePlanilha, cell, v); err != nil {
				return nil, fmt.Errorf("escrever linha %d: %w", row, err)
			}
		}
	}

	if err := f.SetColWidth(nomePlanilha, "A", "A", 60); err != nil {
		return nil, fmt.Errorf("largura da coluna A: %w", err)
	}
	if err := f.SetColWidth(nomePlanilha, "B", "D", 15); err != nil {
		return nil, fmt.Errorf("largura das colunas B-D: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
