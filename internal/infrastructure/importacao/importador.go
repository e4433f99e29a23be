// Package importacao carrega produtos em massa a partir da planilha legada
// em CSV (quatro colunas posicionais, sem cabeçalho: descrição, unidade,
// fornecimento, estoque).
package importacao

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/entity"
	"github.com/jhoicas/Controle-estoque-api/internal/domain/repository"
	"github.com/jhoicas/Controle-estoque-api/pkg/logger"
)

// LinhaPlanilha linha posicional da planilha. Os campos numéricos chegam
// como texto e são convertidos por linha, para que uma célula inválida
// descarte só aquela linha e nunca o lote inteiro.
type LinhaPlanilha struct {
	Descricao    string
	Unidade      string
	Fornecimento string
	Estoque      string
}

// Resultado contagem final da carga.
type Resultado struct {
	Importados int
	Ignorados  int
}

// ReiniciadorBase apaga todos os dados antes da carga (a importação é
// destrutiva: substitui a base inteira).
type ReiniciadorBase interface {
	ReiniciarBase(ctx context.Context) error
}

// Importador executa a carga em massa.
type Importador struct {
	base        ReiniciadorBase
	produtoRepo repository.ProdutoRepository
	log         *logger.Logger
}

// NewImportador constrói o importador.
func NewImportador(base ReiniciadorBase, produtoRepo repository.ProdutoRepository, log *logger.Logger) *Importador {
	return &Importador{base: base, produtoRepo: produtoRepo, log: log}
}

// Importar reinicia a base e carrega cada linha como produto novo com
// estoque mínimo padrão. Linhas com valores não conversíveis são puladas e
// contadas; erros de persistência abortam a carga.
func (i *Importador) Importar(ctx context.Context, r io.Reader) (Resultado, error) {
	var res Resultado

	leitor := csv.NewReader(r)
	leitor.FieldsPerRecord = -1
	leitor.LazyQuotes = true

	var linhas []LinhaPlanilha
	if err := gocsv.UnmarshalCSVWithoutHeaders(leitor, &linhas); err != nil {
		return res, fmt.Errorf("ler planilha: %w", err)
	}

	if err := i.base.ReiniciarBase(ctx); err != nil {
		return res, err
	}

	now := time.Now().UTC()
	for idx, linha := range linhas {
		p, err := ConverterLinha(idx, linha, now)
		if err != nil {
			i.log.Warn().Int("linha", idx+1).Err(err).Msg("linha ignorada")
			res.Ignorados++
			continue
		}
		if err := i.produtoRepo.Create(p); err != nil {
			return res, fmt.Errorf("gravar produto da linha %d: %w", idx+1, err)
		}
		res.Importados++
	}
	return res, nil
}

// ConverterLinha converte uma linha posicional em Produto. Campos vazios
// recebem os padrões da planilha legada (descrição "Produto N", unidade
// UNIDADE, numéricos zero); numéricos preenchidos e inválidos são erro.
func ConverterLinha(idx int, l LinhaPlanilha, now time.Time) (*entity.Produto, error) {
	descricao := strings.TrimSpace(l.Descricao)
	if descricao == "" {
		descricao = fmt.Sprintf("Produto %d", idx+1)
	}
	unidade := strings.TrimSpace(l.Unidade)
	if unidade == "" {
		unidade = entity.UnidadePadrao
	}
	fornecimento, err := converterNumero(l.Fornecimento)
	if err != nil {
		return nil, fmt.Errorf("fornecimento inválido %q: %w", l.Fornecimento, err)
	}
	estoque, err := converterNumero(l.Estoque)
	if err != nil {
		return nil, fmt.Errorf("estoque inválido %q: %w", l.Estoque, err)
	}
	return &entity.Produto{
		Descricao:     descricao,
		Unidade:       unidade,
		Fornecimento:  fornecimento,
		Estoque:       estoque,
		EstoqueMinimo: entity.EstoqueMinimoPadrao,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func converterNumero(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
