// Comando importador: carga em massa da planilha legada em CSV.
// Apaga a base e insere cada linha como produto novo.
//
//	go run ./cmd/importador -arquivo planilha.csv
package main

import (
	"context"
	"flag"
	"os"

	"github.com/jhoicas/Controle-estoque-api/internal/infrastructure/importacao"
	"github.com/jhoicas/Controle-estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Controle-estoque-api/pkg/config"
	"github.com/jhoicas/Controle-estoque-api/pkg/logger"
)

func main() {
	arquivo := flag.String("arquivo", "", "caminho do CSV posicional (descrição, unidade, fornecimento, estoque)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	if *arquivo == "" {
		log.Fatal().Msg("uso: importador -arquivo <planilha.csv>")
	}

	f, err := os.Open(*arquivo)
	if err != nil {
		log.Fatal().Err(err).Str("arquivo", *arquivo).Msg("abrir planilha")
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	importador := importacao.NewImportador(
		postgres.NewManutencaoRepository(pool),
		postgres.NewProdutoRepository(pool),
		log,
	)

	res, err := importador.Importar(ctx, f)
	if err != nil {
		log.Fatal().Err(err).Msg("importação falhou")
	}

	log.Info().
		Int("importados", res.Importados).
		Int("ignorados", res.Ignorados).
		Msg("importação concluída")
}
