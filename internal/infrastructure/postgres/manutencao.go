package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ManutencaoRepo operações administrativas de base usadas pelo importador.
type ManutencaoRepo struct {
	pool *pgxpool.Pool
}

// NewManutencaoRepository constrói o adaptador de manutenção.
func NewManutencaoRepository(pool *pgxpool.Pool) *ManutencaoRepo {
	return &ManutencaoRepo{pool: pool}
}

// ReiniciarBase apaga todos os produtos e movimentações e reinicia as
// sequências de id. Carga destrutiva: uso exclusivo do importador offline.
func (r *ManutencaoRepo) ReiniciarBase(ctx context.Context) error {
	_, err := r.pool.Exec(ctx,
		`TRUNCATE movimentacoes_estoque, produtos RESTART IDENTITY`)
	if err != nil {
		return fmt.Errorf("reiniciar base: %w", err)
	}
	return nil
}
