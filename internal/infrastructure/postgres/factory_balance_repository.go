package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.FactoryBalanceRepository = (*FactoryBalanceRepo)(nil)

// FactoryBalanceRepo implementación del puerto FactoryBalanceRepository sobre PostgreSQL.
type FactoryBalanceRepo struct {
	pool *pgxpool.Pool
}

// NewFactoryBalanceRepository construye el adaptador de persistencia para saldos manuales.
func NewFactoryBalanceRepository(pool *pgxpool.Pool) *FactoryBalanceRepo {
	return &FactoryBalanceRepo{pool: pool}
}

// List devuelve los saldos manuales ordenados por created_at ascendente.
// Ese orden ES la regla de desempate "el primero gana" del agregador.
func (r *FactoryBalanceRepo) List() ([]*entity.FactoryBalance, error) {
	query := `
		SELECT id, site_name, goods_type, opening_balance, manual_consumption,
		       updated_by, created_at, updated_at
		FROM factory_balances ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list factory balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.FactoryBalance
	for rows.Next() {
		var b entity.FactoryBalance
		if err := rows.Scan(&b.ID, &b.SiteName, &b.GoodsType, &b.OpeningBalance,
			&b.ManualConsumption, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan factory balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza el saldo por (site_name, goods_type). Último
// write gana; el id y el created_at originales se conservan en conflicto.
func (r *FactoryBalanceRepo) Upsert(balance *entity.FactoryBalance) error {
	query := `
		INSERT INTO factory_balances
			(id, site_name, goods_type, opening_balance, manual_consumption, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (site_name, goods_type)
		DO UPDATE SET opening_balance    = EXCLUDED.opening_balance,
		              manual_consumption = EXCLUDED.manual_consumption,
		              updated_by         = EXCLUDED.updated_by,
		              updated_at         = now()`
	_, err := r.pool.Exec(context.Background(), query,
		balance.ID, balance.SiteName, balance.GoodsType,
		balance.OpeningBalance, balance.ManualConsumption, balance.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("upsert factory balance: %w", err)
	}
	return nil
}
