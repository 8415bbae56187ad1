package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.ReleaseRepository = (*ReleaseRepo)(nil)

// ReleaseRepo implementación del puerto ReleaseRepository sobre PostgreSQL.
type ReleaseRepo struct {
	pool *pgxpool.Pool
}

// NewReleaseRepository construye el adaptador de persistencia para إفراجات.
func NewReleaseRepository(pool *pgxpool.Pool) *ReleaseRepo {
	return &ReleaseRepo{pool: pool}
}

// Create persiste un إفراج nuevo.
func (r *ReleaseRepo) Create(release *entity.Release) error {
	query := `
		INSERT INTO releases (id, site_name, goods_type, total_quantity, release_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		release.ID, release.SiteName, release.GoodsType, release.TotalQuantity,
		release.ReleaseDate, release.CreatedAt, release.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert release: %w", err)
	}
	return nil
}

// List devuelve el snapshot completo de إفراجات (escala operativa, sin paginar).
func (r *ReleaseRepo) List() ([]*entity.Release, error) {
	query := `
		SELECT id, site_name, goods_type, total_quantity, release_date, created_at, created_by
		FROM releases ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Release
	for rows.Next() {
		var rel entity.Release
		if err := rows.Scan(&rel.ID, &rel.SiteName, &rel.GoodsType, &rel.TotalQuantity,
			&rel.ReleaseDate, &rel.CreatedAt, &rel.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan release: %w", err)
		}
		list = append(list, &rel)
	}
	return list, rows.Err()
}
