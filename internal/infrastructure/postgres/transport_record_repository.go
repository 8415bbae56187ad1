package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.TransportRecordRepository = (*TransportRecordRepo)(nil)

// TransportRecordRepo implementación del puerto TransportRecordRepository sobre PostgreSQL.
type TransportRecordRepo struct {
	pool *pgxpool.Pool
}

// NewTransportRecordRepository construye el adaptador de persistencia para viajes.
func NewTransportRecordRepository(pool *pgxpool.Pool) *TransportRecordRepo {
	return &TransportRecordRepo{pool: pool}
}

// Create persiste un viaje nuevo.
func (r *TransportRecordRepo) Create(record *entity.TransportRecord) error {
	query := `
		INSERT INTO transport_records (id, unloading_site, goods_type, weight, status, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		record.ID, record.UnloadingSite, record.GoodsType, record.Weight,
		record.Status, record.Date, record.CreatedAt, record.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert transport record: %w", err)
	}
	return nil
}

// List devuelve el snapshot completo de viajes.
func (r *TransportRecordRepo) List() ([]*entity.TransportRecord, error) {
	query := `
		SELECT id, unloading_site, goods_type, weight, status, date, created_at, created_by
		FROM transport_records ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transport records: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransportRecord
	for rows.Next() {
		var rec entity.TransportRecord
		if err := rows.Scan(&rec.ID, &rec.UnloadingSite, &rec.GoodsType, &rec.Weight,
			&rec.Status, &rec.Date, &rec.CreatedAt, &rec.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan transport record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del viaje. Al pasar a DONE se fija la fecha
// de descarga (now) si el viaje no traía una.
func (r *TransportRecordRepo) UpdateStatus(id, status string) error {
	query := `
		UPDATE transport_records
		SET status = $2,
		    date = CASE WHEN $2 = 'DONE' AND date IS NULL THEN now() ELSE date END
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update trip status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
