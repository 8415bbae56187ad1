package repository

import "github.com/jhoicas/Transporte-api/internal/domain/entity"

// TransportRecordRepository puerto de persistencia para viajes.
type TransportRecordRepository interface {
	Create(record *entity.TransportRecord) error
	List() ([]*entity.TransportRecord, error)
	// UpdateStatus cambia el estado del viaje (DONE/IN_PROGRESS/STOPPED) y,
	// si el nuevo estado es DONE, fija la fecha de descarga.
	UpdateStatus(id, status string) error
}
