package repository

import "github.com/jhoicas/Transporte-api/internal/domain/entity"

// ReleaseRepository puerto de persistencia para إفراجات.
// List devuelve el snapshot completo: las colecciones son de escala
// operativa (cientos de filas) y la conciliación recorre todo en memoria.
type ReleaseRepository interface {
	Create(release *entity.Release) error
	List() ([]*entity.Release, error)
}
