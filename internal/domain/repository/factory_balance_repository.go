package repository

import "github.com/jhoicas/Transporte-api/internal/domain/entity"

// FactoryBalanceRepository puerto de persistencia para saldos manuales.
//
// List devuelve los saldos ordenados por created_at ascendente: el agregador
// aplica "el primero gana" cuando más de un registro hace match con el mismo
// par (sitio, mercancía), así que el orden del repositorio ES la regla de
// desempate.
type FactoryBalanceRepository interface {
	List() ([]*entity.FactoryBalance, error)
	// Upsert inserta o actualiza por (site_name, goods_type). Último write
	// gana; no hay control de concurrencia optimista.
	Upsert(balance *entity.FactoryBalance) error
}
