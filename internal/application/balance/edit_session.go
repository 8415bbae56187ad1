package balance

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

// Estados de la sesión de edición.
type SessionState int

const (
	StateIdle SessionState = iota
	StateEditing
	StateSaving
)

// Mensajes hacia la superficie de notificaciones; se conservan en árabe tal
// como los muestra el front.
const (
	msgSaveOK     = "تم تحديث الرصيد بنجاح"
	msgSaveFailed = "فشل في التحديث"
)

// EditSession sostiene la edición en curso de un saldo manual: qué par
// (sitio, mercancía) se edita, la copia staged de los dos campos editables
// y la bandera de guardado.
//
// Máquina de estados:
//
//	idle ──Start──▶ editing ──Commit──▶ saving ──(éxito o fallo)──▶ idle/editing
//	editing ──Cancel──▶ idle
//
// Un Commit mientras hay otro en vuelo se rechaza con ErrSaveInProgress: la
// bandera única de guardado replica el `isUpdating` del componente original.
// En fallo la sesión queda abierta (editing) para reintento manual; no hay
// reintentos automáticos ni detección de conflictos — último write gana.
type EditSession struct {
	repo     repository.FactoryBalanceRepository
	notifier Notifier

	mu     sync.Mutex
	state  SessionState
	staged entity.FactoryBalance
}

// NewEditSession construye la sesión en estado idle.
func NewEditSession(repo repository.FactoryBalanceRepository, notifier Notifier) *EditSession {
	return &EditSession{repo: repo, notifier: notifier}
}

// Start abre la edición del par (sitio, mercancía) con los valores actuales
// como staged. Reabrir sobre otra fila descarta lo staged anterior; si hay
// un guardado en vuelo retorna ErrSaveInProgress.
func (s *EditSession) Start(siteName, goodsType string, opening, consumption decimal.Decimal) error {
	if siteName == "" {
		return fmt.Errorf("%w: site_name requerido", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSaving {
		return domain.ErrSaveInProgress
	}
	s.state = StateEditing
	s.staged = entity.FactoryBalance{
		SiteName:          siteName,
		GoodsType:         goodsType,
		OpeningBalance:    opening,
		ManualConsumption: consumption,
	}
	return nil
}

// Stage reemplaza los dos campos editables de la fila en edición.
func (s *EditSession) Stage(opening, consumption decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return fmt.Errorf("%w: no hay edición en curso", domain.ErrConflict)
	}
	s.staged.OpeningBalance = opening
	s.staged.ManualConsumption = consumption
	return nil
}

// Commit envía el staged al repositorio como upsert por (sitio, mercancía).
// Éxito: sesión a idle + notificación success. Fallo: sesión queda en
// editing para reintento + notificación error, y se retorna el error.
func (s *EditSession) Commit(updatedBy string) error {
	s.mu.Lock()
	switch s.state {
	case StateSaving:
		s.mu.Unlock()
		return domain.ErrSaveInProgress
	case StateIdle:
		s.mu.Unlock()
		return fmt.Errorf("%w: no hay edición en curso", domain.ErrConflict)
	}
	s.state = StateSaving
	staged := s.staged
	s.mu.Unlock()

	staged.ID = uuid.New().String() // id candidato; el upsert conserva el existente
	staged.UpdatedBy = updatedBy
	staged.UpdatedAt = time.Now()

	// La llamada al repositorio va fuera del lock: el lock protege el estado
	// de la sesión, no serializa la I/O.
	err := s.repo.Upsert(&staged)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateEditing
		s.notifier.Notify(msgSaveFailed, SeverityError)
		return fmt.Errorf("guardar saldo manual: %w", err)
	}
	s.state = StateIdle
	s.notifier.Notify(msgSaveOK, SeveritySuccess)
	return nil
}

// Cancel descarta la edición en curso. No interrumpe un guardado en vuelo.
func (s *EditSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateEditing {
		s.state = StateIdle
		s.staged = entity.FactoryBalance{}
	}
}

// State devuelve el estado actual (para tests y diagnóstico).
func (s *EditSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
