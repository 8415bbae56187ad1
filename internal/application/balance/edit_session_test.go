package balance_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbalance "github.com/jhoicas/Transporte-api/internal/application/balance"
	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeBalanceRepo permite inyectar error y bloquear el Upsert para simular
// una llamada de persistencia lenta.
type fakeBalanceRepo struct {
	mu       sync.Mutex
	upserts  []*entity.FactoryBalance
	err      error
	blockCh  chan struct{} // si no es nil, Upsert espera a que se cierre
	entered  chan struct{} // se cierra al entrar al primer Upsert
	enterOne sync.Once
}

func (f *fakeBalanceRepo) List() ([]*entity.FactoryBalance, error) { return nil, nil }

func (f *fakeBalanceRepo) Upsert(b *entity.FactoryBalance) error {
	if f.entered != nil {
		f.enterOne.Do(func() { close(f.entered) })
	}
	if f.blockCh != nil {
		<-f.blockCh
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, b)
	return nil
}

// fakeNotifier acumula las notificaciones emitidas.
type fakeNotifier struct {
	mu     sync.Mutex
	events []string // "severity:message"
}

func (f *fakeNotifier) Notify(message, severity string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, severity+":"+message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de la máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestEditSession_CommitExitoso(t *testing.T) {
	repo := &fakeBalanceRepo{}
	notifier := &fakeNotifier{}
	s := appbalance.NewEditSession(repo, notifier)

	require.NoError(t, s.Start("مصنع طنطا", "صويا", decimal.NewFromInt(10), decimal.NewFromInt(5)))
	assert.Equal(t, appbalance.StateEditing, s.State())

	require.NoError(t, s.Commit("user-1"))
	assert.Equal(t, appbalance.StateIdle, s.State(), "tras éxito la sesión se limpia")

	require.Len(t, repo.upserts, 1)
	saved := repo.upserts[0]
	assert.Equal(t, "مصنع طنطا", saved.SiteName)
	assert.Equal(t, "صويا", saved.GoodsType)
	assert.True(t, decimal.NewFromInt(10).Equal(saved.OpeningBalance))
	assert.True(t, decimal.NewFromInt(5).Equal(saved.ManualConsumption))
	assert.Equal(t, "user-1", saved.UpdatedBy)

	require.Len(t, notifier.events, 1)
	assert.Contains(t, notifier.events[0], "success:")
}

func TestEditSession_StageReemplazaValores(t *testing.T) {
	repo := &fakeBalanceRepo{}
	s := appbalance.NewEditSession(repo, &fakeNotifier{})

	require.NoError(t, s.Start("Factory A", "صويا", decimal.Zero, decimal.Zero))
	require.NoError(t, s.Stage(decimal.NewFromInt(33), decimal.NewFromInt(7)))
	require.NoError(t, s.Commit("user-1"))

	require.Len(t, repo.upserts, 1)
	assert.True(t, decimal.NewFromInt(33).Equal(repo.upserts[0].OpeningBalance))
	assert.True(t, decimal.NewFromInt(7).Equal(repo.upserts[0].ManualConsumption))
}

// Fallo de persistencia: la sesión queda abierta para reintento manual y se
// emite una notificación de error. Sin reintentos automáticos.
func TestEditSession_FalloDejaSesionAbierta(t *testing.T) {
	repo := &fakeBalanceRepo{err: errors.New("conexión perdida")}
	notifier := &fakeNotifier{}
	s := appbalance.NewEditSession(repo, notifier)

	require.NoError(t, s.Start("Factory A", "صويا", decimal.NewFromInt(1), decimal.Zero))
	err := s.Commit("user-1")
	require.Error(t, err)
	assert.Equal(t, appbalance.StateEditing, s.State(), "en fallo la edición sigue abierta")
	require.Len(t, notifier.events, 1)
	assert.Contains(t, notifier.events[0], "error:")

	// Reintento manual: ahora el repo funciona.
	repo.mu.Lock()
	repo.err = nil
	repo.mu.Unlock()
	require.NoError(t, s.Commit("user-1"))
	assert.Equal(t, appbalance.StateIdle, s.State())
}

// Un segundo Commit mientras el primero sigue en vuelo debe rechazarse con
// ErrSaveInProgress (la bandera única de guardado).
func TestEditSession_CommitReentranteSeRechaza(t *testing.T) {
	repo := &fakeBalanceRepo{
		blockCh: make(chan struct{}),
		entered: make(chan struct{}),
	}
	s := appbalance.NewEditSession(repo, &fakeNotifier{})
	require.NoError(t, s.Start("Factory A", "صويا", decimal.NewFromInt(1), decimal.Zero))

	firstDone := make(chan error, 1)
	go func() { firstDone <- s.Commit("user-1") }()

	// Esperar a que el primer Commit esté dentro del Upsert bloqueado.
	select {
	case <-repo.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("el primer Commit nunca llegó al repositorio")
	}

	assert.ErrorIs(t, s.Commit("user-2"), domain.ErrSaveInProgress)
	assert.ErrorIs(t, s.Start("Otro sitio", "ذرة", decimal.Zero, decimal.Zero), domain.ErrSaveInProgress,
		"tampoco se puede abrir otra edición con un guardado en vuelo")

	close(repo.blockCh)
	require.NoError(t, <-firstDone)
	assert.Equal(t, appbalance.StateIdle, s.State())
	assert.Len(t, repo.upserts, 1, "solo el primer Commit debe persistir")
}

func TestEditSession_CommitSinEdicionEsConflicto(t *testing.T) {
	s := appbalance.NewEditSession(&fakeBalanceRepo{}, &fakeNotifier{})
	assert.ErrorIs(t, s.Commit("user-1"), domain.ErrConflict)
}

func TestEditSession_CancelDescartaStaged(t *testing.T) {
	repo := &fakeBalanceRepo{}
	s := appbalance.NewEditSession(repo, &fakeNotifier{})
	require.NoError(t, s.Start("Factory A", "صويا", decimal.NewFromInt(5), decimal.Zero))
	s.Cancel()
	assert.Equal(t, appbalance.StateIdle, s.State())
	assert.ErrorIs(t, s.Commit("user-1"), domain.ErrConflict)
	assert.Empty(t, repo.upserts)
}

func TestEditSession_StartSinSitioEsInvalido(t *testing.T) {
	s := appbalance.NewEditSession(&fakeBalanceRepo{}, &fakeNotifier{})
	assert.ErrorIs(t, s.Start("", "صويا", decimal.Zero, decimal.Zero), domain.ErrInvalidInput)
}
