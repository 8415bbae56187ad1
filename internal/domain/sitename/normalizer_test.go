package sitename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Transporte-api/internal/domain/sitename"
)

func TestNormalize_RecortaYColapsaEspacios(t *testing.T) {
	assert.Equal(t, "Factory A", sitename.Normalize("  Factory   A "))
	assert.Equal(t, "مصنع طنطا", sitename.Normalize(" مصنع   طنطا  "))
}

func TestNormalize_ColapsaVariantesDeAlef(t *testing.T) {
	// أ، إ، آ → ا
	assert.Equal(t, "مصنع احمد", sitename.Normalize("مصنع أحمد"))
	assert.Equal(t, "مصنع احمد", sitename.Normalize("مصنع إحمد"))
	assert.Equal(t, "مصنع احمد", sitename.Normalize("مصنع آحمد"))
}

func TestNormalize_ColapsaAlefMaqsura(t *testing.T) {
	// ى → ي
	assert.Equal(t, "مصنع مصطفي", sitename.Normalize("مصنع مصطفى"))
}

// La clave canónica debe ser estable: normalizar dos veces no cambia nada.
func TestNormalize_Idempotente(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"Factory A",
		"  Factory   A ",
		"مصنع أحمد",
		"مصنع  إحمد  الجديد",
		"مصنع مصطفى",
		"مصنع\tطنطا\nالجديد",
	}
	for _, in := range inputs {
		once := sitename.Normalize(in)
		twice := sitename.Normalize(once)
		assert.Equal(t, once, twice, "Normalize debe ser idempotente para %q", in)
	}
}

func TestNormalize_VacioQuedaVacio(t *testing.T) {
	assert.Equal(t, "", sitename.Normalize(""))
	assert.Equal(t, "", sitename.Normalize("   \t "))
}

func TestEqual_MismoSitioConVariantes(t *testing.T) {
	assert.True(t, sitename.Equal("مصنع أحمد", " مصنع  احمد"))
	assert.True(t, sitename.Equal("Factory A ", "Factory A"))
	// Escrituras realmente distintas NO se fusionan: limitación documentada.
	assert.False(t, sitename.Equal("مصنع احمد", "مصنع احمد الجديد"))
}
