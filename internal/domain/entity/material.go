package entity

// Materiales que maneja la operación. El selector de la UI usa el código
// corto; los registros (releases, viajes, saldos) traen el nombre árabe de la
// mercancía en texto libre, por eso el match es por substring del label.
const (
	MaterialSoy   = "soy"
	MaterialMaize = "maize"
)

// GoodsLabel devuelve el nombre árabe de la mercancía para un código de
// material. ok=false si el código no es conocido.
func GoodsLabel(material string) (label string, ok bool) {
	switch material {
	case MaterialSoy:
		return "صويا", true
	case MaterialMaize:
		return "ذرة", true
	}
	return "", false
}
