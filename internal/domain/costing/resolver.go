package costing

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// ItemResolver resuelve la descripción de texto libre de una línea de factura
// contra las observaciones de valoración del período. Las líneas de factura no
// llevan FK hacia el ítem: la única unión disponible es la igualdad de
// nombre/código, un acople débil heredado del sistema de facturación que se
// mantiene explícito y sustituible (no se "mejora" a un join por FK).
type ItemResolver interface {
	// Resolve retorna la valoración cuyo nombre o código coincide con la
	// descripción, o nil si no hay coincidencia (la línea costea a cero).
	Resolve(description string) *entity.InventoryValuation
}

// NormalizeKey prepara un nombre/código para comparar por igualdad: recorta
// espacios y aplica normalización Unicode NFC para que dos codificaciones del
// mismo texto (ej. "á" precompuesto vs. combinado) comparen iguales. No hay
// case-folding ni coincidencia difusa: la semántica sigue siendo igualdad.
func NormalizeKey(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NameCodeResolver implementación de ItemResolver indexada en memoria.
// Ante varias valoraciones del mismo ítem dentro de la ventana gana la de
// fecha más reciente.
type NameCodeResolver struct {
	byKey map[string]*entity.InventoryValuation
}

// NewNameCodeResolver construye el índice nombre->valoración y código->valoración.
func NewNameCodeResolver(valuations []*entity.InventoryValuation) *NameCodeResolver {
	r := &NameCodeResolver{byKey: make(map[string]*entity.InventoryValuation, len(valuations)*2)}
	for _, v := range valuations {
		r.index(NormalizeKey(v.ItemName), v)
		r.index(NormalizeKey(v.ItemCode), v)
	}
	return r
}

func (r *NameCodeResolver) index(key string, v *entity.InventoryValuation) {
	if key == "" {
		return
	}
	prev, ok := r.byKey[key]
	if !ok || v.ValuationDate.After(prev.ValuationDate) {
		r.byKey[key] = v
	}
}

// Resolve busca la descripción normalizada en el índice.
func (r *NameCodeResolver) Resolve(description string) *entity.InventoryValuation {
	return r.byKey[NormalizeKey(description)]
}
