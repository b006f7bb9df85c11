package costing

import (
	"strings"

	"github.com/jhoicas/costeo-api/internal/domain"
)

// Métodos de valoración de inventario soportados.
const (
	MethodFIFO             = "fifo"
	MethodLIFO             = "lifo"
	MethodWeightedAverage  = "weighted_average"
	MethodSpecificIdentity = "specific_identification"
)

// ParseMethod normaliza y valida un método de valoración recibido del caller.
// Acepta mayúsculas/minúsculas y espacios alrededor.
func ParseMethod(s string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	switch m {
	case MethodFIFO, MethodLIFO, MethodWeightedAverage, MethodSpecificIdentity:
		return m, nil
	}
	return "", domain.ErrInvalidMethod
}
