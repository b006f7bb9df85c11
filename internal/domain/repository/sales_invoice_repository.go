package repository

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// SalesInvoiceReader puerto de solo lectura hacia el subsistema de
// facturación. Este repositorio nunca escribe facturas: son registros fuente.
type SalesInvoiceReader interface {
	// ListBilledInRange devuelve facturas con estado SENT o PAID y fecha en
	// [from, to], con sus líneas cargadas.
	ListBilledInRange(ctx context.Context, from, to time.Time) ([]*entity.SalesInvoice, error)
}
