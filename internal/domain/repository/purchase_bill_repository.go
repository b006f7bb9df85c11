package repository

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// PurchaseBillReader puerto de solo lectura hacia cuentas por pagar.
type PurchaseBillReader interface {
	// ListApprovedInRange devuelve facturas de compra approved o paid con
	// fecha en [from, to], con sus líneas cargadas.
	ListApprovedInRange(ctx context.Context, from, to time.Time) ([]*entity.PurchaseBill, error)
}
