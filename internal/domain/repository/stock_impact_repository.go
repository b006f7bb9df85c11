package repository

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// StockImpactRepository define el puerto de persistencia del libro de
// impactos de stock. El libro es append-only: no existe Update; las filas
// solo salen por Delete (API de borrado directo). El todo-o-nada de una
// corrida de cálculo lo da el TxRunner, no este puerto.
type StockImpactRepository interface {
	Create(ctx context.Context, impact *entity.StockImpact) error
	GetByID(ctx context.Context, id string) (*entity.StockImpact, error)
	// List devuelve impactos con fecha de transacción dentro de [from, to].
	// from y to en nil omiten el límite correspondiente.
	List(ctx context.Context, from, to *time.Time) ([]*entity.StockImpact, error)
	Delete(ctx context.Context, id string) error
}
