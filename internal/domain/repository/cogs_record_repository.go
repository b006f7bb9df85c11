package repository

import (
	"context"
	"time"

	"github.com/jhoicas/costeo-api/internal/domain/entity"
)

// COGSRecordRepository define el puerto de persistencia para registros COGS
// manuales (independientes del cálculo transitorio).
type COGSRecordRepository interface {
	// List devuelve registros cuyo período intersecta [from, to]; con límites
	// en nil lista todos.
	List(ctx context.Context, from, to *time.Time) ([]*entity.COGSRecord, error)
	GetByID(ctx context.Context, id string) (*entity.COGSRecord, error)
	Create(ctx context.Context, record *entity.COGSRecord) error
	Update(ctx context.Context, record *entity.COGSRecord) error
	Delete(ctx context.Context, id string) error
}
