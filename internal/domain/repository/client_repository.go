package repository

import (
	"context"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// ClientName proyección id + nombre completo para listados de nombres.
type ClientName struct {
	ID       int64
	FullName string
}

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	// Create inserta el cliente y asigna el ID generado por el store.
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	// GetByFullName busca por nombre completo (clave natural no única):
	// devuelve la primera coincidencia bajo el orden por id.
	GetByFullName(ctx context.Context, fullName string) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
	ListNames(ctx context.Context) ([]ClientName, error)
}
