package repository

import (
	"context"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	// GetByName busca por nombre (clave natural no única): primera
	// coincidencia bajo el orden por id.
	GetByName(ctx context.Context, name string) (*entity.Employee, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
}
