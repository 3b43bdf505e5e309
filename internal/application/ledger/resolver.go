package ledger

import (
	"context"

	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

// Kind tipo de entidad resoluble por clave natural.
type Kind string

const (
	KindClient   Kind = "client"
	KindEmployee Kind = "employee"
	KindAccount  Kind = "account"
)

// Resolver traduce claves naturales (nombre completo, número de cuenta) a
// ids internos. Solo lectura, sin efectos secundarios.
//
// Los nombres completos NO son únicos: cuando hay más de una coincidencia se
// toma la primera bajo el orden por id, en silencio. Es una limitación
// conocida del sistema, mantenida a propósito; el número de cuenta y el
// número de identificación sí son únicos.
type Resolver struct {
	clients   repository.ClientRepository
	employees repository.EmployeeRepository
	accounts  repository.AccountRepository
}

// NewResolver construye el resolver con repos de solo lectura (pool).
func NewResolver(
	clients repository.ClientRepository,
	employees repository.EmployeeRepository,
	accounts repository.AccountRepository,
) *Resolver {
	return &Resolver{clients: clients, employees: employees, accounts: accounts}
}

// Resolve devuelve el id interno de la entidad identificada por naturalKey.
// domain.ErrNotFound si no hay ninguna coincidencia; domain.ErrInvalidInput
// si la clave está vacía o el kind es desconocido.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, naturalKey string) (int64, error) {
	if naturalKey == "" {
		return 0, domain.ErrInvalidInput
	}
	switch kind {
	case KindClient:
		client, err := r.clients.GetByFullName(ctx, naturalKey)
		if err != nil {
			return 0, err
		}
		if client == nil {
			return 0, domain.ErrNotFound
		}
		return client.ID, nil
	case KindEmployee:
		employee, err := r.employees.GetByName(ctx, naturalKey)
		if err != nil {
			return 0, err
		}
		if employee == nil {
			return 0, domain.ErrNotFound
		}
		return employee.ID, nil
	case KindAccount:
		account, err := r.accounts.GetByNumber(ctx, naturalKey)
		if err != nil {
			return 0, err
		}
		if account == nil {
			return 0, domain.ErrNotFound
		}
		return account.ID, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}
