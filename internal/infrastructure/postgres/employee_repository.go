package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado nuevo y asigna el id generado (RETURNING).
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (name, position, hire_date)
		VALUES ($1, $2, $3)
		RETURNING employee_id`
	err := r.q.QueryRow(ctx, query, employee.Name, employee.Position, employee.HireDate).Scan(&employee.ID)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por id interno.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT employee_id, name, position, hire_date FROM employees WHERE employee_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get employee")
}

// GetByName busca por nombre. La clave no es única: devuelve la primera
// coincidencia bajo ORDER BY employee_id.
func (r *EmployeeRepo) GetByName(ctx context.Context, name string) (*entity.Employee, error) {
	query := `
		SELECT employee_id, name, position, hire_date
		FROM employees
		WHERE name = $1
		ORDER BY employee_id
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, name), "get employee by name")
}

// List devuelve empleados paginados por id.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT employee_id, name, position, hire_date FROM employees ORDER BY employee_id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.HireDate); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepo) scanOne(row pgx.Row, op string) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Position, &e.HireDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}
