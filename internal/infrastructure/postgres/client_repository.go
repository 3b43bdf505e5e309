package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id_client, name, last_name, address, phone_number, email, identification_type, identification_number`

// Create persiste un cliente nuevo y asigna el id generado (RETURNING).
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (name, last_name, address, phone_number, email, identification_type, identification_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_client`
	err := r.q.QueryRow(ctx, query,
		client.Name, client.LastName, client.Address, client.PhoneNumber,
		client.Email, client.IdentificationType, client.IdentificationNumber,
	).Scan(&client.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por id interno.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id_client = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get client")
}

// GetByFullName busca por nombre completo (name || ' ' || last_name).
// La clave no es única: devuelve la primera coincidencia bajo ORDER BY id_client.
func (r *ClientRepo) GetByFullName(ctx context.Context, fullName string) (*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE name || ' ' || last_name = $1
		ORDER BY id_client
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, fullName), "get client by full name")
}

// List devuelve clientes paginados por id.
func (r *ClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id_client LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.LastName, &c.Address, &c.PhoneNumber,
			&c.Email, &c.IdentificationType, &c.IdentificationNumber,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// ListNames proyección id + nombre completo de todos los clientes.
func (r *ClientRepo) ListNames(ctx context.Context) ([]repository.ClientName, error) {
	query := `SELECT id_client, name || ' ' || last_name AS full_name FROM clients ORDER BY id_client`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list client names: %w", err)
	}
	defer rows.Close()

	var out []repository.ClientName
	for rows.Next() {
		var n repository.ClientName
		if err := rows.Scan(&n.ID, &n.FullName); err != nil {
			return nil, fmt.Errorf("scan client name: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *ClientRepo) scanOne(row pgx.Row, op string) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.LastName, &c.Address, &c.PhoneNumber,
		&c.Email, &c.IdentificationType, &c.IdentificationNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
