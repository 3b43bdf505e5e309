package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/pkg/logger"
)

// Processor orquesta las operaciones individuales del ledger: retiros,
// transferencias y emisión de préstamos, cada una como unidad atómica
// (resolver → validar → mutar → registrar en una sola transacción del store).
// También cubre las altas simples y los listados de cada entidad.
type Processor struct {
	txRunner TxRunner
	repos    Repos // atados al pool, para altas simples y lecturas
	log      *logger.Logger
}

// NewProcessor construye el procesador. repos debe venir atado al pool;
// las mutaciones multi-paso usan txRunner para obtener repos transaccionales.
func NewProcessor(txRunner TxRunner, repos Repos, log *logger.Logger) *Processor {
	if log == nil {
		log = logger.Nop()
	}
	return &Processor{txRunner: txRunner, repos: repos, log: log}
}

// CreateClient registra un cliente nuevo. El número de identificación es
// único: un duplicado retorna domain.ErrDuplicate.
func (p *Processor) CreateClient(ctx context.Context, in dto.ClientCreate) (*dto.ClientResponse, error) {
	if in.Name == "" || in.LastName == "" || in.IdentificationNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	client := clientFromCreate(in)
	if err := p.repos.Clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return &dto.ClientResponse{ClientCreate: in, IDClient: client.ID}, nil
}

// CreateEmployee registra un empleado nuevo.
func (p *Processor) CreateEmployee(ctx context.Context, in dto.EmployeeCreate) (*dto.EmployeeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	employee := &entity.Employee{Name: in.Name, Position: in.Position, HireDate: in.HireDate}
	if err := p.repos.Employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return &dto.EmployeeResponse{EmployeeCreate: in, EmployeeID: employee.ID}, nil
}

// CreateAccount abre una cuenta para un cliente existente, resuelto por
// nombre completo. Resolución e inserción corren en una sola transacción:
// la cuenta siempre referencia un cliente que existe al commit.
func (p *Processor) CreateAccount(ctx context.Context, in dto.AccountCreate) (*dto.AccountResponse, error) {
	if in.AccountNumber == "" || in.ClientFullName == "" || in.Balance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var resp *dto.AccountResponse
	err := p.txRunner.Run(ctx, func(r Repos) error {
		client, err := r.Clients.GetByFullName(ctx, in.ClientFullName)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}
		account := &entity.Account{
			ClientID:      client.ID,
			AccountNumber: in.AccountNumber,
			Balance:       in.Balance,
		}
		if err := r.Accounts.Create(ctx, account); err != nil {
			return err
		}
		resp = &dto.AccountResponse{
			AccountID:      account.ID,
			IDClient:       client.ID,
			AccountNumber:  in.AccountNumber,
			Balance:        in.Balance,
			ClientFullName: in.ClientFullName,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListClients listado paginado de clientes.
func (p *Processor) ListClients(ctx context.Context, page dto.PageRequest) ([]dto.ClientResponse, error) {
	page.DefaultPage()
	clients, err := p.repos.Clients.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientToResponse(c))
	}
	return out, nil
}

// ListClientNames proyección id + nombre completo de todos los clientes.
func (p *Processor) ListClientNames(ctx context.Context) ([]dto.ClientNameResponse, error) {
	names, err := p.repos.Clients.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientNameResponse, 0, len(names))
	for _, n := range names {
		out = append(out, dto.ClientNameResponse{IDClient: n.ID, FullName: n.FullName})
	}
	return out, nil
}

// ListEmployees listado paginado de empleados.
func (p *Processor) ListEmployees(ctx context.Context, page dto.PageRequest) ([]dto.EmployeeResponse, error) {
	page.DefaultPage()
	employees, err := p.repos.Employees.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, dto.EmployeeResponse{
			EmployeeCreate: dto.EmployeeCreate{Name: e.Name, Position: e.Position, HireDate: e.HireDate},
			EmployeeID:     e.ID,
		})
	}
	return out, nil
}

// ListAccounts listado paginado de cuentas.
func (p *Processor) ListAccounts(ctx context.Context, page dto.PageRequest) ([]dto.AccountResponse, error) {
	page.DefaultPage()
	accounts, err := p.repos.Accounts.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.AccountResponse{
			AccountID:     a.ID,
			IDClient:      a.ClientID,
			AccountNumber: a.AccountNumber,
			Balance:       a.Balance,
		})
	}
	return out, nil
}

// ListWithdrawals listado paginado de retiros asentados.
func (p *Processor) ListWithdrawals(ctx context.Context, page dto.PageRequest) ([]dto.WithdrawalListItem, error) {
	page.DefaultPage()
	withdrawals, err := p.repos.Withdrawals.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WithdrawalListItem, 0, len(withdrawals))
	for _, w := range withdrawals {
		out = append(out, dto.WithdrawalListItem{
			WithdrawalID:     w.ID,
			AccountID:        w.AccountID,
			Amount:           w.Amount,
			WithdrawalDate:   w.Date,
			WithdrawalMethod: w.Method,
			Reference:        w.Reference,
		})
	}
	return out, nil
}

// ListTransfers listado paginado de transferencias registradas.
func (p *Processor) ListTransfers(ctx context.Context, page dto.PageRequest) ([]dto.TransferListItem, error) {
	page.DefaultPage()
	transfers, err := p.repos.Transfers.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferListItem, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, dto.TransferListItem{
			TransferID:     t.ID,
			FromAccountID:  t.FromAccountID,
			ToAccountID:    t.ToAccountID,
			Amount:         t.Amount,
			TransferDate:   t.Date,
			TransferMethod: t.Method,
			Status:         t.Status,
			Reference:      t.Reference,
		})
	}
	return out, nil
}

// ListLoans listado paginado de préstamos emitidos.
func (p *Processor) ListLoans(ctx context.Context, page dto.PageRequest) ([]dto.LoanListItem, error) {
	page.DefaultPage()
	loans, err := p.repos.Loans.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoanListItem, 0, len(loans))
	for _, l := range loans {
		out = append(out, dto.LoanListItem{
			LoanID:           l.ID,
			IDClient:         l.ClientID,
			EmployeeID:       l.EmployeeID,
			Amount:           l.Amount,
			InterestRate:     l.InterestRate,
			DisbursementDate: l.DisbursementDate,
			DueDate:          l.DueDate,
			Balance:          l.Balance,
			Status:           l.Status,
			Reference:        l.Reference,
		})
	}
	return out, nil
}

func clientFromCreate(in dto.ClientCreate) *entity.Client {
	return &entity.Client{
		Name:                 in.Name,
		LastName:             in.LastName,
		Address:              in.Address,
		PhoneNumber:          in.PhoneNumber,
		Email:                in.Email,
		IdentificationType:   in.IdentificationType,
		IdentificationNumber: in.IdentificationNumber,
	}
}

func clientToResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ClientCreate: dto.ClientCreate{
			Name:                 c.Name,
			LastName:             c.LastName,
			Address:              c.Address,
			PhoneNumber:          c.PhoneNumber,
			Email:                c.Email,
			IdentificationType:   c.IdentificationType,
			IdentificationNumber: c.IdentificationNumber,
		},
		IDClient: c.ID,
	}
}

func positiveAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
