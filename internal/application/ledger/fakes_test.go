package ledger_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banco-api/internal/application/ledger"
	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria para los tests del ledger. Imita la semántica del store
// real: ids seriales por tabla, unicidad de número de cuenta e identificación,
// primera coincidencia por orden de id en claves naturales, y transacciones
// todo-o-nada (el runner trabaja sobre un clon y solo copia de vuelta en
// commit).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	nextClient, nextEmployee, nextAccount       int64
	nextWithdrawal, nextTransfer, nextLoan      int64
	clients                                     []entity.Client
	employees                                   []entity.Employee
	accounts                                    []entity.Account
	withdrawals                                 []entity.Withdrawal
	transfers                                   []entity.Transfer
	loans                                       []entity.Loan
}

func newMemStore() *memStore {
	return &memStore{
		nextClient: 1, nextEmployee: 1, nextAccount: 1,
		nextWithdrawal: 1, nextTransfer: 1, nextLoan: 1,
	}
}

func (s *memStore) clone() *memStore {
	c := *s
	c.clients = append([]entity.Client(nil), s.clients...)
	c.employees = append([]entity.Employee(nil), s.employees...)
	c.accounts = append([]entity.Account(nil), s.accounts...)
	c.withdrawals = append([]entity.Withdrawal(nil), s.withdrawals...)
	c.transfers = append([]entity.Transfer(nil), s.transfers...)
	c.loans = append([]entity.Loan(nil), s.loans...)
	return &c
}

func reposFor(s *memStore) ledger.Repos {
	return ledger.Repos{
		Clients:     &memClients{s},
		Employees:   &memEmployees{s},
		Accounts:    &memAccounts{s},
		Withdrawals: &memWithdrawals{s},
		Transfers:   &memTransfers{s},
		Loans:       &memLoans{s},
	}
}

// memTxRunner ejecuta fn sobre un clon del store y solo copia de vuelta si fn
// retorna nil: cualquier error descarta todas las mutaciones del "tx".
type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(repos ledger.Repos) error) error {
	tx := r.store.clone()
	if err := fn(reposFor(tx)); err != nil {
		return err
	}
	*r.store = *tx
	return nil
}

// ─── clients ──────────────────────────────────────────────────────────────────

type memClients struct{ s *memStore }

func (m *memClients) Create(_ context.Context, client *entity.Client) error {
	for i := range m.s.clients {
		if m.s.clients[i].IdentificationNumber == client.IdentificationNumber {
			return domain.ErrDuplicate
		}
	}
	client.ID = m.s.nextClient
	m.s.nextClient++
	m.s.clients = append(m.s.clients, *client)
	return nil
}

func (m *memClients) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	for i := range m.s.clients {
		if m.s.clients[i].ID == id {
			c := m.s.clients[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memClients) GetByFullName(_ context.Context, fullName string) (*entity.Client, error) {
	for i := range m.s.clients {
		if m.s.clients[i].FullName() == fullName {
			c := m.s.clients[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memClients) List(_ context.Context, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for i := offset; i < len(m.s.clients) && len(out) < limit; i++ {
		c := m.s.clients[i]
		out = append(out, &c)
	}
	return out, nil
}

func (m *memClients) ListNames(_ context.Context) ([]repository.ClientName, error) {
	var out []repository.ClientName
	for i := range m.s.clients {
		out = append(out, repository.ClientName{ID: m.s.clients[i].ID, FullName: m.s.clients[i].FullName()})
	}
	return out, nil
}

// ─── employees ────────────────────────────────────────────────────────────────

type memEmployees struct{ s *memStore }

func (m *memEmployees) Create(_ context.Context, employee *entity.Employee) error {
	employee.ID = m.s.nextEmployee
	m.s.nextEmployee++
	m.s.employees = append(m.s.employees, *employee)
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	for i := range m.s.employees {
		if m.s.employees[i].ID == id {
			e := m.s.employees[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (m *memEmployees) GetByName(_ context.Context, name string) (*entity.Employee, error) {
	for i := range m.s.employees {
		if m.s.employees[i].Name == name {
			e := m.s.employees[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (m *memEmployees) List(_ context.Context, limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for i := offset; i < len(m.s.employees) && len(out) < limit; i++ {
		e := m.s.employees[i]
		out = append(out, &e)
	}
	return out, nil
}

// ─── accounts ─────────────────────────────────────────────────────────────────

type memAccounts struct{ s *memStore }

func (m *memAccounts) Create(_ context.Context, account *entity.Account) error {
	for i := range m.s.accounts {
		if m.s.accounts[i].AccountNumber == account.AccountNumber {
			return domain.ErrDuplicate
		}
	}
	account.ID = m.s.nextAccount
	m.s.nextAccount++
	m.s.accounts = append(m.s.accounts, *account)
	return nil
}

func (m *memAccounts) GetByID(_ context.Context, id int64) (*entity.Account, error) {
	for i := range m.s.accounts {
		if m.s.accounts[i].ID == id {
			a := m.s.accounts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memAccounts) GetByNumber(_ context.Context, accountNumber string) (*entity.Account, error) {
	for i := range m.s.accounts {
		if m.s.accounts[i].AccountNumber == accountNumber {
			a := m.s.accounts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *memAccounts) GetForUpdate(ctx context.Context, id int64) (*entity.Account, error) {
	return m.GetByID(ctx, id)
}

func (m *memAccounts) UpdateBalance(_ context.Context, id int64, balance decimal.Decimal) error {
	for i := range m.s.accounts {
		if m.s.accounts[i].ID == id {
			m.s.accounts[i].Balance = balance
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memAccounts) List(_ context.Context, limit, offset int) ([]*entity.Account, error) {
	var out []*entity.Account
	for i := offset; i < len(m.s.accounts) && len(out) < limit; i++ {
		a := m.s.accounts[i]
		out = append(out, &a)
	}
	return out, nil
}

// ─── withdrawals / transfers / loans ──────────────────────────────────────────

type memWithdrawals struct{ s *memStore }

func (m *memWithdrawals) Create(_ context.Context, w *entity.Withdrawal) error {
	w.ID = m.s.nextWithdrawal
	m.s.nextWithdrawal++
	m.s.withdrawals = append(m.s.withdrawals, *w)
	return nil
}

func (m *memWithdrawals) List(_ context.Context, limit, offset int) ([]*entity.Withdrawal, error) {
	var out []*entity.Withdrawal
	for i := offset; i < len(m.s.withdrawals) && len(out) < limit; i++ {
		w := m.s.withdrawals[i]
		out = append(out, &w)
	}
	return out, nil
}

func (m *memWithdrawals) ListByAccount(_ context.Context, accountID int64) ([]*entity.Withdrawal, error) {
	var out []*entity.Withdrawal
	for i := range m.s.withdrawals {
		if m.s.withdrawals[i].AccountID == accountID {
			w := m.s.withdrawals[i]
			out = append(out, &w)
		}
	}
	return out, nil
}

type memTransfers struct{ s *memStore }

func (m *memTransfers) Create(_ context.Context, t *entity.Transfer) error {
	t.ID = m.s.nextTransfer
	m.s.nextTransfer++
	m.s.transfers = append(m.s.transfers, *t)
	return nil
}

func (m *memTransfers) List(_ context.Context, limit, offset int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for i := offset; i < len(m.s.transfers) && len(out) < limit; i++ {
		t := m.s.transfers[i]
		out = append(out, &t)
	}
	return out, nil
}

type memLoans struct{ s *memStore }

func (m *memLoans) Create(_ context.Context, l *entity.Loan) error {
	l.ID = m.s.nextLoan
	m.s.nextLoan++
	m.s.loans = append(m.s.loans, *l)
	return nil
}

func (m *memLoans) List(_ context.Context, limit, offset int) ([]*entity.Loan, error) {
	var out []*entity.Loan
	for i := offset; i < len(m.s.loans) && len(out) < limit; i++ {
		l := m.s.loans[i]
		out = append(out, &l)
	}
	return out, nil
}

func (m *memLoans) ListByClient(_ context.Context, clientID int64) ([]*entity.Loan, error) {
	var out []*entity.Loan
	for i := range m.s.loans {
		if m.s.loans[i].ClientID == clientID {
			l := m.s.loans[i]
			out = append(out, &l)
		}
	}
	return out, nil
}

// ─── helpers de armado ────────────────────────────────────────────────────────

// seedClient agrega un cliente directo al store y devuelve su id.
func seedClient(s *memStore, name, lastName, identification string) int64 {
	id := s.nextClient
	s.nextClient++
	s.clients = append(s.clients, entity.Client{
		ID: id, Name: name, LastName: lastName, IdentificationNumber: identification,
	})
	return id
}

// seedEmployee agrega un empleado directo al store y devuelve su id.
func seedEmployee(s *memStore, name string) int64 {
	id := s.nextEmployee
	s.nextEmployee++
	s.employees = append(s.employees, entity.Employee{ID: id, Name: name, Position: "asesor"})
	return id
}

// seedAccount agrega una cuenta directa al store y devuelve su id.
func seedAccount(s *memStore, clientID int64, number string, balance string) int64 {
	id := s.nextAccount
	s.nextAccount++
	s.accounts = append(s.accounts, entity.Account{
		ID: id, ClientID: clientID, AccountNumber: number, Balance: dec(balance),
	})
	return id
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balanceOf(s *memStore, number string) decimal.Decimal {
	for i := range s.accounts {
		if s.accounts[i].AccountNumber == number {
			return s.accounts[i].Balance
		}
	}
	return decimal.NewFromInt(-1)
}
