package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
	"github.com/jhoicas/Banco-api/pkg/logger"
)

// BatchCoordinator aplica listas de operaciones del mismo tipo como una sola
// unidad todo-o-nada: una transacción del store por lote, ids generados por
// el propio insert (RETURNING) dentro de esa transacción, y rollback completo
// ante el primer ítem que falle. Los ids de los resultados conservan el orden
// 1:1 con la entrada.
//
// Los saldos dentro de un lote se verifican contra el efecto acumulado de los
// ítems anteriores del mismo lote (saldo corrido por cuenta), no contra el
// saldo pre-lote.
type BatchCoordinator struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewBatchCoordinator construye el coordinador de lotes.
func NewBatchCoordinator(txRunner TxRunner, log *logger.Logger) *BatchCoordinator {
	if log == nil {
		log = logger.Nop()
	}
	return &BatchCoordinator{txRunner: txRunner, log: log}
}

// itemErr etiqueta el error con la posición del ítem que hizo fallar el lote.
func itemErr(i int, err error) error {
	return fmt.Errorf("ítem %d: %w", i, err)
}

// Clients inserta un lote de clientes.
func (b *BatchCoordinator) Clients(ctx context.Context, items []dto.ClientCreate) ([]dto.ClientResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i, in := range items {
		if in.Name == "" || in.LastName == "" || in.IdentificationNumber == "" {
			return nil, itemErr(i, domain.ErrInvalidInput)
		}
	}
	out := make([]dto.ClientResponse, 0, len(items))
	err := b.txRunner.Run(ctx, func(r Repos) error {
		for i, in := range items {
			client := clientFromCreate(in)
			if err := r.Clients.Create(ctx, client); err != nil {
				return itemErr(i, err)
			}
			out = append(out, dto.ClientResponse{ClientCreate: in, IDClient: client.ID})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.log.Info().Int("count", len(out)).Msg("lote de clientes asentado")
	return out, nil
}

// Employees inserta un lote de empleados.
func (b *BatchCoordinator) Employees(ctx context.Context, items []dto.EmployeeCreate) ([]dto.EmployeeResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i, in := range items {
		if in.Name == "" {
			return nil, itemErr(i, domain.ErrInvalidInput)
		}
	}
	out := make([]dto.EmployeeResponse, 0, len(items))
	err := b.txRunner.Run(ctx, func(r Repos) error {
		for i, in := range items {
			employee := &entity.Employee{Name: in.Name, Position: in.Position, HireDate: in.HireDate}
			if err := r.Employees.Create(ctx, employee); err != nil {
				return itemErr(i, err)
			}
			out = append(out, dto.EmployeeResponse{EmployeeCreate: in, EmployeeID: employee.ID})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.log.Info().Int("count", len(out)).Msg("lote de empleados asentado")
	return out, nil
}

// Accounts inserta un lote de cuentas, resolviendo el dueño de cada una por
// nombre completo dentro de la misma transacción.
func (b *BatchCoordinator) Accounts(ctx context.Context, items []dto.AccountCreate) ([]dto.AccountResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i, in := range items {
		if in.AccountNumber == "" || in.ClientFullName == "" || in.Balance.IsNegative() {
			return nil, itemErr(i, domain.ErrInvalidInput)
		}
	}
	out := make([]dto.AccountResponse, 0, len(items))
	err := b.txRunner.Run(ctx, func(r Repos) error {
		clientIDs := make(map[string]int64)
		for i, in := range items {
			clientID, ok := clientIDs[in.ClientFullName]
			if !ok {
				client, err := r.Clients.GetByFullName(ctx, in.ClientFullName)
				if err != nil {
					return itemErr(i, err)
				}
				if client == nil {
					return itemErr(i, fmt.Errorf("cliente %q: %w", in.ClientFullName, domain.ErrNotFound))
				}
				clientID = client.ID
				clientIDs[in.ClientFullName] = clientID
			}
			account := &entity.Account{
				ClientID:      clientID,
				AccountNumber: in.AccountNumber,
				Balance:       in.Balance,
			}
			if err := r.Accounts.Create(ctx, account); err != nil {
				return itemErr(i, err)
			}
			out = append(out, dto.AccountResponse{
				AccountID:      account.ID,
				IDClient:       clientID,
				AccountNumber:  in.AccountNumber,
				Balance:        in.Balance,
				ClientFullName: in.ClientFullName,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.log.Info().Int("count", len(out)).Msg("lote de cuentas asentado")
	return out, nil
}

// Withdrawals aplica un lote de retiros. Cada ítem se verifica contra el
// saldo corrido de su cuenta; el saldo final de cada cuenta tocada se escribe
// una sola vez al final, dentro de la transacción del lote.
func (b *BatchCoordinator) Withdrawals(ctx context.Context, items []dto.WithdrawalCreate) ([]dto.WithdrawalResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i := range items {
		if items[i].AccountNumber == "" || !positiveAmount(items[i].Amount) {
			return nil, itemErr(i, domain.ErrInvalidInput)
		}
		if items[i].WithdrawalDate.IsZero() {
			items[i].WithdrawalDate = time.Now()
		}
	}
	ref := uuid.New().String()

	out := make([]dto.WithdrawalResponse, 0, len(items))
	err := b.txRunner.Run(ctx, func(r Repos) error {
		balances := newBatchBalances(r.Accounts)
		accountIDs := make(map[string]int64)
		for i, in := range items {
			accountID, ok := accountIDs[in.AccountNumber]
			if !ok {
				account, err := r.Accounts.GetByNumber(ctx, in.AccountNumber)
				if err != nil {
					return itemErr(i, err)
				}
				if account == nil {
					return itemErr(i, fmt.Errorf("cuenta %s: %w", in.AccountNumber, domain.ErrNotFound))
				}
				accountID = account.ID
				accountIDs[in.AccountNumber] = accountID
			}
			newBalance, err := balances.debit(ctx, accountID, in.Amount)
			if err != nil {
				return itemErr(i, err)
			}
			withdrawal := &entity.Withdrawal{
				AccountID: accountID,
				Amount:    in.Amount,
				Date:      in.WithdrawalDate,
				Method:    in.WithdrawalMethod,
				Reference: ref,
			}
			if err := r.Withdrawals.Create(ctx, withdrawal); err != nil {
				return itemErr(i, err)
			}
			out = append(out, dto.WithdrawalResponse{
				WithdrawalCreate: in,
				WithdrawalID:     withdrawal.ID,
				AccountID:        accountID,
				NewBalance:       newBalance,
			})
		}
		return balances.flush(ctx)
	})
	if err != nil {
		return nil, err
	}
	b.log.Info().Str("reference", ref).Int("count", len(out)).Msg("lote de retiros asentado")
	return out, nil
}

// Transfers aplica un lote de transferencias. Los ítems "completed" mueven
// saldo corrido (débito origen + crédito destino); pending/failed solo
// registran.
func (b *BatchCoordinator) Transfers(ctx context.Context, items []dto.TransferCreate) ([]dto.TransferResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i := range items {
		in := &items[i]
		if in.FromAccountNumber == "" || in.ToAccountNumber == "" || !positiveAmount(in.Amount) {
			return nil, itemErr(i, domain.ErrInvalidInput)
		}
		if in.FromAccountNumber == in.ToAccountNumber {
			return nil, itemErr(i, domain.ErrInvalidInput)
		}
		if in.Status == "" {
			in.Status = entity.TransferPending
		}
		if !entity.ValidTransferStatus(in.Status) {
			return nil, itemErr(i, domain.ErrInvalidInput)
		}
		if in.TransferDate.IsZero() {
			in.TransferDate = time.Now()
		}
	}
	ref := uuid.New().String()

	out := make([]dto.TransferResponse, 0, len(items))
	err := b.txRunner.Run(ctx, func(r Repos) error {
		balances := newBatchBalances(r.Accounts)
		accountIDs := make(map[string]int64)
		resolve := func(i int, number, side string) (int64, error) {
			if id, ok := accountIDs[number]; ok {
				return id, nil
			}
			account, err := r.Accounts.GetByNumber(ctx, number)
			if err != nil {
				return 0, itemErr(i, err)
			}
			if account == nil {
				return 0, itemErr(i, fmt.Errorf("cuenta %s %s: %w", side, number, domain.ErrNotFound))
			}
			accountIDs[number] = account.ID
			return account.ID, nil
		}

		for i, in := range items {
			fromID, err := resolve(i, in.FromAccountNumber, "origen")
			if err != nil {
				return err
			}
			toID, err := resolve(i, in.ToAccountNumber, "destino")
			if err != nil {
				return err
			}
			if in.Status == entity.TransferCompleted {
				if _, err := balances.debit(ctx, fromID, in.Amount); err != nil {
					return itemErr(i, err)
				}
				if _, err := balances.credit(ctx, toID, in.Amount); err != nil {
					return itemErr(i, err)
				}
			}
			transfer := &entity.Transfer{
				FromAccountID: fromID,
				ToAccountID:   toID,
				Amount:        in.Amount,
				Date:          in.TransferDate,
				Method:        in.TransferMethod,
				Status:        in.Status,
				Reference:     ref,
			}
			if err := r.Transfers.Create(ctx, transfer); err != nil {
				return itemErr(i, err)
			}
			out = append(out, dto.TransferResponse{TransferCreate: in, TransferID: transfer.ID})
		}
		return balances.flush(ctx)
	})
	if err != nil {
		return nil, err
	}
	b.log.Info().Str("reference", ref).Int("count", len(out)).Msg("lote de transferencias asentado")
	return out, nil
}

// Loans emite un lote de préstamos, resolviendo cliente y empleado por nombre
// completo dentro de la misma transacción.
func (b *BatchCoordinator) Loans(ctx context.Context, items []dto.LoanCreate) ([]dto.LoanResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i := range items {
		in := &items[i]
		if in.ClientFullName == "" || in.EmployeeFullName == "" || !positiveAmount(in.Amount) || in.Balance.IsNegative() {
			return nil, itemErr(i, domain.ErrInvalidInput)
		}
		if in.Status == "" {
			in.Status = entity.LoanActive
		}
	}
	ref := uuid.New().String()

	out := make([]dto.LoanResponse, 0, len(items))
	err := b.txRunner.Run(ctx, func(r Repos) error {
		clientIDs := make(map[string]int64)
		employeeIDs := make(map[string]int64)
		for i, in := range items {
			clientID, ok := clientIDs[in.ClientFullName]
			if !ok {
				client, err := r.Clients.GetByFullName(ctx, in.ClientFullName)
				if err != nil {
					return itemErr(i, err)
				}
				if client == nil {
					return itemErr(i, fmt.Errorf("cliente %q: %w", in.ClientFullName, domain.ErrNotFound))
				}
				clientID = client.ID
				clientIDs[in.ClientFullName] = clientID
			}
			employeeID, ok := employeeIDs[in.EmployeeFullName]
			if !ok {
				employee, err := r.Employees.GetByName(ctx, in.EmployeeFullName)
				if err != nil {
					return itemErr(i, err)
				}
				if employee == nil {
					return itemErr(i, fmt.Errorf("empleado %q: %w", in.EmployeeFullName, domain.ErrNotFound))
				}
				employeeID = employee.ID
				employeeIDs[in.EmployeeFullName] = employeeID
			}
			loan := &entity.Loan{
				ClientID:         clientID,
				EmployeeID:       employeeID,
				Amount:           in.Amount,
				InterestRate:     in.InterestRate,
				DisbursementDate: in.DisbursementDate,
				DueDate:          in.DueDate,
				Balance:          in.Balance,
				Status:           in.Status,
				Reference:        ref,
			}
			if err := r.Loans.Create(ctx, loan); err != nil {
				return itemErr(i, err)
			}
			out = append(out, dto.LoanResponse{
				LoanCreate: in,
				LoanID:     loan.ID,
				IDClient:   clientID,
				EmployeeID: employeeID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.log.Info().Str("reference", ref).Int("count", len(out)).Msg("lote de préstamos asentado")
	return out, nil
}
