package ledger

import (
	"context"

	"github.com/jhoicas/Banco-api/internal/domain/repository"
)

// Repos conjunto de repositorios atados a una misma transacción (o al pool,
// para lecturas fuera de transacción).
type Repos struct {
	Clients     repository.ClientRepository
	Employees   repository.EmployeeRepository
	Accounts    repository.AccountRepository
	Withdrawals repository.WithdrawalRepository
	Transfers   repository.TransferRepository
	Loans       repository.LoanRepository
}

// TxRunner ejecuta fn dentro de una transacción del store con los repos
// atados a esa transacción. Commit si fn retorna nil; Rollback en cualquier
// otro caso. La adquisición y liberación del handle es responsabilidad del
// runner: ninguna ruta de salida deja la transacción abierta.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
