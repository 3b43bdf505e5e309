package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Banco-api/internal/application/dto"
	"github.com/jhoicas/Banco-api/internal/domain"
	"github.com/jhoicas/Banco-api/internal/domain/entity"
)

// Withdraw aplica un retiro como unidad atómica: resuelve la cuenta por
// número, debita con la fila bloqueada y registra el retiro. Los cuatro
// pasos comprometen juntos o ninguno.
func (p *Processor) Withdraw(ctx context.Context, in dto.WithdrawalCreate) (*dto.WithdrawalResponse, error) {
	if in.AccountNumber == "" || !positiveAmount(in.Amount) {
		return nil, domain.ErrInvalidInput
	}
	if in.WithdrawalDate.IsZero() {
		in.WithdrawalDate = time.Now()
	}
	ref := uuid.New().String()

	var resp *dto.WithdrawalResponse
	err := p.txRunner.Run(ctx, func(r Repos) error {
		account, err := r.Accounts.GetByNumber(ctx, in.AccountNumber)
		if err != nil {
			return err
		}
		if account == nil {
			return fmt.Errorf("cuenta %s: %w", in.AccountNumber, domain.ErrNotFound)
		}
		newBalance, err := NewBalanceLedger(r.Accounts).Debit(ctx, account.ID, in.Amount)
		if err != nil {
			return err
		}
		withdrawal := &entity.Withdrawal{
			AccountID: account.ID,
			Amount:    in.Amount,
			Date:      in.WithdrawalDate,
			Method:    in.WithdrawalMethod,
			Reference: ref,
		}
		if err := r.Withdrawals.Create(ctx, withdrawal); err != nil {
			return err
		}
		resp = &dto.WithdrawalResponse{
			WithdrawalCreate: in,
			WithdrawalID:     withdrawal.ID,
			AccountID:        account.ID,
			NewBalance:       newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("reference", ref).
		Int64("withdrawal_id", resp.WithdrawalID).
		Str("account_number", in.AccountNumber).
		Str("amount", in.Amount.String()).
		Msg("retiro asentado")
	return resp, nil
}
