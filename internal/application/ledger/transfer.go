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

// Transfer registra una transferencia entre dos cuentas. Solo el estado
// "completed" asienta dinero (débito origen + crédito destino en la misma
// transacción); "pending" y "failed" persisten el registro sin tocar saldos,
// distinguiendo intención registrada de movimiento asentado.
func (p *Processor) Transfer(ctx context.Context, in dto.TransferCreate) (*dto.TransferResponse, error) {
	if in.FromAccountNumber == "" || in.ToAccountNumber == "" || !positiveAmount(in.Amount) {
		return nil, domain.ErrInvalidInput
	}
	if in.FromAccountNumber == in.ToAccountNumber {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.TransferPending
	}
	if !entity.ValidTransferStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.TransferDate.IsZero() {
		in.TransferDate = time.Now()
	}
	ref := uuid.New().String()

	var resp *dto.TransferResponse
	err := p.txRunner.Run(ctx, func(r Repos) error {
		from, err := r.Accounts.GetByNumber(ctx, in.FromAccountNumber)
		if err != nil {
			return err
		}
		if from == nil {
			return fmt.Errorf("cuenta origen %s: %w", in.FromAccountNumber, domain.ErrNotFound)
		}
		to, err := r.Accounts.GetByNumber(ctx, in.ToAccountNumber)
		if err != nil {
			return err
		}
		if to == nil {
			return fmt.Errorf("cuenta destino %s: %w", in.ToAccountNumber, domain.ErrNotFound)
		}

		if in.Status == entity.TransferCompleted {
			if err := NewBalanceLedger(r.Accounts).Move(ctx, from.ID, to.ID, in.Amount); err != nil {
				return err
			}
		}

		transfer := &entity.Transfer{
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        in.Amount,
			Date:          in.TransferDate,
			Method:        in.TransferMethod,
			Status:        in.Status,
			Reference:     ref,
		}
		if err := r.Transfers.Create(ctx, transfer); err != nil {
			return err
		}
		resp = &dto.TransferResponse{TransferCreate: in, TransferID: transfer.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.log.Info().
		Str("reference", ref).
		Int64("transfer_id", resp.TransferID).
		Str("from", in.FromAccountNumber).
		Str("to", in.ToAccountNumber).
		Str("status", in.Status).
		Str("amount", in.Amount.String()).
		Msg("transferencia registrada")
	return resp, nil
}
