package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"deposit_book/internal/domain"
	"deposit_book/internal/repository"
	"deposit_book/pkg/metrics"
	"deposit_book/pkg/validator"
)

// Entry is one listing row in insertion order.
type Entry struct {
	ID      string
	Name    string
	Deposit float64
}

type Ledger struct {
	repo    repository.DepositorRepository
	metrics *metrics.MetricsCollector
	logger  *slog.Logger
}

func NewLedger(
	repo repository.DepositorRepository,
	collector *metrics.MetricsCollector,
	logger *slog.Logger,
) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}

	return &Ledger{
		repo:    repo,
		metrics: collector,
		logger:  logger,
	}
}

// AddDepositor registers a depositor with a fresh random ID, zero balance
// and the given rule, and returns the generated ID.
func (l *Ledger) AddDepositor(ctx context.Context, name string, rule domain.DepositRule) (string, error) {
	if !validator.IsAlphabeticName(name) {
		return "", fmt.Errorf("%w: %q", validator.ErrNotAlphabetic, name)
	}

	depositor := domain.NewDepositor(name, rule)
	if err := l.repo.Save(ctx, depositor); err != nil {
		return "", fmt.Errorf("failed to save depositor: %w", err)
	}

	l.metrics.RecordDepositorCreated()
	l.logger.InfoContext(ctx, "Depositor added",
		slog.String("operation_id", uuid.NewString()),
		slog.String("depositor_id", depositor.ID),
		slog.String("rule", string(rule.Kind)))

	return depositor.ID, nil
}

// DepositToAccount scans for the depositor with the given ID. The returned
// bool reports whether the ID matched; a non-nil error means the matched
// depositor rejected the amount and its balance is unchanged.
func (l *Ledger) DepositToAccount(ctx context.Context, id string, amount float64) (bool, error) {
	depositor, err := l.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	operationID := uuid.NewString()

	if err := depositor.Deposit(amount); err != nil {
		l.metrics.RecordDepositFailure(failureReason(err))
		l.logger.ErrorContext(ctx, "Deposit rejected",
			slog.String("operation_id", operationID),
			slog.String("depositor_id", id),
			slog.Float64("amount", amount),
			slog.String("error", err.Error()))
		return true, err
	}

	l.metrics.RecordDeposit()
	l.logger.InfoContext(ctx, "Deposit applied",
		slog.String("operation_id", operationID),
		slog.String("depositor_id", id),
		slog.Float64("amount", amount))

	return true, nil
}

// TotalDeposits sums the computed deposit over all depositors. An empty
// ledger totals to zero.
func (l *Ledger) TotalDeposits(ctx context.Context) (float64, error) {
	depositors, err := l.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, d := range depositors {
		deposit, err := d.CurrentDeposit()
		if err != nil {
			return 0, fmt.Errorf("failed to compute deposit for %s: %w", d.ID, err)
		}
		total += deposit
	}

	l.metrics.SetTotalDeposits(total)
	return total, nil
}

// ListDepositors returns one entry per depositor in insertion order.
func (l *Ledger) ListDepositors(ctx context.Context) ([]Entry, error) {
	depositors, err := l.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(depositors))
	for _, d := range depositors {
		deposit, err := d.CurrentDeposit()
		if err != nil {
			return nil, fmt.Errorf("failed to compute deposit for %s: %w", d.ID, err)
		}
		entries = append(entries, Entry{ID: d.ID, Name: d.Name, Deposit: deposit})
	}

	return entries, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNegativeAmount):
		return "negative_amount"
	case errors.Is(err, domain.ErrAmountTooLarge):
		return "amount_too_large"
	default:
		return "unknown"
	}
}
