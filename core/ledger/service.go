package ledger

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/student"
)

var nowFunc = time.Now // mockable

var (
	// errors
	ErrNotFound       = errors.New("no credit tab found for this student")
	ErrInvalidAmount  = errors.New("payment amount must be a positive number")
	ErrExceedsBalance = errors.New("payment amount cannot exceed the outstanding balance")
)

const paymentDescription = "Pagamento recebido"

type (
	Repository interface {
		GetDebtorByStudentID(studentID int) (Debtor, error)
		QueryAllDebtors() ([]Debtor, error)
		// SaveDebtor inserts or replaces the debtor keyed by StudentID.
		SaveDebtor(d Debtor) (Debtor, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Debtor, error) {
	return svc.repo.QueryAllDebtors()
}

func (svc *Service) GetByStudentID(studentID int) (Debtor, error) {
	return svc.repo.GetDebtorByStudentID(studentID)
}

// TotalOutstanding sums the balances of all debtors.
func (svc *Service) TotalOutstanding() (float64, error) {
	debtors, err := svc.repo.QueryAllDebtors()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, d := range debtors {
		total += d.Balance
	}
	return core.Round2(total), nil
}

// RecordCreditSale finds or lazily creates the debtor record for a student
// and appends a sale transaction to it. It never fails for a valid student:
// credit may be extended regardless of guardian linkage (g may be nil).
// All validation happens upstream; once invoked the mutation runs to
// completion.
func (svc *Service) RecordCreditSale(std student.Student, g *guardian.Guardian, cs CreditSale) (Debtor, error) {
	d, err := svc.repo.GetDebtorByStudentID(std.ID)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		d = Debtor{
			StudentID:   std.ID,
			StudentName: std.Name,
			History:     []Transaction{},
		}
		if g != nil {
			id := g.ID
			d.GuardianID = &id
			d.GuardianName = g.Name
			d.GuardianEmail = g.Email
			d.GuardianPhone = g.Phone
		}
	default:
		return Debtor{}, err
	}

	total := core.Round2(cs.Total)
	d.prepend(Transaction{
		ID:          d.nextTransactionID(),
		Kind:        KindSale,
		Amount:      total,
		Date:        cs.Date.UTC(),
		Description: fmt.Sprintf("%s (%dx)", cs.ProductName, cs.Quantity),
	})
	d.Balance = core.Round2(d.Balance + total)
	return svc.repo.SaveDebtor(d)
}

// RecordPayment appends a payment transaction and decreases the balance.
// It fails with ErrInvalidAmount for non-positive or non-finite amounts and
// with ErrExceedsBalance when amount is greater than the current balance;
// in both cases no state is mutated. Payments never trigger notifications.
func (svc *Service) RecordPayment(studentID int, amount float64) (Debtor, error) {
	// normalize to currency precision up front: the recorded entry and the
	// balance delta must be the same number or the history fold drifts
	amount = core.Round2(amount)
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Debtor{}, core.NewValidationError(ErrInvalidAmount, core.FieldError{
			Field: "amount", Error: ErrInvalidAmount.Error(),
		})
	}

	d, err := svc.repo.GetDebtorByStudentID(studentID)
	if err != nil {
		return Debtor{}, err
	}
	if amount > d.Balance {
		return Debtor{}, core.NewValidationError(ErrExceedsBalance, core.FieldError{
			Field: "amount", Error: ErrExceedsBalance.Error(),
		})
	}

	d.prepend(Transaction{
		ID:          d.nextTransactionID(),
		Kind:        KindPayment,
		Amount:      amount,
		Date:        nowFunc().UTC(),
		Description: paymentDescription,
	})
	d.Balance = core.Round2(d.Balance - amount)
	return svc.repo.SaveDebtor(d)
}
