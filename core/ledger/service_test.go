package ledger_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/ledger"
	"github.com/trezcool/cantina/core/student"
	inmemdb "github.com/trezcool/cantina/storage/database/inmem"
)

func setup(t *testing.T) *ledger.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return ledger.NewService(inmemdb.NewDebtorRepository(db))
}

func saleAt(day int) ledger.CreditSale {
	return ledger.CreditSale{
		ProductName: "Coxinha",
		Quantity:    2,
		Total:       11.00,
		Date:        time.Date(2025, 3, day, 10, 0, 0, 0, time.UTC),
	}
}

func Test_Service_RecordCreditSale_createsDebtor(t *testing.T) {
	svc := setup(t)
	std := student.Student{ID: 1, Name: "Ana Silva"}
	g := guardian.Guardian{ID: 1, Name: "Maria Silva", Email: "maria@example.com", Phone: "11999990001"}

	d, err := svc.RecordCreditSale(std, &g, saleAt(1))
	if err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}

	assert.Equal(t, std.ID, d.StudentID)
	assert.Equal(t, std.Name, d.StudentName)
	assert.Equal(t, 11.00, d.Balance)
	if assert.NotNil(t, d.GuardianID) {
		assert.Equal(t, g.ID, *d.GuardianID)
	}
	assert.Equal(t, g.Email, d.GuardianEmail)
	assert.Equal(t, g.Phone, d.GuardianPhone)

	if assert.Len(t, d.History, 1) {
		tx := d.History[0]
		assert.Equal(t, 1, tx.ID)
		assert.Equal(t, ledger.KindSale, tx.Kind)
		assert.Equal(t, 11.00, tx.Amount)
		assert.Equal(t, "Coxinha (2x)", tx.Description)
	}
}

func Test_Service_RecordCreditSale_noGuardian(t *testing.T) {
	svc := setup(t)
	std := student.Student{ID: 5, Name: "Elena Martins"}

	d, err := svc.RecordCreditSale(std, nil, saleAt(1))
	if err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}
	assert.Nil(t, d.GuardianID)
	assert.Empty(t, d.GuardianEmail)
	assert.Equal(t, 11.00, d.Balance)
}

func Test_Service_RecordCreditSale_accumulates(t *testing.T) {
	svc := setup(t)
	std := student.Student{ID: 1, Name: "Ana Silva"}

	if _, err := svc.RecordCreditSale(std, nil, saleAt(1)); err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}
	d, err := svc.RecordCreditSale(std, nil, ledger.CreditSale{
		ProductName: "Suco de Laranja",
		Quantity:    1,
		Total:       4.50,
		Date:        time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}

	assert.Equal(t, 15.50, d.Balance)
	assert.Equal(t, d.Balance, d.FoldBalance())

	// newest first, monotonic ids
	if assert.Len(t, d.History, 2) {
		assert.Equal(t, 2, d.History[0].ID)
		assert.Equal(t, "Suco de Laranja (1x)", d.History[0].Description)
		assert.Equal(t, 1, d.History[1].ID)
	}
}

func Test_Service_RecordPayment(t *testing.T) {
	svc := setup(t)
	std := student.Student{ID: 1, Name: "Ana Silva"}
	if _, err := svc.RecordCreditSale(std, nil, saleAt(1)); err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}

	d, err := svc.RecordPayment(std.ID, 5.00)
	if err != nil {
		t.Fatalf("RecordPayment() failed: %v", err)
	}

	assert.Equal(t, 6.00, d.Balance)
	assert.Equal(t, d.Balance, d.FoldBalance())
	if assert.Len(t, d.History, 2) {
		tx := d.History[0]
		assert.Equal(t, 2, tx.ID)
		assert.Equal(t, ledger.KindPayment, tx.Kind)
		assert.Equal(t, 5.00, tx.Amount)
		assert.Equal(t, "Pagamento recebido", tx.Description)
	}
}

func Test_Service_RecordPayment_invalidAmount(t *testing.T) {
	svc := setup(t)
	std := student.Student{ID: 1, Name: "Ana Silva"}
	if _, err := svc.RecordCreditSale(std, nil, saleAt(1)); err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}

	tests := []struct {
		name   string
		amount float64
	}{
		{"zero", 0},
		{"negative", -3.50},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordPayment(std.ID, tt.amount)
			vErr, ok := err.(*core.ValidationError)
			if !ok {
				t.Fatalf("RecordPayment() error = %v; want ValidationError", err)
			}
			assert.Equal(t, ledger.ErrInvalidAmount, vErr.Err)
		})
	}

	// balance untouched
	d, err := svc.GetByStudentID(std.ID)
	if err != nil {
		t.Fatalf("GetByStudentID() failed: %v", err)
	}
	assert.Equal(t, 11.00, d.Balance)
	assert.Len(t, d.History, 1)
}

func Test_Service_RecordPayment_exceedsBalance(t *testing.T) {
	svc := setup(t)
	std := student.Student{ID: 1, Name: "Ana Silva"}
	if _, err := svc.RecordCreditSale(std, nil, saleAt(1)); err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}

	_, err := svc.RecordPayment(std.ID, 11.01)
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("RecordPayment() error = %v; want ValidationError", err)
	}
	assert.Equal(t, ledger.ErrExceedsBalance, vErr.Err)

	d, err := svc.GetByStudentID(std.ID)
	if err != nil {
		t.Fatalf("GetByStudentID() failed: %v", err)
	}
	assert.Equal(t, 11.00, d.Balance)
	assert.Len(t, d.History, 1)

	// paying the exact balance clears the tab
	d, err = svc.RecordPayment(std.ID, 11.00)
	if err != nil {
		t.Fatalf("RecordPayment() failed: %v", err)
	}
	assert.Equal(t, 0.00, d.Balance)
}

func Test_Service_RecordPayment_subCentAmount(t *testing.T) {
	svc := setup(t)
	std := student.Student{ID: 1, Name: "Ana Silva"}
	if _, err := svc.RecordCreditSale(std, nil, saleAt(1)); err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}

	// 0.015 normalizes to 0.02; the recorded entry and the balance delta
	// must be the same number so the history still folds to the balance
	d, err := svc.RecordPayment(std.ID, 0.015)
	if err != nil {
		t.Fatalf("RecordPayment() failed: %v", err)
	}
	assert.Equal(t, 0.02, d.History[0].Amount)
	assert.Equal(t, 10.98, d.Balance)
	assert.Equal(t, d.Balance, d.FoldBalance())

	// rounds to 0.00: rejected, not recorded as a zero payment
	_, err = svc.RecordPayment(std.ID, 0.004)
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("RecordPayment() error = %v; want ValidationError", err)
	}
	assert.Equal(t, ledger.ErrInvalidAmount, vErr.Err)
}

func Test_Service_RecordCreditSale_subCentTotal(t *testing.T) {
	svc := setup(t)
	std := student.Student{ID: 1, Name: "Ana Silva"}

	d, err := svc.RecordCreditSale(std, nil, ledger.CreditSale{
		ProductName: "Bala",
		Quantity:    1,
		Total:       0.015,
		Date:        time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}
	assert.Equal(t, 0.02, d.History[0].Amount)
	assert.Equal(t, 0.02, d.Balance)
	assert.Equal(t, d.Balance, d.FoldBalance())
}

func Test_Service_RecordPayment_unknownDebtor(t *testing.T) {
	svc := setup(t)
	_, err := svc.RecordPayment(404, 5.00)
	assert.Equal(t, ledger.ErrNotFound, err)
}

func Test_Service_roundingDrift(t *testing.T) {
	svc := setup(t)
	std := student.Student{ID: 1, Name: "Ana Silva"}

	// 0.10 x 3 then -0.30 must land on exactly 0, not 1e-17
	for day := 1; day <= 3; day++ {
		_, err := svc.RecordCreditSale(std, nil, ledger.CreditSale{
			ProductName: "Bala",
			Quantity:    1,
			Total:       0.10,
			Date:        time.Date(2025, 3, day, 10, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("RecordCreditSale() failed: %v", err)
		}
	}
	d, err := svc.RecordPayment(std.ID, 0.30)
	if err != nil {
		t.Fatalf("RecordPayment() failed: %v", err)
	}
	assert.Equal(t, 0.00, d.Balance)
	assert.Equal(t, 0.00, d.FoldBalance())
}

func Test_Service_TotalOutstanding(t *testing.T) {
	svc := setup(t)

	total, err := svc.TotalOutstanding()
	if err != nil {
		t.Fatalf("TotalOutstanding() failed: %v", err)
	}
	assert.Equal(t, 0.00, total)

	if _, err = svc.RecordCreditSale(student.Student{ID: 1, Name: "Ana"}, nil, saleAt(1)); err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}
	if _, err = svc.RecordCreditSale(student.Student{ID: 2, Name: "Bruno"}, nil, ledger.CreditSale{
		ProductName: "Brigadeiro",
		Quantity:    3,
		Total:       9.00,
		Date:        time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("RecordCreditSale() failed: %v", err)
	}

	total, err = svc.TotalOutstanding()
	if err != nil {
		t.Fatalf("TotalOutstanding() failed: %v", err)
	}
	assert.Equal(t, 20.00, total)
}
