package inmemdb

import (
	"time"

	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/ledger"
	"github.com/trezcool/cantina/core/product"
	"github.com/trezcool/cantina/core/sale"
	"github.com/trezcool/cantina/core/student"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func intPtr(i int) *int { return &i }

// Seed loads the demo dataset. Intended for DEV/TEST environments only.
func Seed(db *DB) error {
	guardians := []guardian.Guardian{
		{Name: "Maria Silva", Email: "maria@email.com", Phone: "(11) 98765-4321"},
		{Name: "João Santos", Email: "joao@email.com", Phone: "(11) 91234-5678"},
		{Name: "Fernanda Oliveira", Email: "fernanda@email.com", Phone: "(11) 99876-5432"},
		{Name: "Ricardo Lima", Email: "ricardo@email.com", Phone: "(11) 98888-7777"},
	}
	guardianRepo := NewGuardianRepository(db)
	for _, g := range guardians {
		if _, err := guardianRepo.CreateGuardian(g); err != nil {
			return err
		}
	}

	students := []student.Student{
		{Name: "Ana Silva", Class: "5º Ano A", GuardianID: intPtr(1)},
		{Name: "Bruno Santos", Class: "3º Ano B", GuardianID: intPtr(2)},
		{Name: "Carla Oliveira", Class: "7º Ano A", GuardianID: intPtr(3)},
		{Name: "Daniel Lima", Class: "9º Ano C", GuardianID: intPtr(4)},
		{Name: "Elena Martins", Class: "2º Ano A"}, // no guardian assigned
	}
	studentRepo := NewStudentRepository(db)
	for _, s := range students {
		if _, err := studentRepo.CreateStudent(s); err != nil {
			return err
		}
	}

	products := []product.Product{
		{Name: "Coxinha", Category: product.CategorySalgados, Price: 5.50},
		{Name: "Chocolate", Category: product.CategoryDoces, Price: 3.00},
		{Name: "Bolo de Chocolate", Category: product.CategoryBolos, Price: 6.00},
		{Name: "Refrigerante Lata", Category: product.CategoryBebidas, Price: 5.00},
		{Name: "Pão de Queijo", Category: product.CategorySalgados, Price: 4.50},
	}
	productRepo := NewProductRepository(db)
	for _, p := range products {
		if _, err := productRepo.CreateProduct(p); err != nil {
			return err
		}
	}

	sales := []sale.Sale{
		{StudentID: 1, StudentName: "Ana Silva", ProductID: 1, ProductName: "Coxinha",
			Quantity: 2, Total: 11.00, PaymentMethod: sale.PaymentCash, Date: date(2023, 5, 10, 8, 30, 0)},
		{StudentID: 2, StudentName: "Bruno Santos", ProductID: 4, ProductName: "Refrigerante Lata",
			Quantity: 1, Total: 5.00, PaymentMethod: sale.PaymentPix, Date: date(2023, 5, 10, 9, 15, 0)},
	}
	saleRepo := NewSaleRepository(db)
	for _, s := range sales {
		if _, err := saleRepo.CreateSale(s); err != nil {
			return err
		}
	}

	// histories are newest-first; entry IDs are per-debtor and increase by
	// append order
	debtors := []ledger.Debtor{
		{
			StudentID: 1, StudentName: "Ana Silva", Balance: 45.50,
			GuardianID: intPtr(1), GuardianName: "Maria Silva",
			GuardianEmail: "maria@email.com", GuardianPhone: "(11) 98765-4321",
			History: []ledger.Transaction{
				{ID: 4, Kind: ledger.KindSale, Amount: 11.00, Date: date(2023, 5, 10, 8, 30, 0), Description: "Coxinha (2x)"},
				{ID: 3, Kind: ledger.KindSale, Amount: 5.00, Date: date(2023, 5, 9, 9, 15, 0), Description: "Refrigerante"},
				{ID: 2, Kind: ledger.KindSale, Amount: 39.50, Date: date(2023, 5, 8, 10, 0, 0), Description: "Diversos itens"},
				{ID: 1, Kind: ledger.KindPayment, Amount: 10.00, Date: date(2023, 5, 7, 15, 30, 0), Description: "Pagamento parcial"},
			},
		},
		{
			StudentID: 2, StudentName: "Bruno Santos", Balance: 23.75,
			GuardianID: intPtr(2), GuardianName: "João Santos",
			GuardianEmail: "joao@email.com", GuardianPhone: "(11) 91234-5678",
			History: []ledger.Transaction{
				{ID: 2, Kind: ledger.KindSale, Amount: 8.75, Date: date(2023, 5, 10, 11, 45, 0), Description: "Suco e salgado"},
				{ID: 1, Kind: ledger.KindSale, Amount: 15.00, Date: date(2023, 5, 8, 9, 30, 0), Description: "Lanche completo"},
			},
		},
		{
			StudentID: 3, StudentName: "Carla Oliveira", Balance: 18.00,
			GuardianID: intPtr(3), GuardianName: "Fernanda Oliveira",
			GuardianEmail: "fernanda@email.com", GuardianPhone: "(11) 99876-5432",
			History: []ledger.Transaction{
				{ID: 4, Kind: ledger.KindSale, Amount: 6.00, Date: date(2023, 5, 11, 9, 10, 0), Description: "Bolo"},
				{ID: 3, Kind: ledger.KindSale, Amount: 12.00, Date: date(2023, 5, 9, 10, 20, 0), Description: "Sanduíche"},
				{ID: 2, Kind: ledger.KindPayment, Amount: 15.00, Date: date(2023, 5, 7, 14, 0, 0), Description: "Pagamento parcial"},
				{ID: 1, Kind: ledger.KindSale, Amount: 15.00, Date: date(2023, 5, 6, 8, 45, 0), Description: "Itens diversos"},
			},
		},
	}
	debtorRepo := NewDebtorRepository(db)
	for _, d := range debtors {
		if _, err := debtorRepo.SaveDebtor(d); err != nil {
			return err
		}
	}
	return nil
}
