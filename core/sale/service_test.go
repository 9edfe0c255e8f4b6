package sale_test

import (
	"io/ioutil"
	"log"
	"net/mail"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/ledger"
	"github.com/trezcool/cantina/core/notif"
	"github.com/trezcool/cantina/core/product"
	"github.com/trezcool/cantina/core/sale"
	"github.com/trezcool/cantina/core/student"
	emailsvc "github.com/trezcool/cantina/services/email"
	logsvc "github.com/trezcool/cantina/services/logger"
	whatsappsvc "github.com/trezcool/cantina/services/whatsapp"
	inmemdb "github.com/trezcool/cantina/storage/database/inmem"
	"github.com/trezcool/cantina/storage/settings"
)

type testEnv struct {
	saleSvc   *sale.Service
	ledgerSvc *ledger.Service
	guardians guardian.Repository
	students  student.Repository
	products  product.Repository
}

func setup(t *testing.T) *testEnv {
	t.Cleanup(emailsvc.ClearSentMessages)
	t.Cleanup(whatsappsvc.ClearSentMessages)

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	conf := &core.Config{
		AppName:          "Cantina",
		DefaultFromEmail: mail.Address{Name: "Cantina", Address: "noreply@localhost"},
	}
	logger := logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0))
	store := settings.NewStore(filepath.Join(t.TempDir(), "config.json"), logger)
	dispatcher := notif.NewDispatcher(
		store,
		emailsvc.NewConsoleServiceMock(conf),
		whatsappsvc.NewConsoleServiceMock(),
		logger,
	)

	guardians := inmemdb.NewGuardianRepository(db)
	students := inmemdb.NewStudentRepository(db)
	products := inmemdb.NewProductRepository(db)
	ledgerSvc := ledger.NewService(inmemdb.NewDebtorRepository(db))
	saleSvc := sale.NewService(
		inmemdb.NewSaleRepository(db),
		students, products, guardians,
		ledgerSvc, dispatcher, logger,
	)
	return &testEnv{
		saleSvc:   saleSvc,
		ledgerSvc: ledgerSvc,
		guardians: guardians,
		students:  students,
		products:  products,
	}
}

func (env *testEnv) createFixtures(t *testing.T, withGuardian bool) (student.Student, product.Product) {
	var guardianID *int
	if withGuardian {
		g, err := env.guardians.CreateGuardian(guardian.Guardian{
			Name: "Maria Silva", Email: "maria@example.com", Phone: "11999990001",
		})
		if err != nil {
			t.Fatalf("CreateGuardian() failed: %v", err)
		}
		guardianID = &g.ID
	}
	std, err := env.students.CreateStudent(student.Student{
		Name: "Ana Silva", Class: "5º Ano A", GuardianID: guardianID,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	prod, err := env.products.CreateProduct(product.Product{
		Name: "Coxinha", Category: "salgados", Price: 5.50,
	})
	if err != nil {
		t.Fatalf("CreateProduct() failed: %v", err)
	}
	return std, prod
}

func Test_Service_Register_cash(t *testing.T) {
	env := setup(t)
	std, prod := env.createFixtures(t, true)

	s, results, err := env.saleSvc.Register(sale.NewSale{
		StudentID:     std.ID,
		ProductID:     prod.ID,
		Quantity:      2,
		PaymentMethod: sale.PaymentCash,
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	assert.Equal(t, 11.00, s.Total)
	assert.Equal(t, std.Name, s.StudentName)
	assert.Equal(t, prod.Name, s.ProductName)
	assert.Nil(t, results)

	// cash never touches the ledger nor the dispatcher
	_, err = env.ledgerSvc.GetByStudentID(std.ID)
	assert.Equal(t, ledger.ErrNotFound, err)
	assert.Empty(t, emailsvc.SentMessages)
}

func Test_Service_Register_credit(t *testing.T) {
	env := setup(t)
	std, prod := env.createFixtures(t, true)

	s, results, err := env.saleSvc.Register(sale.NewSale{
		StudentID:     std.ID,
		ProductID:     prod.ID,
		Quantity:      3,
		PaymentMethod: sale.PaymentCredit,
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	assert.Equal(t, 16.50, s.Total)

	d, err := env.ledgerSvc.GetByStudentID(std.ID)
	if err != nil {
		t.Fatalf("GetByStudentID() failed: %v", err)
	}
	assert.Equal(t, 16.50, d.Balance)
	if assert.Len(t, d.History, 1) {
		assert.Equal(t, "Coxinha (3x)", d.History[0].Description)
	}
	assert.Equal(t, "Maria Silva", d.GuardianName)

	// default config: email on, whatsapp off
	if assert.Len(t, results, 1) {
		assert.True(t, results[0].Success)
		assert.Equal(t, "email", results[0].Channel)
		assert.Equal(t, "maria@example.com", results[0].To)
	}
	assert.Len(t, emailsvc.SentMessages, 1)
}

func Test_Service_Register_creditNoGuardian(t *testing.T) {
	env := setup(t)
	std, prod := env.createFixtures(t, false)

	s, results, err := env.saleSvc.Register(sale.NewSale{
		StudentID:     std.ID,
		ProductID:     prod.ID,
		Quantity:      1,
		PaymentMethod: sale.PaymentCredit,
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	assert.Equal(t, 5.50, s.Total)

	// the tab still opens; only the notification is skipped
	d, err := env.ledgerSvc.GetByStudentID(std.ID)
	if err != nil {
		t.Fatalf("GetByStudentID() failed: %v", err)
	}
	assert.Equal(t, 5.50, d.Balance)
	assert.Nil(t, d.GuardianID)

	assert.Nil(t, results)
	assert.Empty(t, emailsvc.SentMessages)
}

func Test_Service_Register_unknownStudent(t *testing.T) {
	env := setup(t)
	_, prod := env.createFixtures(t, true)

	_, _, err := env.saleSvc.Register(sale.NewSale{
		StudentID:     404,
		ProductID:     prod.ID,
		Quantity:      1,
		PaymentMethod: sale.PaymentCash,
	})
	assert.Equal(t, student.ErrNotFound, err)

	sales, err := env.saleSvc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	assert.Empty(t, sales)
}

func Test_Service_Register_unknownProduct(t *testing.T) {
	env := setup(t)
	std, _ := env.createFixtures(t, true)

	_, _, err := env.saleSvc.Register(sale.NewSale{
		StudentID:     std.ID,
		ProductID:     404,
		Quantity:      1,
		PaymentMethod: sale.PaymentCredit,
	})
	assert.Equal(t, product.ErrNotFound, err)

	_, err = env.ledgerSvc.GetByStudentID(std.ID)
	assert.Equal(t, ledger.ErrNotFound, err)
}

func Test_Service_Register_danglingGuardianLink(t *testing.T) {
	env := setup(t)
	std, prod := env.createFixtures(t, true)

	// delete the guardian after linking; treated as "no guardian"
	if err := env.guardians.DeleteGuardian(*std.GuardianID); err != nil {
		t.Fatalf("DeleteGuardian() failed: %v", err)
	}

	_, results, err := env.saleSvc.Register(sale.NewSale{
		StudentID:     std.ID,
		ProductID:     prod.ID,
		Quantity:      1,
		PaymentMethod: sale.PaymentCredit,
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	d, err := env.ledgerSvc.GetByStudentID(std.ID)
	if err != nil {
		t.Fatalf("GetByStudentID() failed: %v", err)
	}
	assert.Equal(t, 5.50, d.Balance)
	assert.Nil(t, d.GuardianID)
	assert.Nil(t, results)
}
