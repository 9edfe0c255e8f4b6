package inmemdb

import (
	"sync"

	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/ledger"
	"github.com/trezcool/cantina/core/product"
	"github.com/trezcool/cantina/core/sale"
	"github.com/trezcool/cantina/core/student"
)

type (
	DB struct {
		guardian *guardianTable
		student  *studentTable
		product  *productTable
		sale     *saleTable
		debtor   *debtorTable
	}

	guardianTable struct {
		t     map[int]*guardian.Guardian
		pk    int
		mutex sync.RWMutex
	}
	studentTable struct {
		t     map[int]*student.Student
		pk    int
		mutex sync.RWMutex
	}
	productTable struct {
		t     map[int]*product.Product
		pk    int
		mutex sync.RWMutex
	}
	saleTable struct {
		t     map[int]*sale.Sale
		pk    int
		mutex sync.RWMutex
	}
	debtorTable struct { // keyed by student ID
		t     map[int]*ledger.Debtor
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		guardian: &guardianTable{t: make(map[int]*guardian.Guardian)},
		student:  &studentTable{t: make(map[int]*student.Student)},
		product:  &productTable{t: make(map[int]*product.Product)},
		sale:     &saleTable{t: make(map[int]*sale.Sale)},
		debtor:   &debtorTable{t: make(map[int]*ledger.Debtor)},
	}
	return db, nil
}
