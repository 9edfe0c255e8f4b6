package inmemdb

import (
	"sort"

	"github.com/trezcool/cantina/core/sale"
)

type saleRepository struct {
	db *saleTable
}

var _ sale.Repository = (*saleRepository)(nil)

func NewSaleRepository(db *DB) sale.Repository {
	return &saleRepository{db: db.sale}
}

func (repo *saleRepository) CreateSale(s sale.Sale) (sale.Sale, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pk++
	s.ID = repo.db.pk
	repo.db.t[s.ID] = &s
	return s, nil
}

// QueryAllSales returns sales newest-first.
func (repo *saleRepository) QueryAllSales() ([]sale.Sale, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	sales := make([]sale.Sale, 0, len(repo.db.t))
	for _, s := range repo.db.t {
		sales = append(sales, *s)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].ID > sales[j].ID })
	return sales, nil
}
