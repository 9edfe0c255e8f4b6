package inmemdb

import (
	"sort"

	"github.com/trezcool/cantina/core/ledger"
)

type debtorRepository struct {
	db *debtorTable
}

var _ ledger.Repository = (*debtorRepository)(nil)

func NewDebtorRepository(db *DB) ledger.Repository {
	return &debtorRepository{db: db.debtor}
}

func (repo *debtorRepository) GetDebtorByStudentID(studentID int) (ledger.Debtor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if d, ok := repo.db.t[studentID]; ok {
		return *d, nil
	}
	return ledger.Debtor{}, ledger.ErrNotFound
}

func (repo *debtorRepository) QueryAllDebtors() ([]ledger.Debtor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	debtors := make([]ledger.Debtor, 0, len(repo.db.t))
	for _, d := range repo.db.t {
		debtors = append(debtors, *d)
	}
	sort.Slice(debtors, func(i, j int) bool { return debtors[i].StudentID < debtors[j].StudentID })
	return debtors, nil
}

func (repo *debtorRepository) SaveDebtor(d ledger.Debtor) (ledger.Debtor, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.t[d.StudentID] = &d
	return d, nil
}
