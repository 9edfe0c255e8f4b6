package inmemdb

import (
	"sort"

	"github.com/trezcool/cantina/core/guardian"
)

type guardianRepository struct {
	db *guardianTable
}

var _ guardian.Repository = (*guardianRepository)(nil)

func NewGuardianRepository(db *DB) guardian.Repository {
	return &guardianRepository{db: db.guardian}
}

func (repo *guardianRepository) query() []guardian.Guardian {
	guardians := make([]guardian.Guardian, 0, len(repo.db.t))
	for _, g := range repo.db.t {
		guardians = append(guardians, *g)
	}
	sort.Slice(guardians, func(i, j int) bool { return guardians[i].ID < guardians[j].ID })
	return guardians
}

func (repo *guardianRepository) CreateGuardian(g guardian.Guardian) (guardian.Guardian, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pk++
	g.ID = repo.db.pk
	repo.db.t[g.ID] = &g
	return g, nil
}

func (repo *guardianRepository) QueryAllGuardians() ([]guardian.Guardian, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *guardianRepository) GetGuardianByID(id int) (guardian.Guardian, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if g, ok := repo.db.t[id]; ok {
		return *g, nil
	}
	return guardian.Guardian{}, guardian.ErrNotFound
}

func (repo *guardianRepository) UpdateGuardian(g guardian.Guardian) (guardian.Guardian, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.t[g.ID]
	if !ok {
		return guardian.Guardian{}, guardian.ErrNotFound
	}
	orig.Name = g.Name
	orig.Email = g.Email
	orig.Phone = g.Phone
	return *orig, nil
}

func (repo *guardianRepository) DeleteGuardian(id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.t[id]; !ok {
		return guardian.ErrNotFound
	}
	delete(repo.db.t, id)
	return nil
}
