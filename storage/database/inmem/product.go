package inmemdb

import (
	"sort"

	"github.com/trezcool/cantina/core/product"
)

type productRepository struct {
	db *productTable
}

var _ product.Repository = (*productRepository)(nil)

func NewProductRepository(db *DB) product.Repository {
	return &productRepository{db: db.product}
}

func (repo *productRepository) query() []product.Product {
	products := make([]product.Product, 0, len(repo.db.t))
	for _, p := range repo.db.t {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

func (repo *productRepository) CreateProduct(p product.Product) (product.Product, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pk++
	p.ID = repo.db.pk
	repo.db.t[p.ID] = &p
	return p, nil
}

func (repo *productRepository) QueryAllProducts() ([]product.Product, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *productRepository) GetProductByID(id int) (product.Product, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if p, ok := repo.db.t[id]; ok {
		return *p, nil
	}
	return product.Product{}, product.ErrNotFound
}

func (repo *productRepository) UpdateProduct(p product.Product) (product.Product, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.t[p.ID]
	if !ok {
		return product.Product{}, product.ErrNotFound
	}
	orig.Name = p.Name
	orig.Category = p.Category
	orig.Price = p.Price
	return *orig, nil
}

func (repo *productRepository) DeleteProduct(id int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.t[id]; !ok {
		return product.ErrNotFound
	}
	delete(repo.db.t, id)
	return nil
}
