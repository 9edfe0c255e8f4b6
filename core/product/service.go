package product

import "errors"

var ErrNotFound = errors.New("product not found")

type (
	Repository interface {
		CreateProduct(p Product) (Product, error)
		QueryAllProducts() ([]Product, error)
		GetProductByID(id int) (Product, error)
		UpdateProduct(p Product) (Product, error)
		DeleteProduct(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(np NewProduct) (Product, error) {
	return svc.repo.CreateProduct(Product{
		Name:     np.Name,
		Category: np.Category,
		Price:    np.Price,
	})
}

func (svc *Service) QueryAll() ([]Product, error) {
	return svc.repo.QueryAllProducts()
}

func (svc *Service) GetByID(id int) (Product, error) {
	return svc.repo.GetProductByID(id)
}

func (svc *Service) Update(id int, up UpdateProduct) (Product, error) {
	return svc.repo.UpdateProduct(Product{
		ID:       id,
		Name:     up.Name,
		Category: up.Category,
		Price:    up.Price,
	})
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteProduct(id)
}
