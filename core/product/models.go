package product

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/cantina/core"
)

// Categories
const (
	CategorySalgados = "salgados"
	CategoryDoces    = "doces"
	CategoryBolos    = "bolos"
	CategoryBebidas  = "bebidas"
	CategoryOutros   = "outros"
)

var Categories = []string{CategorySalgados, CategoryDoces, CategoryBolos, CategoryBebidas, CategoryOutros}

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// NewProduct contains information needed to create a new Product.
type NewProduct struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required,oneof=salgados doces bolos bebidas outros"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

func (np *NewProduct) Validate(validate *validator.Validate) error {
	np.Name = core.CleanString(np.Name)
	np.Category = core.CleanString(np.Category, true /* lower */)
	np.Price = core.Round2(np.Price)
	return validate.Struct(np)
}

// UpdateProduct defines what information may be provided to modify an
// existing Product. Price changes never touch past sales: totals are
// denormalized at sale time.
type UpdateProduct struct {
	Name     string  `json:"name"`
	Category string  `json:"category" validate:"omitempty,oneof=salgados doces bolos bebidas outros"`
	Price    float64 `json:"price" validate:"omitempty,gt=0"`
}

func (up *UpdateProduct) Validate(orig Product, validate *validator.Validate) error {
	if name := core.CleanString(up.Name); name != "" {
		up.Name = name
	} else {
		up.Name = orig.Name
	}
	if cat := core.CleanString(up.Category, true /* lower */); cat != "" {
		up.Category = cat
	} else {
		up.Category = orig.Category
	}
	if up.Price > 0 {
		up.Price = core.Round2(up.Price)
	} else {
		up.Price = orig.Price
	}
	return validate.Struct(up)
}
