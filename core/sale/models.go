package sale

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Payment methods
const (
	PaymentCash   = "dinheiro"
	PaymentPix    = "pix"
	PaymentCredit = "fiado"
)

// Sale is immutable once created: a correction is a new sale or payment,
// never an edit. Student and product name/price are denormalized at sale
// time; later product edits do not touch past sales.
type Sale struct {
	ID            int       `json:"id"`
	StudentID     int       `json:"student_id"`
	StudentName   string    `json:"student_name"`
	ProductID     int       `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Date          time.Time `json:"date"` // UTC
}

// NewSale contains information needed to register a new Sale.
type NewSale struct {
	StudentID     int    `json:"student_id" validate:"required"`
	ProductID     int    `json:"product_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=dinheiro pix fiado"`
}

func (ns *NewSale) Validate(validate *validator.Validate) error {
	return validate.Struct(ns)
}
