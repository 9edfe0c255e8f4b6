package guardian

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/cantina/core"
)

// Guardian ("responsável") is a student's contact-of-record for
// notifications and billing. Email and phone are both optional; a guardian
// without a contact field is simply never reached on the matching channel.
type Guardian struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// NewGuardian contains information needed to create a new Guardian.
type NewGuardian struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

func (ng *NewGuardian) Validate(validate *validator.Validate) error {
	ng.Name = core.CleanString(ng.Name)
	ng.Email = core.CleanString(ng.Email, true /* lower */)
	ng.Phone = core.CleanString(ng.Phone)
	return validate.Struct(ng)
}

// UpdateGuardian defines what information may be provided to modify an
// existing Guardian. Edits replace fields in place; history snapshots taken
// from a guardian are never rewritten.
type UpdateGuardian struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

func (ug *UpdateGuardian) Validate(orig Guardian, validate *validator.Validate) error {
	if name := core.CleanString(ug.Name); name != "" {
		ug.Name = name
	} else {
		ug.Name = orig.Name
	}
	if email := core.CleanString(ug.Email, true /* lower */); email != "" {
		ug.Email = email
	} else {
		ug.Email = orig.Email
	}
	if phone := core.CleanString(ug.Phone); phone != "" {
		ug.Phone = phone
	} else {
		ug.Phone = orig.Phone
	}
	return validate.Struct(ug)
}
