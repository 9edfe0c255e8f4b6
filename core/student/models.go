package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/cantina/core"
)

// Student is a canteen customer. GuardianID may be nil: "no guardian
// assigned" is a valid, first-class state, not an error.
type Student struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Class      string `json:"class"`
	GuardianID *int   `json:"guardian_id,omitempty"`
}

func (s *Student) HasGuardian() bool { return s.GuardianID != nil }

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name       string `json:"name" validate:"required"`
	Class      string `json:"class" validate:"required"`
	GuardianID *int   `json:"guardian_id"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Class = core.CleanString(ns.Class)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. A nil GuardianID leaves the link untouched;
// unlinking goes through ClearGuardian.
type UpdateStudent struct {
	Name          string `json:"name"`
	Class         string `json:"class"`
	GuardianID    *int   `json:"guardian_id"`
	ClearGuardian bool   `json:"clear_guardian"`
}

func (us *UpdateStudent) Validate(orig Student, validate *validator.Validate) error {
	if name := core.CleanString(us.Name); name != "" {
		us.Name = name
	} else {
		us.Name = orig.Name
	}
	if class := core.CleanString(us.Class); class != "" {
		us.Class = class
	} else {
		us.Class = orig.Class
	}
	if us.GuardianID == nil && !us.ClearGuardian {
		us.GuardianID = orig.GuardianID
	}
	return validate.Struct(us)
}
