package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/ledger"
	"github.com/trezcool/cantina/core/notif"
	"github.com/trezcool/cantina/core/student"
)

var errNoGuardianOnRecord = errors.New("this student has no guardian on record")

type (
	fiadoApi struct {
		svc        *ledger.Service
		dispatcher notifier
		validate   *validator.Validate
	}

	// notifier is the slice of the dispatcher the fiado API needs.
	notifier interface {
		NotifyBalance(g guardian.Guardian, std student.Student, balance float64) ([]notif.Result, error)
	}

	paymentRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}

	// debtorList carries the outstanding total alongside the debtors, the
	// headline figure of the fiado screen.
	debtorList struct {
		Debtors          []ledger.Debtor `json:"debtors"`
		TotalOutstanding float64         `json:"total_outstanding"`
	}
)

func registerFiadoAPI(g *echo.Group, svc *ledger.Service, dispatcher notifier, validate *validator.Validate) {
	api := fiadoApi{svc: svc, dispatcher: dispatcher, validate: validate}

	fg := g.Group("/fiado")
	fg.GET("", api.query)
	fg.GET("/:studentID", api.retrieve)
	fg.POST("/:studentID/payments", api.recordPayment)
	fg.POST("/:studentID/notify", api.notify)
}

func (api *fiadoApi) query(ctx echo.Context) error {
	debtors, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying debtors")
	}
	total, err := api.svc.TotalOutstanding()
	if err != nil {
		return errors.Wrap(err, "totalling outstanding balances")
	}
	return ctx.JSON(http.StatusOK, debtorList{Debtors: debtors, TotalOutstanding: total})
}

func (api *fiadoApi) retrieve(ctx echo.Context) error {
	d, err := api.svc.GetByStudentID(intParam(ctx, "studentID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *fiadoApi) recordPayment(ctx echo.Context) error {
	var data paymentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to paymentRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	d, err := api.svc.RecordPayment(intParam(ctx, "studentID"), data.Amount)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, d)
}

// notify sends a balance reminder to the guardian snapshot on the debtor
// record. Debtors without a guardian on record cannot be reminded.
func (api *fiadoApi) notify(ctx echo.Context) error {
	d, err := api.svc.GetByStudentID(intParam(ctx, "studentID"))
	if err != nil {
		return err
	}
	if d.GuardianID == nil {
		return core.NewValidationError(errNoGuardianOnRecord)
	}

	g := guardian.Guardian{
		ID:    *d.GuardianID,
		Name:  d.GuardianName,
		Email: d.GuardianEmail,
		Phone: d.GuardianPhone,
	}
	std := student.Student{ID: d.StudentID, Name: d.StudentName}

	results, err := api.dispatcher.NotifyBalance(g, std, d.Balance)
	if err != nil {
		return errors.Wrap(err, "dispatching balance reminder")
	}
	return ctx.JSON(http.StatusOK, results)
}
