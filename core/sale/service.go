package sale

import (
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/cantina/core"
	"github.com/trezcool/cantina/core/guardian"
	"github.com/trezcool/cantina/core/ledger"
	"github.com/trezcool/cantina/core/notif"
	"github.com/trezcool/cantina/core/product"
	"github.com/trezcool/cantina/core/student"
)

var nowFunc = time.Now // mockable

type (
	Repository interface {
		CreateSale(s Sale) (Sale, error)
		QueryAllSales() ([]Sale, error)
	}

	Service struct {
		repo       Repository
		students   student.Repository
		products   product.Repository
		guardians  guardian.Repository
		ledger     *ledger.Service
		dispatcher *notif.Dispatcher
		logger     core.Logger
	}
)

func NewService(
	repo Repository,
	students student.Repository,
	products product.Repository,
	guardians guardian.Repository,
	ledgerSvc *ledger.Service,
	dispatcher *notif.Dispatcher,
	logger core.Logger,
) *Service {
	return &Service{
		repo:       repo,
		students:   students,
		products:   products,
		guardians:  guardians,
		ledger:     ledgerSvc,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (svc *Service) QueryAll() ([]Sale, error) {
	return svc.repo.QueryAllSales()
}

// Register creates a sale for a student. Validation and lookups happen
// before any mutation: a missing student or product aborts with no state
// change. For a credit ("fiado") sale the debtor ledger is updated and,
// when the student has a guardian on record, a notification is dispatched
// with the updated balance; the per-channel results are returned alongside
// the sale. Cash and pix sales touch neither the ledger nor the dispatcher.
func (svc *Service) Register(ns NewSale) (Sale, []notif.Result, error) {
	std, err := svc.students.GetStudentByID(ns.StudentID)
	if err != nil {
		return Sale{}, nil, err
	}
	prod, err := svc.products.GetProductByID(ns.ProductID)
	if err != nil {
		return Sale{}, nil, err
	}

	now := nowFunc().UTC()
	s := Sale{
		StudentID:     std.ID,
		StudentName:   std.Name,
		ProductID:     prod.ID,
		ProductName:   prod.Name,
		Quantity:      ns.Quantity,
		Total:         core.Round2(prod.Price * float64(ns.Quantity)),
		PaymentMethod: ns.PaymentMethod,
		Date:          now,
	}
	s, err = svc.repo.CreateSale(s)
	if err != nil {
		return Sale{}, nil, errors.Wrap(err, "creating sale")
	}

	if s.PaymentMethod != PaymentCredit {
		return s, nil, nil
	}

	// resolve the guardian before the ledger snapshot; a dangling link is
	// treated the same as no guardian
	var g *guardian.Guardian
	if std.HasGuardian() {
		gg, err := svc.guardians.GetGuardianByID(*std.GuardianID)
		switch {
		case err == nil:
			g = &gg
		case errors.Cause(err) == guardian.ErrNotFound:
			svc.logger.Warn("student references a missing guardian", std.ID, *std.GuardianID)
		default:
			return s, nil, errors.Wrap(err, "resolving guardian")
		}
	}

	d, err := svc.ledger.RecordCreditSale(std, g, ledger.CreditSale{
		ProductName: prod.Name,
		Quantity:    s.Quantity,
		Total:       s.Total,
		Date:        s.Date,
	})
	if err != nil {
		return s, nil, errors.Wrap(err, "updating credit tab")
	}

	if g == nil {
		svc.logger.Info("student has no guardian on record; skipping notification", std.ID)
		return s, nil, nil
	}

	results, err := svc.dispatcher.NotifyCreditSale(*g, std, notif.SaleInfo{
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		Total:       s.Total,
		Date:        s.Date,
	}, d.Balance)
	if err != nil {
		// the sale and ledger update stand; only the notification failed
		svc.logger.Error("dispatching credit sale notification failed", err)
		return s, nil, nil
	}
	return s, results, nil
}
