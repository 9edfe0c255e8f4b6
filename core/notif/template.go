package notif

import (
	"fmt"
	"strings"
	"time"
)

// Placeholder tokens recognized in the configurable templates.
const (
	tokenGuardian = "{responsavel}"
	tokenStudent  = "{aluno}"
	tokenDetails  = "{detalhes_compra}"
	tokenBalance  = "{saldo_total}"
	tokenAmount   = "{valor}"
)

// SaleInfo is the point-in-time sale snapshot a notification may describe.
type SaleInfo struct {
	ProductName string
	Quantity    int
	Total       float64
	Date        time.Time
}

func FormatCurrency(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

func FormatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

func purchaseDetails(s *SaleInfo) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf(
		"\nProduto: %s\nQuantidade: %d\nValor total: %s\nData: %s\n",
		s.ProductName, s.Quantity, FormatCurrency(s.Total), FormatDate(s.Date),
	)
}

func totalBalanceLine(total float64) string {
	return fmt.Sprintf("O saldo devedor atual é de %s.", FormatCurrency(total))
}

// RenderMessage renders the message body template for the given params.
// Substitution is global: a repeated token is replaced at every occurrence.
// {detalhes_compra} expands only when a sale is present AND the
// include-purchase-details flag is set; {saldo_total} only when the
// include-total-balance flag is set; both expand to "" otherwise. Missing
// optional context is never an error.
func RenderMessage(tmpl string, p Params, content Content) string {
	var details string
	if content.IncludePurchaseDetails && p.Sale != nil {
		details = purchaseDetails(p.Sale)
	}
	var balance string
	if content.IncludeTotalBalance {
		balance = totalBalanceLine(p.Balance)
	}
	return strings.NewReplacer(
		tokenGuardian, p.Guardian.Name,
		tokenStudent, p.Student.Name,
		tokenDetails, details,
		tokenBalance, balance,
	).Replace(tmpl)
}

// RenderSubject renders the subject template; {valor} expands to the sale
// total, or "" when there is no sale.
func RenderSubject(tmpl string, p Params) string {
	var amount string
	if p.Sale != nil {
		amount = FormatCurrency(p.Sale.Total)
	}
	return strings.NewReplacer(
		tokenStudent, p.Student.Name,
		tokenAmount, amount,
	).Replace(tmpl)
}
