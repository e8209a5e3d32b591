package insights

import (
	"github.com/fincontrol/backend/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats amounts and percentages for a user's locale.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter returns a Formatter for the settings.
func NewFormatter(settings models.UserSettings) Formatter {
	return Formatter{
		printer: message.NewPrinter(settings.Tag()),
		unit:    settings.Unit(),
	}
}

// Money formats an amount with the currency symbol and two fraction digits.
func (f Formatter) Money(amount decimal.Decimal) string {
	value := number.Decimal(amount.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2))
	return f.printer.Sprintf("%v %v", currency.Symbol(f.unit), value)
}

// Percent formats a percentage with at most one fraction digit.
func (f Formatter) Percent(percent decimal.Decimal) string {
	return f.printer.Sprintf("%v%%", number.Decimal(percent.InexactFloat64(), number.MaxFractionDigits(1)))
}
