// Package pricing resolves which of a product's two price fields applies to
// a viewer and derives the display values around it. Prices are trusted from
// the catalog; nothing here validates or rounds beyond presentation.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/kecinforstore/storefront-backend/internal/modules/profile"
)

// Price labels as shown on the storefront.
const (
	LabelRetail   = "Varejo"
	LabelReseller = "Revenda"
)

// installments is the fixed installment count shown next to every price.
var installments = decimal.NewFromInt(12)

// Priced is anything carrying the two-tier price pair.
type Priced interface {
	RetailPrice() decimal.Decimal
	ResellerPrice() decimal.Decimal
}

// Resolve selects the applicable price and label for a viewer. An absent
// profile means an anonymous viewer and gets the retail price.
func Resolve(p Priced, viewer *profile.Profile) (decimal.Decimal, string) {
	if viewer == nil || viewer.Sector != profile.SectorReseller {
		return p.RetailPrice(), LabelRetail
	}
	return p.ResellerPrice(), LabelReseller
}

// Installment is the per-installment amount over 12 payments, rounded to
// two places. Display only, never persisted.
func Installment(amount decimal.Decimal) decimal.Decimal {
	return amount.DivRound(installments, 2)
}

// Quote is the viewer-specific price block attached to product payloads.
type Quote struct {
	Amount             decimal.Decimal `json:"amount"`
	Label              string          `json:"label"`
	Installment        decimal.Decimal `json:"installment"`
	Display            string          `json:"display"`
	InstallmentDisplay string          `json:"installment_display"`
}

// QuoteFor builds the full price block for one product and viewer.
func QuoteFor(p Priced, viewer *profile.Profile) Quote {
	amount, label := Resolve(p, viewer)
	inst := Installment(amount)
	return Quote{
		Amount:             amount,
		Label:              label,
		Installment:        inst,
		Display:            FormatBRL(amount),
		InstallmentDisplay: FormatBRL(inst),
	}
}
