// Package contact builds the WhatsApp deep links behind every
// "contact to buy" button on the storefront.
package contact

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/kecinforstore/storefront-backend/internal/config"
	"github.com/kecinforstore/storefront-backend/internal/modules/catalog"
	"github.com/kecinforstore/storefront-backend/internal/modules/profile"
)

// ErrNoNumber means no WhatsApp number is configured for the store. This is
// the one storefront failure surfaced to the user as a blocking message.
var ErrNoNumber = errors.New("no whatsapp number configured")

// NoNumberMessage is the user-facing text for ErrNoNumber.
const NoNumberMessage = "Número do WhatsApp não configurado. Entre em contato com o administrador."

const (
	host           = "https://wa.me"
	genericMessage = "Olá! Gostaria de mais informações sobre os produtos."
)

// Link builds the deep link: host + phone + URL-encoded message. The phone
// number is passed through verbatim; malformed numbers are the messaging
// service's problem.
func Link(phone, message string) string {
	query := url.Values{"text": {message}}
	return fmt.Sprintf("%s/%s?%s", host, phone, query.Encode())
}

// ProductMessage is the pre-filled inquiry text. A nil product yields the
// generic inquiry.
func ProductMessage(p *catalog.Product) string {
	if p == nil {
		return genericMessage
	}
	sku := p.SKU
	if sku == "" {
		sku = "N/A"
	}
	return fmt.Sprintf("Olá! Gostaria de saber mais sobre o produto: %s (SKU: %s)", p.Name, sku)
}

// Dispatcher selects the outbound number per viewer sector and builds links.
type Dispatcher struct {
	settings *config.Settings
}

func NewDispatcher(settings *config.Settings) *Dispatcher {
	return &Dispatcher{settings: settings}
}

// NumberFor picks the reseller number for signed-in resellers when one is
// configured, and the retail number for everyone else.
func (d *Dispatcher) NumberFor(viewer *profile.Profile) (string, error) {
	if viewer != nil && viewer.Sector == profile.SectorReseller && d.settings.WhatsAppReseller != "" {
		return d.settings.WhatsAppReseller, nil
	}
	if d.settings.WhatsAppRetail == "" {
		return "", ErrNoNumber
	}
	return d.settings.WhatsAppRetail, nil
}

// ProductLink builds the complete deep link for a product inquiry from the
// given viewer. p may be nil for a general inquiry.
func (d *Dispatcher) ProductLink(p *catalog.Product, viewer *profile.Profile) (string, error) {
	number, err := d.NumberFor(viewer)
	if err != nil {
		return "", err
	}
	return Link(number, ProductMessage(p)), nil
}
