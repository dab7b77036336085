package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodQRIS         PaymentMethod = "qris"
	PaymentMethodEWallet      PaymentMethod = "e_wallet"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// ParsePaymentMethod accepts the spellings seen in the wild from mobile
// clients ("e-wallet", "eWallet", "bankTransfer") and normalizes them.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "_")) {
	case "qris":
		return PaymentMethodQRIS, nil
	case "e_wallet", "ewallet":
		return PaymentMethodEWallet, nil
	case "bank_transfer", "banktransfer":
		return PaymentMethodBankTransfer, nil
	}

	return "", fmt.Errorf("invalid payment method: %s", s)
}

// Payment mirrors its booking's payment_status. One payment per booking,
// enforced by an application check on create.
type Payment struct {
	ID        int
	BookingID int
	Method    PaymentMethod
	Status    BookingStatus
	Reference string
	PaidAt    *time.Time
	CreatedAt time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetById(ctx context.Context, id int) (*Payment, error)
	GetByBookingId(ctx context.Context, bookingID int) (*Payment, error)

	// Complete runs the payment side of booking completion in one
	// transaction: the payment gets its paid_at and gateway reference, the
	// booking and seats flip to their final states, and the earn row plus
	// balance increment land in the points ledger.
	Complete(ctx context.Context, payment *Payment, booking *Booking, pointsEarned int) error

	// Cancel voids the payment and cancels its booking, deleting the
	// booking's seats, in one transaction.
	Cancel(ctx context.Context, payment *Payment, booking *Booking) error
}

// PaymentGateway is the charge port. The production wiring uses a simulated
// gateway; real acquirer integration is out of scope.
type PaymentGateway interface {
	// Charge attempts to collect the payment and returns a gateway reference
	// on success, or ErrPaymentDeclined.
	Charge(ctx context.Context, payment *Payment) (string, error)
}
