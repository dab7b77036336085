package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/api"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

func (app *Application) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePaymentRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	method, err := domain.ParsePaymentMethod(input.Method)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), input.BookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("booking not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if booking.PaymentStatus != domain.BookingStatusPending {
		app.badRequestResponse(w, r, domain.ErrBookingNotPending)
		return
	}

	_, err = app.paymentRepo.GetByBookingId(r.Context(), booking.ID)
	if err == nil {
		app.conflictResponse(w, r, domain.ErrDuplicatePayment)
		return
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	payment := domain.Payment{
		BookingID: booking.ID,
		Method:    method,
		Status:    domain.BookingStatusPending,
	}

	err = app.paymentRepo.Create(r.Context(), &payment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicatePayment):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPaymentResponse(&payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "paymentId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payment, err := app.paymentRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("payment not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPaymentResponse(payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ProcessPayment runs the pending payment through the gateway. A successful
// charge completes the booking the same way a direct confirmation does; a
// declined charge leaves the payment pending so the client can retry.
func (app *Application) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	id, err := app.readIDParam(r, "paymentId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payment, err := app.paymentRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("payment not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if payment.Status != domain.BookingStatusPending {
		app.badRequestResponse(w, r, domain.ErrPaymentCompleted)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), payment.BookingID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = booking.Confirm()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reference, err := app.paymentGateway.Charge(r.Context(), payment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentDeclined):
			logger.Warn("payment declined by gateway", "paymentId", payment.ID)
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	payment.Reference = reference

	err = app.paymentRepo.Complete(r.Context(), payment, booking, booking.PointsEarned())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentCompleted),
			errors.Is(err, domain.ErrBookingNotPending):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.sendBookingConfirmation(r.Context(), booking.ID)

	err = app.writeJSON(w, http.StatusOK, toPaymentResponse(payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelPayment(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "paymentId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payment, err := app.paymentRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("payment not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if payment.Status == domain.BookingStatusComplete {
		app.badRequestResponse(w, r, domain.ErrPaymentCompleted)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), payment.BookingID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = booking.Cancel(time.Now())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.paymentRepo.Cancel(r.Context(), payment, booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPaymentResponse(payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPaymentResponse(payment *domain.Payment) api.PaymentResponse {
	return api.PaymentResponse{
		Id:        payment.ID,
		BookingId: payment.BookingID,
		Method:    string(payment.Method),
		Status:    string(payment.Status),
		Reference: payment.Reference,
		PaidAt:    payment.PaidAt,
		CreatedAt: payment.CreatedAt,
	}
}
