package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/api"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

func (app *Application) ListPointsTransactions(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId, err := app.readIntQuery(r, "userId", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.PointsFilters{
		Pagination: domain.Pagination{Page: page, PageSize: pageSize},
		UserID:     userId,
	}

	if pointType := r.URL.Query().Get("type"); pointType != "" {
		switch domain.PointType(pointType) {
		case domain.PointTypeEarn, domain.PointTypeRedeem:
			filters.Type = domain.PointType(pointType)
		default:
			app.badRequestResponse(w, r, fmt.Errorf("invalid type parameter: %s", pointType))
			return
		}
	}

	transactions, metadata, err := app.pointsRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PointsListResponse{
		Transactions: toPointsTransactionResponses(transactions),
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserPointsSummary(w http.ResponseWriter, r *http.Request) {
	userId, err := app.readIDParam(r, "userId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	summary, err := app.pointsRepo.GetUserSummary(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("user not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PointsSummaryResponse{
		UserId:        summary.UserID,
		UserName:      summary.UserName,
		CurrentPoints: summary.CurrentPoints,
		TotalEarned:   summary.TotalEarned,
		TotalRedeemed: summary.TotalRedeemed,
		Recent:        toPointsTransactionResponses(summary.Recent),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) EarnPoints(w http.ResponseWriter, r *http.Request) {
	var input api.EarnPointsRequest

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

	_, err = app.userRepo.GetById(r.Context(), input.UserId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("user not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if input.BookingId != nil {
		booking, err := app.bookingRepo.GetById(r.Context(), *input.BookingId)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.notFoundResponseWithErr(w, r, fmt.Errorf("booking not found"))
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		if booking.UserID != input.UserId {
			app.badRequestResponse(w, r, domain.ErrBookingNotOwned)
			return
		}
	}

	tx := domain.PointsTransaction{
		UserID:    input.UserId,
		BookingID: input.BookingId,
		Type:      domain.PointTypeEarn,
		Points:    input.Points,
	}

	err = app.pointsRepo.Create(r.Context(), &tx)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPointsTransactionResponse(tx), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	var input api.RedeemPointsRequest

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

	_, err = app.userRepo.GetById(r.Context(), input.UserId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("user not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// Redeem rows carry a negative delta; the balance check happens inside
	// the same transaction that writes the row.
	tx := domain.PointsTransaction{
		UserID: input.UserId,
		Type:   domain.PointTypeRedeem,
		Points: -input.Points,
	}

	err = app.pointsRepo.Create(r.Context(), &tx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientPoints):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPointsTransactionResponse(tx), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) VoidPointsTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "transactionId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	tx, err := app.pointsRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("points transaction not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if !tx.CanVoid(time.Now()) {
		app.badRequestResponse(w, r, domain.ErrVoidWindowExceeded)
		return
	}

	err = app.pointsRepo.Void(r.Context(), tx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("points transaction not found"))
		case errors.Is(err, domain.ErrInsufficientPoints):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.VoidPointsResponse{
		Message:        "points transaction voided",
		PointsAdjusted: -tx.Points,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPointsTransactionResponses(transactions []domain.PointsTransaction) []api.PointsTransactionResponse {
	responses := make([]api.PointsTransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = toPointsTransactionResponse(tx)
	}

	return responses
}

func toPointsTransactionResponse(tx domain.PointsTransaction) api.PointsTransactionResponse {
	return api.PointsTransactionResponse{
		Id:        tx.ID,
		UserId:    tx.UserID,
		BookingId: tx.BookingID,
		Type:      string(tx.Type),
		Points:    tx.Points,
		CreatedAt: tx.CreatedAt,
	}
}
