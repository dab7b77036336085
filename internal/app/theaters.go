package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/api"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) ListTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.TheaterResponse, len(theaters))
	for i, theater := range theaters {
		responses[i] = toTheaterResponse(theater)
	}

	err = app.writeJSON(w, http.StatusOK, responses, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTheaterRequest

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

	theater := domain.Theater{
		Name:     input.Name,
		Location: input.Location,
	}

	for _, c := range input.Cinemas {
		price, err := decimal.NewFromString(c.Price)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("invalid cinema price: %s", c.Price))
			return
		}

		theater.Cinemas = append(theater.Cinemas, domain.Cinema{
			Type:       domain.CinemaType(c.Type),
			TotalSeats: c.TotalSeats,
			Price:      price,
		})
	}

	err = app.theaterRepo.Create(r.Context(), &theater)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	for i := range theater.Cinemas {
		cinema := &theater.Cinemas[i]
		cinema.TheaterID = theater.ID

		err = app.cinemaRepo.Create(r.Context(), cinema)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		err = app.seatRepo.CreateBatch(r.Context(), cinema.ID, seatLabels(cinema.TotalSeats))
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	err = app.writeJSON(w, http.StatusCreated, toTheaterResponse(theater), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinema(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "cinemaId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cinema, err := app.cinemaRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("cinema not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seats, err := app.seatRepo.GetByCinema(r.Context(), cinema.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	cinema.Seats = seats

	err = app.writeJSON(w, http.StatusOK, toCinemaResponse(*cinema), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// seatLabels generates "A1".."A20", "B1".. row labels, 20 seats per row.
func seatLabels(totalSeats int) []string {
	const seatsPerRow = 20

	labels := make([]string, 0, totalSeats)
	for i := 0; i < totalSeats; i++ {
		row := rune('A' + i/seatsPerRow)
		labels = append(labels, fmt.Sprintf("%c%d", row, i%seatsPerRow+1))
	}

	return labels
}

func toTheaterResponse(theater domain.Theater) api.TheaterResponse {
	cinemas := make([]api.CinemaResponse, len(theater.Cinemas))
	for i, cinema := range theater.Cinemas {
		cinemas[i] = toCinemaResponse(cinema)
	}

	return api.TheaterResponse{
		Id:       theater.ID,
		Name:     theater.Name,
		Location: theater.Location,
		Cinemas:  cinemas,
	}
}

func toCinemaResponse(cinema domain.Cinema) api.CinemaResponse {
	seats := make([]api.SeatResponse, len(cinema.Seats))
	for i, seat := range cinema.Seats {
		seats[i] = api.SeatResponse{
			Id:         seat.ID,
			SeatNumber: seat.SeatNumber,
		}
	}

	return api.CinemaResponse{
		Id:          cinema.ID,
		TheaterId:   cinema.TheaterID,
		TheaterName: cinema.TheaterName,
		Type:        string(cinema.Type),
		TotalSeats:  cinema.TotalSeats,
		Price:       cinema.Price.String(),
		Seats:       seats,
	}
}
