package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/api"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

func (app *Application) ListShowtimes(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movieId, err := app.readIntQuery(r, "movieId", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cinemaId, err := app.readIntQuery(r, "cinemaId", 0)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.ShowtimeFilters{
		Pagination: domain.Pagination{Page: page, PageSize: pageSize},
		MovieID:    movieId,
		CinemaID:   cinemaId,
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("invalid date parameter, expected YYYY-MM-DD"))
			return
		}
		filters.Date = &date
	}

	showtimes, metadata, err := app.showtimeRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		responses[i] = toShowtimeResponse(showtime)
	}

	resp := api.ShowtimeListResponse{
		Showtimes: responses,
		Metadata:  toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, err := app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("showtime not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(*showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetShowtimeSeats returns the cinema's seat map for a showtime. A seat is
// unavailable only when a complete booking holds it; seats under pending
// bookings still show as available.
func (app *Application) GetShowtimeSeats(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, err := app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("showtime not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seats, err := app.seatRepo.GetByCinema(r.Context(), showtime.CinemaID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	seatIDs := make([]int, len(seats))
	for i, seat := range seats {
		seatIDs[i] = seat.ID
	}

	bookedIDs, err := app.bookingRepo.GetBookedSeatIDs(r.Context(), showtime.ID, seatIDs)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	booked := make(map[int]bool, len(bookedIDs))
	for _, seatID := range bookedIDs {
		booked[seatID] = true
	}

	availability := make([]api.SeatAvailability, len(seats))
	for i, seat := range seats {
		availability[i] = api.SeatAvailability{
			Id:         seat.ID,
			SeatNumber: seat.SeatNumber,
			Available:  !booked[seat.ID],
		}
	}

	resp := api.SeatMapResponse{
		ShowtimeId: showtime.ID,
		CinemaId:   showtime.CinemaID,
		Seats:      availability,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowtimeRequest

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

	if !input.StartTime.After(time.Now()) {
		app.badRequestResponse(w, r, fmt.Errorf("startTime must be in the future"))
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), input.MovieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("movie not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	_, err = app.cinemaRepo.GetById(r.Context(), input.CinemaId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("cinema not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	showtime := domain.Showtime{
		MovieID:   input.MovieId,
		CinemaID:  input.CinemaId,
		StartTime: input.StartTime,
	}

	err = app.showtimeRepo.Create(r.Context(), &showtime, movie.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShowtimeOverlap):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ShowtimeResponse{
		Id:        showtime.ID,
		MovieId:   showtime.MovieID,
		CinemaId:  showtime.CinemaID,
		StartTime: showtime.StartTime,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowtimeResponse(detail domain.ShowtimeDetail) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:              detail.ID,
		MovieId:         detail.MovieID,
		CinemaId:        detail.CinemaID,
		StartTime:       detail.StartTime,
		MovieTitle:      detail.Movie.Title,
		DurationMinutes: detail.Movie.DurationMinutes,
		TheaterName:     detail.Cinema.TheaterName,
		CinemaType:      string(detail.Cinema.Type),
		Price:           detail.Cinema.Price.String(),
	}
}
