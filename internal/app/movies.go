package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/api"
	"github.com/revou-fsse-feb25/final-project-be-amanahsuci/internal/domain"
)

const (
	movieCacheVersionKey = "movies:version"
	movieCacheTTL        = time.Minute
)

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	page, pageSize, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.MovieFilters{
		Pagination: domain.Pagination{Page: page, PageSize: pageSize},
		Term:       r.URL.Query().Get("term"),
	}

	cacheKey, err := app.movieCacheKey(r, filters)
	if err == nil {
		cached, err := app.redis.Get(r.Context(), cacheKey).Bytes()
		if err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		if !errors.Is(err, redis.Nil) {
			logger.Warn("movie cache read failed", "error", err)
		}
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieResponses(movies),
		Metadata: toApiMetadata(metadata),
	}

	if cacheKey != "" {
		payload, err := json.Marshal(resp)
		if err == nil {
			err = app.redis.Set(r.Context(), cacheKey, payload, movieCacheTTL).Err()
		}
		if err != nil {
			logger.Warn("movie cache write failed", "error", err)
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// movieCacheKey stamps keys with a version counter that is bumped on every
// movie write, so stale pages expire without scanning the keyspace.
func (app *Application) movieCacheKey(r *http.Request, filters domain.MovieFilters) (string, error) {
	version, err := app.redis.Get(r.Context(), movieCacheVersionKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return "", err
		}
		version = "0"
	}

	return fmt.Sprintf("movies:v%s:p%d:s%d:%s", version, filters.Page, filters.PageSize, filters.Term), nil
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("movie not found"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie := domain.Movie{
		Title:           input.Title,
		Description:     input.Description,
		Genre:           input.Genre,
		Rating:          input.Rating,
		DurationMinutes: input.DurationMinutes,
		PosterUrl:       input.PosterUrl,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.redis.Incr(r.Context(), movieCacheVersionKey).Err()
	if err != nil {
		app.contextGetLogger(r).Warn("movie cache invalidation failed", "error", err)
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	if movie == nil {
		return api.MovieResponse{}
	}

	return api.MovieResponse{
		Id:              movie.ID,
		Title:           movie.Title,
		Description:     movie.Description,
		Genre:           movie.Genre,
		Rating:          movie.Rating,
		DurationMinutes: movie.DurationMinutes,
		PosterUrl:       movie.PosterUrl,
	}
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
