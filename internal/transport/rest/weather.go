package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/service/weather"
	"github.com/kadong/kadong-backend/internal/transport/respond"
)

type weatherService interface {
	Current(ctx context.Context, input weather.QueryInput) (*domain.WeatherReport, error)
	Forecast(ctx context.Context, input weather.QueryInput, days int) (*weather.Forecast, error)
	Hourly(ctx context.Context, input weather.QueryInput, hours int) (*domain.WeatherReport, error)
	ListFavorites(ctx context.Context) ([]domain.WeatherFavorite, error)
	AddFavorite(ctx context.Context, input weather.FavoriteInput) (*domain.WeatherFavorite, error)
	DeleteFavorite(ctx context.Context, id uuid.UUID) error
}

// WeatherHandler serves /api/weather.
type WeatherHandler struct {
	svc  weatherService
	errs *respond.Errors
}

// NewWeatherHandler creates a WeatherHandler.
func NewWeatherHandler(svc weatherService, errs *respond.Errors) *WeatherHandler {
	return &WeatherHandler{svc: svc, errs: errs}
}

type favoriteRequest struct {
	City    string   `json:"city"`
	Country *string  `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

// Current handles GET /api/weather/current.
func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	in, err := weatherQuery(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	report, err := h.svc.Current(r.Context(), in)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, report)
}

// Forecast handles GET /api/weather/forecast?days=.
func (h *WeatherHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	in, err := weatherQuery(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	days, err := queryInt(r, "days", weather.MaxForecastDays)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	forecast, err := h.svc.Forecast(r.Context(), in, days)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, forecast)
}

// Hourly handles GET /api/weather/hourly?hours=.
func (h *WeatherHandler) Hourly(w http.ResponseWriter, r *http.Request) {
	in, err := weatherQuery(r)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	hours, err := queryInt(r, "hours", weather.MaxHourlyHours)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	report, err := h.svc.Hourly(r.Context(), in, hours)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, report)
}

// ListFavorites handles GET /api/weather/favorites.
func (h *WeatherHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.svc.ListFavorites(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.List(w, mapSlice(favs, toFavoriteResponse), len(favs))
}

// AddFavorite handles POST /api/weather/favorites.
func (h *WeatherHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fav, err := h.svc.AddFavorite(r.Context(), weather.FavoriteInput{
		City:    req.City,
		Country: req.Country,
		Lat:     req.Lat,
		Lon:     req.Lon,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusCreated, toFavoriteResponse(fav))
}

// DeleteFavorite handles DELETE /api/weather/favorites/{id}.
func (h *WeatherHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteFavorite(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, "Favorite deleted")
}

func weatherQuery(r *http.Request) (weather.QueryInput, error) {
	lat, err := queryFloat(r, "lat")
	if err != nil {
		return weather.QueryInput{}, err
	}
	lon, err := queryFloat(r, "lon")
	if err != nil {
		return weather.QueryInput{}, err
	}
	return weather.QueryInput{City: r.URL.Query().Get("city"), Lat: lat, Lon: lon}, nil
}
