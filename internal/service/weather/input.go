package weather

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/pkg/sanitize"
)

const (
	maxCityLength    = 100
	maxCountryLength = 100

	MaxForecastDays = 7
	MaxHourlyHours  = 48
)

// QueryInput locates a place by city or by both coordinates.
type QueryInput struct {
	City string
	Lat  *float64
	Lon  *float64
}

func (i *QueryInput) Normalize() {
	i.City = sanitize.ProductName(i.City, maxCityLength)
}

func (i QueryInput) Validate() error {
	var errs domain.FieldErrors

	switch {
	case i.Lat != nil || i.Lon != nil:
		if i.Lat == nil || i.Lon == nil {
			errs.Add("lat", "lat and lon must be given together")
			break
		}
		validateCoords(&errs, i.Lat, i.Lon)
	case i.City == "":
		errs.Add("city", "city or lat/lon is required")
	}

	return errs.Err()
}

func (i QueryInput) query() domain.WeatherQuery {
	return domain.WeatherQuery{City: i.City, Lat: i.Lat, Lon: i.Lon}
}

// cacheKey is stable for equivalent queries.
func (i QueryInput) cacheKey(kind string) string {
	if i.Lat != nil && i.Lon != nil {
		return fmt.Sprintf("%s:coord:%.3f,%.3f", kind, *i.Lat, *i.Lon)
	}
	return kind + ":city:" + strings.ToLower(i.City)
}

// FavoriteInput is a location to save.
type FavoriteInput struct {
	City    string
	Country *string
	Lat     *float64
	Lon     *float64
}

func (i *FavoriteInput) Normalize() {
	i.City = sanitize.ProductName(i.City, maxCityLength)
	if i.Country != nil {
		c := sanitize.ProductName(*i.Country, maxCountryLength)
		if c == "" {
			i.Country = nil
		} else {
			i.Country = &c
		}
	}
}

func (i FavoriteInput) Validate() error {
	var errs domain.FieldErrors

	if i.City == "" {
		errs.Add("city", "required")
	} else if utf8.RuneCountInString(i.City) > maxCityLength {
		errs.Add("city", "must be at most 100 characters")
	}
	if (i.Lat == nil) != (i.Lon == nil) {
		errs.Add("lat", "lat and lon must be given together")
	} else if i.Lat != nil {
		validateCoords(&errs, i.Lat, i.Lon)
	}

	return errs.Err()
}

func validateCoords(errs *domain.FieldErrors, lat, lon *float64) {
	if math.IsNaN(*lat) || *lat < -90 || *lat > 90 {
		errs.Add("lat", "must be between -90 and 90")
	}
	if math.IsNaN(*lon) || *lon < -180 || *lon > 180 {
		errs.Add("lon", "must be between -180 and 180")
	}
}
