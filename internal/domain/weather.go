package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeatherQuery locates a place by city name or coordinates.
type WeatherQuery struct {
	City string
	Lat  *float64
	Lon  *float64
}

// WeatherCondition is one observation or forecast point.
type WeatherCondition struct {
	Time        time.Time `json:"time"`
	Temp        float64   `json:"temp"`
	FeelsLike   float64   `json:"feels_like"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Humidity    int       `json:"humidity"`
	Pressure    int       `json:"pressure"`
	WindSpeed   float64   `json:"wind_speed"`
	Clouds      int       `json:"clouds"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	PrecipProb  float64   `json:"precip_prob"`
}

// WeatherReport is a location plus its conditions. It is cached as JSON.
type WeatherReport struct {
	City      string             `json:"city"`
	Country   string             `json:"country"`
	Lat       float64            `json:"lat"`
	Lon       float64            `json:"lon"`
	Timezone  int                `json:"timezone"`
	Current   *WeatherCondition  `json:"current,omitempty"`
	Points    []WeatherCondition `json:"points,omitempty"`
	FetchedAt time.Time          `json:"fetched_at"`
	FromCache bool               `json:"-"`
}

// WeatherFavorite is a saved location.
type WeatherFavorite struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	City      string
	Country   *string
	Lat       *float64
	Lon       *float64
	CreatedAt time.Time
}
