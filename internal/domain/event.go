package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID          string          `json:"id"`
	ClubID      string          `json:"club_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}

type CreateEventInput struct {
	ClubID      string
	Title       string
	Description string
	Date        time.Time
	Location    string
	Price       decimal.Decimal
}
