package domain

import "time"

var platforms = map[string]bool{
	"PC":              true,
	"PlayStation":     true,
	"Xbox":            true,
	"Nintendo Switch": true,
}

var genres = map[string]bool{
	"Action":    true,
	"Adventure": true,
	"RPG":       true,
	"Strategy":  true,
	"Sports":    true,
	"Racing":    true,
	"Puzzle":    true,
}

// ValidPlatform reports whether p is one of the supported platforms.
func ValidPlatform(p string) bool { return platforms[p] }

// ValidGenre reports whether g is one of the supported genres.
func ValidGenre(g string) bool { return genres[g] }

// Review is a customer review embedded in a game record.
type Review struct {
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Platform    string    `json:"platform"`
	Genre       string    `json:"genre"`
	CoverImage  string    `json:"coverImage,omitempty"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	Reviews     []Review  `json:"reviews,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
