package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gamestore/internal/domain"
)

type GameWriter interface {
	Upsert(ctx context.Context, g domain.Game) (*domain.Game, error)
}

// CSVImporter reads game catalog CSV exports and inserts/updates games.
type CSVImporter struct {
	reader   *csv.Reader
	gameRepo GameWriter
}

func NewCSVImporter(r io.Reader, repo GameWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		gameRepo: repo,
	}
}

// Run parses CSV rows and upserts games, keyed by title.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		game, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if game == nil {
			continue
		}
		if _, err := i.gameRepo.Upsert(ctx, *game); err != nil {
			return imported, fmt.Errorf("upsert %q: %w", game.Title, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Game, error) {
	get := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	title := get("title")
	if title == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(get("price"), 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("invalid price %q", get("price"))
	}

	stock := 0
	if s := get("stock"); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("invalid stock %q", s)
		}
	}

	rating := 0.0
	if s := get("rating"); s != "" {
		rating, err = strconv.ParseFloat(s, 64)
		if err != nil || rating < 0 || rating > 5 {
			return nil, fmt.Errorf("invalid rating %q", s)
		}
	}

	platform := get("platform")
	if !domain.ValidPlatform(platform) {
		return nil, fmt.Errorf("invalid platform %q", platform)
	}
	genre := get("genre")
	if !domain.ValidGenre(genre) {
		return nil, fmt.Errorf("invalid genre %q", genre)
	}

	return &domain.Game{
		Title:       title,
		Description: get("description"),
		PriceCents:  int64(math.Round(price * 100)),
		Platform:    platform,
		Genre:       genre,
		CoverImage:  get("cover_image"),
		Stock:       stock,
		Rating:      rating,
	}, nil
}
