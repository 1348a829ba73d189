package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gamestore/internal/domain"
)

type stubGameWriter struct {
	games []domain.Game
	err   error
}

func (s *stubGameWriter) Upsert(_ context.Context, g domain.Game) (*domain.Game, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.games = append(s.games, g)
	return &g, nil
}

func TestRunImportsRows(t *testing.T) {
	csvData := `title,description,price,platform,genre,cover_image,stock,rating
Starfall Odyssey,Space RPG,59.99,PC,RPG,/uploads/starfall.jpg,25,4.5
Turbo Rally Legends,Arcade racing,39.99,PlayStation,Racing,,40,4.1
`
	writer := &stubGameWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), writer)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if len(writer.games) != 2 {
		t.Fatalf("upserted %d games, want 2", len(writer.games))
	}

	first := writer.games[0]
	if first.Title != "Starfall Odyssey" {
		t.Errorf("title = %q", first.Title)
	}
	if first.PriceCents != 5999 {
		t.Errorf("price cents = %d, want 5999", first.PriceCents)
	}
	if first.Stock != 25 {
		t.Errorf("stock = %d, want 25", first.Stock)
	}
}

func TestRunSkipsRowsWithoutTitle(t *testing.T) {
	csvData := `title,description,price,platform,genre,stock
,orphan row,10.00,PC,Action,1
Puzzle Harbor,Logic puzzles,14.99,Nintendo Switch,Puzzle,60
`
	writer := &stubGameWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), writer)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if writer.games[0].Title != "Puzzle Harbor" {
		t.Errorf("title = %q", writer.games[0].Title)
	}
}

func TestRunRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"bad price", "Game A,desc,abc,PC,Action,1"},
		{"negative stock", "Game B,desc,10.00,PC,Action,-1"},
		{"unknown platform", "Game C,desc,10.00,Dreamcast,Action,1"},
		{"unknown genre", "Game D,desc,10.00,PC,Horror,1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			csvData := "title,description,price,platform,genre,stock\n" + tc.row + "\n"
			imp := NewCSVImporter(strings.NewReader(csvData), &stubGameWriter{})
			if _, err := imp.Run(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRunStopsOnWriterError(t *testing.T) {
	csvData := `title,description,price,platform,genre,stock
Game A,desc,10.00,PC,Action,1
`
	wantErr := errors.New("db down")
	imp := NewCSVImporter(strings.NewReader(csvData), &stubGameWriter{err: wantErr})

	count, err := imp.Run(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
}
