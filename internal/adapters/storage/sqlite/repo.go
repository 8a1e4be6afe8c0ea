package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jkullberg/slipboard/internal/app"
	"github.com/jkullberg/slipboard/internal/domain"
	_ "modernc.org/sqlite"
)

// driverName defines a package constant value.
const driverName = "sqlite"

// Repository represents repository data used by this package.
type Repository struct {
	db *sql.DB
}

// Open opens the requested operation.
func Open(path string) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo := &Repository{db: db}
	if err := repo.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// OpenInMemory opens in memory.
func OpenInMemory() (*Repository, error) {
	db, err := sql.Open(driverName, "file::memory:?cache=shared")
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}
	repo := &Repository{db: db}
	if err := repo.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// Close closes the requested operation.
func (r *Repository) Close() error {
	return r.db.Close()
}

// migrate handles migrate.
func (r *Repository) migrate(ctx context.Context) error {
	stmts := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		// Card order within a deck is authoring order, not any board column
		// order. Column membership is never stored.
		`CREATE TABLE IF NOT EXISTS deck_cards (
			deck_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			content TEXT NOT NULL,
			color TEXT NOT NULL,
			height INTEGER NOT NULL,
			PRIMARY KEY(deck_id, position),
			FOREIGN KEY(deck_id) REFERENCES decks(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_deck_cards_deck_position ON deck_cards(deck_id, position);`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}

// SaveDeck saves deck.
func (r *Repository) SaveDeck(ctx context.Context, deck domain.Deck) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save deck: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO decks(id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at
	`, deck.ID, deck.Name, ts(deck.CreatedAt), ts(deck.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upsert deck: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM deck_cards WHERE deck_id = ?`, deck.ID); err != nil {
		return fmt.Errorf("clear deck cards: %w", err)
	}
	for i, card := range deck.Cards {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO deck_cards(deck_id, position, content, color, height)
			VALUES (?, ?, ?, ?, ?)
		`, deck.ID, i, card.Content, card.Color, card.Height)
		if err != nil {
			return fmt.Errorf("insert deck card %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// GetDeck returns deck.
func (r *Repository) GetDeck(ctx context.Context, id string) (domain.Deck, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM decks
		WHERE id = ?
	`, id)
	return r.scanDeck(ctx, row)
}

// GetDeckByName returns deck by name.
func (r *Repository) GetDeckByName(ctx context.Context, name string) (domain.Deck, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM decks
		WHERE name = ?
	`, name)
	return r.scanDeck(ctx, row)
}

// ListDecks lists decks.
func (r *Repository) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM decks
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Deck{}
	for rows.Next() {
		var (
			deck       domain.Deck
			createdRaw string
			updatedRaw string
		)
		if err := rows.Scan(&deck.ID, &deck.Name, &createdRaw, &updatedRaw); err != nil {
			return nil, err
		}
		deck.CreatedAt = parseTS(createdRaw)
		deck.UpdatedAt = parseTS(updatedRaw)
		out = append(out, deck)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		cards, err := r.deckCards(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Cards = cards
	}
	return out, nil
}

// DeleteDeck deletes deck.
func (r *Repository) DeleteDeck(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return translateNoRows(res)
}

// scanDeck handles scan deck.
func (r *Repository) scanDeck(ctx context.Context, row *sql.Row) (domain.Deck, error) {
	var (
		deck       domain.Deck
		createdRaw string
		updatedRaw string
	)
	if err := row.Scan(&deck.ID, &deck.Name, &createdRaw, &updatedRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Deck{}, app.ErrDeckNotFound
		}
		return domain.Deck{}, err
	}
	deck.CreatedAt = parseTS(createdRaw)
	deck.UpdatedAt = parseTS(updatedRaw)
	cards, err := r.deckCards(ctx, deck.ID)
	if err != nil {
		return domain.Deck{}, err
	}
	deck.Cards = cards
	return deck, nil
}

// deckCards handles deck cards.
func (r *Repository) deckCards(ctx context.Context, deckID string) ([]domain.CardSpec, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT content, color, height
		FROM deck_cards
		WHERE deck_id = ?
		ORDER BY position ASC
	`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CardSpec{}
	for rows.Next() {
		var spec domain.CardSpec
		if err := rows.Scan(&spec.Content, &spec.Color, &spec.Height); err != nil {
			return nil, err
		}
		out = append(out, spec)
	}
	return out, rows.Err()
}

// translateNoRows handles translate no rows.
func translateNoRows(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return app.ErrDeckNotFound
	}
	return nil
}

// ts handles ts.
func ts(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTS parses input into a normalized form.
func parseTS(v string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
