package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/juan-jump/internal/registry"
)

// Value returns the stored value for a game's key.
// ok is false when the key has never been written.
func (s *Store) Value(gameID, key string) (value int, ok bool, err error) {
	err = s.db.QueryRow(
		"SELECT value FROM kv WHERE game_id = ? AND key = ?",
		gameID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read %s/%s: %w", gameID, key, err)
	}
	return value, true, nil
}

// SetValue writes a game's key unconditionally.
func (s *Store) SetValue(gameID, key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (game_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(game_id, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		gameID, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", gameID, key, err)
	}
	return nil
}

// SetValueIfGreater writes a game's key only if value exceeds the stored
// one, or nothing is stored yet. Reports whether the value was written.
// The comparison happens inside a single statement, so concurrent sessions
// cannot lower a stored maximum.
func (s *Store) SetValueIfGreater(gameID, key string, value int) (bool, error) {
	res, err := s.db.Exec(
		`INSERT INTO kv (game_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(game_id, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.value > kv.value`,
		gameID, key, value,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot write %s/%s: %w", gameID, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// Keeper scopes the key/value store to one game.
type Keeper struct {
	store  *Store
	gameID string
}

// Keeper returns the score keeper for gameID.
func (s *Store) Keeper(gameID string) *Keeper {
	return &Keeper{store: s, gameID: gameID}
}

// Store writes key unconditionally.
func (k *Keeper) Store(key string, value int) error {
	return k.store.SetValue(k.gameID, key, value)
}

// StoreIfGreater writes key only if value beats the stored value.
func (k *Keeper) StoreIfGreater(key string, value int) (bool, error) {
	return k.store.SetValueIfGreater(k.gameID, key, value)
}

// Load returns the stored value for key, or 0.
func (k *Keeper) Load(key string) (int, error) {
	v, _, err := k.store.Value(k.gameID, key)
	return v, err
}

var _ registry.ScoreKeeper = (*Keeper)(nil)
