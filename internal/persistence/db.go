// Package persistence provides SQLite-based save slot storage. Each slot
// holds one full city snapshot as zstd-compressed JSON plus a few columns
// of metadata for listing slots without decompressing anything.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"github.com/talgya/pixel-city/internal/engine"
)

// ErrSlotEmpty is returned when loading a slot with no save in it.
var ErrSlotEmpty = errors.New("save slot empty")

// DB wraps a SQLite connection for save slot persistence.
type DB struct {
	conn *sqlx.DB
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

// SlotInfo is the listing metadata for one save slot.
type SlotInfo struct {
	Slot          int       `db:"slot" json:"slot"`
	SessionID     string    `db:"session_id" json:"sessionId"`
	CityLevel     int       `db:"city_level" json:"cityLevel"`
	Population    int       `db:"population" json:"population"`
	PrestigeStars int       `db:"prestige_stars" json:"prestigeStars"`
	SavedAt       time.Time `db:"saved_at" json:"savedAt"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}

	db := &DB{conn: conn, enc: enc, dec: dec}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS save_slots (
		slot INTEGER PRIMARY KEY,
		session_id TEXT NOT NULL,
		city_level INTEGER NOT NULL,
		population INTEGER NOT NULL,
		prestige_stars INTEGER NOT NULL,
		saved_at TIMESTAMP NOT NULL,
		payload BLOB NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSlot writes a snapshot into the given slot, replacing any previous
// save there. A fresh session id is minted per write.
func (db *DB) SaveSlot(slot int, snap engine.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	payload := db.enc.EncodeAll(raw, nil)

	_, err = db.conn.Exec(`INSERT OR REPLACE INTO save_slots
		(slot, session_id, city_level, population, prestige_stars, saved_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		slot, uuid.NewString(), snap.CityLevel, int(snap.Population),
		snap.PrestigeStars, snap.SavedAt, payload,
	)
	if err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}

	slog.Info("snapshot saved",
		"slot", slot,
		"city_level", snap.CityLevel,
		"raw_bytes", len(raw),
		"stored_bytes", len(payload),
	)
	return nil
}

// LoadSlot reads and decodes the snapshot in the given slot.
func (db *DB) LoadSlot(slot int) (engine.Snapshot, error) {
	var payload []byte
	err := db.conn.Get(&payload, "SELECT payload FROM save_slots WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.Snapshot{}, ErrSlotEmpty
	}
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("load slot %d: %w", slot, err)
	}

	raw, err := db.dec.DecodeAll(payload, nil)
	if err != nil {
		return engine.Snapshot{}, fmt.Errorf("decompress slot %d: %w", slot, err)
	}

	var snap engine.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return engine.Snapshot{}, fmt.Errorf("decode slot %d: %w", slot, err)
	}
	return snap, nil
}

// DeleteSlot removes any save in the given slot.
func (db *DB) DeleteSlot(slot int) error {
	_, err := db.conn.Exec("DELETE FROM save_slots WHERE slot = ?", slot)
	return err
}

// Slots lists metadata for every occupied slot, lowest slot first.
func (db *DB) Slots() ([]SlotInfo, error) {
	var slots []SlotInfo
	err := db.conn.Select(&slots, `SELECT
		slot, session_id, city_level, population, prestige_stars, saved_at
		FROM save_slots ORDER BY slot`)
	return slots, err
}
