package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lucky44/SC-fleet-manager/internal/config"
	"github.com/Lucky44/SC-fleet-manager/internal/models"
	"github.com/rs/zerolog/log"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DB provides the data access layer
type DB struct {
	conn   *sql.DB
	driver string
}

// New creates a new database connection based on config
func New(cfg *config.Config) (*DB, error) {
	var conn *sql.DB
	var err error

	switch cfg.DBDriver {
	case "sqlite":
		// Ensure directory exists
		dir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
		conn, err = sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		conn.SetMaxOpenConns(1) // SQLite is single-writer
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DATABASE_URL required for postgres driver")
		}
		conn, err = sql.Open("pgx", cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		conn.SetMaxOpenConns(10)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{conn: conn, driver: cfg.DBDriver}

	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	log.Info().Str("driver", cfg.DBDriver).Msg("database connected")
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// placeholder syntax differs between drivers; queries are written with ? and
// rewritten for postgres.
func replacePlaceholders(query string) string {
	result := make([]byte, 0, len(query)+10)
	n := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result = append(result, '$')
			result = append(result, []byte(fmt.Sprintf("%d", n))...)
			n++
		} else {
			result = append(result, query[i])
		}
	}
	return string(result)
}

func (db *DB) autoIncrement() string {
	if db.driver == "postgres" {
		return "SERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (db *DB) onConflictUpdate(conflictCol, updateCols string) string {
	if db.driver == "postgres" {
		return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", conflictCol, updateCols)
	}
	return fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET %s", conflictCol, updateCols)
}

func (db *DB) timestampType() string {
	if db.driver == "postgres" {
		return "TIMESTAMPTZ"
	}
	return "DATETIME"
}

func (db *DB) now() string {
	if db.driver == "postgres" {
		return "NOW()"
	}
	return "datetime('now')"
}

// --- Fleet Ship Operations ---

func (db *DB) InsertFleetShip(ctx context.Context, fs *models.FleetShip) error {
	query := fmt.Sprintf(`
		INSERT INTO fleet_ships (id, ship_class, name, position, created_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM fleet_ships), %s)`,
		db.now(),
	)
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	_, err := db.conn.ExecContext(ctx, query, fs.ID, fs.ShipClass, fs.Name)
	return err
}

func (db *DB) GetFleetShip(ctx context.Context, id string) (*models.FleetShip, error) {
	query := "SELECT id, ship_class, name, created_at FROM fleet_ships WHERE id = ?"
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}

	var fs models.FleetShip
	err := db.conn.QueryRowContext(ctx, query, id).Scan(&fs.ID, &fs.ShipClass, &fs.Name, &fs.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	fs.Loadout, err = db.GetLoadout(ctx, fs.ID)
	if err != nil {
		return nil, err
	}
	return &fs, nil
}

// GetFleet returns all fleet ships in insertion order, loadout overrides
// included.
func (db *DB) GetFleet(ctx context.Context) ([]models.FleetShip, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, ship_class, name, created_at
		FROM fleet_ships ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fleet []models.FleetShip
	for rows.Next() {
		var fs models.FleetShip
		if err := rows.Scan(&fs.ID, &fs.ShipClass, &fs.Name, &fs.CreatedAt); err != nil {
			return nil, err
		}
		fs.Loadout = map[string]string{}
		fleet = append(fleet, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One pass over the loadout table instead of a query per ship.
	byID := make(map[string]int, len(fleet))
	for i, fs := range fleet {
		byID[fs.ID] = i
	}
	lrows, err := db.conn.QueryContext(ctx, "SELECT fleet_ship_id, port_name, item_class FROM fleet_loadouts")
	if err != nil {
		return nil, err
	}
	defer lrows.Close()
	for lrows.Next() {
		var shipID, portName, itemClass string
		if err := lrows.Scan(&shipID, &portName, &itemClass); err != nil {
			return nil, err
		}
		if i, ok := byID[shipID]; ok {
			fleet[i].Loadout[portName] = itemClass
		}
	}
	return fleet, lrows.Err()
}

func (db *DB) RenameFleetShip(ctx context.Context, id, name string) error {
	query := "UPDATE fleet_ships SET name = ? WHERE id = ?"
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	res, err := db.conn.ExecContext(ctx, query, name, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (db *DB) DeleteFleetShip(ctx context.Context, id string) error {
	query := "DELETE FROM fleet_ships WHERE id = ?"
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	res, err := db.conn.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (db *DB) ClearFleet(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, "DELETE FROM fleet_ships")
	return err
}

// --- Loadout Operations ---

func (db *DB) GetLoadout(ctx context.Context, fleetShipID string) (map[string]string, error) {
	query := "SELECT port_name, item_class FROM fleet_loadouts WHERE fleet_ship_id = ?"
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	rows, err := db.conn.QueryContext(ctx, query, fleetShipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loadout := map[string]string{}
	for rows.Next() {
		var portName, itemClass string
		if err := rows.Scan(&portName, &itemClass); err != nil {
			return nil, err
		}
		loadout[portName] = itemClass
	}
	return loadout, rows.Err()
}

// SetLoadoutEntry stores one port override. An empty itemClass is a valid
// entry meaning "explicitly unequipped".
func (db *DB) SetLoadoutEntry(ctx context.Context, fleetShipID, portName, itemClass string) error {
	query := fmt.Sprintf(`
		INSERT INTO fleet_loadouts (fleet_ship_id, port_name, item_class)
		VALUES (?, ?, ?)
		%s`,
		db.onConflictUpdate("fleet_ship_id, port_name", "item_class=excluded.item_class"),
	)
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	_, err := db.conn.ExecContext(ctx, query, fleetShipID, portName, itemClass)
	return err
}

func (db *DB) DeleteLoadoutEntry(ctx context.Context, fleetShipID, portName string) error {
	query := "DELETE FROM fleet_loadouts WHERE fleet_ship_id = ? AND port_name = ?"
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	_, err := db.conn.ExecContext(ctx, query, fleetShipID, portName)
	return err
}

func (db *DB) ClearLoadout(ctx context.Context, fleetShipID string) error {
	query := "DELETE FROM fleet_loadouts WHERE fleet_ship_id = ?"
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	_, err := db.conn.ExecContext(ctx, query, fleetShipID)
	return err
}

// ReplaceFleet swaps the whole persisted fleet for the given one, in order.
// Used by import.
func (db *DB) ReplaceFleet(ctx context.Context, fleet []models.FleetShip) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM fleet_ships"); err != nil {
		return err
	}

	insertShip := fmt.Sprintf(
		"INSERT INTO fleet_ships (id, ship_class, name, position, created_at) VALUES (?, ?, ?, ?, %s)",
		db.now(),
	)
	insertEntry := "INSERT INTO fleet_loadouts (fleet_ship_id, port_name, item_class) VALUES (?, ?, ?)"
	if db.driver == "postgres" {
		insertShip = replacePlaceholders(insertShip)
		insertEntry = replacePlaceholders(insertEntry)
	}

	for i, fs := range fleet {
		if _, err := tx.ExecContext(ctx, insertShip, fs.ID, fs.ShipClass, fs.Name, i+1); err != nil {
			return err
		}
		for portName, itemClass := range fs.Loadout {
			if _, err := tx.ExecContext(ctx, insertEntry, fs.ID, portName, itemClass); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// --- LLM Config Operations ---

func (db *DB) UpsertLLMConfig(ctx context.Context, provider, encryptedKey, model string) error {
	query := fmt.Sprintf(`
		INSERT INTO user_llm_configs (provider, encrypted_api_key, model, created_at, updated_at)
		VALUES (?, ?, ?, %s, %s)
		%s`,
		db.now(), db.now(),
		db.onConflictUpdate("provider", fmt.Sprintf("encrypted_api_key=excluded.encrypted_api_key, model=excluded.model, updated_at=%s", db.now())),
	)
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	_, err := db.conn.ExecContext(ctx, query, provider, encryptedKey, model)
	return err
}

func (db *DB) GetLLMConfig(ctx context.Context, provider string) (*models.UserLLMConfig, error) {
	query := "SELECT id, provider, encrypted_api_key, model, created_at, updated_at FROM user_llm_configs WHERE provider = ?"
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	var c models.UserLLMConfig
	err := db.conn.QueryRowContext(ctx, query, provider).Scan(
		&c.ID, &c.Provider, &c.EncryptedAPIKey, &c.Model, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (db *DB) GetAllLLMConfigs(ctx context.Context) ([]models.UserLLMConfig, error) {
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, provider, encrypted_api_key, model, created_at, updated_at FROM user_llm_configs ORDER BY provider")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []models.UserLLMConfig
	for rows.Next() {
		var c models.UserLLMConfig
		if err := rows.Scan(&c.ID, &c.Provider, &c.EncryptedAPIKey, &c.Model, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

func (db *DB) DeleteLLMConfig(ctx context.Context, provider string) error {
	query := "DELETE FROM user_llm_configs WHERE provider = ?"
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	_, err := db.conn.ExecContext(ctx, query, provider)
	return err
}

// --- Sync History Operations ---

func (db *DB) InsertSyncRecord(ctx context.Context, kind string) (int, error) {
	query := fmt.Sprintf("INSERT INTO sync_history (kind, status, started_at) VALUES (?, 'running', %s)", db.now())
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
		query += " RETURNING id"
		var id int
		err := db.conn.QueryRowContext(ctx, query, kind).Scan(&id)
		return id, err
	}

	result, err := db.conn.ExecContext(ctx, query, kind)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return int(id), err
}

func (db *DB) CompleteSyncRecord(ctx context.Context, id int, status string, count int, errMsg string) error {
	query := fmt.Sprintf("UPDATE sync_history SET status = ?, record_count = ?, error_message = ?, completed_at = %s WHERE id = ?", db.now())
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	_, err := db.conn.ExecContext(ctx, query, status, count, errMsg, id)
	return err
}

func (db *DB) GetRecentSyncRecords(ctx context.Context, limit int) ([]models.SyncRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	query := fmt.Sprintf(`
		SELECT id, kind, status, record_count, error_message, started_at, completed_at
		FROM sync_history ORDER BY started_at DESC LIMIT %d`, limit)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.SyncRecord
	for rows.Next() {
		var r models.SyncRecord
		var completedAt sql.NullTime
		var errMsg sql.NullString
		if err := rows.Scan(&r.ID, &r.Kind, &r.Status, &r.RecordCount, &errMsg, &r.StartedAt, &completedAt); err != nil {
			return nil, err
		}
		if errMsg.Valid {
			r.ErrorMessage = errMsg.String
		}
		if completedAt.Valid {
			t := completedAt.Time
			r.CompletedAt = &t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// --- AI Analysis Operations ---

func (db *DB) SaveAIAnalysis(ctx context.Context, provider, model string, shipCount int, analysis string) (int64, error) {
	query := "INSERT INTO ai_analyses (provider, model, ship_count, analysis) VALUES (?, ?, ?, ?)"
	if db.driver == "postgres" {
		query = replacePlaceholders(query) + " RETURNING id"
		var id int64
		err := db.conn.QueryRowContext(ctx, query, provider, model, shipCount, analysis).Scan(&id)
		return id, err
	}

	result, err := db.conn.ExecContext(ctx, query, provider, model, shipCount, analysis)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (db *DB) GetLatestAIAnalysis(ctx context.Context) (*models.AIAnalysis, error) {
	var a models.AIAnalysis
	err := db.conn.QueryRowContext(ctx,
		"SELECT id, created_at, provider, model, ship_count, analysis FROM ai_analyses ORDER BY created_at DESC LIMIT 1").
		Scan(&a.ID, &a.CreatedAt, &a.Provider, &a.Model, &a.ShipCount, &a.Analysis)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *DB) GetAIAnalysisHistory(ctx context.Context, limit int) ([]models.AIAnalysis, error) {
	if limit == 0 {
		limit = 50
	}
	query := fmt.Sprintf("SELECT id, created_at, provider, model, ship_count, analysis FROM ai_analyses ORDER BY created_at DESC LIMIT %d", limit)

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []models.AIAnalysis
	for rows.Next() {
		var a models.AIAnalysis
		if err := rows.Scan(&a.ID, &a.CreatedAt, &a.Provider, &a.Model, &a.ShipCount, &a.Analysis); err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

func (db *DB) DeleteAIAnalysis(ctx context.Context, id int64) error {
	query := "DELETE FROM ai_analyses WHERE id = ?"
	if db.driver == "postgres" {
		query = replacePlaceholders(query)
	}
	_, err := db.conn.ExecContext(ctx, query, id)
	return err
}

// ErrNotFound is returned by write operations targeting a missing row.
var ErrNotFound = sql.ErrNoRows

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
