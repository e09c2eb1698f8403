package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

func (db *DB) migrate() error {
	log.Info().Msg("running database migrations")

	migrations := []string{
		db.migrationFleetShips(),
		db.migrationFleetLoadouts(),
		db.migrationUserLLMConfigs(),
		db.migrationSyncHistory(),
		db.migrationAIAnalyses(),
	}

	for i, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_fleet_loadouts_ship ON fleet_loadouts(fleet_ship_id)",
		"CREATE INDEX IF NOT EXISTS idx_sync_history_started_at ON sync_history(started_at)",
	}
	for _, idx := range indexes {
		if _, err := db.conn.Exec(idx); err != nil {
			return fmt.Errorf("index creation: %w", err)
		}
	}

	log.Info().Msg("migrations complete")
	return nil
}

// fleet_ships holds the user's hangar. IDs are UUIDs minted at add time;
// position preserves insertion order across export/import.
func (db *DB) migrationFleetShips() string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS fleet_ships (
			id TEXT PRIMARY KEY,
			ship_class TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0,
			created_at %s NOT NULL
		)`, db.timestampType())
}

// fleet_loadouts holds sparse per-port overrides. An empty item_class row
// means "explicitly unequipped" and is distinct from no row at all.
func (db *DB) migrationFleetLoadouts() string {
	return `
		CREATE TABLE IF NOT EXISTS fleet_loadouts (
			fleet_ship_id TEXT NOT NULL REFERENCES fleet_ships(id) ON DELETE CASCADE,
			port_name TEXT NOT NULL,
			item_class TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (fleet_ship_id, port_name)
		)`
}

func (db *DB) migrationUserLLMConfigs() string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS user_llm_configs (
			id %s,
			provider TEXT NOT NULL UNIQUE,
			encrypted_api_key TEXT NOT NULL,
			model TEXT NOT NULL DEFAULT '',
			created_at %s NOT NULL,
			updated_at %s NOT NULL
		)`, db.autoIncrement(), db.timestampType(), db.timestampType())
}

func (db *DB) migrationSyncHistory() string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS sync_history (
			id %s,
			kind TEXT NOT NULL,
			status TEXT NOT NULL,
			record_count INTEGER NOT NULL DEFAULT 0,
			error_message TEXT,
			started_at %s NOT NULL,
			completed_at %s
		)`, db.autoIncrement(), db.timestampType(), db.timestampType())
}

func (db *DB) migrationAIAnalyses() string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS ai_analyses (
			id %s,
			created_at %s NOT NULL DEFAULT (%s),
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			ship_count INTEGER NOT NULL DEFAULT 0,
			analysis TEXT NOT NULL
		)`, db.autoIncrement(), db.timestampType(), db.now())
}
