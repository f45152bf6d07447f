package shared

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RegisterDBStats exports the connection pool statistics of db
// (open, in use, idle, wait count) under the given database name.
func RegisterDBStats(registry prometheus.Registerer, db *sql.DB, name string) error {
	return registry.Register(collectors.NewDBStatsCollector(db, name))
}
