package layout

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/framekit/framekit/config"
	"github.com/framekit/framekit/database"
)

// FromConfig builds a root folder wired to the loaded configuration: folder
// sources derive under the configured source root, and every database built
// under the folder carries the configured engine settings, file suffix and
// logger. Metrics are registered on the default registry when enabled.
func FromConfig(name string, cfg *config.Config) *Folder {
	f := NewFolder(name, WithRoot(cfg.Source.Root))
	f.dbOpts = []database.Option{
		database.WithSuffix(cfg.Database.Suffix),
		database.WithSettings(cfg.Database.Settings),
		database.WithLogger(config.Logger(cfg.Logging)),
	}
	if cfg.Metrics.Enabled {
		m := database.NewMetrics(prometheus.DefaultRegisterer)
		f.dbOpts = append(f.dbOpts, database.WithMetrics(m))
	}
	return f
}
