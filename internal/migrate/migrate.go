package migrate

import (
	"context"
	"embed"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/example/hotel-reservations/internal/db"
)

//go:embed *.sql
var fs embed.FS

// Up runs every embedded schema file on each start and records it in
// schema_migrations the first time. Schema files only ever create missing
// objects, so a table dropped by hand comes back on the next start.
func Up(ctx context.Context, d *db.DB) error {
	entries, err := fs.ReadDir(".")
	if err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`); err != nil {
		return err
	}

	for _, f := range files {
		b, err := fs.ReadFile(f)
		if err != nil {
			return err
		}

		var added int64
		err = d.WithTx(ctx, func(tx *db.Tx) error {
			if _, err := tx.Exec(ctx, string(b)); err != nil {
				return err
			}
			added, err = tx.Exec(ctx, `INSERT OR IGNORE INTO schema_migrations(version) VALUES (?)`, f)
			return err
		})
		if err != nil {
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if added > 0 {
			log.Printf("migrate: applied %s", f)
		}
	}

	return nil
}
