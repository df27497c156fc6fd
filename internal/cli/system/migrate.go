package system

import (
	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/migration"
)

// migrator is implemented by the SQL gateways.
type migrator interface {
	MigrationStatus() (migration.Status, error)
	Migrate(logFn func(string)) (int, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		ctx.Println("JSON stores have no schema; nothing to migrate.")
		return nil
	}
	_, err := m.Migrate(func(msg string) { ctx.Println(msg) })
	return err
}
