package system

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/heainKang/daily-me-app/internal/backup"
	"github.com/heainKang/daily-me-app/internal/catalog"
	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/constants"
	"github.com/heainKang/daily-me-app/internal/storage/postgres"
	"github.com/heainKang/daily-me-app/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(*cli.Context) error
	warn    bool // failure is reported but does not fail the command
	needsDB bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion},
	{name: "Migrations complete", run: checkMigrationsComplete},
	{name: "Backups present", run: checkBackupsPresent, warn: true},
	{name: "Data validation", run: checkValidation, needsDB: true},
	{name: "Catalog references", run: checkCatalogReferences, warn: true, needsDB: true},
	{name: "Clock/timezone", run: checkClockTimezone, needsDB: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warn:
			ctx.Printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			ctx.Printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if holder, ok := ctx.Store.(interface{ GetDB() *sql.DB }); ok {
		db := holder.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return nil
	}
	_, err := m.MigrationStatus()
	return err
}

func checkMigrationsComplete(ctx *cli.Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return nil
	}
	st, err := m.MigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to get schema status: %w", err)
	}
	if len(st.Pending) > 0 {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run '%s migrate')",
			st.Current, st.Latest, constants.AppName)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*postgres.Store); ok {
		return nil
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	responses, err := ctx.Store.GetResponses()
	if err != nil {
		return fmt.Errorf("failed to get responses: %w", err)
	}
	ids := make(map[string]bool, len(responses))
	for i := range responses {
		r := responses[i]
		if ids[r.ID] {
			return fmt.Errorf("duplicate response ID found: %s", r.ID)
		}
		ids[r.ID] = true
		if err := r.Validate(); err != nil {
			return fmt.Errorf("response %s: %w", r.ID, err)
		}
	}

	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.TotalResponses != len(responses) {
		return fmt.Errorf("profile counts %d responses but %d are stored", profile.TotalResponses, len(responses))
	}

	analyses, err := ctx.Store.GetAllAnalyses()
	if err != nil {
		return fmt.Errorf("failed to get analyses: %w", err)
	}
	for _, rec := range analyses {
		if err := utils.ValidateDate(rec.Date); err != nil {
			return fmt.Errorf("analysis with invalid date %q", rec.Date)
		}
	}
	return nil
}

// checkCatalogReferences flags responses whose item is no longer in the
// catalog. They score zero, so this is only a warning.
func checkCatalogReferences(ctx *cli.Context) error {
	responses, err := ctx.Store.GetResponses()
	if err != nil {
		return err
	}
	var unknown []string
	seen := make(map[string]bool)
	for _, r := range responses {
		if strings.HasPrefix(r.ItemID, constants.EmotionItemPrefix) || seen[r.ItemID] {
			continue
		}
		seen[r.ItemID] = true
		if _, ok := catalog.Find(r.ItemID); !ok {
			unknown = append(unknown, r.ItemID)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("responses reference unknown items: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return fmt.Errorf("configured timezone %q is invalid: %w", settings.Timezone, err)
	}
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if now.Location() == time.UTC {
		ctx.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
