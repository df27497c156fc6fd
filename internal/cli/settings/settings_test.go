package settings

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	var out bytes.Buffer
	return &cli.Context{Store: store, Out: &out}, &out
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSettingsCmd_List(t *testing.T) {
	ctx, out := setupTestDB(t)

	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Fatalf("settings list failed: %v", err)
	}
	for _, want := range []string{"Local", "09:00", "12:00", "18:00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, _ := setupTestDB(t)

	cmd := &SettingsCmd{
		Timezone:             strPtr("Asia/Seoul"),
		NotificationsEnabled: boolPtr(false),
		MorningHour:          intPtr(7),
		EveningHour:          intPtr(21),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	s, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Timezone != "Asia/Seoul" || s.NotificationsEnabled || s.MorningNotifyHour != 7 || s.AfternoonNotifyHour != 12 || s.EveningNotifyHour != 21 {
		t.Errorf("settings = %+v", s)
	}
}

func TestSettingsCmd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  *SettingsCmd
	}{
		{name: "timezone", cmd: &SettingsCmd{Timezone: strPtr("Moon/Base")}},
		{name: "hour too large", cmd: &SettingsCmd{AfternoonHour: intPtr(24)}},
		{name: "negative hour", cmd: &SettingsCmd{MorningHour: intPtr(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestDB(t)
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected error")
			}
			s, _ := ctx.Store.GetSettings()
			if s.Timezone != "Local" || s.MorningNotifyHour != 9 || s.AfternoonNotifyHour != 12 {
				t.Errorf("settings changed on invalid input: %+v", s)
			}
		})
	}
}
