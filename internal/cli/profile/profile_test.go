package profile

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage/sqlite"
	"github.com/heainKang/daily-me-app/internal/tui/forms"
)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "dailyme.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	var out bytes.Buffer
	return &cli.Context{
		Store: store,
		Out:   &out,
		Clock: func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) },
	}, &out
}

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "ABABABAB"},
		{in: "abab abab"},
		{in: "A,B,A,B,A,B,A,B"},
		{in: "ABAB", wantErr: true},
		{in: "ABABABAC", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseAnswers(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAnswers(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (got[0].Selected != models.OptionA || got[1].Selected != models.OptionB) {
			t.Errorf("ParseAnswers(%q) = %+v", tt.in, got)
		}
	}
}

func TestOnboardCmd_Flag(t *testing.T) {
	ctx, out := setupTestDB(t)

	if err := (&OnboardCmd{Answers: "AAAAAAAA"}).Run(ctx); err != nil {
		t.Fatalf("onboard failed: %v", err)
	}
	if !strings.Contains(out.String(), "ENTJ") {
		t.Errorf("output = %q, want ENTJ", out.String())
	}
	p, _ := ctx.Store.GetProfile()
	if p.BaseType != "ENTJ" || !p.IsBaseSet {
		t.Errorf("profile = %+v", p)
	}
}

func TestOnboardCmd_Form(t *testing.T) {
	ctx, _ := setupTestDB(t)

	old := runForm
	defer func() { runForm = old }()
	runForm = func(m *forms.OnboardingModel) error {
		for i := range m.Choices {
			m.Choices[i] = models.OptionB
		}
		return nil
	}

	if err := (&OnboardCmd{}).Run(ctx); err != nil {
		t.Fatalf("onboard failed: %v", err)
	}
	p, _ := ctx.Store.GetProfile()
	if p.BaseType != "ISFP" {
		t.Errorf("base type = %s, want ISFP", p.BaseType)
	}

	runForm = func(*forms.OnboardingModel) error { return errors.New("user aborted") }
	if err := (&OnboardCmd{}).Run(ctx); err == nil {
		t.Error("expected error when the form is aborted")
	}
}

func TestSkipAndShow(t *testing.T) {
	ctx, out := setupTestDB(t)

	if err := (&SkipCmd{}).Run(ctx); err != nil {
		t.Fatalf("skip failed: %v", err)
	}
	out.Reset()
	if err := (&ShowCmd{}).Run(ctx); err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if !strings.Contains(out.String(), "건너뜀") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&ShowCmd{JSON: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"UNSET"`) {
		t.Errorf("json output = %q", out.String())
	}
}

func TestClearCmd(t *testing.T) {
	ctx, out := setupTestDB(t)
	if err := (&OnboardCmd{Answers: "AAAAAAAA"}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	ctx.In = strings.NewReader("n\n")
	if err := (&ClearCmd{}).Run(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if p, _ := ctx.Store.GetProfile(); !p.IsBaseSet {
		t.Fatal("declined clear removed the profile")
	}
	if !strings.Contains(out.String(), "Cancelled") {
		t.Errorf("output = %q", out.String())
	}

	ctx.In = strings.NewReader("yes\n")
	if err := (&ClearCmd{}).Run(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if p, _ := ctx.Store.GetProfile(); p.IsBaseSet {
		t.Error("profile should be cleared")
	}
}
