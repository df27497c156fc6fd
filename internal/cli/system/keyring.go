package system

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/constants"
	"github.com/heainKang/daily-me-app/internal/keyring"
	"github.com/heainKang/daily-me-app/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Report keyring availability."`
}

type KeyringSetCmd struct {
	ConnString string `arg:"" optional:"" help:"Connection string; read from stdin when omitted."`
}

func (c *KeyringSetCmd) Run(ctx *cli.Context) error {
	connStr := strings.TrimSpace(c.ConnString)
	if connStr == "" {
		ctx.Printf("Connection string: ")
		line, err := bufio.NewReader(ctx.Stdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read connection string: %w", err)
		}
		connStr = strings.TrimSpace(line)
	}

	if !postgres.IsConnString(connStr) && !strings.Contains(connStr, "host=") {
		return fmt.Errorf("not a PostgreSQL connection string")
	}
	// The keyring is the one place a password may live.
	if err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return err
	}

	if err := keyring.SetConnectionString(connStr); err != nil {
		return err
	}
	ctx.Printf("Stored connection string: %s\n", keyring.MaskPassword(connStr))
	return nil
}

type KeyringGetCmd struct{}

func (c *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		return err
	}
	ctx.Println(keyring.MaskPassword(connStr))
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	ctx.Println("Connection string removed from keyring.")
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		ctx.Printf("Keyring: unavailable (use %s instead)\n", constants.DBConnectionEnv)
		return nil
	}
	ctx.Println("Keyring: available")

	connStr, err := keyring.GetConnectionString()
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		ctx.Println("Connection string: not set")
	case err != nil:
		return err
	default:
		ctx.Printf("Connection string: %s\n", keyring.MaskPassword(connStr))
	}
	return nil
}
