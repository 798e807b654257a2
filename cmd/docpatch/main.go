// Command docpatch applies ordered text corrections to a document.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	configfile "github.com/custodia-labs/docpatch/internal/adapters/driven/config/file"
	filestore "github.com/custodia-labs/docpatch/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/docpatch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docpatch/internal/adapters/driving/cli"
	"github.com/custodia-labs/docpatch/internal/core/domain"
	"github.com/custodia-labs/docpatch/internal/core/ports/driven"
	"github.com/custodia-labs/docpatch/internal/core/services"
	"github.com/custodia-labs/docpatch/internal/patch"
	"github.com/custodia-labs/docpatch/internal/patch/corrections"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return err
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		// Keep the CLI usable so "docpatch settings set" can repair the file.
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		defaults := domain.DefaultSettings()
		settings = &defaults
	}

	var history driven.HistoryStore
	if settings.HistoryEnabled {
		store, err := sqlite.NewStore(settings.DataDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: run history disabled: %v\n", err)
		} else {
			defer store.Close()
			history = store.HistoryStore()
		}
	}

	plan, err := corrections.Plan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	cli.SetServices(cli.Services{
		Patch:    services.NewPatchService(filestore.NewDocumentStore(), history, patch.New(), plan),
		History:  services.NewHistoryService(history),
		Settings: settingsService,
	})
	cli.SetVersion(version)

	return cli.Execute(ctx)
}
