// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// seed.go - Demo data seeding command.
//
// Handles "lendbench seed", which asks the backend to populate its
// database with demo loan applications. Seeding an already-populated
// backend is a no-op server-side.
package cli

import (
	"context"
	"fmt"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/config"
)

// RunSeed runs the seed command.
func RunSeed(args Args, cfg *config.Config, client *api.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout())
	defer cancel()

	if !args.Quiet {
		fmt.Println(infoStyle.Render("Seeding demo data at " + client.BaseURL() + "..."))
	}

	if err := client.SeedDatabase(ctx); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	result, err := client.ListApplications(ctx, "")
	if err != nil {
		// Seed succeeded; the follow-up count is informational only.
		fmt.Println(commandStyle.Render("Seed complete."))
		return nil
	}
	fmt.Println(commandStyle.Render(fmt.Sprintf("Seed complete. %d applications in the pipeline.", len(result.Applications))))
	return nil
}
