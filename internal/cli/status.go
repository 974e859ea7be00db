// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend and pipeline status command.
//
// Handles "lendbench status", a quick health check against the backend:
// reachability, pipeline counts, and overdue totals. --json emits a
// machine-readable form for scripting.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/config"
	"github.com/jeranaias/lendbench-tui/internal/model"
	"github.com/jeranaias/lendbench-tui/internal/ui/styles"
)

var sectionStyle = lipgloss.NewStyle().
	Foreground(styles.Mint).
	Bold(true)

// statusData is the JSON shape emitted by "lendbench status --json".
type statusData struct {
	Backend      string      `json:"backend"`
	Reachable    bool        `json:"reachable"`
	LatencyMs    int64       `json:"latency_ms"`
	Applications int         `json:"applications"`
	Stats        model.Stats `json:"stats"`
	Error        string      `json:"error,omitempty"`
}

// RunStatus runs the status command.
func RunStatus(args Args, cfg *config.Config, client *api.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout())
	defer cancel()

	data := statusData{Backend: client.BaseURL()}

	start := time.Now()
	result, err := client.ListApplications(ctx, "")
	data.LatencyMs = time.Since(start).Milliseconds()
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Reachable = true
		data.Applications = len(result.Applications)
		data.Stats = result.Stats
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	fmt.Println(sectionStyle.Render("Backend"))
	if data.Reachable {
		fmt.Printf("  %s %s (%dms)\n", commandStyle.Render(styles.StatusIndicators.Success), data.Backend, data.LatencyMs)
	} else {
		fmt.Printf("  %s %s unreachable: %s\n", warningStyle.Render(styles.StatusIndicators.Error), data.Backend, data.Error)
		return nil
	}
	fmt.Println()

	fmt.Println(sectionStyle.Render("Pipeline"))
	fmt.Printf("  Applications:          %d\n", data.Applications)
	fmt.Printf("  Pending review:        %d (%d overdue)\n", data.Stats.Pending.Count, data.Stats.Pending.Overdue)
	fmt.Printf("  Awaiting instructions: %d (%d overdue)\n", data.Stats.Awaiting.Count, data.Stats.Awaiting.Overdue)
	fmt.Printf("  Completed:             %d\n", data.Stats.Completed.Count)

	return nil
}
