// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders sync and activation outcomes for the terminal.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/audience-sync/models"
	"github.com/charmbracelet/lipgloss"
)

const divider = "──────────────────────────────────────────────────────"

// maxCellWidth bounds table cells in the run history.
const maxCellWidth = 48

func renderPage(title, body string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")

	if strings.TrimSpace(body) == "" {
		b.WriteString("-")
	} else {
		b.WriteString(body)
	}

	b.WriteString("\n")
	b.WriteString(divider)

	return pageStyle.Render(b.String())
}

// renderFields lays out label/value pairs with aligned values.
func renderFields(pairs ...[2]string) string {
	width := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p[0]); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, p[0]))
		lines = append(lines, label+"  "+valueOrNA(p[1]))
	}
	return strings.Join(lines, "\n")
}

// BuildInfo renders the version banner printed on startup.
func BuildInfo(app string, info models.AppBuildInfo) string {
	return renderFields(
		[2]string{"Application", app},
		[2]string{"Build version", info.BuildVersion()},
		[2]string{"Build date", info.BuildDate()},
		[2]string{"Build commit", info.BuildCommit()},
	)
}

// SendResult renders the outcome of a sync run. A nil result is reported
// as a failure.
func SendResult(result *models.SendResult) string {
	if result == nil {
		return renderPage("AUDIENCE SYNC", errorStyle.Render("FAILED")+": no result, see the log for details")
	}

	mode := "live"
	if result.DryRun {
		mode = "dry run"
	}

	pairs := [][2]string{{"Status", okStyle.Render("OK")}, {"Mode", mode}}
	if result.Payload != nil {
		pairs = append(pairs,
			[2]string{"Audience", result.Payload.Name},
			[2]string{"Schema", strings.Join(result.Payload.Schema, ", ")},
			[2]string{"Rows", fmt.Sprintf("%d", len(result.Payload.Data))},
		)
	}

	var b strings.Builder
	b.WriteString(renderFields(pairs...))

	if result.DryRun && result.Payload != nil {
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Payload"))
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(indentJSON(result.Payload)))
	}
	if len(result.Response) > 0 {
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Response"))
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(indentRaw(result.Response)))
	}

	return renderPage("AUDIENCE SYNC", b.String())
}

// RunHistory renders stored runs as a table, newest first as given.
func RunHistory(runs []models.RunResult) string {
	if len(runs) == 0 {
		return renderPage("RUN HISTORY", "no runs recorded")
	}

	header := []string{"Run", "Created", "Account", "Mode", "OK", "Failed", "Errors"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		mode := "live"
		if run.DryRun {
			mode = "dry"
		}
		rows = append(rows, []string{
			run.RunID,
			run.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			run.AdAccountID,
			mode,
			fmt.Sprintf("%d", run.SuccessfulHits),
			fmt.Sprintf("%d", run.FailedHits),
			fitText(strings.Join(run.ErrorMessages, "; "), maxCellWidth),
		})
	}

	return renderPage("RUN HISTORY", renderTable(header, rows))
}

func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		return strings.TrimRight(strings.Join(padded, " │ "), " ")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(line(header)))
	b.WriteString("\n")

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	b.WriteString(strings.Join(seps, "─┼─"))

	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(line(row))
	}
	return b.String()
}

// ConnectionStatus renders the activation service probe.
func ConnectionStatus(status models.ConnectionStatus) string {
	state := okStyle.Render("REACHABLE")
	if status.StatusCode < 200 || status.StatusCode > 299 {
		state = errorStyle.Render("UNHEALTHY")
	}

	return renderPage("CONNECTION", renderFields(
		[2]string{"State", state},
		[2]string{"Status code", fmt.Sprintf("%d", status.StatusCode)},
		[2]string{"Body", fitText(strings.TrimSpace(status.Body), maxCellWidth)},
	))
}

// JSON renders an arbitrary JSON document under title.
func JSON(title string, raw json.RawMessage) string {
	return renderPage(title, boxStyle.Render(indentRaw(raw)))
}

// ActivationConfig renders a config document.
func ActivationConfig(title string, cfg models.ActivationConfig) string {
	return renderPage(title, boxStyle.Render(indentJSON(cfg)))
}

// Error renders a failed step.
func Error(title string, err error) string {
	return renderPage(title, errorStyle.Render("ERROR")+": "+err.Error())
}

func indentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

func indentRaw(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "-"
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 || len(r) <= max {
		return string(r[:min(max, len(r))])
	}
	return string(r[:max-3]) + "..."
}
