// Package render formats frequency samples for terminals and JSON consumers.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/CristiGvl/picoCPUFreq/internal/cpufreq"
)

// Entry pairs a sample with its position in the reading.
type Entry struct {
	CPU int `json:"cpu"`
	cpufreq.Sample
}

// Entries numbers samples in the order they were read.
func Entries(samples []cpufreq.Sample) []Entry {
	entries := make([]Entry, len(samples))
	for i, s := range samples {
		entries[i] = Entry{CPU: i, Sample: s}
	}
	return entries
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Table writes samples as a bordered table. Absent values print as "-".
func Table(w io.Writer, samples []cpufreq.Sample) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render("CPU Frequency (MHz)")); err != nil {
		return err
	}

	if len(samples) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("no frequency data available"))
		return err
	}

	rows := make([][]string, len(samples))
	for i, s := range samples {
		rows[i] = []string{
			strconv.Itoa(i),
			formatMHz(s.Minimum),
			formatMHz(s.Maximum),
			formatMHz(s.Current),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("CPU", "MIN", "MAX", "CUR").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t)
	return err
}

// JSON writes samples as an indented array of entries.
func JSON(w io.Writer, samples []cpufreq.Sample) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Entries(samples))
}

func formatMHz(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
