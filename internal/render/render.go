// Package render turns schedule responses into terminal output: a title
// banner, a text Gantt chart and tablewriter tables, or JSON/YAML documents.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/responses"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#88C0D0"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

const ganttCellWidth = 8

func Title(w io.Writer, title string) {
	rule := strings.Repeat("-", len(title)*2)
	_, _ = fmt.Fprintln(w, mutedStyle.Render(rule))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), titleStyle.Render(title))
	_, _ = fmt.Fprintln(w, mutedStyle.Render(rule))
}

// Gantt draws one cell per interval with the boundary times underneath. Gaps
// from t=0 or between intervals are drawn as idle cells.
func Gantt(w io.Writer, intervals []responses.IntervalResponse) {
	type cell struct {
		label      string
		start, end int
	}
	var cells []cell
	end := 0
	for _, iv := range intervals {
		if end < iv.Start {
			cells = append(cells, cell{label: "idle", start: end, end: iv.Start})
		}
		end = iv.End
		cells = append(cells, cell{label: iv.Name, start: iv.Start, end: iv.End})
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, c := range cells {
		padding := strings.Repeat(" ", max(ganttCellWidth-len(c.label), 0)/2)
		_, _ = fmt.Fprint(w, padding, c.label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, c := range cells {
		_, _ = fmt.Fprint(w, c.start, "\t")
		if i == len(cells)-1 {
			_, _ = fmt.Fprint(w, c.end)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Table writes the per-process schedule with averages and throughput in the footer.
func Table(w io.Writer, resp responses.ScheduleResponse) {
	rows := make([][]string, len(resp.Details))
	for i, d := range resp.Details {
		rows[i] = []string{
			d.Name,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Priority", "Start", "Completion", "Waiting", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageResponseTime)})
	table.Render()
}

func summary(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintf(w, "Total time: %d  Idle: %d  CPU utilization: %.2f%%  Throughput: %.4f processes/unit time\n",
		resp.TotalTime, resp.IdleTime, resp.CpuUtilization*100, resp.CpuThroughput)
	if resp.TimeQuantum > 0 {
		_, _ = fmt.Fprintf(w, "Time quantum: %d\n", resp.TimeQuantum)
	}
	if resp.ArrivalIgnored {
		_, _ = fmt.Fprintln(w, mutedStyle.Render("Arrival times ignored: waiting = start, turnaround = completion"))
	}
}

// Schedule writes the full text report for one run.
func Schedule(w io.Writer, resp responses.ScheduleResponse) {
	Title(w, resp.AlgorithmName)
	Gantt(w, resp.Intervals)
	Table(w, resp)
	summary(w, resp)
	_, _ = fmt.Fprintln(w)
}

// Comparison writes one summary row per algorithm.
func Comparison(w io.Writer, resp responses.CompareResponse) {
	Title(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Makespan", "Avg Waiting", "Avg Turnaround", "Avg Response", "Throughput", "Utilization"})
	for _, s := range resp.Schedules {
		table.Append([]string{
			s.AlgorithmName,
			fmt.Sprint(s.TotalTime),
			fmt.Sprintf("%.2f", s.AverageWaitingTime),
			fmt.Sprintf("%.2f", s.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", s.AverageResponseTime),
			fmt.Sprintf("%.4f", s.CpuThroughput),
			fmt.Sprintf("%.2f%%", s.CpuUtilization*100),
		})
	}
	table.Render()
}

func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Write renders v, a ScheduleResponse or CompareResponse, in format f.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return JSON(w, v)
	case FormatYAML:
		return YAML(w, v)
	}
	switch resp := v.(type) {
	case responses.ScheduleResponse:
		Schedule(w, resp)
	case responses.CompareResponse:
		Comparison(w, resp)
	default:
		return fmt.Errorf("render: cannot draw %T as a table", v)
	}
	return nil
}
