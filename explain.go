package main

import (
	"Jokerscore/services/poker"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// describeChange prints what one step did, e.g. "+13 chips" or "mult 4 -> 8".
func describeChange(step poker.Step) string {
	var parts []string
	if d := step.After.Chips - step.Before.Chips; d != 0 {
		parts = append(parts, fmt.Sprintf("%+g chips", d))
	}
	if step.After.Mult != step.Before.Mult {
		parts = append(parts, fmt.Sprintf("mult %s -> %s", formatNumber(step.Before.Mult), formatNumber(step.After.Mult)))
	}
	return strings.Join(parts, ", ")
}

func renderExplain(w io.Writer, round poker.Round, result poker.Result) error {
	data := pterm.TableData{{"#", "Stage", "Source", "Effect", "Change", "Chips", "Mult"}}
	for i, step := range result.Ledger.Steps {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			string(step.Stage),
			step.Source,
			step.Effect,
			describeChange(step),
			formatNumber(step.After.Chips),
			formatNumber(step.After.Mult),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}

	scored := make([]string, 0, len(result.Scored))
	for _, c := range result.Scored {
		scored = append(scored, c.String())
	}

	summary := []string{
		fmt.Sprintf("Hand:   %s", result.Hand),
		fmt.Sprintf("Scored: %s", strings.Join(scored, " ")),
		fmt.Sprintf("Score:  %s x %s = %s",
			formatNumber(result.State.Chips), formatNumber(result.State.Mult), formatNumber(result.Total())),
	}
	// regular poker only makes sense for five distinct cards
	if len(round.CardsPlayed) == 5 {
		if desc, err := poker.DescribeStandard(round.CardsPlayed); err == nil {
			summary = append(summary, fmt.Sprintf("Poker:  %s", desc))
		}
	}

	box := pterm.DefaultBox.WithTitle("Round").Sprint(strings.Join(summary, "\n"))
	if _, err := fmt.Fprintln(w, box); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
