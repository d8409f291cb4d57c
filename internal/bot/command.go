package bot

import (
	"strings"

	"gastobot/internal/core"
)

// CommandKind tags the classification of an inbound message.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdMenu
	CmdHelp
	CmdReport
	CmdExpense
)

// Command is the tagged result of classifying one message. Window is only
// meaningful for CmdReport.
type Command struct {
	Kind   CommandKind
	Window core.Window
}

var (
	menuKeywords = []string{"menu", "menü"}
	helpKeywords = []string{"ajuda", "help"}

	// Substring match, checked before the expense path so a report request
	// that happens to contain a number is never recorded as spending.
	reportKeywords = []string{"quanto gastei", "relatório", "relatorio", "resumo"}

	weeklyKeywords  = []string{"semanal", "semana"}
	monthlyKeywords = []string{"mensal", "mês", "mes"}
)

// Classify maps the trimmed, lower-cased message to a command. Precedence is
// fixed and ordered: menu, help (exact matches), report (substring, window
// from an embedded sub-keyword, Daily by default), then expense candidate
// when the text carries a positive amount.
func Classify(text string) Command {
	norm := strings.ToLower(strings.TrimSpace(text))

	for _, kw := range menuKeywords {
		if norm == kw {
			return Command{Kind: CmdMenu}
		}
	}
	for _, kw := range helpKeywords {
		if norm == kw {
			return Command{Kind: CmdHelp}
		}
	}
	for _, kw := range reportKeywords {
		if strings.Contains(norm, kw) {
			return Command{Kind: CmdReport, Window: reportWindow(norm)}
		}
	}
	if _, ok := core.ExtractAmountCents(norm); ok {
		return Command{Kind: CmdExpense}
	}
	return Command{Kind: CmdUnknown}
}

func reportWindow(norm string) core.Window {
	for _, kw := range weeklyKeywords {
		if strings.Contains(norm, kw) {
			return core.Weekly
		}
	}
	for _, kw := range monthlyKeywords {
		if strings.Contains(norm, kw) {
			return core.Monthly
		}
	}
	return core.Daily
}
