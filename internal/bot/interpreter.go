// Package bot interprets inbound messages and produces reply texts.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gastobot/internal/cache"
	"gastobot/internal/core"
	"gastobot/internal/ledger"
	applog "gastobot/internal/log"
	"gastobot/internal/report"
)

// Interpreter is the top-level dispatcher: every inbound message resolves
// to exactly one reply string, whatever happens underneath.
type Interpreter struct {
	appender ledger.Appender
	reports  *report.Generator
	replies  *cache.ReplyCache
	logger   *applog.Logger
	now      func() time.Time
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithReplyCache enables memoization of report replies.
func WithReplyCache(c *cache.ReplyCache) Option {
	return func(i *Interpreter) { i.replies = c }
}

func New(appender ledger.Appender, reports *report.Generator, logger *applog.Logger, opts ...Option) *Interpreter {
	i := &Interpreter{
		appender: appender,
		reports:  reports,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// HandleMessage runs the command pipeline for one inbound message and
// always returns a reply. Storage failures are logged and surfaced as a
// generic failure text; they never escape as an error.
func (i *Interpreter) HandleMessage(ctx context.Context, senderID, text string) string {
	cmd := Classify(text)

	switch cmd.Kind {
	case CmdMenu:
		return menuReply

	case CmdHelp:
		return helpReply

	case CmdReport:
		return i.handleReport(ctx, senderID, cmd.Window)

	case CmdExpense:
		return i.handleExpense(ctx, senderID, text)

	default:
		return unrecognizedReply
	}
}

func (i *Interpreter) handleReport(ctx context.Context, senderID string, w core.Window) string {
	if i.replies != nil {
		if cached, ok := i.replies.Get(senderID, w, i.now()); ok {
			return cached
		}
	}

	out, err := i.reports.Generate(ctx, senderID, w)
	if err != nil {
		i.logger.ErrorContext(ctx, "Report generation failed",
			applog.FieldSender, senderID,
			applog.FieldWindow, string(w),
			applog.FieldError, err)
		return storageFailureReply
	}

	if i.replies != nil {
		i.replies.Set(senderID, w, i.now(), out)
	}
	return out
}

func (i *Interpreter) handleExpense(ctx context.Context, senderID, text string) string {
	cents, ok := core.ExtractAmountCents(text)
	if !ok {
		return unrecognizedReply
	}

	category := core.Categorize(text)
	rec, err := i.appender.Append(ctx, ledger.NewExpense{
		SenderID: senderID,
		Date:     core.DateOf(i.now()),
		Amount:   core.Money{Cents: cents},
		Category: category,
		RawText:  strings.TrimSpace(text),
	})
	if err != nil {
		i.logger.ErrorContext(ctx, "Expense append failed",
			applog.FieldSender, senderID,
			applog.FieldAmountCents, cents,
			applog.FieldError, err)
		return storageFailureReply
	}

	if i.replies != nil {
		i.replies.Invalidate(senderID)
	}

	i.logger.InfoContext(ctx, "Expense recorded",
		applog.FieldSender, senderID,
		applog.FieldAmountCents, rec.Amount.Cents,
		applog.FieldCategory, string(rec.Category))

	return fmt.Sprintf(confirmationFmt, rec.Amount.Format(), rec.Category.Label(), rec.RawText)
}
