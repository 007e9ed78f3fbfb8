// Package takeover decides whether a conversation is answered by the bot or
// has been taken over by a human agent.
package takeover

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Mode is the handling mode for a sender's conversation.
type Mode string

const (
	// ModeAutomated means the bot answers the conversation.
	ModeAutomated Mode = "automated"
	// ModeManual means a human agent has taken the conversation over and
	// automated replies are suppressed.
	ModeManual Mode = "manual"
)

// SheetReader reads cell ranges from a spreadsheet.
type SheetReader interface {
	GetValues(ctx context.Context, spreadsheetID, cellRange string) ([][]string, error)
}

// Resolver looks senders up in a two-column takeover table
// (sender id, mode). The table is re-read on every call so agents can flip a
// conversation without a deploy or restart.
type Resolver struct {
	reader        SheetReader
	spreadsheetID string
	cellRange     string
	logger        zerolog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(reader SheetReader, spreadsheetID, cellRange string, logger zerolog.Logger) *Resolver {
	return &Resolver{
		reader:        reader,
		spreadsheetID: spreadsheetID,
		cellRange:     cellRange,
		logger:        logger,
	}
}

// Resolve returns the handling mode for senderID. Senders without a row
// default to ModeAutomated. Read failures also resolve to ModeAutomated
// (fail-open): a spreadsheet outage must degrade to normal bot behavior, not
// silence every conversation.
func (r *Resolver) Resolve(ctx context.Context, senderID string) Mode {
	rows, err := r.reader.GetValues(ctx, r.spreadsheetID, r.cellRange)
	if err != nil {
		r.logger.Error().Err(err).Str("senderId", senderID).Msg("Takeover table read failed, defaulting to automated")
		return ModeAutomated
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		if row[0] != senderID {
			continue
		}
		// First matching row wins.
		if strings.ToLower(strings.TrimSpace(row[1])) == string(ModeManual) {
			return ModeManual
		}
		return ModeAutomated
	}
	return ModeAutomated
}
