// Package convlog appends conversation turns to an external spreadsheet.
package convlog

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Delivery status values recorded with each turn.
const (
	StatusDelivered   = "delivered"
	StatusUndelivered = "undelivered"
)

// SheetAppender appends rows to a spreadsheet range.
type SheetAppender interface {
	Append(ctx context.Context, spreadsheetID, cellRange string, row []string) error
}

// Turn is one fully processed conversation turn.
type Turn struct {
	TurnID       string
	SenderID     string
	InboundText  string
	OutboundText string
	// Delivered records whether the reply dispatch succeeded. Undelivered
	// turns are still logged for auditability.
	Delivered bool
}

// Logger appends one timestamped row per conversation turn. Append failures
// are logged and swallowed so the audit trail can never break the webhook.
type Logger struct {
	appender      SheetAppender
	spreadsheetID string
	cellRange     string
	logger        zerolog.Logger
	now           func() time.Time
}

// NewLogger creates a new Logger.
func NewLogger(appender SheetAppender, spreadsheetID, cellRange string, logger zerolog.Logger) *Logger {
	return &Logger{
		appender:      appender,
		spreadsheetID: spreadsheetID,
		cellRange:     cellRange,
		logger:        logger,
		now:           time.Now,
	}
}

// Append writes the turn as
// [timestamp, senderId, inboundText, outboundText, status].
func (l *Logger) Append(ctx context.Context, turn Turn) {
	status := StatusDelivered
	if !turn.Delivered {
		status = StatusUndelivered
	}
	row := []string{
		l.now().UTC().Format(time.RFC3339),
		turn.SenderID,
		turn.InboundText,
		turn.OutboundText,
		status,
	}

	if err := l.appender.Append(ctx, l.spreadsheetID, l.cellRange, row); err != nil {
		l.logger.Error().Err(err).
			Str("turnId", turn.TurnID).
			Str("senderId", turn.SenderID).
			Msg("Failed to append conversation log row")
	}
}
