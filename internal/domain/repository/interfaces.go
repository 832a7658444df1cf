package repository

import (
	"context"

	"DartWatch/internal/domain/models"
)

// DisclosureSource wraps the upstream disclosure listing and document-detail
// endpoints. Both calls convert transport failures and non-success upstream
// status codes into empty results; a bad page or a bad filing never aborts
// the run. Failures are logged at the source, not propagated.
type DisclosureSource interface {
	// List fetches one page of the listing for one market segment.
	// Dates are YYYYMMDD.
	List(ctx context.Context, beginDate, endDate string, segment models.MarketSegment, pageNo, pageCount int) []models.DisclosureRecord

	// Detail fetches the full document set of one filing.
	Detail(ctx context.Context, receiptNo string) []models.DisclosureDocument
}

// Notifier delivers messages to the alert channel. Delivery failure returns
// false and is logged by the implementation; it is never raised to the caller.
type Notifier interface {
	SendEvent(ctx context.Context, ev *models.MonitoringEvent) bool
	SendText(ctx context.Context, text string) bool
}

// ProcessedStore tracks receipt numbers already emitted as events. The
// in-memory backend lives for one process; the Redis backend survives
// restarts. Store errors fail open (treated as unseen) and are logged.
type ProcessedStore interface {
	Seen(ctx context.Context, receiptNo string) bool
	Mark(ctx context.Context, receiptNo string)
	Count(ctx context.Context) int
}

// EventArchive persists the events of one run. Archive errors are logged by
// the caller and never affect notifications already sent.
type EventArchive interface {
	Save(ctx context.Context, events []models.MonitoringEvent) error
	Close() error
}

// Metrics records operational counters for the pipeline.
type Metrics interface {
	RecordPageFetch(segment string)
	RecordError(kind string)
	RecordQualifying(count int)
	RecordEvent(corpName string)
	RecordNotification(ok bool)
	RecordRunDuration(seconds float64)
}
