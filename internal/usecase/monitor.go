package usecase

import (
	"context"
	"sync"
	"time"

	"DartWatch/internal/domain/models"
	drepo "DartWatch/internal/domain/repository"
	"DartWatch/internal/service/dart"
	applogger "DartWatch/pkg/logger"
	"DartWatch/pkg/util"
)

// MonitorOption configures Monitor.
type MonitorOption func(*Monitor)

// Monitor drives one bounded monitoring pass: window, paginated dual-segment
// search, classification, detail fetch, extraction, dedup and notification.
// Fully sequential; the only suspension points are the per-call HTTP timeout
// and the fixed pause after each event.
type Monitor struct {
	source    drepo.DisclosureSource
	extractor *dart.Extractor
	notifier  drepo.Notifier
	processed drepo.ProcessedStore
	metrics   drepo.Metrics
	l         *applogger.Logger

	daysBack    int
	pageSize    int
	maxPages    int
	notifyDelay time.Duration
	now         func() time.Time

	// segments searched per page, in order
	segments []models.MarketSegment

	mu     sync.Mutex
	status models.RunStatus
}

// NewMonitor creates a Monitor with the given collaborators.
func NewMonitor(
	source drepo.DisclosureSource,
	extractor *dart.Extractor,
	notifier drepo.Notifier,
	processed drepo.ProcessedStore,
	metrics drepo.Metrics,
	l *applogger.Logger,
	opts ...MonitorOption,
) *Monitor {
	m := &Monitor{
		source:      source,
		extractor:   extractor,
		notifier:    notifier,
		processed:   processed,
		metrics:     metrics,
		l:           l,
		daysBack:    1,
		pageSize:    100,
		maxPages:    10,
		notifyDelay: time.Second,
		now:         time.Now,
		segments:    []models.MarketSegment{models.SegmentKOSPI, models.SegmentKOSDAQ},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Window returns the [start, end] compact-date pair for this pass.
func (m *Monitor) Window() (string, string) {
	return util.DateWindow(m.now(), m.daysBack)
}

// SearchQualifyingDisclosures pages through both market segments and keeps
// the entries whose report name is a qualifying ownership report.
//
// Termination: stop at the first page whose combined segment result is empty
// or shorter than the page size, or at the page cap, whichever comes first.
// A short combined page is the upstream's end-of-data signal.
func (m *Monitor) SearchQualifyingDisclosures(ctx context.Context, startDate, endDate string) []models.DisclosureRecord {
	var qualifying []models.DisclosureRecord

	for pageNo := 1; pageNo <= m.maxPages; pageNo++ {
		if m.l != nil {
			m.l.Debug("fetching listing page", applogger.Int("page", pageNo))
		}

		combined := make([]models.DisclosureRecord, 0, m.pageSize*len(m.segments))
		for _, seg := range m.segments {
			combined = append(combined, m.source.List(ctx, startDate, endDate, seg, pageNo, m.pageSize)...)
		}

		if len(combined) == 0 {
			break
		}

		for _, rec := range combined {
			if dart.IsOwnershipReport(rec.ReportName) {
				qualifying = append(qualifying, rec)
				if m.l != nil {
					m.l.Info("qualifying report found",
						applogger.String("corp", rec.CorpName),
						applogger.String("filer", rec.FilerName),
						applogger.String("rcept_no", rec.ReceiptNo),
					)
				}
			}
		}

		if len(combined) < m.pageSize {
			break
		}
	}

	if m.metrics != nil {
		m.metrics.RecordQualifying(len(qualifying))
	}
	return qualifying
}

// Run performs one monitoring pass and returns the events it produced.
//
// Per matching filing the side effects are strictly ordered: notify, then
// mark processed, then pause. A notification failure still marks the filing
// processed; delivery is at most once and never retried.
func (m *Monitor) Run(ctx context.Context) []models.MonitoringEvent {
	started := m.now()
	startDate, endDate := m.Window()
	if m.l != nil {
		m.l.Info("monitoring pass started",
			applogger.String("start", startDate),
			applogger.String("end", endDate),
		)
	}

	records := m.SearchQualifyingDisclosures(ctx, startDate, endDate)

	var events []models.MonitoringEvent
	for _, rec := range records {
		if m.processed.Seen(ctx, rec.ReceiptNo) {
			continue
		}

		docs := m.source.Detail(ctx, rec.ReceiptNo)
		evidence, ok := m.extractor.FindPurchaseEvidence(docs)
		if !ok {
			continue
		}

		event := models.MonitoringEvent{
			Disclosure: rec,
			Purchase:   evidence,
			DetectedAt: m.now().In(util.Seoul()),
		}
		events = append(events, event)

		if m.l != nil {
			m.l.Info("purchase detected",
				applogger.String("corp", rec.CorpName),
				applogger.String("filer", rec.FilerName),
				applogger.String("rcept_no", rec.ReceiptNo),
			)
		}
		if m.metrics != nil {
			m.metrics.RecordEvent(rec.CorpName)
		}

		sent := m.notifier.SendEvent(ctx, &event)
		if m.metrics != nil {
			m.metrics.RecordNotification(sent)
		}
		if !sent && m.l != nil {
			m.l.Error("event notification failed", applogger.String("rcept_no", rec.ReceiptNo))
		}

		m.processed.Mark(ctx, rec.ReceiptNo)

		// upstream rate-limit courtesy pause, after every event
		if m.notifyDelay > 0 {
			time.Sleep(m.notifyDelay)
		}
	}

	if m.metrics != nil {
		m.metrics.RecordRunDuration(m.now().Sub(started).Seconds())
	}

	processedCount := m.processed.Count(ctx)

	m.mu.Lock()
	m.status.LastRunAt = m.now().In(util.Seoul())
	m.status.LastEventCount = len(events)
	m.status.TotalEvents += len(events)
	m.status.Runs++
	m.status.ProcessedCount = processedCount
	m.mu.Unlock()

	return events
}

// Status returns a snapshot of the last pass.
func (m *Monitor) Status() models.RunStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// WithDaysBack sets the window length.
func WithDaysBack(days int) MonitorOption {
	return func(m *Monitor) { m.daysBack = days }
}

// WithPageSize sets the requested entries per page.
func WithPageSize(size int) MonitorOption {
	return func(m *Monitor) { m.pageSize = size }
}

// WithMaxPages sets the pagination hard cap.
func WithMaxPages(pages int) MonitorOption {
	return func(m *Monitor) { m.maxPages = pages }
}

// WithNotifyDelay sets the pause after each notified event.
func WithNotifyDelay(d time.Duration) MonitorOption {
	return func(m *Monitor) { m.notifyDelay = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) MonitorOption {
	return func(m *Monitor) { m.now = now }
}
