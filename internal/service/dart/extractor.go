package dart

import (
	"regexp"
	"strings"

	"DartWatch/internal/domain/models"
	applogger "DartWatch/pkg/logger"
)

// purchaseKeywords mark filing text that evidences an acquisition. Ordered
// from strongest to weakest signal.
var purchaseKeywords = []string{"장내매수", "장내 매수", "매수", "취득"}

// previewRunes bounds the content preview carried on each event.
const previewRunes = 200

// Field patterns, each searched independently over the full content. First
// match wins; no match leaves the field empty.
var (
	reporterPattern = regexp.MustCompile(`보고자[:\s]*([가-힣]+)`)
	positionPattern = regexp.MustCompile(`직위[:\s]*([가-힣\s]+)`)
	sharesPattern   = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*주`)
	pricePattern    = regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*원`)
	datePattern     = regexp.MustCompile(`(\d{4}[-./]\d{1,2}[-./]\d{1,2})`)
)

// Extractor scrapes purchase evidence out of unstructured filing text. This
// is deliberately best-effort free-text matching, not a document parse:
// a field that fails to match is left empty rather than failing the filing.
type Extractor struct {
	l *applogger.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(l *applogger.Logger) *Extractor {
	return &Extractor{l: l}
}

// FindPurchaseEvidence scans a filing's detail documents and returns
// evidence from the first document whose content carries a purchase keyword
// and resolves to a purchase transaction type. Returns false when no
// document qualifies. Never panics to the caller.
func (e *Extractor) FindPurchaseEvidence(docs []models.DisclosureDocument) (ev models.PurchaseEvidence, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if e.l != nil {
				e.l.Error("purchase extraction panicked", applogger.Any("cause", r))
			}
			ev, ok = models.PurchaseEvidence{}, false
		}
	}()

	for _, doc := range docs {
		if !containsAny(doc.Content, purchaseKeywords) {
			continue
		}
		if ev, ok := e.extract(doc.Content); ok {
			return ev, true
		}
	}
	return models.PurchaseEvidence{}, false
}

// ExtractFields applies the five field patterns to content. Pure: the same
// content always yields a field-identical result.
func (e *Extractor) ExtractFields(content string) models.PurchaseEvidence {
	ev := models.PurchaseEvidence{
		ContentPreview: preview(content),
	}
	if m := reporterPattern.FindStringSubmatch(content); m != nil {
		ev.Reporter = strings.TrimSpace(m[1])
	}
	if m := positionPattern.FindStringSubmatch(content); m != nil {
		ev.Position = strings.TrimSpace(m[1])
	}
	if m := sharesPattern.FindStringSubmatch(content); m != nil {
		ev.Shares = strings.TrimSpace(m[1])
	}
	if m := pricePattern.FindStringSubmatch(content); m != nil {
		ev.Price = strings.TrimSpace(m[1])
	}
	if m := datePattern.FindStringSubmatch(content); m != nil {
		ev.TransactionDate = strings.TrimSpace(m[1])
	}
	return ev
}

// extract builds evidence and applies the transaction-type tie-break: the
// strict on-market phrase wins over the bare purchase word; with neither
// present the document yields no evidence.
func (e *Extractor) extract(content string) (models.PurchaseEvidence, bool) {
	ev := e.ExtractFields(content)

	switch {
	case strings.Contains(content, "장내매수") || strings.Contains(content, "장내 매수"):
		ev.TransactionType = "장내매수"
		ev.Reason = "장내매수"
	case strings.Contains(content, "매수"):
		ev.TransactionType = "매수"
		ev.Reason = "매수"
	default:
		return models.PurchaseEvidence{}, false
	}
	return ev, true
}

func preview(content string) string {
	r := []rune(content)
	if len(r) <= previewRunes {
		return content
	}
	return string(r[:previewRunes]) + "..."
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
