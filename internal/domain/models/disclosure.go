package models

import "time"

// MarketSegment is the OpenDART corp_cls code for an exchange tier.
type MarketSegment string

const (
	SegmentKOSPI  MarketSegment = "Y" // 유가증권시장
	SegmentKOSDAQ MarketSegment = "K" // 코스닥
	SegmentKONEX  MarketSegment = "N" // 코넥스
	SegmentOther  MarketSegment = "E" // 기타
)

// DisclosureRecord is one listing entry from the OpenDART list endpoint.
// The receipt number is the identity key; records are immutable once built.
type DisclosureRecord struct {
	CorpName    string `json:"corp_name"`
	CorpCode    string `json:"corp_code"`
	StockCode   string `json:"stock_code"`
	ReportName  string `json:"report_nm"`
	ReceiptNo   string `json:"rcept_no"`
	FilerName   string `json:"flr_nm"`
	ReceiptDate string `json:"rcept_dt"` // YYYYMMDD
	Remark      string `json:"rm"`
}

// DisclosureDocument is one document of a filing's detail response.
type DisclosureDocument struct {
	ReceiptNo string `json:"rcept_no"`
	Content   string `json:"content"`
}

// PurchaseEvidence holds the fields scraped from a filing's detail text.
// Extraction is best-effort: a field that did not match stays empty rather
// than failing the whole evidence.
type PurchaseEvidence struct {
	Reporter        string `json:"reporter"`
	Position        string `json:"position"`
	TransactionType string `json:"transaction_type"`
	Shares          string `json:"shares"` // thousands-separated, e.g. "1,000"
	Price           string `json:"price"`  // thousands-separated, KRW
	TransactionDate string `json:"transaction_date"`
	Reason          string `json:"reason"`
	ContentPreview  string `json:"content_preview"`
}

// MonitoringEvent pairs a disclosure with its purchase evidence. This is the
// unit that gets notified and archived.
type MonitoringEvent struct {
	Disclosure DisclosureRecord `json:"disclosure"`
	Purchase   PurchaseEvidence `json:"purchase_info"`
	DetectedAt time.Time        `json:"detected_at"`
}

// RunStatus is a snapshot of the monitor's last pass, served by the ops API
// when the monitor runs resident.
type RunStatus struct {
	LastRunAt      time.Time `json:"last_run_at"`
	LastEventCount int       `json:"last_event_count"`
	TotalEvents    int       `json:"total_events"`
	Runs           int       `json:"runs"`
	ProcessedCount int       `json:"processed_count"`
}
