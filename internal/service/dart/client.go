package dart

import (
	"context"
	"net/url"
	"strconv"

	"DartWatch/internal/domain/models"
	drepo "DartWatch/internal/domain/repository"
	xhttp "DartWatch/pkg/http"
	applogger "DartWatch/pkg/logger"
)

// statusOK is the OpenDART success status code.
const statusOK = "000"

// Client implements a DisclosureSource backed by the OpenDART REST API.
//
// Both endpoints follow the same contract: any transport error, non-2xx
// response, malformed JSON or non-"000" upstream status yields an empty
// result. A single bad page or filing must never abort a monitoring pass,
// so failures are logged and swallowed here.
type Client struct {
	apiKey  string
	baseURL string
	http    *xhttp.Client
	metrics drepo.Metrics
	l       *applogger.Logger
}

// New creates a new OpenDART DisclosureSource.
func New(apiKey, baseURL string, httpClient *xhttp.Client, metrics drepo.Metrics, l *applogger.Logger) drepo.DisclosureSource {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    httpClient,
		metrics: metrics,
		l:       l,
	}
}

type listResponse struct {
	Status  string                    `json:"status"`
	Message string                    `json:"message"`
	List    []models.DisclosureRecord `json:"list"`
}

type documentResponse struct {
	Status  string                      `json:"status"`
	Message string                      `json:"message"`
	List    []models.DisclosureDocument `json:"list"`
}

// List fetches one listing page for one market segment.
func (c *Client) List(ctx context.Context, beginDate, endDate string, segment models.MarketSegment, pageNo, pageCount int) []models.DisclosureRecord {
	q := url.Values{}
	q.Set("crtfc_key", c.apiKey)
	q.Set("bgn_de", beginDate)
	q.Set("end_de", endDate)
	q.Set("corp_cls", string(segment))
	q.Set("page_no", strconv.Itoa(pageNo))
	q.Set("page_count", strconv.Itoa(pageCount))

	var resp listResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/list.json", q, &resp); err != nil {
		if c.metrics != nil {
			c.metrics.RecordError("list")
		}
		if c.l != nil {
			c.l.Error("disclosure list fetch failed",
				applogger.String("segment", string(segment)),
				applogger.Int("page", pageNo),
				applogger.Error(err),
			)
		}
		return nil
	}
	if resp.Status != statusOK {
		// "013 조회된 데이타가 없습니다" is the normal empty answer; anything
		// else is worth a log line but still yields an empty page.
		if resp.Status != "013" && c.l != nil {
			c.l.Warn("disclosure list non-success status",
				applogger.String("segment", string(segment)),
				applogger.String("status", resp.Status),
				applogger.String("message", resp.Message),
			)
		}
		return nil
	}
	if c.metrics != nil {
		c.metrics.RecordPageFetch(string(segment))
	}
	return resp.List
}

// Detail fetches the full document set of one filing.
func (c *Client) Detail(ctx context.Context, receiptNo string) []models.DisclosureDocument {
	q := url.Values{}
	q.Set("crtfc_key", c.apiKey)
	q.Set("rcept_no", receiptNo)

	var resp documentResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/document.json", q, &resp); err != nil {
		if c.metrics != nil {
			c.metrics.RecordError("detail")
		}
		if c.l != nil {
			c.l.Error("disclosure detail fetch failed",
				applogger.String("rcept_no", receiptNo),
				applogger.Error(err),
			)
		}
		return nil
	}
	if resp.Status != statusOK {
		return nil
	}
	return resp.List
}
