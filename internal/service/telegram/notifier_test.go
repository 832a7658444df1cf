package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DartWatch/internal/domain/models"
	xhttp "DartWatch/pkg/http"
)

func testEvent() *models.MonitoringEvent {
	return &models.MonitoringEvent{
		Disclosure: models.DisclosureRecord{
			CorpName:    "테스트전자",
			StockCode:   "005930",
			ReportName:  "임원ㆍ주요주주특정증권등소유상황보고서",
			ReceiptNo:   "2024011500001",
			FilerName:   "홍길동",
			ReceiptDate: "20240115",
		},
		Purchase: models.PurchaseEvidence{
			Reporter:        "홍길동",
			TransactionType: "장내매수",
			Shares:          "1,000",
			Price:           "50,000",
			TransactionDate: "2024-01-15",
		},
		DetectedAt: time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC),
	}
}

func TestSendEventPostsForm(t *testing.T) {
	var gotPath string
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"chat_id":    r.PostForm.Get("chat_id"),
			"parse_mode": r.PostForm.Get("parse_mode"),
			"text":       r.PostForm.Get("text"),
		}
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	n := New("bot-token", "12345", srv.URL, xhttp.NewClient(xhttp.WithTimeout(2*time.Second)), nil)

	ok := n.SendEvent(context.Background(), testEvent())
	require.True(t, ok)
	assert.Equal(t, "/botbot-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotForm["chat_id"])
	assert.Equal(t, "HTML", gotForm["parse_mode"])
	assert.Contains(t, gotForm["text"], "테스트전자")
	assert.Contains(t, gotForm["text"], "2024011500001")
	assert.Contains(t, gotForm["text"], "장내매수")
}

func TestSendTextDeliveryFailureReturnsFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	n := New("bad-token", "12345", srv.URL, xhttp.NewClient(), nil)
	assert.False(t, n.SendText(context.Background(), "hello"))
}

func TestSendTextAPIRejectionReturnsFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok": false, "description": "chat not found"}`))
	}))
	defer srv.Close()

	n := New("bot-token", "0", srv.URL, xhttp.NewClient(), nil)
	assert.False(t, n.SendText(context.Background(), "hello"))
}

func TestFormatEventFallsBackToFilerName(t *testing.T) {
	ev := testEvent()
	ev.Purchase.Reporter = ""
	ev.Disclosure.FilerName = "김철수"

	msg := FormatEvent(ev)
	assert.Contains(t, msg, "김철수")
}

func TestFormatSummary(t *testing.T) {
	now := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)

	msg := FormatSummary(now, "20240114", "20240115", 0)
	assert.Contains(t, msg, "임원 매수 공시 없음")
	assert.Contains(t, msg, "20240114 ~ 20240115")

	msg = FormatSummary(now, "20240114", "20240115", 3)
	assert.Contains(t, msg, "임원 매수 3건 발견")
}
