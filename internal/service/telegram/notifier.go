package telegram

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"DartWatch/internal/domain/models"
	drepo "DartWatch/internal/domain/repository"
	xhttp "DartWatch/pkg/http"
	applogger "DartWatch/pkg/logger"
	"DartWatch/pkg/util"
)

// Notifier delivers alerts through the Telegram bot API.
type Notifier struct {
	botToken string
	chatID   string
	baseURL  string
	http     *xhttp.Client
	l        *applogger.Logger
}

// New creates a Telegram Notifier.
func New(botToken, chatID, baseURL string, httpClient *xhttp.Client, l *applogger.Logger) drepo.Notifier {
	return &Notifier{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  baseURL,
		http:     httpClient,
		l:        l,
	}
}

type sendResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendText delivers one message. Failure is logged and returned as false,
// never as an error.
func (n *Notifier) SendText(ctx context.Context, text string) bool {
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", text)
	form.Set("parse_mode", "HTML")

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)

	var resp sendResponse
	if err := n.http.PostForm(ctx, endpoint, form, &resp); err != nil {
		if n.l != nil {
			n.l.Error("telegram send failed", applogger.Error(err))
		}
		return false
	}
	if !resp.OK {
		if n.l != nil {
			n.l.Error("telegram send rejected", applogger.String("description", resp.Description))
		}
		return false
	}
	return true
}

// SendEvent formats and delivers one purchase event.
func (n *Notifier) SendEvent(ctx context.Context, ev *models.MonitoringEvent) bool {
	return n.SendText(ctx, FormatEvent(ev))
}

// FormatEvent renders the purchase alert in Telegram HTML.
func FormatEvent(ev *models.MonitoringEvent) string {
	reporter := ev.Purchase.Reporter
	if reporter == "" {
		reporter = ev.Disclosure.FilerName
	}

	return fmt.Sprintf(`🏢 <b>임원 장내매수 알림</b>

📊 <b>회사명:</b> %s
📈 <b>종목코드:</b> %s
👤 <b>보고자:</b> %s
💼 <b>직위:</b> %s
💰 <b>거래유형:</b> %s
📊 <b>주식수:</b> %s
💵 <b>가격:</b> %s
📅 <b>거래일:</b> %s
📋 <b>접수번호:</b> %s
📅 <b>공시일:</b> %s

⏰ <b>알림시간:</b> %s

#임원매수 #OpenDart #장내매수`,
		ev.Disclosure.CorpName,
		ev.Disclosure.StockCode,
		reporter,
		orNA(ev.Purchase.Position),
		orNA(ev.Purchase.TransactionType),
		orNA(ev.Purchase.Shares),
		orNA(ev.Purchase.Price),
		orNA(ev.Purchase.TransactionDate),
		ev.Disclosure.ReceiptNo,
		ev.Disclosure.ReceiptDate,
		util.DisplayTime(ev.DetectedAt),
	)
}

// FormatStartup renders the startup self-test message.
func FormatStartup(now time.Time) string {
	return fmt.Sprintf(`🧪 <b>OpenDart 모니터링 봇 시작</b>

📅 <b>시작 시간:</b> %s
🤖 <b>상태:</b> 임원 매수 모니터링 봇 정상 작동

#테스트 #OpenDart #모니터링`, util.DisplayTime(now))
}

// FormatSummary renders the terminal notification for a completed pass.
func FormatSummary(now time.Time, startDate, endDate string, eventCount int) string {
	result := "임원 매수 공시 없음"
	if eventCount > 0 {
		result = fmt.Sprintf("임원 매수 %d건 발견", eventCount)
	}
	return fmt.Sprintf(`📊 <b>모니터링 완료</b>

📅 <b>조회 기간:</b> %s ~ %s
🔍 <b>검색 방식:</b> OpenDart API
📋 <b>결과:</b> %s
⏰ <b>완료 시간:</b> %s

#모니터링완료 #OpenDart`, startDate, endDate, result, util.DisplayTime(now))
}

// FormatError renders the best-effort failure notification.
func FormatError(now time.Time, cause string) string {
	r := []rune(cause)
	if len(r) > 200 {
		cause = string(r[:200]) + "..."
	}
	return fmt.Sprintf(`❌ <b>시스템 오류</b>

🚨 <b>오류 내용:</b> %s
⏰ <b>발생 시간:</b> %s

#시스템오류 #OpenDart`, cause, util.DisplayTime(now))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
