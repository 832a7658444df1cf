package dart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DartWatch/internal/domain/models"
)

func docs(contents ...string) []models.DisclosureDocument {
	out := make([]models.DisclosureDocument, 0, len(contents))
	for _, c := range contents {
		out = append(out, models.DisclosureDocument{Content: c})
	}
	return out
}

func TestExtractFieldsGoldenCases(t *testing.T) {
	e := NewExtractor(nil)

	content := "보고자: 홍길동 직위: 대표이사(사내이사) 장내매수 1,000주 50,000원 2024-01-15 취득"
	ev := e.ExtractFields(content)

	assert.Equal(t, "홍길동", ev.Reporter)
	assert.Equal(t, "대표이사", ev.Position)
	assert.Equal(t, "1,000", ev.Shares)
	assert.Equal(t, "50,000", ev.Price)
	assert.Equal(t, "2024-01-15", ev.TransactionDate)
}

func TestExtractFieldsMissingFieldsStayEmpty(t *testing.T) {
	e := NewExtractor(nil)

	ev := e.ExtractFields("장내매수 공시 내용")
	assert.Empty(t, ev.Reporter)
	assert.Empty(t, ev.Position)
	assert.Empty(t, ev.Shares)
	assert.Empty(t, ev.Price)
	assert.Empty(t, ev.TransactionDate)
}

func TestExtractFieldsDateSeparators(t *testing.T) {
	e := NewExtractor(nil)

	assert.Equal(t, "2024.1.5", e.ExtractFields("거래일 2024.1.5").TransactionDate)
	assert.Equal(t, "2024/01/15", e.ExtractFields("거래일 2024/01/15").TransactionDate)
}

func TestExtractFieldsIsPure(t *testing.T) {
	e := NewExtractor(nil)
	content := "보고자: 김철수 1,234주 2024-02-01"

	first := e.ExtractFields(content)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.ExtractFields(content))
	}
}

func TestPreviewTruncation(t *testing.T) {
	e := NewExtractor(nil)

	long := strings.Repeat("가", 300) + " 매수"
	ev, ok := e.FindPurchaseEvidence(docs(long))
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("가", 200)+"...", ev.ContentPreview)

	short := "매수 공시"
	ev, ok = e.FindPurchaseEvidence(docs(short))
	require.True(t, ok)
	assert.Equal(t, short, ev.ContentPreview)
}

func TestTransactionTypeTieBreak(t *testing.T) {
	e := NewExtractor(nil)

	ev, ok := e.FindPurchaseEvidence(docs("임원이 장내매수로 취득"))
	require.True(t, ok)
	assert.Equal(t, "장내매수", ev.TransactionType)
	assert.Equal(t, "장내매수", ev.Reason)

	// Spaced variant still resolves to the canonical phrase.
	ev, ok = e.FindPurchaseEvidence(docs("임원이 장내 매수로 취득"))
	require.True(t, ok)
	assert.Equal(t, "장내매수", ev.TransactionType)

	ev, ok = e.FindPurchaseEvidence(docs("단순 매수 보고"))
	require.True(t, ok)
	assert.Equal(t, "매수", ev.TransactionType)
	assert.Equal(t, "매수", ev.Reason)
}

func TestFindPurchaseEvidenceNoKeyword(t *testing.T) {
	e := NewExtractor(nil)

	_, ok := e.FindPurchaseEvidence(docs("보고자: 홍길동 장외처분 1,000주"))
	assert.False(t, ok)

	_, ok = e.FindPurchaseEvidence(nil)
	assert.False(t, ok)
}

func TestFindPurchaseEvidenceAcquisitionOnlyDocSkipped(t *testing.T) {
	e := NewExtractor(nil)

	// "취득" alone passes the keyword scan but resolves to no purchase type;
	// scanning continues with the next document.
	ev, ok := e.FindPurchaseEvidence(docs("신주 취득 보고", "장내매수 1,000주"))
	require.True(t, ok)
	assert.Equal(t, "장내매수", ev.TransactionType)
	assert.Equal(t, "1,000", ev.Shares)
}

func TestFindPurchaseEvidenceUsesFirstQualifyingDoc(t *testing.T) {
	e := NewExtractor(nil)

	ev, ok := e.FindPurchaseEvidence(docs(
		"첨부서류 안내",
		"보고자: 홍길동 매수 500주",
		"보고자: 김철수 장내매수 9,999주",
	))
	require.True(t, ok)
	assert.Equal(t, "홍길동", ev.Reporter)
	assert.Equal(t, "500", ev.Shares)
}
