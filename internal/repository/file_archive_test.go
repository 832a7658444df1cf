package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DartWatch/internal/domain/models"
)

func TestFileArchiveSaveAndReadBack(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileArchive(dir, nil)
	require.NoError(t, err)
	// 18:30 UTC = 03:30 KST next day
	a.(*FileArchive).now = func() time.Time { return time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC) }

	events := []models.MonitoringEvent{
		{
			Disclosure: models.DisclosureRecord{
				CorpName:  "테스트전자",
				ReceiptNo: "2024011500001",
			},
			Purchase: models.PurchaseEvidence{
				TransactionType: "장내매수",
				Shares:          "1,000",
			},
			DetectedAt: time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC),
		},
	}
	require.NoError(t, a.Save(context.Background(), events))

	paths, err := filepath.Glob(filepath.Join(dir, "executive_purchases_*.json"))
	require.NoError(t, err)
	require.Len(t, paths, 1)

	// Filename carries the save time in KST, independent of DetectedAt.
	assert.Equal(t, "executive_purchases_20240116_033000.json", filepath.Base(paths[0]))

	b, err := os.ReadFile(paths[0])
	require.NoError(t, err)

	var got []models.MonitoringEvent
	require.NoError(t, json.Unmarshal(b, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2024011500001", got[0].Disclosure.ReceiptNo)
	assert.Equal(t, "장내매수", got[0].Purchase.TransactionType)
}

func TestFileArchiveDistinctFilesPerSave(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileArchive(dir, nil)
	require.NoError(t, err)
	fa := a.(*FileArchive)

	// Two saves of events detected in the same second still land in
	// separate files because the filename follows the save clock.
	ev := models.MonitoringEvent{
		Disclosure: models.DisclosureRecord{ReceiptNo: "2024011500001"},
		DetectedAt: time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC),
	}

	fa.now = func() time.Time { return time.Date(2024, 1, 15, 18, 30, 1, 0, time.UTC) }
	require.NoError(t, fa.Save(context.Background(), []models.MonitoringEvent{ev}))

	fa.now = func() time.Time { return time.Date(2024, 1, 15, 18, 30, 2, 0, time.UTC) }
	require.NoError(t, fa.Save(context.Background(), []models.MonitoringEvent{ev}))

	paths, err := filepath.Glob(filepath.Join(dir, "executive_purchases_*.json"))
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestFileArchiveNoEventsNoFile(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileArchive(dir, nil)
	require.NoError(t, err)

	require.NoError(t, a.Save(context.Background(), nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
