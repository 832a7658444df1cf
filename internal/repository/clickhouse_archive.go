package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"DartWatch/internal/domain/models"
	drepo "DartWatch/internal/domain/repository"
	pkgch "DartWatch/pkg/clickhouse"
)

// Schema statements for the ClickHouse archive backend.
func ClickHouseSchema(database string) []string {
	return []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.executive_purchases (
			rcept_no String,
			corp_name String,
			corp_code String,
			stock_code String,
			report_nm String,
			flr_nm String,
			rcept_dt String,
			reporter String,
			position String,
			transaction_type String,
			shares String,
			price String,
			transaction_date String,
			detected_at DateTime
		) ENGINE = ReplacingMergeTree ORDER BY rcept_no`, database),
	}
}

// ClickHouseArchive inserts each run's events into the archive table.
type ClickHouseArchive struct {
	client *pkgch.Client
	db     *sql.DB
	table  string
}

// NewClickHouseArchive creates a ClickHouse-backed EventArchive.
func NewClickHouseArchive(client *pkgch.Client, database string) drepo.EventArchive {
	return &ClickHouseArchive{
		client: client,
		db:     client.DB(),
		table:  database + ".executive_purchases",
	}
}

func (a *ClickHouseArchive) Save(ctx context.Context, events []models.MonitoringEvent) error {
	if len(events) == 0 {
		return nil
	}

	q := fmt.Sprintf(`INSERT INTO %s
		(rcept_no, corp_name, corp_code, stock_code, report_nm, flr_nm, rcept_dt,
		 reporter, position, transaction_type, shares, price, transaction_date, detected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, a.table)

	for i := range events {
		ev := &events[i]
		if _, err := a.db.ExecContext(ctx, q,
			ev.Disclosure.ReceiptNo,
			ev.Disclosure.CorpName,
			ev.Disclosure.CorpCode,
			ev.Disclosure.StockCode,
			ev.Disclosure.ReportName,
			ev.Disclosure.FilerName,
			ev.Disclosure.ReceiptDate,
			ev.Purchase.Reporter,
			ev.Purchase.Position,
			ev.Purchase.TransactionType,
			ev.Purchase.Shares,
			ev.Purchase.Price,
			ev.Purchase.TransactionDate,
			ev.DetectedAt.UTC().Truncate(time.Second),
		); err != nil {
			return fmt.Errorf("insert event %s: %w", ev.Disclosure.ReceiptNo, err)
		}
	}
	return nil
}

func (a *ClickHouseArchive) Close() error {
	return a.client.Close()
}
