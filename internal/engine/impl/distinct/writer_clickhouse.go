package distinct

import (
	"UniqSpectra/internal/config"
	"UniqSpectra/internal/model"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const createDistinctCountsTableStatement = `
CREATE TABLE IF NOT EXISTS distinct_counts (
    Timestamp    DateTime,
    TaskName     String,
    Flow         String,
    Estimate     Float64,
    SamplingRate Float64,
    Processed    UInt64
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (TaskName, Timestamp);
`

// ClickHouseWriter implements the model.Writer interface for ClickHouse.
type ClickHouseWriter struct {
	conn     driver.Conn
	interval time.Duration
}

// NewClickHouseWriter creates a new ClickHouse writer for distinct-count snapshots.
func NewClickHouseWriter(cfg config.ClickHouseConfig, interval time.Duration) (model.Writer, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createDistinctCountsTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create distinct_counts table: %w", err)
	}
	log.Println("Successfully connected to ClickHouse and ensured distinct_counts table exists.")

	return &ClickHouseWriter{conn: conn, interval: interval}, nil
}

func (w *ClickHouseWriter) GetInterval() time.Duration {
	return w.interval
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
	})

	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

func (w *ClickHouseWriter) Write(payload any, timestamp, taskName string) error {
	records, ok := payload.([]Record)
	if !ok {
		return fmt.Errorf("invalid payload type for ClickHouse Writer: expected []distinct.Record, got %T", payload)
	}

	batch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO distinct_counts")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	snapshotTime, _ := time.Parse("2006-01-02_15-04-05", timestamp)

	for _, rec := range records {
		if err := batch.Append(snapshotTime, taskName, rec.Flow, rec.Estimate, rec.SamplingRate, rec.Processed); err != nil {
			return fmt.Errorf("failed to append record to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("Wrote %d distinct-count records to ClickHouse", len(records))
	return nil
}
