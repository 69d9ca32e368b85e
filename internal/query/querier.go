package query

import (
	v1 "UniqSpectra/api/gen/v1"
	"UniqSpectra/internal/config"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Querier defines the interface for querying persisted distinct-count estimates.
type Querier interface {
	QueryDistinct(ctx context.Context, req *v1.QueryDistinctRequest) (*v1.QueryDistinctResponse, error)
}

// clickhouseQuerier implements the Querier interface for ClickHouse.
type clickhouseQuerier struct {
	conn clickhouse.Conn
}

// NewClickHouseQuerier creates a new querier for ClickHouse.
func NewClickHouseQuerier(cfg config.ClickHouseConfig) (Querier, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}
	return &clickhouseQuerier{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (clickhouse.Conn, error) {
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

// QueryDistinct returns the latest distinct-count estimate per flow for a task,
// optionally bounded by end_time and restricted to a single flow key.
func (q *clickhouseQuerier) QueryDistinct(ctx context.Context, req *v1.QueryDistinctRequest) (*v1.QueryDistinctResponse, error) {
	if req.TaskName == "" {
		return nil, fmt.Errorf("task_name is required")
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT
			Flow,
			argMax(Estimate, Timestamp) AS LatestEstimate,
			argMax(Processed, Timestamp) AS LatestProcessed,
			max(Timestamp) AS LatestTimestamp
		FROM distinct_counts
	`)

	whereClauses := []string{"TaskName = ?"}
	args := []interface{}{req.TaskName}

	if req.Flow != "" {
		whereClauses = append(whereClauses, "Flow = ?")
		args = append(args, req.Flow)
	}
	if req.EndTime != nil {
		whereClauses = append(whereClauses, "Timestamp <= ?")
		args = append(args, req.EndTime.AsTime())
	}

	queryBuilder.WriteString(" WHERE " + strings.Join(whereClauses, " AND "))
	queryBuilder.WriteString(`
		GROUP BY Flow
		ORDER BY LatestEstimate DESC
	`)

	if req.Limit > 0 {
		queryBuilder.WriteString(" LIMIT ?")
		args = append(args, req.Limit)
	}

	rows, err := q.conn.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var estimates []*v1.DistinctEstimate
	for rows.Next() {
		var (
			est v1.DistinctEstimate
			ts  time.Time
		)
		if err := rows.Scan(&est.Flow, &est.Estimate, &est.Processed, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan estimate row: %w", err)
		}
		est.Timestamp = timestamppb.New(ts)
		estimates = append(estimates, &est)
	}

	return &v1.QueryDistinctResponse{Estimates: estimates}, nil
}
