package main

import (
	v1 "UniqSpectra/api/gen/v1"
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func main() {
	serverAddr := flag.String("addr", "localhost:50051", "The gRPC server address")
	mode := flag.String("mode", "distinct", "Query mode: 'health', 'tasks', or 'distinct'")
	taskName := flag.String("task", "", "The name of the task to query (required for distinct mode)")
	flowKey := flag.String("flow", "", "Optional flow key filter (e.g. \"10.0.0.1\")")
	limit := flag.Int("limit", 10, "Limit for distinct query results")
	defaultEnd := time.Now().UTC().Format(time.RFC3339)
	endTimeStr := flag.String("end", defaultEnd, "End time in RFC3339 format (e.g., 2025-09-12T15:10:00Z).")

	flag.Parse()

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := v1.NewQueryServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	switch *mode {
	case "health":
		doHealthCheck(ctx, client)
	case "tasks":
		doSearchTasks(ctx, client)
	case "distinct":
		if *taskName == "" {
			log.Fatal("Error: -task flag is required for distinct mode")
		}
		doDistinctQuery(ctx, client, *taskName, *flowKey, *limit, *endTimeStr)
	default:
		log.Fatalf("Unknown mode: %s. Use 'health', 'tasks', or 'distinct'", *mode)
	}
}

func doHealthCheck(ctx context.Context, client v1.QueryServiceClient) {
	resp, err := client.HealthCheck(ctx, &v1.HealthCheckRequest{})
	if err != nil {
		log.Fatalf("HealthCheck failed: %v", err)
	}
	fmt.Printf("Status: %s\n", resp.Status)
}

func doSearchTasks(ctx context.Context, client v1.QueryServiceClient) {
	resp, err := client.SearchTasks(ctx, &v1.SearchTasksRequest{})
	if err != nil {
		log.Fatalf("SearchTasks failed: %v", err)
	}
	fmt.Println("Configured tasks:")
	for _, name := range resp.TaskNames {
		fmt.Printf("  %s\n", name)
	}
}

func doDistinctQuery(ctx context.Context, client v1.QueryServiceClient, taskName, flowKey string, limit int, endTimeStr string) {
	endTime, err := time.Parse(time.RFC3339, endTimeStr)
	if err != nil {
		log.Fatalf("Invalid end time format: %v", err)
	}

	req := &v1.QueryDistinctRequest{
		TaskName: taskName,
		Flow:     flowKey,
		EndTime:  timestamppb.New(endTime),
		Limit:    uint32(limit),
	}

	resp, err := client.QueryDistinct(ctx, req)
	if err != nil {
		log.Fatalf("QueryDistinct failed: %v", err)
	}

	if len(resp.Estimates) == 0 {
		fmt.Println("No estimates found.")
		return
	}

	fmt.Printf("%-45s %15s %12s %25s\n", "Flow", "Estimate", "Processed", "Timestamp")
	for _, est := range resp.Estimates {
		fmt.Printf("%-45s %15.0f %12d %25s\n",
			est.Flow, est.Estimate, est.Processed, est.Timestamp.AsTime().Format(time.RFC3339))
	}
}
