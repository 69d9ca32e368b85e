package main

import (
	v1 "UniqSpectra/api/gen/v1"
	"UniqSpectra/internal/config"
	"UniqSpectra/internal/query"
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// QueryServiceServer implements the gRPC query service over the ClickHouse querier.
type QueryServiceServer struct {
	v1.UnimplementedQueryServiceServer
	querier query.Querier
	cfg     *config.Config
}

func (s *QueryServiceServer) HealthCheck(ctx context.Context, req *v1.HealthCheckRequest) (*v1.HealthCheckResponse, error) {
	log.Println("Received HealthCheck request")
	return &v1.HealthCheckResponse{Status: "ok"}, nil
}

func (s *QueryServiceServer) SearchTasks(ctx context.Context, req *v1.SearchTasksRequest) (*v1.SearchTasksResponse, error) {
	log.Println("Received SearchTasks request")
	var taskNames []string
	for _, task := range s.cfg.Aggregator.Distinct.Tasks {
		taskNames = append(taskNames, task.Name)
	}
	return &v1.SearchTasksResponse{TaskNames: taskNames}, nil
}

func (s *QueryServiceServer) QueryDistinct(ctx context.Context, req *v1.QueryDistinctRequest) (*v1.QueryDistinctResponse, error) {
	log.Printf("Received QueryDistinct request for task: %s, flow: %q, end: %v, limit: %d", req.TaskName, req.Flow, req.EndTime, req.Limit)
	return s.querier.QueryDistinct(ctx, req)
}

func main() {
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Find the first enabled ClickHouse writer config
	var chCfg *config.ClickHouseConfig
	for _, writerDef := range cfg.Aggregator.Distinct.Writers {
		if writerDef.Enabled && writerDef.Type == "clickhouse" {
			chCfg = &writerDef.ClickHouse
			break
		}
	}

	if chCfg == nil {
		log.Fatalf("No enabled ClickHouse writer found in config. API server cannot start.")
	}

	querier, err := query.NewClickHouseQuerier(*chCfg)
	if err != nil {
		log.Fatalf("Failed to create querier: %v", err)
	}

	service := &QueryServiceServer{querier: querier, cfg: cfg}

	// Run gRPC server
	grpcServer := grpc.NewServer()
	v1.RegisterQueryServiceServer(grpcServer, service)

	lis, err := net.Listen("tcp", cfg.API.GRPCListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.API.GRPCListenAddr, err)
	}
	go func() {
		log.Printf("gRPC API server starting on %s", cfg.API.GRPCListenAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	// Run HTTP server
	httpServer := &http.Server{
		Addr:    cfg.API.ListenAddr,
		Handler: newHTTPHandler(service),
	}

	go func() {
		log.Printf("HTTP API server starting on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", httpServer.Addr, err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Servers shutting down...")

	grpcServer.GracefulStop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("All servers exited.")
}

// newHTTPHandler wires the HTTP routes to the query service.
func newHTTPHandler(s *QueryServiceServer) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/health", s.healthHandler).Methods("GET")
	r.HandleFunc("/api/v1/tasks", s.tasksHandler).Methods("GET")
	r.HandleFunc("/api/v1/distinct", s.distinctHandler).Methods("POST")
	return r
}

func (s *QueryServiceServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	resp, _ := s.HealthCheck(r.Context(), &v1.HealthCheckRequest{})
	writeProtoJSON(w, resp)
}

func (s *QueryServiceServer) tasksHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.SearchTasks(r.Context(), &v1.SearchTasksRequest{})
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to list tasks: %v", err), http.StatusInternalServerError)
		return
	}
	writeProtoJSON(w, resp)
}

// distinctHandler handles distinct-count estimate queries.
func (s *QueryServiceServer) distinctHandler(w http.ResponseWriter, r *http.Request) {
	var req v1.QueryDistinctRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to read request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := protojson.Unmarshal(body, &req); err != nil {
		http.Error(w, fmt.Sprintf("failed to decode request: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := s.QueryDistinct(r.Context(), &req)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to query estimates: %v", err), http.StatusInternalServerError)
		return
	}
	writeProtoJSON(w, resp)
}

func writeProtoJSON(w http.ResponseWriter, msg proto.Message) {
	jsonBytes, err := protojson.Marshal(msg)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to marshal response: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(jsonBytes)
}
