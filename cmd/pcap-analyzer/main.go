package main

import (
	v1 "UniqSpectra/api/gen/v1"
	"UniqSpectra/internal/config"
	"UniqSpectra/internal/engine/manager"
	"UniqSpectra/internal/model"
	"UniqSpectra/internal/probe/persistent"
	"UniqSpectra/pkg/pcap"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/gopacket"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file.")
	archiveDir := flag.String("archive", "", "Re-archive the capture into rotated pcap files under this directory.")
	flag.Parse()

	// 1. Get pcap file path from command-line arguments
	if flag.NArg() < 1 {
		fmt.Println("Usage: go run ./cmd/pcap-analyzer/main.go [-archive <dir>] <path_to_pcap_file>")
		os.Exit(1)
	}
	pcapFilePath := flag.Arg(0)

	// 2. Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 3. Optionally re-archive the raw capture, e.g. to split a large file
	// into rotated chunks.
	if *archiveDir != "" {
		rearchive(cfg, pcapFilePath, *archiveDir)
	}

	// 4. Initialize modules
	managerImpl, err := manager.NewManager(cfg)
	if err != nil {
		log.Fatalf("Failed to create manager: %v", err)
	}
	log.Println("Manager initialized.")

	pcapReader, err := pcap.NewReader(pcapFilePath)
	if err != nil {
		log.Fatalf("Failed to open pcap file: %v", err)
	}
	defer pcapReader.Close()
	log.Printf("Reading packets from '%s'...", pcapFilePath)

	// 5. Start the processing pipeline
	managerImpl.Start()
	log.Println("Manager started.")

	// 6. Read packets and feed them to the manager
	parsed := make(chan *model.PacketInfo, 1024)
	go pcapReader.ReadPackets(parsed)

	input := managerImpl.InputChannel()
	for info := range parsed {
		input <- &v1.PacketInfo{
			Timestamp: timestamppb.New(info.Timestamp),
			FiveTuple: &v1.FiveTuple{
				SrcIp:    []byte(info.FiveTuple.SrcIP),
				DstIp:    []byte(info.FiveTuple.DstIP),
				SrcPort:  uint32(info.FiveTuple.SrcPort),
				DstPort:  uint32(info.FiveTuple.DstPort),
				Protocol: uint32(info.FiveTuple.Protocol),
			},
			Length: uint64(info.Length),
		}
	}
	log.Println("Finished reading all packets from pcap file.")

	// 7. Graceful shutdown
	log.Println("Shutting down manager...")
	managerImpl.Stop()
	log.Println("Shutdown complete.")
}

// rearchive streams the raw capture through the persistent worker, producing
// rotated pcap files in outDir. Rotation size and buffering follow the probe's
// persistence config.
func rearchive(cfg *config.Config, pcapFilePath, outDir string) {
	persistCfg := cfg.Probe.Persistence
	persistCfg.Path = outDir

	archiver, err := persistent.NewWorker(persistCfg)
	if err != nil {
		log.Fatalf("Failed to start persistent worker: %v", err)
	}

	rawReader, err := pcap.NewReader(pcapFilePath)
	if err != nil {
		log.Fatalf("Failed to open pcap file: %v", err)
	}
	defer rawReader.Close()

	raw := make(chan gopacket.Packet, 1024)
	go rawReader.ReadRaw(raw)
	for packet := range raw {
		archiver.Enqueue(packet)
	}
	archiver.Stop()
	log.Printf("Re-archived '%s' into %s", pcapFilePath, outDir)
}
