package main

import (
	"UniqSpectra/internal/config"
	"UniqSpectra/internal/engine/protocol"
	"UniqSpectra/internal/model"
	"UniqSpectra/internal/probe"
	"UniqSpectra/internal/probe/persistent"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
)

const (
	snapshotLen int32 = 1600
	promiscuous       = true
	timeout           = pcap.BlockForever
)

func main() {
	mode := flag.String("mode", "pub", "Operating mode: 'pub' to capture and publish, 'sub' to subscribe and print.")
	iface := flag.String("iface", "", "Interface to capture packets from (required for pub mode).")
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file.")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch *mode {
	case "pub":
		runProbe(cfg, *iface)
	case "sub":
		runSubscriber(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Invalid mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

// runProbe captures packets from the interface and publishes them to NATS.
func runProbe(cfg *config.Config, interfaceName string) {
	if interfaceName == "" {
		log.Println("Error: -iface flag is required for pub mode.")
		flag.Usage()
		os.Exit(1)
	}
	log.Printf("Starting us-probe in PROBE mode on interface: %s", interfaceName)

	pub, err := probe.NewPublisher(cfg.Probe)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	var archiver *persistent.Worker
	if cfg.Probe.Persistence.Enabled {
		archiver, err = persistent.NewWorker(cfg.Probe.Persistence)
		if err != nil {
			log.Fatalf("Failed to start persistent worker: %v", err)
		}
		defer archiver.Stop()
	}

	handle, err := pcap.OpenLive(interfaceName, snapshotLen, promiscuous, timeout)
	if err != nil {
		log.Fatalf("Error opening device %s: %v", interfaceName, err)
	}
	defer handle.Close()

	log.Println("Capture started successfully. Publishing packets to NATS...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
		packetsPublished := 0
		for packet := range packetSource.Packets() {
			if archiver != nil {
				archiver.Enqueue(packet)
			}
			info, err := protocol.ParsePacket(packet)
			if err != nil {
				continue // Skip non-IP packets
			}
			if err := pub.Publish(info); err != nil {
				log.Printf("Failed to publish packet: %v", err)
			}
			packetsPublished++
			if packetsPublished%1000 == 0 {
				log.Printf("%d packets published...", packetsPublished)
			}
		}
	}()

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}

// runSubscriber subscribes to the configured NATS subject and prints messages.
func runSubscriber(cfg *config.Config) {
	log.Println("Starting us-probe in SUBSCRIBER mode...")

	sub, err := probe.NewSubscriber(cfg.Probe)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}
	defer sub.Close()

	handler := func(info model.PacketInfo) {
		log.Printf("Received Packet: %+v", info)
	}

	if err := sub.Start(handler); err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}
