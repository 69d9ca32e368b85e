package main

import (
	"flag"
	"log"
	"math/rand"
	"net"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// Generates a synthetic capture with a known ground truth: -sources distinct
// source IPs, each talking to -dests distinct destination endpoints, with the
// total packet count spread over repeated visits. Useful for checking
// estimates against exact distinct counts.
func main() {
	outputFile := flag.String("o", "test.pcap", "Output pcap file path")
	packetCount := flag.Int("c", 1000000, "Number of packets to generate")
	numSources := flag.Int("sources", 1000, "Number of distinct source IPs")
	numDests := flag.Int("dests", 100, "Number of distinct destination endpoints per source")
	seed := flag.Int64("seed", 1, "PRNG seed, for reproducible captures")
	flag.Parse()

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	pcapWriter := pcapgo.NewWriter(f)
	if err := pcapWriter.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		log.Fatalf("Failed to write pcap header: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	log.Printf("Generating %d packets (%d sources x %d dests) into %s...",
		*packetCount, *numSources, *numDests, *outputFile)

	for i := 0; i < *packetCount; i++ {
		if (i+1)%100000 == 0 {
			log.Printf("Generated %d packets...", i+1)
		}

		// Pick a source and one of its destinations. Repeats are deliberate:
		// distinct counting must be insensitive to them.
		src := rng.Intn(*numSources)
		dst := rng.Intn(*numDests)

		srcIP := net.IP{10, byte(src >> 16), byte(src >> 8), byte(src)}
		dstIP := net.IP{192, 168, byte(dst >> 8), byte(dst)}
		srcPort := layers.TCPPort(1024 + src%64000)
		dstPort := layers.TCPPort(1024 + dst%64000)
		payloadSize := rng.Intn(1400) + 50

		ethLayer := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ipLayer := &layers.IPv4{
			SrcIP:    srcIP,
			DstIP:    dstIP,
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolTCP,
		}
		tcpLayer := &layers.TCP{
			SrcPort: srcPort,
			DstPort: dstPort,
			Seq:     rng.Uint32(),
			Ack:     rng.Uint32(),
			SYN:     true,
			Window:  14600,
		}
		tcpLayer.SetNetworkLayerForChecksum(ipLayer)

		payload := make([]byte, payloadSize)
		rng.Read(payload)

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{
			ComputeChecksums: true,
			FixLengths:       true,
		}
		if err := gopacket.SerializeLayers(buf, opts, ethLayer, ipLayer, tcpLayer, gopacket.Payload(payload)); err != nil {
			log.Fatalf("Failed to serialize layers: %v", err)
		}

		ci := gopacket.CaptureInfo{
			Timestamp:     time.Now(),
			CaptureLength: len(buf.Bytes()),
			Length:        len(buf.Bytes()),
		}
		if err := pcapWriter.WritePacket(ci, buf.Bytes()); err != nil {
			log.Fatalf("Failed to write packet: %v", err)
		}
	}

	log.Printf("Successfully generated %d packets into %s.", *packetCount, *outputFile)
}
