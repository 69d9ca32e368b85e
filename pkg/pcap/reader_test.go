package pcap

import (
	"UniqSpectra/internal/model"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

func writeTestPcap(t *testing.T, path string, packets int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create pcap file: %v", err)
	}
	defer f.Close()

	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		t.Fatalf("failed to write pcap header: %v", err)
	}

	for i := 0; i < packets; i++ {
		eth := &layers.Ethernet{
			SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
			EthernetType: layers.EthernetTypeIPv4,
		}
		ip := &layers.IPv4{
			SrcIP:    net.IP{192, 168, 1, byte(i + 1)},
			DstIP:    net.IP{10, 0, 0, 1},
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolTCP,
		}
		tcp := &layers.TCP{SrcPort: layers.TCPPort(2000 + i), DstPort: 80, SYN: true}
		tcp.SetNetworkLayerForChecksum(ip)

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
		if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp); err != nil {
			t.Fatalf("failed to serialize packet: %v", err)
		}

		ci := gopacket.CaptureInfo{
			Timestamp:     time.Now(),
			CaptureLength: len(buf.Bytes()),
			Length:        len(buf.Bytes()),
		}
		if err := w.WritePacket(ci, buf.Bytes()); err != nil {
			t.Fatalf("failed to write packet: %v", err)
		}
	}
}

func TestReader_ReadPackets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pcap")
	writeTestPcap(t, path, 5)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("Failed to create reader: %v", err)
	}
	defer reader.Close()

	out := make(chan *model.PacketInfo)
	go reader.ReadPackets(out)

	count := 0
	for info := range out {
		if info.FiveTuple.DstPort != 80 {
			t.Errorf("DstPort = %d, want 80", info.FiveTuple.DstPort)
		}
		count++
	}

	if count != 5 {
		t.Errorf("Expected to read 5 packets, but got %d", count)
	}
}
