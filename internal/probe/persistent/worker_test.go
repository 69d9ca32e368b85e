package persistent

import (
	"UniqSpectra/internal/config"
	"UniqSpectra/pkg/pcap"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

func writeSourcePcap(t *testing.T, path string, packets int) {
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
			SrcIP:    net.IP{10, 0, 0, byte(i + 1)},
			DstIP:    net.IP{192, 168, 0, 1},
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolUDP,
		}
		udp := &layers.UDP{SrcPort: layers.UDPPort(3000 + i), DstPort: 53}
		udp.SetNetworkLayerForChecksum(ip)

		buf := gopacket.NewSerializeBuffer()
		opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
		if err := gopacket.SerializeLayers(buf, opts, eth, ip, udp); err != nil {
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

// A capture streamed through ReadRaw and the worker must come out complete,
// split into rotated archive files.
func TestRearchiveRawCapture(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "source.pcap")
	writeSourcePcap(t, srcPath, 10)

	outDir := filepath.Join(t.TempDir(), "archive")
	worker, err := NewWorker(config.PersistenceConfig{
		Enabled:           true,
		Path:              outDir,
		ChannelBufferSize: 100,
		RotateAfter:       4,
	})
	if err != nil {
		t.Fatalf("NewWorker: %v", err)
	}

	reader, err := pcap.NewReader(srcPath)
	if err != nil {
		t.Fatalf("Failed to open source pcap: %v", err)
	}
	defer reader.Close()

	raw := make(chan gopacket.Packet, 100)
	go reader.ReadRaw(raw)
	for packet := range raw {
		worker.Enqueue(packet)
	}
	// Stop blocks until everything enqueued is flushed to disk.
	worker.Stop()

	files, err := filepath.Glob(filepath.Join(outDir, "*.pcap"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	// 10 packets at 4 per file means 3 archives.
	if len(files) != 3 {
		t.Errorf("Expected 3 rotated archive files, got %d: %v", len(files), files)
	}

	total := 0
	for _, f := range files {
		archived, err := pcap.NewReader(f)
		if err != nil {
			t.Fatalf("Failed to open archive %s: %v", f, err)
		}
		out := make(chan gopacket.Packet, 100)
		go archived.ReadRaw(out)
		for range out {
			total++
		}
		archived.Close()
	}
	if total != 10 {
		t.Errorf("Archives hold %d packets, want 10", total)
	}
}
