package protocol

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

func buildPacket(t *testing.T, transport gopacket.SerializableLayer, proto layers.IPProtocol) gopacket.Packet {
	t.Helper()

	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		DstMAC:       net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		SrcIP:    net.IP{10, 0, 0, 1},
		DstIP:    net.IP{10, 0, 0, 2},
		Version:  4,
		TTL:      64,
		Protocol: proto,
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: false}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, transport, gopacket.Payload([]byte("payload"))); err != nil {
		t.Fatalf("failed to serialize packet: %v", err)
	}

	return gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
}

func TestParsePacketTCP(t *testing.T) {
	tcp := &layers.TCP{SrcPort: 443, DstPort: 51234, SYN: true, Window: 14600}
	packet := buildPacket(t, tcp, layers.IPProtocolTCP)

	info, err := ParsePacket(packet)
	if err != nil {
		t.Fatalf("ParsePacket: %v", err)
	}

	if !info.FiveTuple.SrcIP.Equal(net.IP{10, 0, 0, 1}) {
		t.Errorf("SrcIP = %v, want 10.0.0.1", info.FiveTuple.SrcIP)
	}
	if !info.FiveTuple.DstIP.Equal(net.IP{10, 0, 0, 2}) {
		t.Errorf("DstIP = %v, want 10.0.0.2", info.FiveTuple.DstIP)
	}
	if info.FiveTuple.SrcPort != 443 || info.FiveTuple.DstPort != 51234 {
		t.Errorf("ports = %d->%d, want 443->51234", info.FiveTuple.SrcPort, info.FiveTuple.DstPort)
	}
	if info.FiveTuple.Protocol != uint8(layers.IPProtocolTCP) {
		t.Errorf("protocol = %d, want TCP", info.FiveTuple.Protocol)
	}
	if info.Length == 0 {
		t.Error("Length should not be 0")
	}
}

func TestParsePacketUDP(t *testing.T) {
	udp := &layers.UDP{SrcPort: 53, DstPort: 40000}
	packet := buildPacket(t, udp, layers.IPProtocolUDP)

	info, err := ParsePacket(packet)
	if err != nil {
		t.Fatalf("ParsePacket: %v", err)
	}
	if info.FiveTuple.SrcPort != 53 || info.FiveTuple.DstPort != 40000 {
		t.Errorf("ports = %d->%d, want 53->40000", info.FiveTuple.SrcPort, info.FiveTuple.DstPort)
	}
}

func TestParsePacketRejectsNonIPv4(t *testing.T) {
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		SourceProtAddress: []byte{10, 0, 0, 1},
		DstHwAddress:      []byte{0, 0, 0, 0, 0, 0},
		DstProtAddress:    []byte{10, 0, 0, 2},
	}
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		DstMAC:       net.HardwareAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		EthernetType: layers.EthernetTypeARP,
	}

	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true}, eth, arp); err != nil {
		t.Fatalf("failed to serialize packet: %v", err)
	}
	packet := gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)

	if _, err := ParsePacket(packet); err == nil {
		t.Error("expected an error for a non-IPv4 packet")
	}
}
