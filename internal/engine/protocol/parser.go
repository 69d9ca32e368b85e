package protocol

import (
	"UniqSpectra/internal/model"
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// ParsePacket extracts the five-tuple and metadata from a decoded packet.
// Non-IPv4 and non-TCP/UDP packets are rejected with an error so callers can
// skip them.
func ParsePacket(packet gopacket.Packet) (*model.PacketInfo, error) {
	info := &model.PacketInfo{
		Timestamp: time.Now(),
		Length:    len(packet.Data()),
	}

	if meta := packet.Metadata(); meta != nil && !meta.Timestamp.IsZero() {
		info.Timestamp = meta.Timestamp
	}

	var fiveTuple model.FiveTuple

	if l := packet.Layer(layers.LayerTypeIPv4); l != nil {
		ipLayer := l.(*layers.IPv4)
		fiveTuple.SrcIP = ipLayer.SrcIP
		fiveTuple.DstIP = ipLayer.DstIP
		fiveTuple.Protocol = uint8(ipLayer.Protocol)
	} else {
		return nil, fmt.Errorf("not an IPv4 packet")
	}

	if l := packet.Layer(layers.LayerTypeTCP); l != nil {
		tcpLayer := l.(*layers.TCP)
		fiveTuple.SrcPort = uint16(tcpLayer.SrcPort)
		fiveTuple.DstPort = uint16(tcpLayer.DstPort)
	} else if l := packet.Layer(layers.LayerTypeUDP); l != nil {
		udpLayer := l.(*layers.UDP)
		fiveTuple.SrcPort = uint16(udpLayer.SrcPort)
		fiveTuple.DstPort = uint16(udpLayer.DstPort)
	} else {
		return nil, fmt.Errorf("not a TCP or UDP packet")
	}

	info.FiveTuple = fiveTuple

	return info, nil
}
