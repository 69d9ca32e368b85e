package pcap

import (
	"UniqSpectra/internal/engine/protocol"
	"UniqSpectra/internal/model"
	"log"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
)

// Reader reads packets from a pcap file.
type Reader struct {
	handle *pcap.Handle
}

// NewReader creates a new pcap reader for the given file path.
func NewReader(filePath string) (*Reader, error) {
	handle, err := pcap.OpenOffline(filePath)
	if err != nil {
		return nil, err
	}
	return &Reader{handle: handle}, nil
}

// Close closes the pcap handle.
func (r *Reader) Close() {
	r.handle.Close()
}

// ReadPackets reads all packets from the pcap file and sends the parsed
// PacketInfo to the provided channel. It closes the channel when done.
func (r *Reader) ReadPackets(out chan<- *model.PacketInfo) {
	defer close(out)

	packetSource := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	for packet := range packetSource.Packets() {
		info, err := protocol.ParsePacket(packet)
		if err != nil {
			// Unsupported packet types are expected in real captures,
			// skip them without flooding the log.
			continue
		}
		out <- info
	}
}

// ReadRaw reads all packets without parsing and sends them to the provided
// channel. Used by tools that need the full packet, not just the five-tuple.
func (r *Reader) ReadRaw(out chan<- gopacket.Packet) {
	defer close(out)

	packetSource := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	count := 0
	for packet := range packetSource.Packets() {
		out <- packet
		count++
	}
	log.Printf("Read %d raw packets from pcap file.", count)
}
