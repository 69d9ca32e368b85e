package persistent

import (
	"UniqSpectra/internal/config"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

const defaultRotateAfter = 1000000

// Worker archives raw packets to rotating pcap files on disk.
type Worker struct {
	packetChan chan gopacket.Packet
	stopChan   chan struct{}
	flushed    chan struct{}
	wg         sync.WaitGroup

	path        string
	rotateAfter int
}

// NewWorker creates and starts a new persistent worker.
func NewWorker(cfg config.PersistenceConfig) (*Worker, error) {
	if err := os.MkdirAll(cfg.Path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create persistence directory: %w", err)
	}

	bufferSize := cfg.ChannelBufferSize
	if bufferSize <= 0 {
		bufferSize = 10000
	}
	rotateAfter := cfg.RotateAfter
	if rotateAfter <= 0 {
		rotateAfter = defaultRotateAfter
	}

	w := &Worker{
		packetChan:  make(chan gopacket.Packet, bufferSize),
		stopChan:    make(chan struct{}),
		flushed:     make(chan struct{}),
		path:        cfg.Path,
		rotateAfter: rotateAfter,
	}

	// A single writer goroutine keeps packets in capture order.
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run()
	}()

	go func() {
		<-w.stopChan
		close(w.packetChan)
		w.wg.Wait()
		close(w.flushed)
		log.Println("Persistent worker stopped and archive closed.")
	}()

	log.Printf("Persistent worker started, writing pcap archives to: %s", cfg.Path)
	return w, nil
}

func (w *Worker) run() {
	var (
		file    *os.File
		writer  *pcapgo.Writer
		written int
		fileSeq int
	)

	openNext := func() error {
		// The sequence number keeps names unique when rotation happens more
		// than once per second.
		fileName := fmt.Sprintf("%s_%04d.pcap", time.Now().Format("2006-01-02_15-04-05"), fileSeq)
		fileSeq++
		f, err := os.OpenFile(filepath.Join(w.path, fileName), os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		pw := pcapgo.NewWriter(f)
		if err := pw.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
			f.Close()
			return err
		}
		file, writer, written = f, pw, 0
		return nil
	}

	for packet := range w.packetChan {
		if writer == nil || written >= w.rotateAfter {
			if file != nil {
				file.Close()
			}
			if err := openNext(); err != nil {
				log.Printf("PersistentWorker: Failed to open archive file: %v", err)
				continue
			}
		}
		if err := writer.WritePacket(packet.Metadata().CaptureInfo, packet.Data()); err != nil {
			log.Printf("PersistentWorker: Error writing packet: %v", err)
			continue
		}
		written++
	}

	if file != nil {
		if err := file.Close(); err != nil {
			log.Printf("PersistentWorker: Error closing file: %v", err)
		}
	}
}

// Stop shuts down the worker and blocks until buffered packets are on disk.
func (w *Worker) Stop() {
	close(w.stopChan)
	<-w.flushed
}

// Enqueue sends a raw packet to the worker channel for archiving.
func (w *Worker) Enqueue(packet gopacket.Packet) {
	select {
	case w.packetChan <- packet:
	default:
		log.Println("PersistentWorker: Channel is full, dropping packet.")
	}
}
