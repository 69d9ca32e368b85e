package distinct

import (
	"UniqSpectra/internal/model"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// TextWriter handles writing distinct-count snapshots to a text file.
type TextWriter struct {
	rootPath string
	interval time.Duration
}

// NewTextWriter creates a new text writer for distinct-count snapshots.
func NewTextWriter(rootPath string, interval time.Duration) model.Writer {
	return &TextWriter{rootPath: rootPath, interval: interval}
}

func (w *TextWriter) GetInterval() time.Duration {
	return w.interval
}

func (w *TextWriter) Write(payload any, timestamp, taskName string) error {
	records, ok := payload.([]Record)
	if !ok {
		return fmt.Errorf("invalid payload type for TextWriter: expected []distinct.Record, got %T", payload)
	}

	taskDir := filepath.Join(w.rootPath, timestamp, taskName)
	if err := os.MkdirAll(taskDir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	filePath := filepath.Join(taskDir, "distinct_counts.txt")
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file '%s': %w", filePath, err)
	}
	defer file.Close()

	for _, rec := range records {
		line := fmt.Sprintf("%s %.1f p=%g n=%d\n", rec.Flow, rec.Estimate, rec.SamplingRate, rec.Processed)
		if _, err := file.WriteString(line); err != nil {
			return fmt.Errorf("failed to write record to file: %w", err)
		}
	}

	log.Printf("Successfully wrote %d distinct-count records to %s\n", len(records), taskDir)

	return nil
}
