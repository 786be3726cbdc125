package session

// Session log output (CSV / JSON lines), one record per displayed phase

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/tturner/breathe/internal/sequencer"
)

// Record is a single session log entry
type Record struct {
	Timestamp       time.Time `json:"timestamp"`
	SessionID       string    `json:"session_id"`
	Technique       string    `json:"technique"`
	Round           int       `json:"round"`
	Index           int       `json:"index"`
	Phase           string    `json:"phase"`
	DurationSeconds int       `json:"duration_seconds"`
}

var csvHeader = []string{
	"timestamp",
	"session_id",
	"technique",
	"round",
	"index",
	"phase",
	"duration_seconds",
}

// Writer writes session records. Files are flushed after every record since a
// session normally ends with the process being interrupted.
type Writer struct {
	sessionID string
	technique string

	csvFile   *os.File
	csvWriter *csv.Writer
	jsonFile  *os.File
	jsonEnc   *json.Encoder
	locks     []*flock.Flock
}

// NewWriter opens the requested outputs. Either path may be empty. Each file is
// guarded by a sibling .lock file so two sessions cannot share a log.
func NewWriter(techniqueKey, csvPath, jsonPath string) (*Writer, error) {
	w := &Writer{
		sessionID: uuid.NewString(),
		technique: techniqueKey,
	}

	if csvPath != "" {
		file, err := w.open(csvPath)
		if err != nil {
			w.Close()
			return nil, err
		}
		w.csvFile = file
		w.csvWriter = csv.NewWriter(file)
		if err := w.csvWriter.Write(csvHeader); err != nil {
			w.Close()
			return nil, fmt.Errorf("write CSV header: %w", err)
		}
		w.csvWriter.Flush()
	}

	if jsonPath != "" {
		file, err := w.open(jsonPath)
		if err != nil {
			w.Close()
			return nil, err
		}
		w.jsonFile = file
		w.jsonEnc = json.NewEncoder(file)
	}

	return w, nil
}

func (w *Writer) open(path string) (*os.File, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock session log %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("session log %s is in use by another session", path)
	}
	w.locks = append(w.locks, lock)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create session log: %w", err)
	}
	return file, nil
}

// SessionID returns the id stamped on every record
func (w *Writer) SessionID() string { return w.sessionID }

// Record implements sequencer.Recorder
func (w *Writer) Record(t sequencer.Transition) error {
	return w.Write(Record{
		Timestamp:       t.Time,
		SessionID:       w.sessionID,
		Technique:       w.technique,
		Round:           t.Round,
		Index:           t.Index,
		Phase:           t.Phase.Name,
		DurationSeconds: t.Phase.DurationSeconds,
	})
}

// Write writes a single record
func (w *Writer) Write(r Record) error {
	if w.csvWriter != nil {
		record := []string{
			r.Timestamp.Format(time.RFC3339Nano),
			r.SessionID,
			r.Technique,
			strconv.Itoa(r.Round),
			strconv.Itoa(r.Index),
			r.Phase,
			strconv.Itoa(r.DurationSeconds),
		}
		if err := w.csvWriter.Write(record); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
		w.csvWriter.Flush()
		if err := w.csvWriter.Error(); err != nil {
			return fmt.Errorf("flush CSV record: %w", err)
		}
	}

	if w.jsonEnc != nil {
		if err := w.jsonEnc.Encode(r); err != nil {
			return fmt.Errorf("write JSON record: %w", err)
		}
	}

	return nil
}

// Close flushes and closes all outputs and releases the locks
func (w *Writer) Close() error {
	var errs []error

	if w.csvWriter != nil {
		w.csvWriter.Flush()
	}
	if w.csvFile != nil {
		if err := w.csvFile.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if w.jsonFile != nil {
		if err := w.jsonFile.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, lock := range w.locks {
		if err := lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
		os.Remove(lock.Path())
	}
	w.locks = nil

	if len(errs) > 0 {
		return fmt.Errorf("close session log: %v", errs)
	}
	return nil
}
