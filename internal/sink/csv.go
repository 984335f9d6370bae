// Package sink provides output sinks for finalized author rows.
package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goodnatureofminers/telemetry-observer-backend/internal/model"
)

var csvHeader = []string{
	"timestamp",
	"node_name",
	"node_id",
	"block_number",
	"block_hash",
	"propagation_time",
}

// CSV appends author rows to a CSV file. The header is written once, only if
// the file is empty when the sink opens.
type CSV struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSV opens (or creates) the output file in append mode.
func NewCSV(path string) (*CSV, error) {
	if path == "" {
		return nil, fmt.Errorf("output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file %s: %w", path, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat output file %s: %w", path, err)
	}

	s := &CSV{file: file, writer: csv.NewWriter(file)}
	if info.Size() == 0 {
		if err := s.writer.Write(csvHeader); err != nil {
			file.Close()
			return nil, fmt.Errorf("write csv header: %w", err)
		}
		s.writer.Flush()
		if err := s.writer.Error(); err != nil {
			file.Close()
			return nil, fmt.Errorf("flush csv header: %w", err)
		}
	}
	return s, nil
}

// Append writes the rows and flushes them to the file.
func (s *CSV) Append(rows []model.OutputRow) error {
	for _, row := range rows {
		record := []string{
			strconv.FormatUint(row.Timestamp, 10),
			row.NodeName,
			row.NodeID,
			strconv.FormatUint(row.BlockNumber, 10),
			row.BlockHash,
			strconv.FormatUint(row.PropagationTime, 10),
		}
		if err := s.writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("flush csv rows: %w", err)
	}
	return nil
}

// Close flushes pending rows and closes the file.
func (s *CSV) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
