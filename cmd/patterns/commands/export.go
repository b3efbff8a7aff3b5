package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/patterns-go/patterns/pkg/log"
)

// Export formats.
const (
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
)

// RunExport writes the journal at path to w in the given format.
func RunExport(path, format string, w io.Writer) error {
	if format != FormatJSONL && format != FormatCSV {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	if format == FormatCSV {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "id", "pattern", "category", "source", "type", "detail", "value"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		eventType, detail, value := "unknown", "", ""
		switch {
		case event.Measurement != nil:
			eventType = "measurement"
			detail = fmt.Sprintf("%g/%g/%g", event.Measurement.Temperature, event.Measurement.Humidity, event.Measurement.Pressure)
			value = strconv.Itoa(event.Measurement.Subscribers)
		case event.Order != nil:
			eventType = "order"
			detail = event.Order.Description
			value = strconv.FormatFloat(event.Order.Cost, 'f', 2, 64)
		case event.StateChange != nil:
			eventType = "state"
			detail = event.StateChange.Entity
			value = event.StateChange.NewState
		case event.Error != nil:
			eventType = "error"
			detail = event.Error.Context
			value = event.Error.Message
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.ID,
			event.Pattern.String(),
			event.Category.String(),
			event.Source,
			eventType,
			detail,
			value,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return cw.Error()
}
