package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/celskeggs/weatherdash/station/reading"
)

var header = []string{"Nanoseconds", "Temperature", "Humidity", "Pressure", "Ratio"}

// CSVRecorder appends every live reading to a CSV history file.
type CSVRecorder struct {
	mu     sync.Mutex
	file   io.Closer
	output *csv.Writer
}

func (r *CSVRecorder) IsRecording() bool {
	return r.output != nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (r *CSVRecorder) Record(rd reading.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.output == nil {
		// not recording; discard
		return nil
	}
	err := r.output.Write([]string{
		strconv.FormatInt(rd.At.UnixNano(), 10),
		formatFloat(rd.Temperature),
		formatFloat(rd.Humidity),
		formatFloat(rd.Pressure),
		formatFloat(rd.Ratio),
	})
	r.output.Flush()
	if err == nil {
		err = r.output.Error()
	}
	return err
}

func (r *CSVRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file, r.output = nil, nil
	return err
}

func NewNullRecorder() *CSVRecorder {
	return &CSVRecorder{}
}

// NewCSVRecorder appends to path, writing the header first if the file is new or empty.
func NewCSVRecorder(path string) (*CSVRecorder, error) {
	w, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	info, err := w.Stat()
	if err != nil {
		return nil, multierror.Append(err, w.Close())
	}
	cw := csv.NewWriter(w)
	if info.Size() == 0 {
		err = cw.Write(header)
		cw.Flush()
		if err == nil {
			err = cw.Error()
		}
		if err != nil {
			return nil, multierror.Append(err, w.Close())
		}
	}
	return &CSVRecorder{
		file:   w,
		output: cw,
	}, nil
}

// DecodeRecording reads back every reading from a file written by CSVRecorder, oldest first.
func DecodeRecording(path string) (records []reading.Reading, re error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := r.Close(); err != nil {
			re = multierror.Append(re, err)
		}
	}()
	return Decode(r)
}

func Decode(r io.Reader) ([]reading.Reading, error) {
	recordsRaw, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recordsRaw) < 1 {
		return nil, errors.New("no header found")
	}
	if len(recordsRaw[0]) != len(header) {
		return nil, fmt.Errorf("invalid header: %v", recordsRaw[0])
	}
	for i, name := range header {
		if recordsRaw[0][i] != name {
			return nil, fmt.Errorf("invalid header: %v", recordsRaw[0])
		}
	}
	var records []reading.Reading
	for _, record := range recordsRaw[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("invalid data record: %v", record)
		}
		timestampNS, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, err
		}
		var values [4]float64
		for i := range values {
			values[i], err = strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s in record %v: %w", header[i+1], record, err)
			}
		}
		records = append(records, reading.Reading{
			At:          time.Unix(0, timestampNS),
			Temperature: values[0],
			Humidity:    values[1],
			Pressure:    values[2],
			Ratio:       values[3],
		})
	}
	return records, nil
}

// Last returns at most the n newest records.
func Last(records []reading.Reading, n int) []reading.Reading {
	if n < 0 {
		n = 0
	}
	if len(records) > n {
		return records[len(records)-n:]
	}
	return records
}
