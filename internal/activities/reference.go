package activities

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	columnActivityType = "activityType"
	columnAvgCalPerMin = "avg_cal_per_min"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrEmptyDataset     = errors.New("activity dataset is empty")
)

type Activity struct {
	Type         string  `json:"activityType"`
	AvgCalPerMin float64 `json:"avgCalPerMin"`
}

// Reference maps activity type to its average calories burned per minute.
// It is built once and only read afterwards.
type Reference struct {
	avgCalPerMin map[string]float64
	// activity types in first-appearance order
	types []string
}

// NewReference builds the reference from rows; for duplicated types the first row wins.
func NewReference(rows []Activity) (*Reference, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	ref := &Reference{
		avgCalPerMin: make(map[string]float64, len(rows)),
	}
	for _, row := range rows {
		if _, seen := ref.avgCalPerMin[row.Type]; seen {
			continue
		}
		ref.avgCalPerMin[row.Type] = row.AvgCalPerMin
		ref.types = append(ref.types, row.Type)
	}

	return ref, nil
}

// NewReferenceFromCSV reads a dataset with a header row; the activityType and
// avg_cal_per_min columns are located by name, other columns are ignored.
func NewReferenceFromCSV(csvReader *csv.Reader) (*Reference, error) {
	log.Println("reading activities CSV ...")

	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	typeIdx, avgIdx := -1, -1
	for i, column := range header {
		switch strings.TrimSpace(column) {
		case columnActivityType:
			typeIdx = i
		case columnAvgCalPerMin:
			avgIdx = i
		}
	}
	if typeIdx < 0 || avgIdx < 0 {
		return nil, fmt.Errorf("header %v must contain columns [%s] and [%s]", header, columnActivityType, columnAvgCalPerMin)
	}

	var rows []Activity
	line := 1
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if len(record) <= typeIdx || len(record) <= avgIdx {
			return nil, fmt.Errorf("line %d: record %v is missing columns", line, record)
		}

		avg, err := strconv.ParseFloat(strings.TrimSpace(record[avgIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse %s [%s]: %w", line, columnAvgCalPerMin, record[avgIdx], err)
		}

		rows = append(rows, Activity{
			Type:         record[typeIdx],
			AvgCalPerMin: avg,
		})
	}

	ref, err := NewReference(rows)
	if err != nil {
		return nil, err
	}

	log.Printf("activities CSV read: %d rows, %d activity types", len(rows), len(ref.types))

	return ref, nil
}

// AvgCalPerMin returns the average calories per minute for the exact activity type.
func (r *Reference) AvgCalPerMin(activityType string) (float64, error) {
	avg, ok := r.avgCalPerMin[activityType]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrActivityNotFound, activityType)
	}
	return avg, nil
}

func (r *Reference) Types() []string {
	return append([]string(nil), r.types...)
}

func (r *Reference) Len() int {
	return len(r.types)
}
