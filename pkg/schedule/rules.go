package schedule

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DateWindow is one task's inclusive calendar range.
type DateWindow struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

// Engine distributes tasks across the time left before a due date,
// reserving a type-dependent buffer as unscheduled slack.
type Engine interface {
	BufferFraction(assignmentType string) float64
	TaskDates(today, due time.Time, taskCount int, assignmentType string) ([]DateWindow, error)
}

const (
	defaultBuffer = 0.10
	isoDate       = "2006-01-02"
)

type rules struct {
	buffer map[string]float64 // assignment type -> buffer fraction
}

var ErrTaskCount = errors.New("task count must be at least 1")

// New returns an engine with the built-in buffer table. Iterative work
// (design, coding, research) reserves more slack; lab schedules run tight.
func New() Engine {
	return &rules{buffer: map[string]float64{
		"coding":       0.15,
		"presentation": 0.10,
		"lab":          0.05,
		"math":         0.10,
		"design":       0.20,
		"research":     0.15,
		"report":       0.10,
		"essay":        0.10,
	}}
}

// LoadFromFiles builds an engine from the built-in table plus optional
// per-type overrides from a CSV and/or an XLSX workbook.
func LoadFromFiles(bufferCSV, bufferXLSX string) (Engine, error) {
	r := New().(*rules)
	if bufferCSV != "" {
		if err := r.loadCSV(bufferCSV); err != nil {
			return nil, err
		}
	}
	if bufferXLSX != "" {
		_ = r.loadXLSX(bufferXLSX)
	}
	return r, nil
}

func (r *rules) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	_, _ = cr.Read() // header
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if len(rec) < 2 {
			continue
		}
		frac, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil || frac < 0 || frac >= 1 {
			continue // skip invalid rows
		}
		r.buffer[strings.ToLower(strings.TrimSpace(rec[0]))] = frac
	}
	return nil
}

func (r *rules) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return err
	}
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		frac, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || frac < 0 || frac >= 1 {
			continue
		}
		r.buffer[strings.ToLower(strings.TrimSpace(row[0]))] = frac
	}
	return nil
}

func (r *rules) BufferFraction(assignmentType string) float64 {
	if f, ok := r.buffer[strings.ToLower(assignmentType)]; ok {
		return f
	}
	return defaultBuffer
}

// TaskDates emits taskCount contiguous windows walking forward from
// today. Windows never extend past the due date; when the per-task share
// rounds down, later windows are clamped at the due date rather than
// redistributing days to earlier tasks. Total over any due date: a past
// due date collapses every quantity to its 1-day floor.
func (r *rules) TaskDates(today, due time.Time, taskCount int, assignmentType string) ([]DateWindow, error) {
	if taskCount < 1 {
		return nil, ErrTaskCount
	}

	totalDays := int(math.Ceil(due.Sub(today).Hours() / 24))
	bufferDays := int(float64(totalDays) * r.BufferFraction(assignmentType))
	if bufferDays < 1 {
		bufferDays = 1
	}
	workingDays := totalDays - bufferDays
	if workingDays < 1 {
		workingDays = 1
	}
	daysPerTask := workingDays / taskCount
	if daysPerTask < 1 {
		daysPerTask = 1
	}

	windows := make([]DateWindow, 0, taskCount)
	cursor := today
	for i := 0; i < taskCount; i++ {
		start := cursor
		if start.After(due) {
			start = due // keeps start <= end once the walk passes the due date
		}
		end := cursor.AddDate(0, 0, daysPerTask-1)
		if end.After(due) {
			end = due
		}
		windows = append(windows, DateWindow{
			StartDate: start.Format(isoDate),
			EndDate:   end.Format(isoDate),
		})
		cursor = cursor.AddDate(0, 0, daysPerTask)
	}
	return windows, nil
}
