package schedule

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTaskDatesLabScenario(t *testing.T) {
	// 10 days out, 5 tasks, lab buffer 5%:
	// bufferDays=1, workingDays=9, daysPerTask=1 -> five 1-day windows
	eng := New()
	today := day(2026, 3, 1)
	due := day(2026, 3, 11)

	windows, err := eng.TaskDates(today, due, 5, "lab")
	require.NoError(t, err)
	require.Len(t, windows, 5)

	for i, w := range windows {
		want := today.AddDate(0, 0, i).Format("2006-01-02")
		assert.Equal(t, want, w.StartDate)
		assert.Equal(t, want, w.EndDate)
	}
}

func TestTaskDatesInvariants(t *testing.T) {
	eng := New()
	today := day(2026, 3, 1)

	for _, typ := range []string{"coding", "lab", "design", "essay", "unknown-kind"} {
		for _, horizon := range []int{1, 3, 7, 14, 30, 90} {
			for _, count := range []int{1, 2, 5, 8} {
				due := today.AddDate(0, 0, horizon)
				windows, err := eng.TaskDates(today, due, count, typ)
				require.NoError(t, err)
				require.Len(t, windows, count)

				prevStart := ""
				for _, w := range windows {
					assert.LessOrEqual(t, w.StartDate, w.EndDate)
					assert.GreaterOrEqual(t, w.StartDate, prevStart)
					assert.LessOrEqual(t, w.EndDate, due.Format("2006-01-02"))
					prevStart = w.StartDate
				}
			}
		}
	}
}

func TestTaskDatesClampNoRedistribution(t *testing.T) {
	// 2 days out, 5 tasks: daysPerTask floors to 1, the walk passes the
	// due date and the tail windows collapse onto it.
	eng := New()
	today := day(2026, 3, 1)
	due := day(2026, 3, 3)

	windows, err := eng.TaskDates(today, due, 5, "essay")
	require.NoError(t, err)
	require.Len(t, windows, 5)

	assert.Equal(t, "2026-03-01", windows[0].StartDate)
	assert.Equal(t, "2026-03-02", windows[1].StartDate)
	assert.Equal(t, "2026-03-03", windows[2].StartDate)
	// past the due date: zero-width windows pinned to it
	assert.Equal(t, "2026-03-03", windows[3].StartDate)
	assert.Equal(t, "2026-03-03", windows[3].EndDate)
	assert.Equal(t, "2026-03-03", windows[4].StartDate)
	assert.Equal(t, "2026-03-03", windows[4].EndDate)
}

func TestTaskDatesPastDueDateIsTotal(t *testing.T) {
	eng := New()
	today := day(2026, 3, 10)
	due := day(2026, 3, 1)

	windows, err := eng.TaskDates(today, due, 3, "report")
	require.NoError(t, err)
	require.Len(t, windows, 3)
	for _, w := range windows {
		assert.LessOrEqual(t, w.StartDate, w.EndDate)
		assert.LessOrEqual(t, w.EndDate, "2026-03-01")
	}
}

func TestTaskDatesRejectsBadCount(t *testing.T) {
	eng := New()
	_, err := eng.TaskDates(day(2026, 3, 1), day(2026, 3, 10), 0, "essay")
	assert.ErrorIs(t, err, ErrTaskCount)
}

func TestBufferFractions(t *testing.T) {
	eng := New()
	assert.Equal(t, 0.20, eng.BufferFraction("design"))
	assert.Equal(t, 0.05, eng.BufferFraction("lab"))
	assert.Equal(t, 0.15, eng.BufferFraction("coding"))
	assert.Equal(t, 0.10, eng.BufferFraction("somebody-elses-type"))
	assert.Equal(t, 0.20, eng.BufferFraction("DESIGN"))
}

func TestLoadFromFilesCSVOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buffers.csv")
	csv := "type,fraction\n" +
		"lab,0.30\n" +
		"thesis,0.25\n" +
		"broken,not-a-number\n" +
		"toobig,1.5\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	eng, err := LoadFromFiles(path, "")
	require.NoError(t, err)

	assert.Equal(t, 0.30, eng.BufferFraction("lab"))     // overridden
	assert.Equal(t, 0.25, eng.BufferFraction("thesis"))  // added
	assert.Equal(t, 0.15, eng.BufferFraction("coding"))  // untouched
	assert.Equal(t, 0.10, eng.BufferFraction("broken"))  // invalid row skipped
	assert.Equal(t, 0.10, eng.BufferFraction("toobig"))  // out-of-range skipped
}

func TestLoadFromFilesMissingCSV(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "absent.csv"), "")
	assert.Error(t, err)
}

func TestLargerBufferNeverGainsWorkingDays(t *testing.T) {
	// design reserves more slack than lab, so its first task can never
	// get a longer window for the same horizon.
	eng := New()
	today := day(2026, 3, 1)
	for _, horizon := range []int{5, 10, 20, 60} {
		due := today.AddDate(0, 0, horizon)
		design, err := eng.TaskDates(today, due, 4, "design")
		require.NoError(t, err)
		lab, err := eng.TaskDates(today, due, 4, "lab")
		require.NoError(t, err)
		assert.LessOrEqual(t, design[0].EndDate, lab[0].EndDate, "horizon %d", horizon)
	}
}
