package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstent/ftracker-go/internal/report"
	"github.com/sstent/ftracker-go/internal/training"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf)

	tr, err := training.New(training.TypeSwimming, []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	require.NoError(t, r.Report(tr))

	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n",
		buf.String())
}

func TestReportOneLinePerTraining(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf)

	run, err := training.New(training.TypeRunning, []float64{15000, 1, 75})
	require.NoError(t, err)
	wlk, err := training.New(training.TypeWalking, []float64{9000, 1, 75, 180})
	require.NoError(t, err)

	require.NoError(t, r.Report(run))
	require.NoError(t, r.Report(wlk))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Тип тренировки: Running;"))
	assert.True(t, strings.HasPrefix(lines[1], "Тип тренировки: SportsWalking;"))
}

// stretching satisfies Training but not CaloriesCounter.
type stretching struct {
	training.Base
}

func (stretching) TrainingType() string { return "Stretching" }

func TestReportWithoutCaloriesCounter(t *testing.T) {
	var buf bytes.Buffer
	err := report.New(&buf).Report(stretching{Base: training.Base{Action: 100, Duration: 1, Weight: 60}})

	var unimplErr *training.UnimplementedError
	require.ErrorAs(t, err, &unimplErr)
	assert.Equal(t, "Stretching", unimplErr.TrainingType)
	assert.Empty(t, buf.String())
}
