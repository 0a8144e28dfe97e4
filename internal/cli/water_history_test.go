package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/projetonickjumper-byte/fitapp/internal/storage"
	"github.com/projetonickjumper-byte/fitapp/internal/water"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execWaterHistory(store *storage.Store, limit int) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := waterHistoryCmd
	cmd.SetOut(stdout)

	err := runWaterHistory(cmd, store, limit, fixedNow)
	return stdout.String(), err
}

func execWaterStats(store *storage.Store) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := waterStatsCmd
	cmd.SetOut(stdout)

	err := runWaterStats(cmd, store, fixedNow)
	return stdout.String(), err
}

func sampleHistory() []water.Record {
	return []water.Record{
		{Date: "2025-06-10", Intake: 1500, Goal: 2000},
		{Date: "2025-06-11", Intake: 2000, Goal: 2000},
		{Date: "2025-06-12", Intake: 2500, Goal: 2000},
		{Date: "2025-06-14", Intake: 1000, Goal: 2500},
	}
}

func TestWaterHistoryEmpty(t *testing.T) {
	store := setupWaterTest(t)

	stdout, err := execWaterHistory(store, 30)

	require.NoError(t, err)
	assert.Contains(t, stdout, "no archived days yet")
}

func TestWaterHistoryNewestFirst(t *testing.T) {
	store := setupWaterTest(t)
	seedWater(t, store, water.State{Intake: 0, Date: "2025-06-15"}, sampleHistory())

	stdout, err := execWaterHistory(store, 30)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "2025-06-14")
	assert.Contains(t, lines[3], "2025-06-10")
	assert.Contains(t, lines[1], "✓")
	assert.NotContains(t, lines[0], "✓")
}

func TestWaterHistoryLimit(t *testing.T) {
	store := setupWaterTest(t)
	seedWater(t, store, water.State{Intake: 0, Date: "2025-06-15"}, sampleHistory())

	stdout, err := execWaterHistory(store, 2)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 2)
}

func TestWaterHistoryInvalidLimit(t *testing.T) {
	store := setupWaterTest(t)

	_, err := execWaterHistory(store, 0)

	assert.Error(t, err)
}

func TestWaterStatsEmpty(t *testing.T) {
	store := setupWaterTest(t)

	stdout, err := execWaterStats(store)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Today: 0 ml of 2 L (0%)")
	assert.Contains(t, stdout, "no archived days yet")
}

func TestWaterStatsWeekly(t *testing.T) {
	store := setupWaterTest(t)
	seedWater(t, store, water.State{Intake: 500, Date: "2025-06-15"}, sampleHistory())

	stdout, err := execWaterStats(store)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Weekly average: 1.75 L")
	assert.Contains(t, stdout, "Goals reached: 2/4")
}
