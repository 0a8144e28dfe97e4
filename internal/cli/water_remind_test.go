package cli

import (
	"bytes"
	"testing"

	"github.com/projetonickjumper-byte/fitapp/internal/schedule"
	"github.com/projetonickjumper-byte/fitapp/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRemindSet(store *storage.Store, every, at string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := waterRemindSetCmd
	cmd.SetOut(stdout)

	err := runWaterRemindSet(cmd, store, every, at, fixedNow)
	return stdout.String(), err
}

func execRemindShow(store *storage.Store, date string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := waterRemindShowCmd
	cmd.SetOut(stdout)

	err := runWaterRemindShow(cmd, store, date, fixedNow)
	return stdout.String(), err
}

func TestRemindSet(t *testing.T) {
	store := setupWaterTest(t)

	stdout, err := execRemindSet(store, "daily", "9am,12:30,3pm")

	require.NoError(t, err)
	assert.Contains(t, stdout, "reminders set every day at 09:00, 12:30, 15:00")
	// fixedNow is 14:00 on a Sunday
	assert.Contains(t, stdout, "Next: Sun 2025-06-15 15:00")

	var plan schedule.Plan
	ok, err := store.GetJSON(schedule.KeyReminders, &plan)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"09:00", "12:30", "15:00"}, plan.Times)
	assert.Equal(t, "2025-06-15", plan.Start)
}

func TestRemindShowEveryOtherDayKeepsItsRhythm(t *testing.T) {
	store := setupWaterTest(t)
	_, err := execRemindSet(store, "every other day", "9am")
	require.NoError(t, err)

	off, err := execRemindShow(store, "2025-06-16")
	require.NoError(t, err)
	assert.Contains(t, off, "no reminders on this day")

	on, err := execRemindShow(store, "2025-06-17")
	require.NoError(t, err)
	assert.Contains(t, on, "09:00")
	assert.NotContains(t, on, "no reminders on this day")
}

func TestRemindSetRequiresTimes(t *testing.T) {
	store := setupWaterTest(t)

	_, err := execRemindSet(store, "daily", "")

	assert.ErrorContains(t, err, "--at")
}

func TestRemindSetInvalidRecurrence(t *testing.T) {
	store := setupWaterTest(t)

	_, err := execRemindSet(store, "sometimes", "9am")

	assert.Error(t, err)
}

func TestRemindShowNoPlan(t *testing.T) {
	store := setupWaterTest(t)

	stdout, err := execRemindShow(store, "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "no reminders set")
}

func TestRemindShowCorruptPlan(t *testing.T) {
	store := setupWaterTest(t)
	require.NoError(t, store.SetItem(schedule.KeyReminders, "{not json"))

	stdout, err := execRemindShow(store, "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "no reminders set")
}

func TestRemindShowToday(t *testing.T) {
	store := setupWaterTest(t)
	_, err := execRemindSet(store, "daily", "9am,3pm")
	require.NoError(t, err)

	stdout, err := execRemindShow(store, "today")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Sunday, 2025-06-15")
	assert.Contains(t, stdout, "✓ 09:00")
	assert.Contains(t, stdout, "  15:00")
}

func TestRemindShowWeekdaysOnWeekend(t *testing.T) {
	store := setupWaterTest(t)
	_, err := execRemindSet(store, "weekdays", "10:00")
	require.NoError(t, err)

	stdout, err := execRemindShow(store, "today")

	require.NoError(t, err)
	assert.Contains(t, stdout, "no reminders on this day")
	assert.Contains(t, stdout, "Next: Mon 2025-06-16 10:00")
}

func TestRemindClear(t *testing.T) {
	store := setupWaterTest(t)
	_, err := execRemindSet(store, "daily", "9am")
	require.NoError(t, err)

	stdout := new(bytes.Buffer)
	cmd := waterRemindClearCmd
	cmd.SetOut(stdout)
	require.NoError(t, runWaterRemindClear(cmd, store))

	assert.Contains(t, stdout.String(), "reminders cleared")
	_, ok, err := store.GetItem(schedule.KeyReminders)
	require.NoError(t, err)
	assert.False(t, ok)
}
