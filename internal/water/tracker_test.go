package water

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
}

func dayAfter() time.Time {
	return time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
}

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStore(t.TempDir())
}

func readState(t *testing.T, s *storage.Store) State {
	t.Helper()
	var st State
	ok, err := s.GetJSON(KeyTracker, &st)
	require.NoError(t, err)
	require.True(t, ok)
	return st
}

func readHistory(t *testing.T, s *storage.Store) []Record {
	t.Helper()
	var h []Record
	_, err := s.GetJSON(KeyHistory, &h)
	require.NoError(t, err)
	return h
}

func TestOpenFresh(t *testing.T) {
	s := newStore(t)

	tr, err := Open(s, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Intake())
	assert.Equal(t, DefaultGoalML, tr.Goal())
	assert.Equal(t, "2025-06-15", tr.Date())
	assert.Empty(t, tr.History())
	assert.Nil(t, tr.Archived())

	assert.Equal(t, State{Intake: 0, Date: "2025-06-15"}, readState(t, s))
}

func TestOpenSameDayResume(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetJSON(KeyTracker, State{Intake: 1250, Date: "2025-06-15"}))

	tr, err := Open(s, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 1250, tr.Intake())
	assert.Empty(t, tr.History())
}

func TestOpenRolloverArchivesPreviousDay(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetItem(KeyGoal, "2500"))
	require.NoError(t, s.SetJSON(KeyTracker, State{Intake: 1800, Date: "2025-06-15"}))

	tr, err := Open(s, dayAfter)
	require.NoError(t, err)

	assert.Equal(t, 0, tr.Intake())
	assert.Equal(t, "2025-06-16", tr.Date())
	want := Record{Date: "2025-06-15", Intake: 1800, Goal: 2500}
	require.Len(t, tr.History(), 1)
	assert.Equal(t, want, tr.History()[0])
	require.NotNil(t, tr.Archived())
	assert.Equal(t, want, *tr.Archived())

	assert.Equal(t, []Record{want}, readHistory(t, s))
	assert.Equal(t, State{Intake: 0, Date: "2025-06-16"}, readState(t, s))
}

func TestOpenRolloverZeroIntakeNotArchived(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetJSON(KeyTracker, State{Intake: 0, Date: "2025-06-15"}))

	tr, err := Open(s, dayAfter)
	require.NoError(t, err)
	assert.Empty(t, tr.History())
	assert.Nil(t, tr.Archived())
	assert.Equal(t, "2025-06-16", tr.Date())

	_, ok, err := s.GetItem(KeyHistory)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenRolloverEvictsOldest(t *testing.T) {
	s := newStore(t)
	var history []Record
	for i := 1; i <= HistoryLimit; i++ {
		history = append(history, Record{Date: fmt.Sprintf("2025-05-%02d", i), Intake: i * 100, Goal: 2000})
	}
	require.NoError(t, s.SetJSON(KeyHistory, history))
	require.NoError(t, s.SetJSON(KeyTracker, State{Intake: 900, Date: "2025-06-15"}))

	tr, err := Open(s, dayAfter)
	require.NoError(t, err)

	got := tr.History()
	require.Len(t, got, HistoryLimit)
	assert.Equal(t, "2025-05-02", got[0].Date)
	assert.Equal(t, Record{Date: "2025-06-15", Intake: 900, Goal: 2000}, got[len(got)-1])
	assert.Len(t, readHistory(t, s), HistoryLimit)
}

func TestOpenSameDayTrimsOversizedHistory(t *testing.T) {
	s := newStore(t)
	var history []Record
	first := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < HistoryLimit+5; i++ {
		history = append(history, Record{Date: first.AddDate(0, 0, i).Format("2006-01-02"), Intake: 500, Goal: 2000})
	}
	require.NoError(t, s.SetJSON(KeyHistory, history))
	require.NoError(t, s.SetJSON(KeyTracker, State{Intake: 300, Date: "2025-06-15"}))

	tr, err := Open(s, fixedNow)
	require.NoError(t, err)

	got := tr.History()
	require.Len(t, got, HistoryLimit)
	assert.Equal(t, "2025-05-06", got[0].Date)
	assert.Equal(t, "2025-06-04", got[len(got)-1].Date)
	assert.Nil(t, tr.Archived())
	assert.Equal(t, 300, tr.Intake())
	assert.Len(t, readHistory(t, s), HistoryLimit)
}

func TestOpenCorruptTracker(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetItem(KeyTracker, "{not json"))

	tr, err := Open(s, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Intake())
	assert.Equal(t, "2025-06-15", tr.Date())
	assert.Equal(t, State{Intake: 0, Date: "2025-06-15"}, readState(t, s))
}

func TestOpenCorruptHistoryAndGoal(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetItem(KeyHistory, "[{"))
	require.NoError(t, s.SetItem(KeyGoal, "lots"))

	tr, err := Open(s, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, tr.History())
	assert.Equal(t, DefaultGoalML, tr.Goal())
}

func TestOpenGoalOutsideOptionsFallsBack(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetItem(KeyGoal, "1234"))

	tr, err := Open(s, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, DefaultGoalML, tr.Goal())
}

func TestAddWaterClamps(t *testing.T) {
	tr, err := Open(newStore(t), fixedNow)
	require.NoError(t, err)

	for _, amount := range []int{0, 250, 4000, 9000, 10000} {
		require.NoError(t, tr.AddWater(amount))
		assert.LessOrEqual(t, tr.Intake(), MaxIntakeML)
	}
	assert.Equal(t, MaxIntakeML, tr.Intake())
}

func TestAddWaterHugeAmountSaturates(t *testing.T) {
	s := newStore(t)
	tr, err := Open(s, fixedNow)
	require.NoError(t, err)

	require.NoError(t, tr.AddWater(500))
	require.NoError(t, tr.AddWater(math.MaxInt))
	assert.Equal(t, MaxIntakeML, tr.Intake())
	assert.Equal(t, MaxIntakeML, readState(t, s).Intake)

	require.NoError(t, tr.AddWater(math.MaxInt-MaxIntakeML+1))
	assert.Equal(t, MaxIntakeML, tr.Intake())
}

func TestRemoveWaterFloorsAtZero(t *testing.T) {
	s := newStore(t)
	tr, err := Open(s, fixedNow)
	require.NoError(t, err)

	require.NoError(t, tr.AddWater(300))
	require.NoError(t, tr.RemoveWater())
	assert.Equal(t, 50, tr.Intake())
	require.NoError(t, tr.RemoveWater())
	assert.Equal(t, 0, tr.Intake())
	require.NoError(t, tr.RemoveWater())
	assert.Equal(t, 0, tr.Intake())
	assert.Equal(t, 0, readState(t, s).Intake)
}

func TestResetWaterDoesNotArchive(t *testing.T) {
	s := newStore(t)
	tr, err := Open(s, fixedNow)
	require.NoError(t, err)

	require.NoError(t, tr.AddWater(1500))
	require.NoError(t, tr.ResetWater())
	assert.Equal(t, 0, tr.Intake())
	assert.Empty(t, tr.History())
	assert.Equal(t, 0, readState(t, s).Intake)

	// The next day nothing is archived because the reset left intake at zero.
	next, err := Open(s, dayAfter)
	require.NoError(t, err)
	assert.Empty(t, next.History())
}

func TestUpdateGoal(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetJSON(KeyHistory, []Record{{Date: "2025-06-14", Intake: 2100, Goal: 2000}}))

	tr, err := Open(s, fixedNow)
	require.NoError(t, err)

	require.NoError(t, tr.UpdateGoal(3000))
	assert.Equal(t, 3000, tr.Goal())

	raw, _, err := s.GetItem(KeyGoal)
	require.NoError(t, err)
	assert.Equal(t, "3000", raw)

	// archived records keep the goal they were recorded with
	assert.Equal(t, 2000, tr.History()[0].Goal)
	assert.Equal(t, 2000, readHistory(t, s)[0].Goal)
}

func TestUpdateGoalRejectsUnknownValue(t *testing.T) {
	s := newStore(t)
	tr, err := Open(s, fixedNow)
	require.NoError(t, err)

	err = tr.UpdateGoal(1800)
	assert.ErrorIs(t, err, ErrInvalidGoal)
	assert.Equal(t, DefaultGoalML, tr.Goal())

	_, ok, err := s.GetItem(KeyGoal)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGoalSnapshotUsedAtRollover(t *testing.T) {
	s := newStore(t)
	tr, err := Open(s, fixedNow)
	require.NoError(t, err)
	require.NoError(t, tr.AddWater(1000))
	require.NoError(t, tr.UpdateGoal(3500))

	next, err := Open(s, dayAfter)
	require.NoError(t, err)
	require.Len(t, next.History(), 1)
	assert.Equal(t, 3500, next.History()[0].Goal)
}

func TestDerivedValuesScenario(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.SetJSON(KeyTracker, State{Intake: 1800, Date: "2025-06-15"}))

	tr, err := Open(s, fixedNow)
	require.NoError(t, err)

	assert.InDelta(t, 90.0, tr.Progress(), 0.0001)
	assert.Equal(t, 200, tr.Remaining())
	assert.False(t, tr.GoalReached())
	assert.Equal(t, 7, tr.Glasses())

	require.NoError(t, tr.AddWater(250))
	assert.Equal(t, 2050, tr.Intake())
	assert.True(t, tr.GoalReached())
	assert.Equal(t, 0, tr.Remaining())
	assert.Equal(t, 100.0, tr.Progress())
}

func TestReconcile(t *testing.T) {
	history := []Record{{Date: "2025-06-13", Intake: 500, Goal: 2000}}

	state, out, archived := Reconcile(nil, 2000, history, "2025-06-15")
	assert.Equal(t, State{Date: "2025-06-15"}, state)
	assert.Equal(t, history, out)
	assert.Nil(t, archived)

	prev := &State{Intake: 700, Date: "2025-06-15"}
	state, _, archived = Reconcile(prev, 2000, history, "2025-06-15")
	assert.Equal(t, *prev, state)
	assert.Nil(t, archived)

	prev = &State{Intake: 700, Date: "2025-06-14"}
	state, out, archived = Reconcile(prev, 2500, history, "2025-06-15")
	assert.Equal(t, State{Date: "2025-06-15"}, state)
	require.Len(t, out, 2)
	require.NotNil(t, archived)
	assert.Equal(t, Record{Date: "2025-06-14", Intake: 700, Goal: 2500}, *archived)
	// input slice untouched
	assert.Len(t, history, 1)

	long := make([]Record, HistoryLimit+3)
	for i := range long {
		long[i] = Record{Date: time.Date(2025, 4, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), Intake: 100, Goal: 2000}
	}
	prev = &State{Intake: 700, Date: "2025-06-15"}
	state, out, archived = Reconcile(prev, 2000, long, "2025-06-15")
	assert.Equal(t, *prev, state)
	assert.Nil(t, archived)
	require.Len(t, out, HistoryLimit)
	assert.Equal(t, "2025-04-04", out[0].Date)
	assert.Len(t, long, HistoryLimit+3)
}

type failingStore struct {
	getErr error
	setErr error
}

func (f failingStore) GetItem(string) (string, bool, error) { return "", false, f.getErr }
func (f failingStore) SetItem(string, string) error         { return f.setErr }

func TestOpenStorageUnavailable(t *testing.T) {
	_, err := Open(failingStore{getErr: storage.ErrUnavailable}, fixedNow)
	assert.True(t, errors.Is(err, storage.ErrUnavailable))

	_, err = Open(failingStore{setErr: storage.ErrUnavailable}, fixedNow)
	assert.True(t, errors.Is(err, storage.ErrUnavailable))
}

func TestStatePersistedAsWebShape(t *testing.T) {
	s := newStore(t)
	tr, err := Open(s, fixedNow)
	require.NoError(t, err)
	require.NoError(t, tr.AddWater(500))

	raw, _, err := s.GetItem(KeyTracker)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, float64(500), m["intake"])
	assert.Equal(t, "2025-06-15", m["date"])
}
