package schedule_test

import (
	"testing"

	"staff-scheduler-backend/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingNotifier tallies the signals the history manager emits
type countingNotifier struct {
	scheduleChanged int
	historyChanged  int
	lastCanUndo     bool
	lastCanRedo     bool
}

func (n *countingNotifier) ScheduleChanged() { n.scheduleChanged++ }

func (n *countingNotifier) HistoryChanged(canUndo, canRedo bool) {
	n.historyChanged++
	n.lastCanUndo = canUndo
	n.lastCanRedo = canRedo
}

func newHistory(t *testing.T) *schedule.History {
	t.Helper()
	return schedule.NewHistory(schedule.NewStore(nil), nil, schedule.DefaultMaxDepth)
}

func modify(employeeID, date string, a schedule.Assignment) *schedule.ModifyAssignmentCommand {
	return &schedule.ModifyAssignmentCommand{
		EmployeeID:    employeeID,
		Date:          date,
		NewAssignment: a,
	}
}

func TestHistoryFullUndoRestoresInitialState(t *testing.T) {
	h := newHistory(t)
	store := h.Store()
	require.NoError(t, store.Upsert("emp-1", "2024-06-03", schedule.NewTimeOff("Vacation")))
	before := store.Snapshot()

	commands := []schedule.Command{
		modify("emp-1", "2024-06-04", schedule.NewTemplateShift("role-1", "tpl-1")),
		modify("emp-2", "2024-06-04", schedule.NewCustomShift("role-2", "09:00", "17:00")),
		modify("emp-2", "2024-06-05", schedule.NewTimeOff("Sick")),
		&schedule.DeleteAssignmentCommand{EmployeeID: "emp-1", Date: "2024-06-03", AssignmentID: store.Get("emp-1", "2024-06-03")[0].AssignmentID},
	}
	for _, cmd := range commands {
		require.NoError(t, h.Do(cmd))
	}
	require.NotEqual(t, before, store.Snapshot())

	for range commands {
		require.NoError(t, h.Undo())
	}

	assert.Equal(t, before, store.Snapshot())
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())
}

func TestHistoryRedoReproducesForwardEffect(t *testing.T) {
	h := newHistory(t)
	cmd := modify("emp-1", "2024-06-03", schedule.NewTemplateShift("role-1", "tpl-1"))

	require.NoError(t, h.Do(cmd))
	after := h.Store().Snapshot()

	require.NoError(t, h.Undo())
	require.NoError(t, h.Redo())

	assert.Equal(t, after, h.Store().Snapshot())
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistoryDoClearsRedoStack(t *testing.T) {
	h := newHistory(t)
	a := modify("emp-1", "2024-06-03", schedule.NewTimeOff("Vacation"))
	b := modify("emp-1", "2024-06-04", schedule.NewTimeOff("Sick"))
	c := modify("emp-2", "2024-06-03", schedule.NewTemplateShift("role-1", "tpl-1"))

	require.NoError(t, h.Do(a))
	require.NoError(t, h.Do(b))
	require.NoError(t, h.Undo())
	require.NoError(t, h.Do(c))

	// B is unreachable: redo must be a no-op
	assert.False(t, h.CanRedo())
	snapshot := h.Store().Snapshot()
	require.NoError(t, h.Redo())
	assert.Equal(t, snapshot, h.Store().Snapshot())
	assert.Empty(t, h.Store().Get("emp-1", "2024-06-04"))
}

func TestHistoryDeleteUndoRestoresAssignmentVerbatim(t *testing.T) {
	h := newHistory(t)
	original := schedule.Assignment{
		AssignmentID: "assign-fixed",
		Type:         schedule.AssignmentTypeShift,
		RoleID:       "role-7",
		IsCustom:     true,
		CustomStart:  "22:00",
		CustomEnd:    "06:00",
	}
	require.NoError(t, h.Store().Upsert("emp-1", "2024-06-03", original))

	require.NoError(t, h.Do(&schedule.DeleteAssignmentCommand{
		EmployeeID:   "emp-1",
		Date:         "2024-06-03",
		AssignmentID: "assign-fixed",
	}))
	require.Empty(t, h.Store().Get("emp-1", "2024-06-03"))

	require.NoError(t, h.Undo())

	got := h.Store().Get("emp-1", "2024-06-03")
	require.Len(t, got, 1)
	assert.Equal(t, original, got[0])
}

func TestHistoryMoveUndoRestoresSourceCell(t *testing.T) {
	h := newHistory(t)
	a := schedule.NewTemplateShift("role-1", "tpl-1")
	require.NoError(t, h.Store().Upsert("emp1", "2024-06-03", a))

	cmd := &schedule.DragDropCommand{
		OriginalEmployeeID: "emp1",
		OriginalDate:       "2024-06-03",
		AssignmentID:       a.AssignmentID,
		IsCopyOperation:    false,
		NewAssignmentID:    a.AssignmentID,
		TargetEmployeeID:   "emp2",
		TargetDate:         "2024-06-04",
	}
	require.NoError(t, h.Do(cmd))
	require.Empty(t, h.Store().Get("emp1", "2024-06-03"))
	require.Len(t, h.Store().Get("emp2", "2024-06-04"), 1)

	require.NoError(t, h.Undo())

	restored := h.Store().Get("emp1", "2024-06-03")
	require.Len(t, restored, 1)
	assert.Equal(t, a, restored[0])
	assert.Empty(t, h.Store().Get("emp2", "2024-06-04"))
}

func TestHistoryCopyUndoRemovesCloneOnly(t *testing.T) {
	h := newHistory(t)
	a := schedule.NewCustomShift("role-1", "09:00", "17:00")
	require.NoError(t, h.Store().Upsert("emp1", "2024-06-03", a))

	cmd := &schedule.DragDropCommand{
		OriginalEmployeeID: "emp1",
		OriginalDate:       "2024-06-03",
		AssignmentID:       a.AssignmentID,
		IsCopyOperation:    true,
		NewAssignmentID:    "assign-clone",
		TargetEmployeeID:   "emp2",
		TargetDate:         "2024-06-04",
	}
	require.NoError(t, h.Do(cmd))
	require.Len(t, h.Store().Get("emp2", "2024-06-04"), 1)

	require.NoError(t, h.Undo())

	assert.Empty(t, h.Store().Get("emp2", "2024-06-04"))
	original := h.Store().Get("emp1", "2024-06-03")
	require.Len(t, original, 1)
	assert.Equal(t, a, original[0])
}

func TestHistoryUndoRedoEmptyStacksAreNoOps(t *testing.T) {
	h := newHistory(t)

	require.NoError(t, h.Undo())
	require.NoError(t, h.Redo())

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistoryClearEmptiesBothStacks(t *testing.T) {
	notifier := &countingNotifier{}
	h := schedule.NewHistory(schedule.NewStore(nil), notifier, schedule.DefaultMaxDepth)
	require.NoError(t, h.Do(modify("emp-1", "2024-06-03", schedule.NewTimeOff("Vacation"))))
	require.NoError(t, h.Do(modify("emp-1", "2024-06-04", schedule.NewTimeOff("Sick"))))
	require.NoError(t, h.Undo())
	require.True(t, h.CanUndo())
	require.True(t, h.CanRedo())

	h.Clear()

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.False(t, notifier.lastCanUndo)
	assert.False(t, notifier.lastCanRedo)
}

func TestHistoryEvictsOldestBeyondMaxDepth(t *testing.T) {
	h := schedule.NewHistory(schedule.NewStore(nil), nil, 3)

	for _, date := range []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06"} {
		require.NoError(t, h.Do(modify("emp-1", date, schedule.NewTimeOff("Vacation"))))
	}

	// Only the 3 most recent commands remain undoable
	for i := 0; i < 3; i++ {
		require.True(t, h.CanUndo())
		require.NoError(t, h.Undo())
	}
	assert.False(t, h.CanUndo())
	// The evicted first action is still applied
	assert.Len(t, h.Store().Get("emp-1", "2024-06-03"), 1)
}

func TestHistorySignalsNotifierOnEveryOperation(t *testing.T) {
	notifier := &countingNotifier{}
	h := schedule.NewHistory(schedule.NewStore(nil), notifier, schedule.DefaultMaxDepth)

	require.NoError(t, h.Do(modify("emp-1", "2024-06-03", schedule.NewTimeOff("Vacation"))))
	assert.Equal(t, 1, notifier.scheduleChanged)
	assert.True(t, notifier.lastCanUndo)
	assert.False(t, notifier.lastCanRedo)

	require.NoError(t, h.Undo())
	assert.Equal(t, 2, notifier.scheduleChanged)
	assert.False(t, notifier.lastCanUndo)
	assert.True(t, notifier.lastCanRedo)

	require.NoError(t, h.Redo())
	assert.Equal(t, 3, notifier.scheduleChanged)
	assert.True(t, notifier.lastCanUndo)
	assert.False(t, notifier.lastCanRedo)
}
