package schedule

import "staff-scheduler-backend/internal/logger"

// DefaultMaxDepth bounds the undo and redo stacks; the oldest entry is
// evicted on overflow.
const DefaultMaxDepth = 100

// Notifier receives signals after every history operation: a schedule
// re-render trigger and an undo/redo affordance update. Implementations
// must not call back into the history manager.
type Notifier interface {
	ScheduleChanged()
	HistoryChanged(canUndo, canRedo bool)
}

// NopNotifier discards all signals
type NopNotifier struct{}

func (NopNotifier) ScheduleChanged()                     {}
func (NopNotifier) HistoryChanged(canUndo, canRedo bool) {}

// History owns the undo/redo stacks and is the sole legal mutator of the
// assignment store: every schedule edit goes through Do as a command. Stacks
// only grow and shrink by one at the top, which keeps Apply/Invert symmetric.
// Not safe for concurrent use; the owning service serializes calls.
type History struct {
	store    *Store
	notifier Notifier
	maxDepth int
	undo     []Command
	redo     []Command
	log      *logger.Logger
}

// NewHistory creates a history manager over the given store. A nil notifier
// disables signals.
func NewHistory(store *Store, notifier Notifier, maxDepth int) *History {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &History{
		store:    store,
		notifier: notifier,
		maxDepth: maxDepth,
		log:      logger.New().WithField("component", "history"),
	}
}

// Store returns the assignment store the history operates on
func (h *History) Store() *Store {
	return h.store
}

// Do executes a command, pushes it onto the undo stack and clears the redo
// stack: a new action invalidates any forward history.
func (h *History) Do(cmd Command) error {
	if err := cmd.Apply(h.store); err != nil {
		return err
	}
	h.undo = append(h.undo, cmd)
	if len(h.undo) > h.maxDepth {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
	h.log.WithField("kind", cmd.Kind()).Debug("command applied")
	h.signal()
	return nil
}

// Undo reverses the most recent command and moves it to the redo stack.
// No-op when the undo stack is empty.
func (h *History) Undo() error {
	if len(h.undo) == 0 {
		return nil
	}
	cmd := h.undo[len(h.undo)-1]
	if err := cmd.Invert(h.store); err != nil {
		return err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cmd)
	if len(h.redo) > h.maxDepth {
		h.redo = h.redo[1:]
	}
	h.log.WithField("kind", cmd.Kind()).Debug("command undone")
	h.signal()
	return nil
}

// Redo re-applies the most recently undone command and moves it back to the
// undo stack. No-op when the redo stack is empty.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return nil
	}
	cmd := h.redo[len(h.redo)-1]
	if err := cmd.Apply(h.store); err != nil {
		return err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cmd)
	h.log.WithField("kind", cmd.Kind()).Debug("command redone")
	h.signal()
	return nil
}

// Clear empties both stacks. Invoked when the client navigates away from the
// scheduling view, since pending history from another context must not be
// silently reapplied.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
	h.notifier.HistoryChanged(false, false)
}

// CanUndo reports whether an undo is available
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo is available
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

func (h *History) signal() {
	h.notifier.ScheduleChanged()
	h.notifier.HistoryChanged(h.CanUndo(), h.CanRedo())
}
