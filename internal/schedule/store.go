package schedule

import "strings"

// DayRecord holds the ordered list of assignments for a single
// (employee, date) key. Insertion order is display order.
type DayRecord struct {
	Shifts []Assignment `json:"shifts"`
}

// Persister is the durable-storage sink invoked synchronously after every
// mutating store operation.
type Persister interface {
	PersistAssignments(snapshot map[string]DayRecord) error
}

// Key builds the composite store key for an employee and a canonical
// YYYY-MM-DD date string.
func Key(employeeID, date string) string {
	return employeeID + "-" + date
}

// Store is the assignment store: a mapping from (employee, date) keys to day
// records. A day record with an empty assignment list never persists as an
// entry, so emptiness is unambiguous. The store is not safe for concurrent
// use; callers serialize access (the schedule service holds a mutex).
type Store struct {
	days      map[string]*DayRecord
	persister Persister
}

// NewStore creates an empty assignment store backed by the given persister
func NewStore(persister Persister) *Store {
	return &Store{
		days:      make(map[string]*DayRecord),
		persister: persister,
	}
}

// Load replaces the store contents with a previously persisted snapshot.
// It does not write back to the persister.
func (s *Store) Load(snapshot map[string]DayRecord) {
	s.days = make(map[string]*DayRecord, len(snapshot))
	for key, rec := range snapshot {
		if len(rec.Shifts) == 0 {
			continue
		}
		shifts := make([]Assignment, len(rec.Shifts))
		copy(shifts, rec.Shifts)
		s.days[key] = &DayRecord{Shifts: shifts}
	}
}

// Get returns the assignments for an employee on a date, in store order.
// The returned slice is a copy; reads never mutate and callers never alias
// internal state. An absent key yields an empty list.
func (s *Store) Get(employeeID, date string) []Assignment {
	rec, ok := s.days[Key(employeeID, date)]
	if !ok {
		return []Assignment{}
	}
	out := make([]Assignment, len(rec.Shifts))
	copy(out, rec.Shifts)
	return out
}

// Upsert inserts or replaces an assignment in the employee's day record. An
// existing assignment with the same id is replaced in place, preserving its
// list position; otherwise the assignment is appended.
func (s *Store) Upsert(employeeID, date string, a Assignment) error {
	key := Key(employeeID, date)
	rec, ok := s.days[key]
	if !ok {
		rec = &DayRecord{}
		s.days[key] = rec
	}
	replaced := false
	for i := range rec.Shifts {
		if rec.Shifts[i].AssignmentID == a.AssignmentID {
			rec.Shifts[i] = a
			replaced = true
			break
		}
	}
	if !replaced {
		rec.Shifts = append(rec.Shifts, a)
	}
	return s.persist()
}

// Remove deletes the assignment with the given id from the employee's day
// record. When the resulting list is empty the day record itself is deleted.
// Returns false without persisting when no matching assignment exists.
func (s *Store) Remove(employeeID, date, assignmentID string) (bool, error) {
	key := Key(employeeID, date)
	rec, ok := s.days[key]
	if !ok {
		return false, nil
	}
	idx := -1
	for i := range rec.Shifts {
		if rec.Shifts[i].AssignmentID == assignmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	rec.Shifts = append(rec.Shifts[:idx], rec.Shifts[idx+1:]...)
	if len(rec.Shifts) == 0 {
		delete(s.days, key)
	}
	return true, s.persist()
}

// MoveOrCopy relocates or clones an assignment between (employee, date)
// cells. A move keeps the original assignment id; a copy inserts a clone
// under newAssignmentID and leaves the source untouched. A move onto the
// same key is a no-op. Returns false when the source assignment no longer
// exists, leaving the store unchanged.
func (s *Store) MoveOrCopy(fromEmployeeID, fromDate, assignmentID, toEmployeeID, toDate, newAssignmentID string, isCopy bool) (bool, error) {
	fromKey := Key(fromEmployeeID, fromDate)
	rec, ok := s.days[fromKey]
	if !ok {
		return false, nil
	}
	var source *Assignment
	idx := -1
	for i := range rec.Shifts {
		if rec.Shifts[i].AssignmentID == assignmentID {
			source = &rec.Shifts[i]
			idx = i
			break
		}
	}
	if source == nil {
		return false, nil
	}

	if isCopy {
		return true, s.Upsert(toEmployeeID, toDate, source.Clone(newAssignmentID))
	}

	if fromKey == Key(toEmployeeID, toDate) {
		return true, nil
	}

	moved := *source
	rec.Shifts = append(rec.Shifts[:idx], rec.Shifts[idx+1:]...)
	if len(rec.Shifts) == 0 {
		delete(s.days, fromKey)
	}
	return true, s.Upsert(toEmployeeID, toDate, moved)
}

// RemoveEmployee deletes every day record keyed to the given employee. Used
// when an employee is deleted and their assignments cascade away.
func (s *Store) RemoveEmployee(employeeID string) error {
	prefix := employeeID + "-"
	removed := false
	for key := range s.days {
		if strings.HasPrefix(key, prefix) {
			delete(s.days, key)
			removed = true
		}
	}
	if !removed {
		return nil
	}
	return s.persist()
}

// Snapshot returns a deep copy of the store contents in the persisted shape
func (s *Store) Snapshot() map[string]DayRecord {
	out := make(map[string]DayRecord, len(s.days))
	for key, rec := range s.days {
		shifts := make([]Assignment, len(rec.Shifts))
		copy(shifts, rec.Shifts)
		out[key] = DayRecord{Shifts: shifts}
	}
	return out
}

func (s *Store) persist() error {
	if s.persister == nil {
		return nil
	}
	return s.persister.PersistAssignments(s.Snapshot())
}
