package availability

import "scheduling-core/internal/app/models"

// EditSession is one editor's working copy of a schedule. Every mutation
// goes through the pure reducers, so past values stay intact and undo and
// redo are plain stack moves. The session is not safe for concurrent use;
// it models a single user editing in a single view.
type EditSession struct {
	current    models.Schedule
	undo       []models.Schedule
	redo       []models.Schedule
	steps      int
	savedSteps int
}

func NewEditSession(schedule models.Schedule) *EditSession {
	return &EditSession{current: cloneSchedule(schedule)}
}

// Current returns a copy of the working schedule, so callers cannot
// reach back into the session's history.
func (s *EditSession) Current() models.Schedule {
	return cloneSchedule(s.current)
}

func (s *EditSession) AddTimeSlot(day DayOfWeek, startTime, endTime string) (models.TimeSlot, error) {
	next, slot, err := AddTimeSlot(s.current, day, startTime, endTime)
	if err != nil {
		return models.TimeSlot{}, err
	}
	s.push(next)
	return slot, nil
}

// RemoveTimeSlot drops the named slot. Unknown ids neither change the
// schedule nor burn an undo step.
func (s *EditSession) RemoveTimeSlot(slotID string) {
	if !HasSlot(s.current, slotID) {
		return
	}
	s.push(RemoveTimeSlot(s.current, slotID))
}

// ToggleSlotActive flips the named slot's active flag. Unknown ids are a
// no-op without an undo step.
func (s *EditSession) ToggleSlotActive(slotID string, isActive bool) {
	if !HasSlot(s.current, slotID) {
		return
	}
	s.push(ToggleSlotActive(s.current, slotID, isActive))
}

// Undo steps back one mutation. It reports whether a step was taken.
func (s *EditSession) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	s.redo = append(s.redo, s.current)
	s.current = s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.steps--
	return true
}

// Redo reapplies the last undone mutation. It reports whether a step was
// taken.
func (s *EditSession) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	s.undo = append(s.undo, s.current)
	s.current = s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.steps++
	return true
}

func (s *EditSession) CanUndo() bool {
	return len(s.undo) > 0
}

func (s *EditSession) CanRedo() bool {
	return len(s.redo) > 0
}

// Dirty reports whether the working copy has moved away from the last
// saved position. Undoing back to that position clears it again.
func (s *EditSession) Dirty() bool {
	return s.steps != s.savedSteps
}

// MarkSaved pins the current position as the saved one, typically right
// after the repository accepted the schedule.
func (s *EditSession) MarkSaved() {
	s.savedSteps = s.steps
}

// push records the current value for undo and installs next. A fresh
// mutation invalidates everything on the redo stack, and with it any
// saved position that lived on the discarded branch.
func (s *EditSession) push(next models.Schedule) {
	s.undo = append(s.undo, s.current)
	s.current = next
	if s.savedSteps > s.steps {
		s.savedSteps = -1
	}
	s.redo = nil
	s.steps++
}
