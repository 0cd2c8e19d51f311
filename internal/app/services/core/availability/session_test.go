package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditSessionUndoRedo(t *testing.T) {
	t.Run("Undo Restores The Previous Value", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())
		before := session.Current()

		_, err := session.AddTimeSlot(Monday, "09:00", "10:00")
		require.NoError(t, err, "add should succeed")
		require.Len(t, session.Current().TimeSlots, 1, "the working copy should hold the slot")

		require.True(t, session.Undo(), "undo should report a step taken")
		assert.Equal(t, before.TimeSlots, session.Current().TimeSlots, "undo should restore the prior slots")
	})

	t.Run("Redo Reapplies The Undone Step", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		slot, err := session.AddTimeSlot(Monday, "09:00", "10:00")
		require.NoError(t, err, "add should succeed")
		after := session.Current()

		require.True(t, session.Undo(), "undo should step back")
		require.True(t, session.Redo(), "redo should step forward")
		assert.Equal(t, after.TimeSlots, session.Current().TimeSlots, "redo should restore the added slot")
		assert.True(t, HasSlot(session.Current(), slot.ID), "the slot should be back")
	})

	t.Run("Nothing To Undo Or Redo", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		assert.False(t, session.Undo(), "a fresh session has nothing to undo")
		assert.False(t, session.Redo(), "a fresh session has nothing to redo")
		assert.False(t, session.CanUndo(), "undo availability should match")
		assert.False(t, session.CanRedo(), "redo availability should match")
	})

	t.Run("New Edit Clears The Redo Stack", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		_, err := session.AddTimeSlot(Monday, "09:00", "10:00")
		require.NoError(t, err, "first add should succeed")
		require.True(t, session.Undo(), "undo should step back")
		require.True(t, session.CanRedo(), "the undone step should be redoable")

		_, err = session.AddTimeSlot(Tuesday, "14:00", "15:00")
		require.NoError(t, err, "branching add should succeed")
		assert.False(t, session.CanRedo(), "a new edit should discard the redo branch")
	})

	t.Run("Failed Add Burns No Step", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		_, err := session.AddTimeSlot(Monday, "10:00", "09:00")

		require.Error(t, err, "a reversed window should fail")
		assert.False(t, session.CanUndo(), "a rejected edit should not enter history")
	})

	t.Run("No-Op Mutations Burn No Step", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		session.RemoveTimeSlot("missing")
		session.ToggleSlotActive("missing", false)

		assert.False(t, session.CanUndo(), "no-ops should not enter history")
	})

	t.Run("Remove And Toggle Are Undoable", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		slot, err := session.AddTimeSlot(Monday, "09:00", "10:00")
		require.NoError(t, err, "add should succeed")

		session.ToggleSlotActive(slot.ID, false)
		require.False(t, session.Current().TimeSlots[0].IsActive, "toggle should land in the working copy")

		session.RemoveTimeSlot(slot.ID)
		require.Empty(t, session.Current().TimeSlots, "remove should land in the working copy")

		require.True(t, session.Undo(), "remove should be undoable")
		assert.False(t, session.Current().TimeSlots[0].IsActive, "undoing the remove should restore the toggled state")

		require.True(t, session.Undo(), "toggle should be undoable")
		assert.True(t, session.Current().TimeSlots[0].IsActive, "undoing the toggle should restore the flag")
	})
}

func TestEditSessionDirty(t *testing.T) {
	t.Run("Fresh Session Is Clean", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		assert.False(t, session.Dirty(), "an untouched session should be clean")
	})

	t.Run("Edit Marks Dirty And Save Clears It", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		_, err := session.AddTimeSlot(Monday, "09:00", "10:00")
		require.NoError(t, err, "add should succeed")
		assert.True(t, session.Dirty(), "an edit should mark the session dirty")

		session.MarkSaved()
		assert.False(t, session.Dirty(), "saving should clear the dirty mark")
	})

	t.Run("Undo Back To Saved Position Is Clean", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		_, err := session.AddTimeSlot(Monday, "09:00", "10:00")
		require.NoError(t, err, "add should succeed")
		session.MarkSaved()

		_, err = session.AddTimeSlot(Tuesday, "14:00", "15:00")
		require.NoError(t, err, "second add should succeed")
		require.True(t, session.Dirty(), "moving past the saved position should be dirty")

		require.True(t, session.Undo(), "undo should step back")
		assert.False(t, session.Dirty(), "returning to the saved position should be clean")
	})

	t.Run("Discarded Saved Branch Stays Dirty", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule())

		_, err := session.AddTimeSlot(Monday, "09:00", "10:00")
		require.NoError(t, err, "first add should succeed")
		session.MarkSaved()

		require.True(t, session.Undo(), "undo should step behind the saved position")
		_, err = session.AddTimeSlot(Wednesday, "08:00", "09:00")
		require.NoError(t, err, "branching add should succeed")

		assert.True(t, session.Dirty(), "the saved position is gone, the session cannot be clean")
		require.True(t, session.Undo(), "undo on the new branch should work")
		assert.True(t, session.Dirty(), "no position on this branch was ever saved")
	})
}

func TestEditSessionIsolation(t *testing.T) {
	t.Run("Current Returns A Copy", func(t *testing.T) {
		session := NewEditSession(fixtureSchedule(
			fixtureSlot("slot-1", Monday, "09:00:00", "10:00:00", true),
		))

		leaked := session.Current()
		leaked.TimeSlots[0].IsActive = false

		assert.True(t, session.Current().TimeSlots[0].IsActive, "mutating a returned value should not reach the session")
	})

	t.Run("Source Schedule Is Copied In", func(t *testing.T) {
		source := fixtureSchedule(fixtureSlot("slot-1", Monday, "09:00:00", "10:00:00", true))
		session := NewEditSession(source)

		source.TimeSlots[0].IsActive = false

		assert.True(t, session.Current().TimeSlots[0].IsActive, "mutating the source should not reach the session")
	})
}
