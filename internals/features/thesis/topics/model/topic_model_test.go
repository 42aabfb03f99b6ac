package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableSlots(t *testing.T) {
	tests := []struct {
		name      string
		max       int
		approved  int
		wantSlots int
		wantFull  bool
	}{
		{"kosong", 3, 0, 3, false},
		{"sebagian terisi", 3, 2, 1, false},
		{"penuh", 3, 3, 0, true},
		{"solo penuh", 1, 1, 0, true},
		{"overshoot tidak pernah negatif", 2, 5, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := TopicModel{
				TopicMaxMembers:    tt.max,
				TopicApprovedCount: tt.approved,
			}
			assert.Equal(t, tt.wantSlots, topic.AvailableSlots())
			assert.Equal(t, tt.wantFull, topic.IsFull())
			assert.Equal(t, !tt.wantFull, topic.HasAvailableSlots())
		})
	}
}

func TestIsOpenForRegistration(t *testing.T) {
	base := TopicModel{
		TopicIsActive:      true,
		TopicIsCompleted:   false,
		TopicTeacherStatus: TeacherStatusApproved,
	}
	assert.True(t, base.IsOpenForRegistration())

	inactive := base
	inactive.TopicIsActive = false
	assert.False(t, inactive.IsOpenForRegistration())

	completed := base
	completed.TopicIsCompleted = true
	assert.False(t, completed.IsOpenForRegistration())

	pending := base
	pending.TopicTeacherStatus = TeacherStatusPending
	assert.False(t, pending.IsOpenForRegistration())

	revision := base
	revision.TopicTeacherStatus = TeacherStatusNeedRevision
	assert.False(t, revision.IsOpenForRegistration())
}
