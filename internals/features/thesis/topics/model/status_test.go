package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeacherStatusTransitions(t *testing.T) {
	tests := []struct {
		from TeacherStatus
		to   TeacherStatus
		want bool
	}{
		{TeacherStatusPending, TeacherStatusApproved, true},
		{TeacherStatusPending, TeacherStatusRejected, true},
		{TeacherStatusPending, TeacherStatusNeedRevision, true},
		{TeacherStatusNeedRevision, TeacherStatusPending, true},

		// terminal: tidak boleh diputuskan ulang
		{TeacherStatusApproved, TeacherStatusApproved, false},
		{TeacherStatusApproved, TeacherStatusRejected, false},
		{TeacherStatusApproved, TeacherStatusPending, false},
		{TeacherStatusRejected, TeacherStatusApproved, false},
		{TeacherStatusRejected, TeacherStatusPending, false},
		{TeacherStatusNeedRevision, TeacherStatusApproved, false},
		{TeacherStatusPending, TeacherStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestLeaderStatusTransitions(t *testing.T) {
	assert.True(t, LeaderStatusPending.CanTransition(LeaderStatusApproved))
	assert.False(t, LeaderStatusApproved.CanTransition(LeaderStatusPending))
	assert.False(t, LeaderStatusApproved.CanTransition(LeaderStatusApproved))
	assert.False(t, LeaderStatusPending.CanTransition(LeaderStatusPending))
}

func TestMemberStatusTransitions(t *testing.T) {
	tests := []struct {
		from MemberStatus
		to   MemberStatus
		want bool
	}{
		{MemberStatusPending, MemberStatusApproved, true},
		{MemberStatusPending, MemberStatusRejected, true},
		{MemberStatusApproved, MemberStatusRejected, false},
		{MemberStatusApproved, MemberStatusPending, false},
		{MemberStatusRejected, MemberStatusApproved, false},
		{MemberStatusRejected, MemberStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, TeacherStatusNeedRevision.IsValid())
	assert.False(t, TeacherStatus("cancelled").IsValid())
	assert.True(t, LeaderStatusPending.IsValid())
	assert.False(t, LeaderStatus("rejected").IsValid())
	assert.True(t, MemberStatusRejected.IsValid())
	assert.False(t, MemberStatus("").IsValid())
}
