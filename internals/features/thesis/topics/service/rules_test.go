package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
)

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestCheckRegistrationQuota(t *testing.T) {
	assert.NoError(t, CheckRegistrationQuota(0, 1))
	assert.NoError(t, CheckRegistrationQuota(2, 3))

	assert.Equal(t, fiber.StatusConflict, fiberCode(t, CheckRegistrationQuota(1, 1)))
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, CheckRegistrationQuota(3, 3)))
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, CheckRegistrationQuota(5, 3)))

	// max < 1 dinormalisasi ke 1
	assert.NoError(t, CheckRegistrationQuota(0, 0))
	assert.Error(t, CheckRegistrationQuota(1, 0))
}

func openTopic(maxMembers, approved int) topicModel.TopicModel {
	return topicModel.TopicModel{
		TopicIsActive:      true,
		TopicTeacherStatus: topicModel.TeacherStatusApproved,
		TopicMaxMembers:    maxMembers,
		TopicApprovedCount: approved,
	}
}

func TestCheckTopicAcceptsRegistration(t *testing.T) {
	topic := openTopic(3, 1)
	assert.NoError(t, CheckTopicAcceptsRegistration(&topic))

	inactive := openTopic(3, 1)
	inactive.TopicIsActive = false
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, CheckTopicAcceptsRegistration(&inactive)))

	completed := openTopic(3, 1)
	completed.TopicIsCompleted = true
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, CheckTopicAcceptsRegistration(&completed)))

	pending := openTopic(3, 1)
	pending.TopicTeacherStatus = topicModel.TeacherStatusPending
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, CheckTopicAcceptsRegistration(&pending)))

	full := openTopic(2, 2)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, CheckTopicAcceptsRegistration(&full)))
	assert.Equal(t, "Topik sudah penuh", CheckTopicAcceptsRegistration(&full).(*fiber.Error).Message)
}

func TestCheckDuplicateMembership(t *testing.T) {
	assert.NoError(t, CheckDuplicateMembership(nil))

	pending := &topicModel.TopicMemberModel{TopicMemberStatus: topicModel.MemberStatusPending}
	approved := &topicModel.TopicMemberModel{TopicMemberStatus: topicModel.MemberStatusApproved}
	rejected := &topicModel.TopicMemberModel{TopicMemberStatus: topicModel.MemberStatusRejected}

	errPending := CheckDuplicateMembership(pending)
	errApproved := CheckDuplicateMembership(approved)
	errRejected := CheckDuplicateMembership(rejected)

	assert.Equal(t, fiber.StatusConflict, fiberCode(t, errPending))
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, errApproved))
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, errRejected))

	// pesan harus membedakan pending vs approved
	assert.NotEqual(t,
		errPending.(*fiber.Error).Message,
		errApproved.(*fiber.Error).Message)
}

func TestCheckCancelable(t *testing.T) {
	pending := &topicModel.TopicMemberModel{TopicMemberStatus: topicModel.MemberStatusPending}
	rejected := &topicModel.TopicMemberModel{TopicMemberStatus: topicModel.MemberStatusRejected}
	approved := &topicModel.TopicMemberModel{TopicMemberStatus: topicModel.MemberStatusApproved}

	assert.NoError(t, CheckCancelable(pending))
	assert.NoError(t, CheckCancelable(rejected))
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, CheckCancelable(approved)))
}

func TestCheckDeletableTopic(t *testing.T) {
	assert.NoError(t, CheckDeletableTopic(0))
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, CheckDeletableTopic(1)))
}
