package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
)

func proposedTopic(creator uuid.UUID, instructor *uuid.UUID) topicModel.TopicModel {
	return topicModel.TopicModel{
		TopicID:            uuid.New(),
		TopicCreatedBy:     creator,
		TopicInstructorID:  instructor,
		TopicMaxMembers:    3,
		TopicTeacherStatus: topicModel.TeacherStatusPending,
		TopicLeaderStatus:  topicModel.LeaderStatusPending,
		TopicIsActive:      true,
	}
}

/* ============================================
   Keputusan dosen atas topik
============================================ */

func TestPlanTopicDecisionApprove(t *testing.T) {
	creator := uuid.New()
	teacher := uuid.New()

	// Dosen menyetujui topik: baris anggota pembuat ikut di-approve
	// dan status ketua dipromosikan dalam satu rencana
	topic := proposedTopic(creator, &teacher)
	plan, err := PlanTopicDecision(&topic, teacher, topicModel.TeacherStatusApproved)
	require.NoError(t, err)
	assert.True(t, plan.AutoAcceptCreator)
	assert.True(t, plan.PromoteLeader)
	assert.False(t, plan.ClaimInstructor)
}

func TestPlanTopicDecisionRejectAndRevision(t *testing.T) {
	creator := uuid.New()
	teacher := uuid.New()

	for _, target := range []topicModel.TeacherStatus{
		topicModel.TeacherStatusRejected,
		topicModel.TeacherStatusNeedRevision,
	} {
		topic := proposedTopic(creator, &teacher)
		plan, err := PlanTopicDecision(&topic, teacher, target)
		require.NoError(t, err)
		assert.False(t, plan.AutoAcceptCreator, "hanya approve yang mengikutsertakan pembuat")
		assert.False(t, plan.PromoteLeader)
	}
}

func TestPlanTopicDecisionClaimsInstructorlessTopic(t *testing.T) {
	topic := proposedTopic(uuid.New(), nil)
	plan, err := PlanTopicDecision(&topic, uuid.New(), topicModel.TeacherStatusApproved)
	require.NoError(t, err)
	assert.True(t, plan.ClaimInstructor)
}

func TestPlanTopicDecisionGuards(t *testing.T) {
	creator := uuid.New()
	teacher := uuid.New()

	// bukan pembimbing
	topic := proposedTopic(creator, &teacher)
	_, err := PlanTopicDecision(&topic, uuid.New(), topicModel.TeacherStatusApproved)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	// status terminal tidak bisa diputuskan ulang
	for _, from := range []topicModel.TeacherStatus{
		topicModel.TeacherStatusApproved,
		topicModel.TeacherStatusRejected,
	} {
		tp := proposedTopic(creator, &teacher)
		tp.TopicTeacherStatus = from
		_, err := PlanTopicDecision(&tp, teacher, topicModel.TeacherStatusApproved)
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	}
}

/* ============================================
   Approve pendaftaran mahasiswa (di bawah lock)
============================================ */

func pendingMember() topicModel.TopicMemberModel {
	return topicModel.TopicMemberModel{
		TopicMemberID:        uuid.New(),
		TopicMemberTopicID:   uuid.New(),
		TopicMemberStudentID: uuid.New(),
		TopicMemberStatus:    topicModel.MemberStatusPending,
	}
}

func approvableTopic() topicModel.TopicModel {
	return topicModel.TopicModel{
		TopicID:            uuid.New(),
		TopicMaxMembers:    2,
		TopicTeacherStatus: topicModel.TeacherStatusApproved,
		TopicLeaderStatus:  topicModel.LeaderStatusPending,
		TopicIsActive:      true,
	}
}

func TestPlanMemberApprovalFirstApprovalPromotesLeader(t *testing.T) {
	topic := approvableTopic()
	member := pendingMember()

	plan, err := PlanMemberApproval(&topic, &member, 0)
	require.NoError(t, err)
	assert.False(t, plan.AlreadyApproved)
	assert.True(t, plan.PromoteLeader)

	// persetujuan berikutnya: ketua sudah approved, tidak dipromosikan lagi
	topic.TopicLeaderStatus = topicModel.LeaderStatusApproved
	plan, err = PlanMemberApproval(&topic, &member, 1)
	require.NoError(t, err)
	assert.False(t, plan.PromoteLeader)
}

func TestPlanMemberApprovalCapacityRecheck(t *testing.T) {
	// Hitungan di bawah lock yang menentukan, bukan snapshot awal:
	// slot terakhir sudah terisi transaksi lain → ditolak penuh
	topic := approvableTopic()
	member := pendingMember()

	_, err := PlanMemberApproval(&topic, &member, int64(topic.TopicMaxMembers))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	assert.Equal(t, "Topik sudah penuh", err.(*fiber.Error).Message)
}

func TestPlanMemberApprovalIdempotent(t *testing.T) {
	topic := approvableTopic()
	member := pendingMember()
	member.TopicMemberStatus = topicModel.MemberStatusApproved

	// approve ulang anggota yang sudah approved = no-op, bukan error
	plan, err := PlanMemberApproval(&topic, &member, 1)
	require.NoError(t, err)
	assert.True(t, plan.AlreadyApproved)
	assert.False(t, plan.PromoteLeader)
}

func TestPlanMemberApprovalRejectedMember(t *testing.T) {
	topic := approvableTopic()
	member := pendingMember()
	member.TopicMemberStatus = topicModel.MemberStatusRejected

	_, err := PlanMemberApproval(&topic, &member, 0)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestPlanMemberApprovalInactiveOrCompletedTopic(t *testing.T) {
	member := pendingMember()

	inactive := approvableTopic()
	inactive.TopicIsActive = false
	_, err := PlanMemberApproval(&inactive, &member, 0)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	completed := approvableTopic()
	completed.TopicIsCompleted = true
	_, err = PlanMemberApproval(&completed, &member, 0)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

/* ============================================
   Klasifikasi error insert & pairing
============================================ */

func TestClassifyMemberInsertError(t *testing.T) {
	dup := classifyMemberInsertError(gorm.ErrDuplicatedKey)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, dup))

	// error storage lain tidak boleh menyamar jadi duplikat
	other := classifyMemberInsertError(errors.New("connection reset"))
	assert.Equal(t, fiber.StatusInternalServerError, fiberCode(t, other))
}

func TestPairStudentRegistrationsSkipsDeletedTopics(t *testing.T) {
	studentID := uuid.New()
	alive := topicModel.TopicModel{TopicID: uuid.New(), TopicTitle: "Topik Masih Ada Dan Aktif"}

	memberAlive := topicModel.TopicMemberModel{
		TopicMemberTopicID:   alive.TopicID,
		TopicMemberStudentID: studentID,
		TopicMemberStatus:    topicModel.MemberStatusPending,
	}
	memberOrphan := topicModel.TopicMemberModel{
		TopicMemberTopicID:   uuid.New(), // topiknya sudah soft-deleted, tidak ikut hasil query
		TopicMemberStudentID: studentID,
		TopicMemberStatus:    topicModel.MemberStatusPending,
	}

	out := pairStudentRegistrations(
		[]topicModel.TopicMemberModel{memberAlive, memberOrphan},
		[]topicModel.TopicModel{alive},
	)

	require.Len(t, out, 1)
	assert.Equal(t, alive.TopicID, out[0].Topic.TopicID)
	assert.Equal(t, alive.TopicID, out[0].Member.TopicMemberTopicID)
}
