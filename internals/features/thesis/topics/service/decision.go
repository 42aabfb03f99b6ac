// file: internals/features/thesis/topics/service/decision.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
)

/* ============================================
   Rencana keputusan (pure, tanpa DB)

   Service transaksional hanya MENERAPKAN rencana;
   semua logika keputusan dihitung di sini supaya
   bisa diuji tanpa database.
============================================ */

// Hasil evaluasi approve pendaftaran, dihitung di bawah lock baris topik.
type MemberApprovalPlan struct {
	// anggota sudah approved: tidak ada yang perlu diubah,
	// tidak ada notifikasi ulang
	AlreadyApproved bool
	// persetujuan pertama mempromosikan status ketua kelompok
	PromoteLeader bool
}

func PlanMemberApproval(topic *topicModel.TopicModel, member *topicModel.TopicMemberModel, approvedCount int64) (MemberApprovalPlan, error) {
	var plan MemberApprovalPlan

	if !topic.TopicIsActive || topic.TopicDeletedAt.Valid {
		return plan, fiber.NewError(fiber.StatusConflict, "Topik sudah tidak aktif")
	}
	if topic.TopicIsCompleted {
		return plan, fiber.NewError(fiber.StatusConflict, "Topik sudah diselesaikan")
	}

	if member.TopicMemberStatus == topicModel.MemberStatusApproved {
		plan.AlreadyApproved = true
		return plan, nil
	}
	if !member.TopicMemberStatus.CanTransition(topicModel.MemberStatusApproved) {
		return plan, fiber.NewError(fiber.StatusConflict,
			"Pendaftaran berstatus "+string(member.TopicMemberStatus)+" tidak bisa disetujui")
	}

	// Kapasitas dihitung ulang di bawah lock, bukan dari snapshot awal
	if approvedCount >= int64(topic.TopicMaxMembers) {
		return plan, fiber.NewError(fiber.StatusConflict, "Topik sudah penuh")
	}

	plan.PromoteLeader = topic.TopicLeaderStatus.CanTransition(topicModel.LeaderStatusApproved)
	return plan, nil
}

// Hasil evaluasi keputusan dosen atas topik.
type TopicDecisionPlan struct {
	// dosen pertama yang memutuskan topik tanpa pembimbing mengambil alih
	ClaimInstructor bool
	// approve mengikutsertakan baris anggota si pembuat
	AutoAcceptCreator bool
	PromoteLeader     bool
}

func PlanTopicDecision(topic *topicModel.TopicModel, teacherID uuid.UUID, target topicModel.TeacherStatus) (TopicDecisionPlan, error) {
	var plan TopicDecisionPlan

	if topic.TopicInstructorID != nil && *topic.TopicInstructorID != teacherID {
		return plan, fiber.NewError(fiber.StatusForbidden, "Anda bukan dosen pembimbing topik ini")
	}
	if !topic.TopicTeacherStatus.CanTransition(target) {
		return plan, fiber.NewError(fiber.StatusConflict,
			"Status topik tidak dapat diubah dari "+string(topic.TopicTeacherStatus)+" ke "+string(target))
	}

	plan.ClaimInstructor = topic.TopicInstructorID == nil
	if target == topicModel.TeacherStatusApproved {
		plan.AutoAcceptCreator = true
		plan.PromoteLeader = topic.TopicLeaderStatus.CanTransition(topicModel.LeaderStatusApproved)
	}
	return plan, nil
}

/* ============================================
   Klasifikasi error insert keanggotaan
============================================ */

// Pelanggaran unique index (topic_id, student_id) = duplikat pendaftaran;
// error storage lain tetap 500.
func classifyMemberInsertError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fiber.NewError(fiber.StatusConflict, "Anda sudah terdaftar di topik ini")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
}

/* ============================================
   Pairing pendaftaran mahasiswa ↔ topik
============================================ */

// Keanggotaan yang topiknya sudah dihapus (soft delete) tidak ikut
// ditampilkan; jangan pasangkan dengan topik kosong.
func pairStudentRegistrations(members []topicModel.TopicMemberModel, topics []topicModel.TopicModel) []StudentRegistration {
	byID := make(map[uuid.UUID]topicModel.TopicModel, len(topics))
	for _, tp := range topics {
		byID[tp.TopicID] = tp
	}

	out := make([]StudentRegistration, 0, len(members))
	for _, m := range members {
		topic, ok := byID[m.TopicMemberTopicID]
		if !ok {
			continue
		}
		out = append(out, StudentRegistration{Member: m, Topic: topic})
	}
	return out
}
