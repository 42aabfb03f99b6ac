// file: internals/features/thesis/topics/service/rules.go
package service

import (
	"github.com/gofiber/fiber/v2"

	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
)

/* ============================================
   Aturan precondition (pure, tanpa DB)

   Urutan pemanggilan di service = urutan pengecekan;
   error pertama yang ditemukan langsung dikembalikan,
   tanpa mutasi apa pun.
============================================ */

// Kuota simultan per mahasiswa: pending + approved di semua topik.
func CheckRegistrationQuota(activeMemberships int64, maxTopicsPerStudent int) error {
	if maxTopicsPerStudent < 1 {
		maxTopicsPerStudent = 1
	}
	if activeMemberships >= int64(maxTopicsPerStudent) {
		return fiber.NewError(fiber.StatusConflict,
			"Kuota pendaftaran topik Anda sudah penuh. Batalkan pendaftaran lain terlebih dahulu")
	}
	return nil
}

// Topik harus bisa menerima pendaftar: aktif, belum selesai,
// sudah disetujui dosen, dan masih ada slot.
func CheckTopicAcceptsRegistration(topic *topicModel.TopicModel) error {
	if !topic.TopicIsActive || topic.TopicDeletedAt.Valid {
		return fiber.NewError(fiber.StatusConflict, "Topik sudah tidak aktif")
	}
	if topic.TopicIsCompleted {
		return fiber.NewError(fiber.StatusConflict, "Topik sudah diselesaikan")
	}
	if topic.TopicTeacherStatus != topicModel.TeacherStatusApproved {
		return fiber.NewError(fiber.StatusConflict, "Topik belum disetujui dosen, belum bisa menerima pendaftar")
	}
	if topic.IsFull() {
		return fiber.NewError(fiber.StatusConflict, "Topik sudah penuh")
	}
	return nil
}

// Satu mahasiswa satu keanggotaan per topik; pesan dibedakan per status.
func CheckDuplicateMembership(existing *topicModel.TopicMemberModel) error {
	if existing == nil {
		return nil
	}
	switch existing.TopicMemberStatus {
	case topicModel.MemberStatusPending:
		return fiber.NewError(fiber.StatusConflict,
			"Anda sudah mendaftar di topik ini dan masih menunggu persetujuan dosen")
	case topicModel.MemberStatusApproved:
		return fiber.NewError(fiber.StatusConflict,
			"Anda sudah menjadi anggota topik ini")
	case topicModel.MemberStatusRejected:
		return fiber.NewError(fiber.StatusConflict,
			"Pendaftaran Anda di topik ini pernah ditolak. Batalkan dulu pendaftaran lama untuk mendaftar ulang")
	}
	return nil
}

// Keanggotaan approved tidak bisa dibatalkan sendiri.
func CheckCancelable(m *topicModel.TopicMemberModel) error {
	if m.TopicMemberStatus == topicModel.MemberStatusApproved {
		return fiber.NewError(fiber.StatusConflict,
			"Pendaftaran yang sudah disetujui tidak bisa dibatalkan sendiri. Hubungi dosen pembimbing Anda")
	}
	return nil
}

// Soft delete topik hanya boleh selama belum ada anggota approved.
func CheckDeletableTopic(approvedCount int64) error {
	if approvedCount > 0 {
		return fiber.NewError(fiber.StatusConflict,
			"Topik tidak bisa dihapus karena sudah memiliki anggota yang disetujui")
	}
	return nil
}
