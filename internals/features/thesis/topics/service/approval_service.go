// file: internals/features/thesis/topics/service/approval_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	notifModel "skripsiku_backend/internals/features/home/notifications/model"
	notifService "skripsiku_backend/internals/features/home/notifications/service"
	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
	userModel "skripsiku_backend/internals/features/users/user/model"
)

/* ============================================
   Service: keputusan dosen (anggota & topik)
============================================ */

type ApprovalService struct {
	DB *gorm.DB
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{DB: db}
}

func (s *ApprovalService) loadTopic(id uuid.UUID) (*topicModel.TopicModel, error) {
	var t topicModel.TopicModel
	if err := s.DB.First(&t, "topic_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Topik tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil topik")
	}
	return &t, nil
}

// Pemanggil harus dosen pembimbing topik tsb.
func requireInstructor(topic *topicModel.TopicModel, teacherID uuid.UUID) error {
	if topic.TopicInstructorID == nil || *topic.TopicInstructorID != teacherID {
		return fiber.NewError(fiber.StatusForbidden, "Anda bukan dosen pembimbing topik ini")
	}
	return nil
}

/* ============================================
   Approve / Reject pendaftaran mahasiswa
============================================ */

// ApproveMember: flip member → approved + promosi leader-status + isi
// current_topic_id mahasiswa, SEMUA dalam satu transaksi dengan lock
// baris topik (kapasitas dihitung ulang di bawah lock).
// Approve ulang anggota yang sudah approved = no-op.
func (s *ApprovalService) ApproveMember(teacherID, studentID, topicID uuid.UUID, feedback *string) (*topicModel.TopicMemberModel, error) {
	topic, err := s.loadTopic(topicID)
	if err != nil {
		return nil, err
	}
	if err := requireInstructor(topic, teacherID); err != nil {
		return nil, err
	}

	var member topicModel.TopicMemberModel
	alreadyApproved := false

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var locked topicModel.TopicModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "topic_id = ?", topicID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengunci topik")
		}

		if err := tx.
			Where("topic_member_topic_id = ? AND topic_member_student_id = ?", topicID, studentID).
			First(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Mahasiswa tidak terdaftar di topik ini")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil keanggotaan")
		}

		approved, err := countApprovedMembers(tx, topicID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung anggota")
		}
		plan, err := PlanMemberApproval(&locked, &member, approved)
		if err != nil {
			return err
		}
		if plan.AlreadyApproved {
			alreadyApproved = true
			return nil
		}

		member.TopicMemberStatus = topicModel.MemberStatusApproved
		member.TopicMemberFeedback = feedback
		if err := tx.Save(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keanggotaan")
		}

		if plan.PromoteLeader {
			if err := tx.Model(&topicModel.TopicModel{}).
				Where("topic_id = ?", topicID).
				Update("topic_leader_status", topicModel.LeaderStatusApproved).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui topik")
			}
		}

		// current_topic_id hanya diisi kalau masih kosong
		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ? AND current_topic_id IS NULL", studentID).
			Update("current_topic_id", topicID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui data mahasiswa")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if !alreadyApproved {
		notifService.Dispatch(s.DB, notifService.DispatchInput{
			UserID:  studentID,
			Title:   "Pendaftaran topik disetujui",
			Message: "Pendaftaran Anda di topik \"" + topic.TopicTitle + "\" disetujui dosen pembimbing",
			Type:    notifModel.NotificationTypeMemberDecision,
			Tags:    []string{"topic", "registration", "approved"},
			Data:    map[string]any{"topic_id": topicID.String()},
		})
	}
	return &member, nil
}

func (s *ApprovalService) RejectMember(teacherID, studentID, topicID uuid.UUID, feedback *string) (*topicModel.TopicMemberModel, error) {
	topic, err := s.loadTopic(topicID)
	if err != nil {
		return nil, err
	}
	if err := requireInstructor(topic, teacherID); err != nil {
		return nil, err
	}

	var member topicModel.TopicMemberModel
	if err := s.DB.
		Where("topic_member_topic_id = ? AND topic_member_student_id = ?", topicID, studentID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Mahasiswa tidak terdaftar di topik ini")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil keanggotaan")
	}

	if !member.TopicMemberStatus.CanTransition(topicModel.MemberStatusRejected) {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Pendaftaran berstatus "+string(member.TopicMemberStatus)+" tidak bisa ditolak")
	}

	member.TopicMemberStatus = topicModel.MemberStatusRejected
	member.TopicMemberFeedback = feedback
	if err := s.DB.Save(&member).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keanggotaan")
	}

	notifService.Dispatch(s.DB, notifService.DispatchInput{
		UserID:  studentID,
		Title:   "Pendaftaran topik ditolak",
		Message: "Pendaftaran Anda di topik \"" + topic.TopicTitle + "\" ditolak dosen pembimbing",
		Type:    notifModel.NotificationTypeMemberDecision,
		Tags:    []string{"topic", "registration", "rejected"},
		Data:    map[string]any{"topic_id": topicID.String()},
	})
	return &member, nil
}

/* ============================================
   Remove: dosen mengeluarkan mahasiswa dari topik
============================================ */

// Berlaku untuk status apa pun; baris keanggotaan dihapus dan
// current_topic_id mahasiswa dikosongkan kalau menunjuk topik ini.
func (s *ApprovalService) RemoveStudent(teacherID, studentID, topicID uuid.UUID, reason *string) error {
	topic, err := s.loadTopic(topicID)
	if err != nil {
		return err
	}
	if err := requireInstructor(topic, teacherID); err != nil {
		return err
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("topic_member_topic_id = ? AND topic_member_student_id = ?", topicID, studentID).
			Delete(&topicModel.TopicMemberModel{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus keanggotaan")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Mahasiswa tidak terdaftar di topik ini")
		}

		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ? AND current_topic_id = ?", studentID, topicID).
			Update("current_topic_id", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui data mahasiswa")
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	msg := "Anda dikeluarkan dari topik \"" + topic.TopicTitle + "\""
	if reason != nil && *reason != "" {
		msg += ". Alasan: " + *reason
	}
	notifService.Dispatch(s.DB, notifService.DispatchInput{
		UserID:  studentID,
		Title:   "Dikeluarkan dari topik",
		Message: msg,
		Type:    notifModel.NotificationTypeMemberRemoved,
		Tags:    []string{"topic", "member", "removed"},
		Data:    map[string]any{"topic_id": topicID.String()},
	})
	return nil
}

/* ============================================
   Keputusan dosen atas topik yang diajukan
============================================ */

// DecideTopic memproses approved / rejected / need_revision.
// Transisi dicek lewat tabel; status terminal tidak bisa diputuskan ulang.
// Saat approve: baris anggota pembuat ikut di-approve dan leader-status
// dipromosikan dalam transaksi yang sama.
func (s *ApprovalService) DecideTopic(teacherID, topicID uuid.UUID, target topicModel.TeacherStatus, feedback *string) (*topicModel.TopicModel, error) {
	topic, err := s.loadTopic(topicID)
	if err != nil {
		return nil, err
	}

	// Topik yang sudah punya pembimbing hanya boleh diputuskan pembimbingnya;
	// topik tanpa pembimbing diambil alih oleh dosen yang memutuskan.
	plan, err := PlanTopicDecision(topic, teacherID, target)
	if err != nil {
		return nil, err
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"topic_teacher_status": target,
			"topic_teacher_notes":  feedback,
		}
		if plan.ClaimInstructor {
			updates["topic_instructor_id"] = teacherID
		}
		if plan.PromoteLeader {
			updates["topic_leader_status"] = topicModel.LeaderStatusApproved
		}

		if plan.AutoAcceptCreator {
			// Auto-accept baris anggota si pembuat
			res := tx.Model(&topicModel.TopicMemberModel{}).
				Where("topic_member_topic_id = ? AND topic_member_student_id = ? AND topic_member_status = ?",
					topicID, topic.TopicCreatedBy, topicModel.MemberStatusPending).
				Update("topic_member_status", topicModel.MemberStatusApproved)
			if res.Error != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui keanggotaan")
			}

			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ? AND current_topic_id IS NULL", topic.TopicCreatedBy).
				Update("current_topic_id", topicID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui data mahasiswa")
			}
		}

		if err := tx.Model(&topicModel.TopicModel{}).
			Where("topic_id = ?", topicID).
			Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keputusan")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	var title, message string
	switch target {
	case topicModel.TeacherStatusApproved:
		title = "Topik disetujui"
		message = "Topik \"" + topic.TopicTitle + "\" disetujui dosen pembimbing"
	case topicModel.TeacherStatusRejected:
		title = "Topik ditolak"
		message = "Topik \"" + topic.TopicTitle + "\" ditolak dosen pembimbing"
	case topicModel.TeacherStatusNeedRevision:
		title = "Topik perlu revisi"
		message = "Topik \"" + topic.TopicTitle + "\" perlu direvisi sebelum bisa disetujui"
	}
	if feedback != nil && *feedback != "" {
		message += ". Catatan: " + *feedback
	}
	notifService.Dispatch(s.DB, notifService.DispatchInput{
		UserID:  topic.TopicCreatedBy,
		Title:   title,
		Message: message,
		Type:    notifModel.NotificationTypeTopicDecision,
		Tags:    []string{"topic", "decision", string(target)},
		Data:    map[string]any{"topic_id": topicID.String()},
	})

	return s.loadTopic(topicID)
}
