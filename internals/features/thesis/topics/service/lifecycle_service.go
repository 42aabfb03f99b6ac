// file: internals/features/thesis/topics/service/lifecycle_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "skripsiku_backend/internals/features/home/notifications/model"
	notifService "skripsiku_backend/internals/features/home/notifications/service"
	"skripsiku_backend/internals/features/thesis/topics/dto"
	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
)

/* ============================================
   Service: lifecycle topik (update / delete / complete)
============================================ */

type LifecycleService struct {
	DB *gorm.DB
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{DB: db}
}

// Update oleh pembuat selama topik belum diputuskan (pending / need_revision),
// atau oleh dosen pembimbingnya kapan saja sebelum selesai.
// Revisi yang diedit pembuat kembali masuk antrian review (need_revision -> pending).
func (s *LifecycleService) Update(callerID, topicID uuid.UUID, in *dto.TopicUpdateDTO) (*topicModel.TopicModel, error) {
	var topic topicModel.TopicModel
	if err := s.DB.First(&topic, "topic_id = ?", topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Topik tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil topik")
	}

	isCreator := topic.TopicCreatedBy == callerID
	isInstructor := topic.TopicInstructorID != nil && *topic.TopicInstructorID == callerID
	if !isCreator && !isInstructor {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak mengubah topik ini")
	}
	if topic.TopicIsCompleted {
		return nil, fiber.NewError(fiber.StatusConflict, "Topik yang sudah selesai tidak bisa diubah")
	}
	if isCreator && !isInstructor {
		switch topic.TopicTeacherStatus {
		case topicModel.TeacherStatusPending, topicModel.TeacherStatusNeedRevision:
			// boleh
		default:
			return nil, fiber.NewError(fiber.StatusConflict,
				"Topik yang sudah diputuskan dosen tidak bisa diubah pembuatnya")
		}
	}

	if in.TopicTitle != nil {
		topic.TopicTitle = *in.TopicTitle
	}
	if in.TopicDescription != nil {
		topic.TopicDescription = *in.TopicDescription
	}
	if in.TopicCategoryID != nil {
		if id, e := uuid.Parse(*in.TopicCategoryID); e == nil {
			topic.TopicCategoryID = &id
		}
	}
	if in.TopicMaxMembers != nil {
		topic.TopicMaxMembers = *in.TopicMaxMembers
	}
	if in.TopicAdvisorRequestText != nil {
		topic.TopicAdvisorRequestText = in.TopicAdvisorRequestText
	}

	// Edit setelah diminta revisi = pengajuan ulang
	if isCreator && topic.TopicTeacherStatus == topicModel.TeacherStatusNeedRevision &&
		topic.TopicTeacherStatus.CanTransition(topicModel.TeacherStatusPending) {
		topic.TopicTeacherStatus = topicModel.TeacherStatusPending
	}

	if err := s.DB.Save(&topic).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan topik")
	}
	return &topic, nil
}

// SoftDelete oleh pembuat, hanya selama belum ada anggota approved.
func (s *LifecycleService) SoftDelete(callerID, topicID uuid.UUID) error {
	var topic topicModel.TopicModel
	if err := s.DB.First(&topic, "topic_id = ?", topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Topik tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil topik")
	}
	if topic.TopicCreatedBy != callerID {
		return fiber.NewError(fiber.StatusForbidden, "Hanya pembuat topik yang bisa menghapusnya")
	}

	approved, err := countApprovedMembers(s.DB, topicID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung anggota")
	}
	if err := CheckDeletableTopic(approved); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&topicModel.TopicModel{}).
			Where("topic_id = ?", topicID).
			Update("topic_is_active", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menonaktifkan topik")
		}
		if err := tx.Delete(&topicModel.TopicModel{}, "topic_id = ?", topicID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus topik")
		}
		// Keanggotaan pending/rejected ikut dibersihkan
		if err := tx.
			Where("topic_member_topic_id = ?", topicID).
			Delete(&topicModel.TopicMemberModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membersihkan keanggotaan")
		}
		return nil
	})
}

// MarkCompleted oleh dosen pembimbing; anggota approved diberi tahu.
func (s *LifecycleService) MarkCompleted(teacherID, topicID uuid.UUID) (*topicModel.TopicModel, error) {
	var topic topicModel.TopicModel
	if err := s.DB.First(&topic, "topic_id = ?", topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Topik tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil topik")
	}
	if err := requireInstructor(&topic, teacherID); err != nil {
		return nil, err
	}
	if topic.TopicTeacherStatus != topicModel.TeacherStatusApproved {
		return nil, fiber.NewError(fiber.StatusConflict, "Hanya topik yang disetujui yang bisa ditandai selesai")
	}
	if topic.TopicIsCompleted {
		return &topic, nil // no-op
	}

	if err := s.DB.Model(&topic).Update("topic_is_completed", true).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan topik")
	}
	topic.TopicIsCompleted = true

	var members []topicModel.TopicMemberModel
	if err := s.DB.
		Where("topic_member_topic_id = ? AND topic_member_status = ?", topicID, topicModel.MemberStatusApproved).
		Find(&members).Error; err == nil {
		ids := make([]uuid.UUID, 0, len(members))
		for _, m := range members {
			ids = append(ids, m.TopicMemberStudentID)
		}
		notifService.DispatchMany(s.DB, ids, notifService.DispatchInput{
			Title:   "Topik selesai",
			Message: "Topik \"" + topic.TopicTitle + "\" ditandai selesai oleh dosen pembimbing",
			Type:    notifModel.NotificationTypeInfo,
			Tags:    []string{"topic", "completed"},
			Data:    map[string]any{"topic_id": topicID.String()},
		})
	}

	return &topic, nil
}
