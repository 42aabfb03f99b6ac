// file: internals/features/thesis/topics/service/query_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
)

/* ============================================
   Service: query topik (browse, detail, supervisi)
============================================ */

type QueryService struct {
	DB *gorm.DB
}

func NewQueryService(db *gorm.DB) *QueryService {
	return &QueryService{DB: db}
}

type TopicFilter struct {
	PeriodID      *uuid.UUID
	CategoryID    *uuid.UUID
	MajorID       *uuid.UUID
	TeacherStatus *topicModel.TeacherStatus
	OnlyAvailable bool
	Search        string
	Offset        int
	Limit         int
}

// fillApprovedCounts mengisi TopicApprovedCount (virtual) lewat satu
// query GROUP BY, bukan N query per topik.
func fillApprovedCounts(db *gorm.DB, topics []topicModel.TopicModel) error {
	if len(topics) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(topics))
	for _, t := range topics {
		ids = append(ids, t.TopicID)
	}

	type row struct {
		TopicID uuid.UUID `gorm:"column:topic_id"`
		Count   int       `gorm:"column:count"`
	}
	var rows []row
	err := db.Model(&topicModel.TopicMemberModel{}).
		Select("topic_member_topic_id AS topic_id, COUNT(*) AS count").
		Where("topic_member_topic_id IN ? AND topic_member_status = ?", ids, topicModel.MemberStatusApproved).
		Group("topic_member_topic_id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		counts[r.TopicID] = r.Count
	}
	for i := range topics {
		topics[i].TopicApprovedCount = counts[topics[i].TopicID]
	}
	return nil
}

func (s *QueryService) ListTopics(f TopicFilter) ([]topicModel.TopicModel, int64, error) {
	q := s.DB.Model(&topicModel.TopicModel{}).
		Where("topic_is_active = true")

	if f.PeriodID != nil {
		q = q.Where("topic_registration_period_id = ?", *f.PeriodID)
	}
	if f.CategoryID != nil {
		q = q.Where("topic_category_id = ?", *f.CategoryID)
	}
	if f.MajorID != nil {
		q = q.Where("topic_major_id = ?", *f.MajorID)
	}
	if f.TeacherStatus != nil {
		q = q.Where("topic_teacher_status = ?", *f.TeacherStatus)
	}
	if f.Search != "" {
		q = q.Where("topic_title ILIKE ?", "%"+f.Search+"%")
	}
	if f.OnlyAvailable {
		q = q.Where("topic_teacher_status = ?", topicModel.TeacherStatusApproved).
			Where("topic_is_completed = false").
			Where(`topic_max_members > (
				SELECT COUNT(*) FROM topic_members tm
				WHERE tm.topic_member_topic_id = topics.topic_id
				  AND tm.topic_member_status = 'approved'
			)`)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung topik")
	}

	var topics []topicModel.TopicModel
	if err := q.Order("topic_created_at desc").
		Offset(f.Offset).Limit(f.Limit).
		Find(&topics).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil topik")
	}
	if err := fillApprovedCounts(s.DB, topics); err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung anggota")
	}
	return topics, total, nil
}

// Detail + anggota (preload)
func (s *QueryService) GetTopicDetail(id uuid.UUID) (*topicModel.TopicModel, error) {
	var topic topicModel.TopicModel
	err := s.DB.
		Preload("TopicMembers").
		First(&topic, "topic_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Topik tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil topik")
	}
	for _, m := range topic.TopicMembers {
		if m.IsApproved() {
			topic.TopicApprovedCount++
		}
	}
	return &topic, nil
}

// Topik yang dibimbing dosen
func (s *QueryService) ListSupervised(teacherID uuid.UUID, offset, limit int) ([]topicModel.TopicModel, int64, error) {
	q := s.DB.Model(&topicModel.TopicModel{}).
		Where("topic_instructor_id = ?", teacherID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung topik")
	}

	var topics []topicModel.TopicModel
	if err := q.Order("topic_created_at desc").
		Offset(offset).Limit(limit).
		Find(&topics).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil topik")
	}
	if err := fillApprovedCounts(s.DB, topics); err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung anggota")
	}
	return topics, total, nil
}

// Pendaftaran pending di semua topik yang dibimbing dosen
func (s *QueryService) ListPendingRegistrations(teacherID uuid.UUID) ([]topicModel.TopicMemberModel, error) {
	var members []topicModel.TopicMemberModel
	err := s.DB.
		Joins("JOIN topics ON topics.topic_id = topic_members.topic_member_topic_id").
		Where("topics.topic_instructor_id = ?", teacherID).
		Where("topic_members.topic_member_status = ?", topicModel.MemberStatusPending).
		Where("topics.topic_deleted_at IS NULL").
		Order("topic_members.topic_member_joined_at asc").
		Find(&members).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}
	return members, nil
}
