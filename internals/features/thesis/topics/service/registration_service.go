// file: internals/features/thesis/topics/service/registration_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	periodModel "skripsiku_backend/internals/features/academics/registration_periods/model"
	notifModel "skripsiku_backend/internals/features/home/notifications/model"
	notifService "skripsiku_backend/internals/features/home/notifications/service"
	"skripsiku_backend/internals/features/thesis/topics/dto"
	topicModel "skripsiku_backend/internals/features/thesis/topics/model"
	userModel "skripsiku_backend/internals/features/users/user/model"
)

/* ============================================
   Service: pengajuan & pendaftaran topik (mahasiswa)
============================================ */

type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

func (s *RegistrationService) loadStudent(id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := s.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Mahasiswa tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data mahasiswa")
	}
	if !u.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda sedang nonaktif")
	}
	return &u, nil
}

// Keanggotaan aktif (pending+approved) mahasiswa di semua topik,
// untuk pengecekan kuota.
func (s *RegistrationService) countActiveMemberships(tx *gorm.DB, studentID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&topicModel.TopicMemberModel{}).
		Where("topic_member_student_id = ?", studentID).
		Where("topic_member_status IN ?", []topicModel.MemberStatus{
			topicModel.MemberStatusPending, topicModel.MemberStatusApproved,
		}).
		Count(&n).Error
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pendaftaran")
	}
	return n, nil
}

func countApprovedMembers(tx *gorm.DB, topicID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&topicModel.TopicMemberModel{}).
		Where("topic_member_topic_id = ? AND topic_member_status = ?", topicID, topicModel.MemberStatusApproved).
		Count(&n).Error
	return n, err
}

/* ============================================
   Propose: mahasiswa mengajukan topik baru
============================================ */

func (s *RegistrationService) Propose(studentID uuid.UUID, in *dto.TopicProposeDTO) (*topicModel.TopicModel, error) {
	student, err := s.loadStudent(studentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	period, errPeriod := periodModel.FindOpenPeriod(s.DB, now)
	if errPeriod != nil {
		if errors.Is(errPeriod, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Tidak ada periode pendaftaran yang sedang dibuka")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil periode pendaftaran")
	}
	if !period.CanPropose(now) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Pengajuan topik sedang tidak dibuka pada periode ini")
	}

	// Pengajuan ikut memakai kuota: topik baru = satu keanggotaan pending
	active, err := s.countActiveMemberships(s.DB, studentID)
	if err != nil {
		return nil, err
	}
	if err := CheckRegistrationQuota(active, period.RegistrationPeriodMaxTopicsPerStudent); err != nil {
		return nil, err
	}

	maxMembers := 1
	if in.TopicMaxMembers != nil {
		maxMembers = *in.TopicMaxMembers
	}
	if maxMembers > period.RegistrationPeriodMaxMembersPerTopic {
		maxMembers = period.RegistrationPeriodMaxMembersPerTopic
	}

	topic := topicModel.TopicModel{
		TopicTitle:                in.TopicTitle,
		TopicDescription:          in.TopicDescription,
		TopicMajorID:              student.MajorID, // prodi disalin dari profil, bukan dari request
		TopicRegistrationPeriodID: period.RegistrationPeriodID,
		TopicCreatedBy:            studentID,
		TopicCreatorRole:          student.Role,
		TopicMaxMembers:           maxMembers,
		TopicTeacherStatus:        topicModel.TeacherStatusPending,
		TopicLeaderStatus:         topicModel.LeaderStatusPending,
		TopicAdvisorRequestText:   in.TopicAdvisorRequestText,
		TopicIsActive:             true,
	}
	if in.TopicCategoryID != nil {
		if id, e := uuid.Parse(*in.TopicCategoryID); e == nil {
			topic.TopicCategoryID = &id
		}
	}
	if in.TopicInstructorID != nil {
		if id, e := uuid.Parse(*in.TopicInstructorID); e == nil {
			topic.TopicInstructorID = &id
		}
	}

	// Topik + baris anggota pembuat dalam satu transaksi
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&topic).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan topik")
		}
		member := topicModel.TopicMemberModel{
			TopicMemberTopicID:   topic.TopicID,
			TopicMemberStudentID: studentID,
			TopicMemberStatus:    topicModel.MemberStatusPending,
			TopicMemberIsLeader:  true,
		}
		if err := tx.Create(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keanggotaan")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Notifikasi ke calon dosen pembimbing — setelah commit, best effort
	if topic.TopicInstructorID != nil {
		notifService.Dispatch(s.DB, notifService.DispatchInput{
			UserID:  *topic.TopicInstructorID,
			Title:   "Pengajuan topik baru",
			Message: "Mahasiswa " + student.FullName + " mengajukan topik: " + topic.TopicTitle,
			Type:    notifModel.NotificationTypeTopicNewProposal,
			Tags:    []string{"topic", "proposal"},
			Data: map[string]any{
				"topic_id":   topic.TopicID.String(),
				"student_id": studentID.String(),
			},
		})
	}

	return &topic, nil
}

/* ============================================
   Register: mahasiswa mendaftar ke topik yang ada

   Urutan pengecekan tetap; slot dicek ulang di dalam
   transaksi dengan lock baris topik supaya dua
   pendaftar terakhir tidak lolos bersamaan.
============================================ */

func (s *RegistrationService) Register(studentID, topicID uuid.UUID) (*topicModel.TopicMemberModel, error) {
	student, err := s.loadStudent(studentID)
	if err != nil {
		return nil, err
	}

	// 1. Periode
	now := time.Now()
	period, errPeriod := periodModel.FindOpenPeriod(s.DB, now)
	if errPeriod != nil {
		if errors.Is(errPeriod, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Tidak ada periode pendaftaran yang sedang dibuka")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil periode pendaftaran")
	}
	if !period.CanRegister(now, student.MajorID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Pendaftaran topik sedang tidak dibuka untuk prodi Anda")
	}

	// 2. Kuota
	active, err := s.countActiveMemberships(s.DB, studentID)
	if err != nil {
		return nil, err
	}
	if err := CheckRegistrationQuota(active, period.RegistrationPeriodMaxTopicsPerStudent); err != nil {
		return nil, err
	}

	// 3. Topik
	var topic topicModel.TopicModel
	if err := s.DB.First(&topic, "topic_id = ?", topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Topik tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil topik")
	}
	approved, err := countApprovedMembers(s.DB, topicID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung anggota")
	}
	topic.TopicApprovedCount = int(approved)
	if err := CheckTopicAcceptsRegistration(&topic); err != nil {
		return nil, err
	}

	// 4. Duplikat
	var existing topicModel.TopicMemberModel
	errDup := s.DB.
		Where("topic_member_topic_id = ? AND topic_member_student_id = ?", topicID, studentID).
		First(&existing).Error
	if errDup == nil {
		return nil, CheckDuplicateMembership(&existing)
	}
	if !errors.Is(errDup, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan")
	}

	// 5. Insert dengan re-check slot di bawah lock
	member := topicModel.TopicMemberModel{
		TopicMemberTopicID:   topicID,
		TopicMemberStudentID: studentID,
		TopicMemberStatus:    topicModel.MemberStatusPending,
	}
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var locked topicModel.TopicModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "topic_id = ?", topicID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengunci topik")
		}
		n, err := countApprovedMembers(tx, topicID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung anggota")
		}
		locked.TopicApprovedCount = int(n)
		if err := CheckTopicAcceptsRegistration(&locked); err != nil {
			return err
		}
		if err := tx.Create(&member).Error; err != nil {
			// Unique index (topic_id, student_id) jadi penjaga terakhir duplikat;
			// error storage lain tidak boleh menyamar jadi 409
			return classifyMemberInsertError(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if topic.TopicInstructorID != nil {
		notifService.Dispatch(s.DB, notifService.DispatchInput{
			UserID:  *topic.TopicInstructorID,
			Title:   "Pendaftar baru di topik Anda",
			Message: "Mahasiswa " + student.FullName + " mendaftar ke topik: " + topic.TopicTitle,
			Type:    notifModel.NotificationTypeNewRegistration,
			Tags:    []string{"topic", "registration"},
			Data: map[string]any{
				"topic_id":   topicID.String(),
				"student_id": studentID.String(),
			},
		})
	}

	return &member, nil
}

/* ============================================
   Cancel: mahasiswa membatalkan pendaftarannya
============================================ */

func (s *RegistrationService) Cancel(studentID, topicID uuid.UUID) error {
	var member topicModel.TopicMemberModel
	err := s.DB.
		Where("topic_member_topic_id = ? AND topic_member_student_id = ?", topicID, studentID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Anda tidak terdaftar di topik ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan")
	}

	if err := CheckCancelable(&member); err != nil {
		return err
	}

	// pending & rejected sama-sama dihapus; baris rejected tidak disimpan
	if err := s.DB.Delete(&member).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan pendaftaran")
	}
	return nil
}

/* ============================================
   Query: pendaftaran milik mahasiswa
============================================ */

type StudentRegistration struct {
	Member topicModel.TopicMemberModel `json:"member"`
	Topic  topicModel.TopicModel       `json:"topic"`
}

func (s *RegistrationService) ListStudentRegistrations(studentID uuid.UUID) ([]StudentRegistration, error) {
	var members []topicModel.TopicMemberModel
	if err := s.DB.
		Where("topic_member_student_id = ?", studentID).
		Order("topic_member_joined_at desc").
		Find(&members).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}
	if len(members) == 0 {
		return []StudentRegistration{}, nil
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.TopicMemberTopicID)
	}
	var topics []topicModel.TopicModel
	if err := s.DB.Where("topic_id IN ?", ids).Find(&topics).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil topik")
	}

	// Keanggotaan yatim (topiknya sudah dihapus) tidak ikut ditampilkan
	return pairStudentRegistrations(members, topics), nil
}
