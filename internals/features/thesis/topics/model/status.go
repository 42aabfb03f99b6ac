// file: internals/features/thesis/topics/model/status.go
package model

/* ============================================
   Status enums + tabel transisi

   Semua perubahan status lewat CanTransition;
   transisi di luar tabel selalu ditolak, termasuk
   approve ulang dari status terminal.
============================================ */

// Keputusan dosen atas topik
type TeacherStatus string

const (
	TeacherStatusPending      TeacherStatus = "pending"
	TeacherStatusApproved     TeacherStatus = "approved"
	TeacherStatusRejected     TeacherStatus = "rejected"
	TeacherStatusNeedRevision TeacherStatus = "need_revision"
)

var teacherTransitions = map[TeacherStatus][]TeacherStatus{
	TeacherStatusPending:      {TeacherStatusApproved, TeacherStatusRejected, TeacherStatusNeedRevision},
	TeacherStatusNeedRevision: {TeacherStatusPending},
	// approved & rejected: terminal
}

func (s TeacherStatus) IsValid() bool {
	switch s {
	case TeacherStatusPending, TeacherStatusApproved, TeacherStatusRejected, TeacherStatusNeedRevision:
		return true
	}
	return false
}

func (s TeacherStatus) CanTransition(to TeacherStatus) bool {
	for _, next := range teacherTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Status ketua kelompok (pembuat topik)
type LeaderStatus string

const (
	LeaderStatusPending  LeaderStatus = "pending"
	LeaderStatusApproved LeaderStatus = "approved"
)

func (s LeaderStatus) IsValid() bool {
	return s == LeaderStatusPending || s == LeaderStatusApproved
}

// Satu arah saja: pending -> approved
func (s LeaderStatus) CanTransition(to LeaderStatus) bool {
	return s == LeaderStatusPending && to == LeaderStatusApproved
}

// Status keanggotaan mahasiswa di sebuah topik
type MemberStatus string

const (
	MemberStatusPending  MemberStatus = "pending"
	MemberStatusApproved MemberStatus = "approved"
	MemberStatusRejected MemberStatus = "rejected"
)

var memberTransitions = map[MemberStatus][]MemberStatus{
	MemberStatusPending: {MemberStatusApproved, MemberStatusRejected},
	// approved & rejected: terminal (approved hanya bisa dilepas lewat remove oleh dosen)
}

func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusPending, MemberStatusApproved, MemberStatusRejected:
		return true
	}
	return false
}

func (s MemberStatus) CanTransition(to MemberStatus) bool {
	for _, next := range memberTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
