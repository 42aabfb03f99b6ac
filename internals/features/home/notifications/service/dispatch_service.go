// file: internals/features/home/notifications/service/dispatch_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bytedance/sonic"

	notifModel "skripsiku_backend/internals/features/home/notifications/model"
)

/* ============================================
   Dispatch (fire-and-forget)

   Notifikasi bukan bagian dari transaksi utama:
   dipanggil SETELAH commit, error hanya di-log.
============================================ */

type DispatchInput struct {
	UserID  uuid.UUID
	Title   string
	Message string
	Type    int
	Tags    []string
	Data    map[string]any
}

// Dispatch menyimpan satu notifikasi. Tidak pernah mengembalikan error
// ke pemanggil; kegagalan insert tidak boleh menggagalkan workflow utama.
func Dispatch(db *gorm.DB, in DispatchInput) {
	n := notifModel.NotificationModel{
		NotificationUserID:  in.UserID,
		NotificationTitle:   in.Title,
		NotificationMessage: in.Message,
		NotificationType:    in.Type,
	}
	if in.Type == 0 {
		n.NotificationType = notifModel.NotificationTypeInfo
	}
	if len(in.Tags) > 0 {
		n.NotificationTags = pq.StringArray(in.Tags)
	}
	if len(in.Data) > 0 {
		raw, err := sonic.Marshal(in.Data)
		if err != nil {
			log.Printf("[WARN] gagal serialize data notifikasi user=%s: %v", in.UserID, err)
		} else {
			n.NotificationData = datatypes.JSON(raw)
		}
	}

	if err := db.Create(&n).Error; err != nil {
		log.Printf("[WARN] gagal kirim notifikasi user=%s title=%q: %v", in.UserID, in.Title, err)
	}
}

// DispatchMany mengirim notifikasi yang sama ke banyak user (mis. semua
// anggota topik). Tetap fire-and-forget per baris.
func DispatchMany(db *gorm.DB, userIDs []uuid.UUID, in DispatchInput) {
	for _, id := range userIDs {
		in.UserID = id
		Dispatch(db, in)
	}
}
