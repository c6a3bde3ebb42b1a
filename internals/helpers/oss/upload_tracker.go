package helper

import (
	"context"
	"log"
)

// UploadTracker mencatat semua upload yang terjadi dalam satu request.
// Kalau transaksi DB setelahnya gagal, object yang sudah ter-upload menjadi
// yatim; CleanupOrphans menghapusnya best-effort (log-and-continue, tanpa retry).
type UploadTracker struct {
	media    MediaService
	uploaded []string
}

func NewUploadTracker(media MediaService) *UploadTracker {
	return &UploadTracker{media: media}
}

// Upload meneruskan ke MediaService dan mencatat URL hasilnya.
func (t *UploadTracker) Upload(ctx context.Context, dataURI, dir, nameHint string) (string, error) {
	url, err := t.media.UploadDataURI(ctx, dataURI, dir, nameHint)
	if err != nil {
		return "", err
	}
	t.uploaded = append(t.uploaded, url)
	return url, nil
}

// Uploaded mengembalikan daftar URL yang ter-upload sepanjang request ini.
func (t *UploadTracker) Uploaded() []string {
	return t.uploaded
}

// CleanupOrphans menghapus semua upload request ini. Dipanggil hanya saat
// transaksi DB gagal; kegagalan hapus cukup dicatat.
func (t *UploadTracker) CleanupOrphans(ctx context.Context) {
	for _, url := range t.uploaded {
		if err := t.media.DeleteByPublicURL(ctx, url); err != nil {
			log.Printf("[WARN] gagal bersihkan upload yatim %s: %v", url, err)
		}
	}
	t.uploaded = nil
}
