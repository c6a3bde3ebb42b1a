package service

import (
	"context"

	"upttanjungkarang_backend/internals/features/manajemen/model"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

// SectionImageURLs mengumpulkan semua URL gambar milik section:
// gambar assistant plus gambar tiap person yang terisi.
func SectionImageURLs(m model.ManajemenSectionModel) []string {
	urls := make([]string, 0, len(m.Persons)+1)
	if m.AssistantImageURL != "" {
		urls = append(urls, m.AssistantImageURL)
	}
	for _, p := range m.Persons {
		if p.ManajemenPersonImageURL != "" {
			urls = append(urls, p.ManajemenPersonImageURL)
		}
	}
	return urls
}

// DeleteSectionImages menghapus seluruh gambar section dari media store,
// satu delete per URL non-kosong. Berhenti di error pertama supaya caller
// bisa abort sebelum menyentuh DB.
func DeleteSectionImages(ctx context.Context, media helperOSS.MediaService, m model.ManajemenSectionModel) error {
	for _, u := range SectionImageURLs(m) {
		if err := media.DeleteByPublicURL(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
