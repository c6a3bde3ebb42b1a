package helper

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
MediaService adalah facade upload/hapus gambar yang seragam untuk controller.

Kontrak di sisi wire (ikut konvensi frontend):
- string berawalan "data:image/" = upload baru (payload base64)
- string lain yang tidak kosong   = URL existing, pass-through
- null eksplisit                  = hapus gambar lama
*/

type MediaService interface {
	// UploadDataURI menerima payload "data:image/...;base64,..." dan
	// mengembalikan URL publik hasil upload.
	UploadDataURI(ctx context.Context, dataURI, dir, nameHint string) (string, error)
	// DeleteByPublicURL menghapus object berdasarkan URL publiknya.
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// IsDataURI menilai apakah nilai wire adalah payload upload baru.
func IsDataURI(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "data:image/")
}

// DecodeDataURI membongkar "data:image/png;base64,AAAA..." menjadi bytes + mime.
func DecodeDataURI(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	if !IsDataURI(s) {
		return nil, "", errors.New("bukan data-URI gambar")
	}
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return nil, "", errors.New("data-URI tidak valid: tanpa pemisah koma")
	}
	meta, payload := s[len("data:"):comma], s[comma+1:]

	mime := meta
	if semi := strings.IndexByte(meta, ';'); semi >= 0 {
		mime = meta[:semi]
		if !strings.Contains(meta[semi:], "base64") {
			return nil, "", errors.New("data-URI tidak valid: bukan base64")
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("gagal decode base64: %w", err)
	}
	if len(raw) == 0 {
		return nil, "", errors.New("payload gambar kosong")
	}
	return raw, mime, nil
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS
// --------------------------------------------------

type OSSMediaService struct {
	svc *OSSService
}

// NewOSSMediaServiceFromEnv membuat instance dari ENV. prefix opsional.
func NewOSSMediaServiceFromEnv(prefix string) (*OSSMediaService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSMediaService{svc: s}, nil
}

func (m *OSSMediaService) UploadDataURI(ctx context.Context, dataURI, dir, nameHint string) (string, error) {
	raw, _, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Payload gambar tidak valid: "+err.Error())
	}
	url, err := m.svc.UploadImageBytes(ctx, dir, nameHint, raw)
	if err != nil {
		log.Printf("[ERROR] upload OSS gagal dir=%s: %v", dir, err)
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload gambar ke media store")
	}
	return url, nil
}

func (m *OSSMediaService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return nil
	}
	if err := m.svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		log.Printf("[ERROR] hapus object OSS gagal url=%s: %v", publicURL, err)
		return fiber.NewError(fiber.StatusBadGateway, "Gagal hapus gambar di media store")
	}
	return nil
}

// --------------------------------------------------
// Mock untuk unit test
// --------------------------------------------------

type MockMediaService struct {
	UploadDataURIFn     func(ctx context.Context, dataURI, dir, nameHint string) (string, error)
	DeleteByPublicURLFn func(ctx context.Context, publicURL string) error
}

func (m *MockMediaService) UploadDataURI(ctx context.Context, dataURI, dir, nameHint string) (string, error) {
	if m.UploadDataURIFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadDataURIFn(ctx, dataURI, dir, nameHint)
}

func (m *MockMediaService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if m.DeleteByPublicURLFn == nil {
		return errors.New("not implemented")
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}
