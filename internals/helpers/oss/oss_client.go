package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // batas lebar (resize keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // kualitas lossy
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		// fallback: coba registry image standar
		img, _, err := image.Decode(bytes.NewReader(all))
		if err != nil {
			return nil, fmt.Errorf("unsupported image type: %s", ct)
		}
		return img, nil
	}
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// EncodeWebP re-encode payload gambar apa pun (jpeg/png/webp) ke WebP lossy
// dengan batas dimensi dari ENV.
func EncodeWebP(raw []byte) ([]byte, error) {
	opt := defaultWebPOptionsFromEnv()
	img, err := decodeImage(raw)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, opt.MaxW, opt.MaxH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: opt.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	client     *oss.Client
	bucket     *oss.Bucket
	bucketName string
	endpoint   string
	prefix     string
	publicBase string
}

// NewOSSServiceFromEnv membaca OSS_ENDPOINT, OSS_ACCESS_KEY_ID,
// OSS_ACCESS_KEY_SECRET, OSS_BUCKET, dan opsional OSS_PUBLIC_BASE_URL (CDN).
// prefix opsional (contoh: "uploads").
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	return &OSSService{
		client:     client,
		bucket:     bucket,
		bucketName: bucketName,
		endpoint:   endpoint,
		prefix:     strings.Trim(prefix, "/"),
		publicBase: strings.TrimRight(getEnv("OSS_PUBLIC_BASE_URL"), "/"),
	}, nil
}

// UploadImageBytes re-encode payload ke WebP lalu simpan ke
// {prefix}/{dir}/{nameHint}-{rand}.webp dan kembalikan URL publiknya.
// ctx diterima demi keseragaman facade; SDK OSS tidak memakainya.
func (s *OSSService) UploadImageBytes(ctx context.Context, dir, nameHint string, raw []byte) (string, error) {
	_ = ctx

	encoded, err := EncodeWebP(raw)
	if err != nil {
		return "", err
	}

	key := joinParts(s.prefix, safePart(dir), fmt.Sprintf("%s-%s.webp", safePart(nameHint), randHex(4)))
	opts := []oss.Option{
		oss.ContentType("image/webp"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.bucket.PutObject(key, bytes.NewReader(encoded), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) PublicURL(key string) string {
	if s.publicBase != "" {
		return s.publicBase + "/" + key
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, s.endpoint, key)
}

// ExtractKeyFromPublicURL mengambil object key dari URL publik.
func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return "", err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("URL tidak mengandung object key: %s", publicURL)
	}
	return key, nil
}

// DeleteByPublicURL menghapus object berdasarkan URL publiknya.
// Object yang sudah tidak ada dianggap sukses.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	_ = ctx

	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	if err := s.bucket.DeleteObject(key); err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

func isNotFound(err error) bool {
	var svcErr oss.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.StatusCode == 404 || svcErr.Code == "NoSuchKey"
	}
	return false
}

func randHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "00000000"[:n*2]
	}
	return hex.EncodeToString(b)
}

// safePart membersihkan komponen path object key.
func safePart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == '/':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-/")
	if out == "" {
		out = "file"
	}
	return out
}

func joinParts(parts ...string) string {
	var cleaned []string
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "/")
}
