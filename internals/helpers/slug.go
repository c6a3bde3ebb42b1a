package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var reDash = regexp.MustCompile(`-+`)

// SlugOptions menentukan cara cek keunikan slug di DB.
type SlugOptions struct {
	// Nama tabel di DB, contoh: "kegiatan"
	Table string
	// Nama kolom untuk slug, contoh: "kegiatan_slug"
	SlugColumn string

	// Filter tambahan untuk memastikan unik dalam suatu scope.
	// Misal: map[string]any{"gardu_ultg": "tarahan"}
	Filters map[string]any

	// Kolom + nilai PK yang diabaikan saat update (row milik sendiri).
	ExcludeColumn string
	ExcludeID     any

	// Panjang maksimal slug (termasuk suffix -2, -3, dst).
	MaxLen int

	// Base fallback jika input base kosong setelah dinormalisasi.
	DefaultBase string
}

// GenerateSlug menormalkan string menjadi slug:
// - lower-case, strip diakritik (é → e)
// - spasi & non-alnum jadi "-"
// - collapse "-" beruntun, trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diakritik
	var stripped []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		stripped = append(stripped, r)
	}
	s = string(stripped)

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	return reDash.ReplaceAllString(out, "-")
}

func cutToLen(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

// isTaken mengecek apakah slug candidate sudah ada (case-insensitive),
// dengan memperhitungkan Filters dan ExcludeID.
func isTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}

	q := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate)

	for k, v := range opts.Filters {
		q = q.Where(fmt.Sprintf("%s = ?", k), v)
	}
	if opts.ExcludeColumn != "" && opts.ExcludeID != nil {
		q = q.Where(fmt.Sprintf("%s <> ?", opts.ExcludeColumn), opts.ExcludeID)
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug membuat slug unik berbasis "base" (atau DefaultBase bila kosong),
// unik secara case-insensitive dalam scope Filters, mengabaikan row ExcludeID sendiri.
//
// Algoritma:
// 1) Coba base dulu.
// 2) Jika bentrok, coba base-2, base-3, ... sampai ketemu.
func GenerateUniqueSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	base = strings.TrimSpace(base)
	if base == "" {
		base = opts.DefaultBase
	}
	base = GenerateSlug(base)
	if base == "" {
		base = GenerateSlug(opts.DefaultBase)
		if base == "" {
			base = "item"
		}
	}
	if len(base) > maxLen {
		base = cutToLen(base, maxLen)
		if base == "" {
			base = "item"
		}
	}

	taken, err := isTaken(db, opts, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; i < 10000; i++ {
		suf := fmt.Sprintf("-%d", i)
		candidate := base

		if len(candidate)+len(suf) > maxLen {
			cut := maxLen - len(suf)
			if cut < 1 {
				cut = 1
			}
			candidate = cutToLen(candidate, cut)
			if candidate == "" {
				candidate = "item"
			}
		}
		candidate = candidate + suf

		taken, err = isTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("failed to generate unique slug after many attempts")
}
