package helper

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/png;base64,AAAA"))
	assert.True(t, IsDataURI("  data:image/jpeg;base64,AAAA"))
	assert.False(t, IsDataURI("https://cdn.example.com/x.webp"))
	assert.False(t, IsDataURI("data:text/plain;base64,AAAA"))
	assert.False(t, IsDataURI(""))
}

func TestDecodeDataURI(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	raw, mime, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, payload, raw)
	assert.Equal(t, "image/png", mime)
}

func TestDecodeDataURI_Invalid(t *testing.T) {
	_, _, err := DecodeDataURI("https://cdn/x.webp")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png;base64")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png;base64,%%%")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png;base64,")
	assert.Error(t, err)
}

func TestExtractKeyFromPublicURL(t *testing.T) {
	key, err := ExtractKeyFromPublicURL("https://bucket.oss-ap-southeast-5.aliyuncs.com/uploads/gardu/tarahan/gi-a1b2.webp")
	require.NoError(t, err)
	assert.Equal(t, "uploads/gardu/tarahan/gi-a1b2.webp", key)

	_, err = ExtractKeyFromPublicURL("https://bucket.oss-ap-southeast-5.aliyuncs.com/")
	assert.Error(t, err)
}

func TestSafePart(t *testing.T) {
	assert.Equal(t, "gardu/tarahan", safePart("Gardu/Tarahan"))
	assert.Equal(t, "gi-150-kv", safePart("GI 150 kV"))
	assert.Equal(t, "file", safePart("???"))
}

func TestJoinParts(t *testing.T) {
	assert.Equal(t, "uploads/kegiatan/x.webp", joinParts("uploads/", "/kegiatan", "x.webp"))
	assert.Equal(t, "x.webp", joinParts("", "x.webp"))
}

func TestIsNotFound_MatchesWrappedServiceError(t *testing.T) {
	missing := oss.ServiceError{StatusCode: 404, Code: "NoSuchKey"}

	assert.True(t, isNotFound(missing))
	assert.True(t, isNotFound(fmt.Errorf("hapus object: %w", missing)))

	assert.False(t, isNotFound(oss.ServiceError{StatusCode: 403, Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("timeout")))
	assert.False(t, isNotFound(nil))
}

func TestUploadTracker_RecordsAndCleans(t *testing.T) {
	var deleted []string
	media := &MockMediaService{
		UploadDataURIFn: func(ctx context.Context, dataURI, dir, nameHint string) (string, error) {
			return "https://cdn/" + nameHint + ".webp", nil
		},
		DeleteByPublicURLFn: func(ctx context.Context, publicURL string) error {
			deleted = append(deleted, publicURL)
			return nil
		},
	}

	tracker := NewUploadTracker(media)
	ctx := context.Background()

	_, err := tracker.Upload(ctx, "data:image/png;base64,AA==", "d", "a")
	require.NoError(t, err)
	_, err = tracker.Upload(ctx, "data:image/png;base64,AA==", "d", "b")
	require.NoError(t, err)
	require.Len(t, tracker.Uploaded(), 2)

	tracker.CleanupOrphans(ctx)
	assert.Equal(t, []string{"https://cdn/a.webp", "https://cdn/b.webp"}, deleted)
	assert.Empty(t, tracker.Uploaded())
}

func TestUploadTracker_FailedUploadNotRecorded(t *testing.T) {
	media := &MockMediaService{
		UploadDataURIFn: func(ctx context.Context, dataURI, dir, nameHint string) (string, error) {
			return "", errors.New("upstream down")
		},
	}

	tracker := NewUploadTracker(media)
	_, err := tracker.Upload(context.Background(), "data:image/png;base64,AA==", "d", "a")
	assert.Error(t, err)
	assert.Empty(t, tracker.Uploaded())
}

func TestUploadTracker_CleanupContinuesOnError(t *testing.T) {
	calls := 0
	media := &MockMediaService{
		UploadDataURIFn: func(ctx context.Context, dataURI, dir, nameHint string) (string, error) {
			return "https://cdn/" + nameHint + ".webp", nil
		},
		DeleteByPublicURLFn: func(ctx context.Context, publicURL string) error {
			calls++
			if calls == 1 {
				return errors.New("transient")
			}
			return nil
		},
	}

	tracker := NewUploadTracker(media)
	ctx := context.Background()
	_, _ = tracker.Upload(ctx, "data:image/png;base64,AA==", "d", "a")
	_, _ = tracker.Upload(ctx, "data:image/png;base64,AA==", "d", "b")

	tracker.CleanupOrphans(ctx)
	assert.Equal(t, 2, calls)
}
