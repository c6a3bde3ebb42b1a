package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upttanjungkarang_backend/internals/features/manajemen/model"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

func sectionWithImages() model.ManajemenSectionModel {
	withImg := person(0, 0, "A")
	withImg.ManajemenPersonImageURL = "https://cdn/a.webp"
	noImg := person(0, 1, "B")
	withImg2 := person(1, 0, "C")
	withImg2.ManajemenPersonImageURL = "https://cdn/c.webp"

	return model.ManajemenSectionModel{
		AssistantImageURL: "https://cdn/assistant.webp",
		Persons:           []model.ManajemenPersonModel{withImg, noImg, withImg2},
	}
}

func TestSectionImageURLs_OnePerNonEmptyImage(t *testing.T) {
	urls := SectionImageURLs(sectionWithImages())
	assert.Equal(t, []string{
		"https://cdn/assistant.webp",
		"https://cdn/a.webp",
		"https://cdn/c.webp",
	}, urls)
}

func TestSectionImageURLs_NoImages(t *testing.T) {
	sec := model.ManajemenSectionModel{
		Persons: []model.ManajemenPersonModel{person(0, 0, "A")},
	}
	assert.Empty(t, SectionImageURLs(sec))
}

func TestDeleteSectionImages_DeletesEveryURL(t *testing.T) {
	var deleted []string
	media := &helperOSS.MockMediaService{
		DeleteByPublicURLFn: func(ctx context.Context, publicURL string) error {
			deleted = append(deleted, publicURL)
			return nil
		},
	}

	require.NoError(t, DeleteSectionImages(context.Background(), media, sectionWithImages()))
	assert.Equal(t, []string{
		"https://cdn/assistant.webp",
		"https://cdn/a.webp",
		"https://cdn/c.webp",
	}, deleted)
}

func TestDeleteSectionImages_StopsAtFirstError(t *testing.T) {
	calls := 0
	media := &helperOSS.MockMediaService{
		DeleteByPublicURLFn: func(ctx context.Context, publicURL string) error {
			calls++
			if calls == 2 {
				return errors.New("upstream down")
			}
			return nil
		},
	}

	err := DeleteSectionImages(context.Background(), media, sectionWithImages())
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}
