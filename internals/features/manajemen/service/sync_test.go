package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upttanjungkarang_backend/internals/features/manajemen/dto"
	"upttanjungkarang_backend/internals/features/manajemen/model"
	helper "upttanjungkarang_backend/internals/helpers"
	helperOSS "upttanjungkarang_backend/internals/helpers/oss"
)

func flatWithID(id uuid.UUID, name string, group, idx int) FlatPerson {
	return FlatPerson{ID: &id, Name: name, ContainerGroup: group, PersonIndexInGroup: idx}
}

func TestBuildSyncPlan_UnchangedSubmissionIsAllUpdates(t *testing.T) {
	a := person(0, 0, "A")
	b := person(1, 0, "B")
	existing := []model.ManajemenPersonModel{a, b}

	desired := []FlatPerson{
		flatWithID(a.ManajemenPersonID, "A", 0, 0),
		flatWithID(b.ManajemenPersonID, "B", 1, 0),
	}

	plan := BuildSyncPlan(existing, desired)
	assert.Empty(t, plan.Deletes)
	assert.Empty(t, plan.Creates)
	require.Len(t, plan.Updates, 2)

	// setelah resolusi gambar (absen = pertahankan), semua update no-op
	for _, u := range plan.Updates {
		u.ResolvedImageURL = u.Existing.ManajemenPersonImageURL
		assert.True(t, u.Unchanged())
	}
}

func TestPersonUpdate_UnchangedDetectsNoop(t *testing.T) {
	ex := person(1, 2, "A")
	ex.ManajemenPersonJabatan = "Lead"
	ex.ManajemenPersonImageURL = "https://cdn/a.webp"

	u := PersonUpdate{
		Existing:         ex,
		Desired:          FlatPerson{Name: "A", Jabatan: "Lead", ContainerGroup: 1, PersonIndexInGroup: 2},
		ResolvedImageURL: "https://cdn/a.webp",
	}
	assert.True(t, u.Unchanged())

	moved := u
	moved.Desired.PersonIndexInGroup = 0
	assert.False(t, moved.Unchanged())

	renamed := u
	renamed.Desired.Name = "B"
	assert.False(t, renamed.Unchanged())

	cleared := u
	cleared.ResolvedImageURL = ""
	assert.False(t, cleared.Unchanged())
}

func TestBuildSyncPlan_MissingIDBecomesDelete(t *testing.T) {
	a := person(0, 0, "A")
	b := person(0, 1, "B")

	desired := []FlatPerson{flatWithID(a.ManajemenPersonID, "A", 0, 0)}

	plan := BuildSyncPlan([]model.ManajemenPersonModel{a, b}, desired)
	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, b.ManajemenPersonID, plan.Deletes[0].ManajemenPersonID)
	assert.Len(t, plan.Updates, 1)
	assert.Empty(t, plan.Creates)
}

func TestBuildSyncPlan_NoIDBecomesCreate(t *testing.T) {
	a := person(0, 0, "A")

	desired := []FlatPerson{
		flatWithID(a.ManajemenPersonID, "A", 0, 0),
		{Name: "Baru", ContainerGroup: 0, PersonIndexInGroup: 1},
	}

	plan := BuildSyncPlan([]model.ManajemenPersonModel{a}, desired)
	assert.Empty(t, plan.Deletes)
	require.Len(t, plan.Creates, 1)
	assert.Equal(t, "Baru", plan.Creates[0].Desired.Name)
}

func TestBuildSyncPlan_UnknownIDTreatedAsCreate(t *testing.T) {
	ghost := uuid.New()
	desired := []FlatPerson{flatWithID(ghost, "Ghost", 0, 0)}

	plan := BuildSyncPlan(nil, desired)
	assert.Empty(t, plan.Deletes)
	assert.Empty(t, plan.Updates)
	require.Len(t, plan.Creates, 1)
}

func TestBuildSyncPlan_ReorderKeepsIdentity(t *testing.T) {
	a := person(0, 0, "A")
	b := person(0, 1, "B")

	// tukar posisi, identitas tetap
	desired := []FlatPerson{
		flatWithID(b.ManajemenPersonID, "B", 0, 0),
		flatWithID(a.ManajemenPersonID, "A", 0, 1),
	}

	plan := BuildSyncPlan([]model.ManajemenPersonModel{a, b}, desired)
	assert.Empty(t, plan.Deletes)
	assert.Empty(t, plan.Creates)
	require.Len(t, plan.Updates, 2)
	assert.Equal(t, 0, plan.Updates[0].Desired.PersonIndexInGroup)
	assert.Equal(t, b.ManajemenPersonID, plan.Updates[0].Existing.ManajemenPersonID)
}

// Skenario editor: section "ops" berisi 3 orang di 2 grup, lalu orang
// terakhir dihapus dari submission. Harus tepat satu delete, dua update,
// dan hasil rekonstruksi tetap dua grup.
func TestSyncPlan_RemoveOnePersonFromTwoGroups(t *testing.T) {
	a := person(0, 0, "A")
	b := person(1, 0, "B")
	c := person(1, 1, "C")
	existing := []model.ManajemenPersonModel{a, b, c}

	desired := Flatten([][]dto.PersonInput{
		{{ID: &a.ManajemenPersonID, Name: "A", Jabatan: "Lead"}},
		{{ID: &b.ManajemenPersonID, Name: "B", Jabatan: "Staff"}},
	})

	plan := BuildSyncPlan(existing, desired)
	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, c.ManajemenPersonID, plan.Deletes[0].ManajemenPersonID)
	assert.Empty(t, plan.Creates)
	require.Len(t, plan.Updates, 2)

	// state setelah apply: A dan B dengan posisi baru
	after := []model.ManajemenPersonModel{
		person(0, 0, "A"),
		person(1, 0, "B"),
	}
	nested := ToNested(after)
	require.Len(t, nested, 2)
	assert.Len(t, nested[0], 1)
	require.Len(t, nested[1], 1)
	assert.Equal(t, "B", nested[1][0].Name)
}

// ----------------------------------------------------------------------
// resolveImage: aturan wire absen / data-URI / URL / null
// ----------------------------------------------------------------------

const tinyDataURI = "data:image/png;base64,iVBORw0KGgo="

func newTestSynchronizer(media helperOSS.MediaService) *Synchronizer {
	return &Synchronizer{Media: media}
}

func TestResolveImage_AbsentKeepsOld(t *testing.T) {
	s := newTestSynchronizer(&helperOSS.MockMediaService{})
	tracker := helperOSS.NewUploadTracker(s.Media)

	got, err := s.resolveImage(context.Background(), tracker, helper.NullableString{}, "https://cdn/x.webp", "d", "n")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.webp", got)
}

func TestResolveImage_DataURIDeletesOldThenUploads(t *testing.T) {
	var deleted []string
	media := &helperOSS.MockMediaService{
		UploadDataURIFn: func(ctx context.Context, dataURI, dir, nameHint string) (string, error) {
			return "https://cdn/new.webp", nil
		},
		DeleteByPublicURLFn: func(ctx context.Context, publicURL string) error {
			deleted = append(deleted, publicURL)
			return nil
		},
	}
	s := newTestSynchronizer(media)
	tracker := helperOSS.NewUploadTracker(media)

	in := helper.NullableString{Set: true, Valid: true, Value: tinyDataURI}
	got, err := s.resolveImage(context.Background(), tracker, in, "https://cdn/old.webp", "d", "n")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/new.webp", got)
	assert.Equal(t, []string{"https://cdn/old.webp"}, deleted)
	assert.Equal(t, []string{"https://cdn/new.webp"}, tracker.Uploaded())
}

func TestResolveImage_PlainURLPassesThrough(t *testing.T) {
	s := newTestSynchronizer(&helperOSS.MockMediaService{})
	tracker := helperOSS.NewUploadTracker(s.Media)

	in := helper.NullableString{Set: true, Valid: true, Value: "https://cdn/keep.webp"}
	got, err := s.resolveImage(context.Background(), tracker, in, "https://cdn/old.webp", "d", "n")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/keep.webp", got)
	assert.Empty(t, tracker.Uploaded())
}

func TestResolveImage_ExplicitNullDeletesOldAndClears(t *testing.T) {
	var deleted []string
	media := &helperOSS.MockMediaService{
		DeleteByPublicURLFn: func(ctx context.Context, publicURL string) error {
			deleted = append(deleted, publicURL)
			return nil
		},
	}
	s := newTestSynchronizer(media)
	tracker := helperOSS.NewUploadTracker(media)

	in := helper.NullableString{Set: true, Valid: false}
	got, err := s.resolveImage(context.Background(), tracker, in, "https://cdn/old.webp", "d", "n")
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, []string{"https://cdn/old.webp"}, deleted)
}

func TestResolveImage_NullWithoutOldIsNoop(t *testing.T) {
	media := &helperOSS.MockMediaService{
		DeleteByPublicURLFn: func(ctx context.Context, publicURL string) error {
			t.Fatalf("delete tidak boleh terpanggil, url=%s", publicURL)
			return nil
		},
	}
	s := newTestSynchronizer(media)
	tracker := helperOSS.NewUploadTracker(media)

	in := helper.NullableString{Set: true, Valid: false}
	got, err := s.resolveImage(context.Background(), tracker, in, "", "d", "n")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
