package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upttanjungkarang_backend/internals/features/manajemen/dto"
	"upttanjungkarang_backend/internals/features/manajemen/model"
)

func person(group, idx int, name string) model.ManajemenPersonModel {
	return model.ManajemenPersonModel{
		ManajemenPersonID:   uuid.New(),
		ManajemenPersonName: name,
		ContainerGroup:      group,
		PersonIndexInGroup:  idx,
	}
}

func TestFlatten_TagsFollowArrayIndices(t *testing.T) {
	containers := [][]dto.PersonInput{
		{{Name: "Manager"}},
		{{Name: "A"}, {Name: "B"}},
		{},
		{{Name: "C"}},
	}

	flat := Flatten(containers)
	require.Len(t, flat, 4)

	assert.Equal(t, 0, flat[0].ContainerGroup)
	assert.Equal(t, 0, flat[0].PersonIndexInGroup)
	assert.Equal(t, "Manager", flat[0].Name)

	assert.Equal(t, 1, flat[1].ContainerGroup)
	assert.Equal(t, 0, flat[1].PersonIndexInGroup)
	assert.Equal(t, 1, flat[2].ContainerGroup)
	assert.Equal(t, 1, flat[2].PersonIndexInGroup)

	// grup kosong dilompati, grup berikutnya tetap pakai indeks aslinya
	assert.Equal(t, 3, flat[3].ContainerGroup)
	assert.Equal(t, 0, flat[3].PersonIndexInGroup)
}

func TestToNested_RebuildsGroupsInOrder(t *testing.T) {
	// sengaja diacak, rekonstruksi harus mengurutkan ulang
	persons := []model.ManajemenPersonModel{
		person(1, 1, "B"),
		person(0, 0, "Manager"),
		person(1, 0, "A"),
	}

	nested := ToNested(persons)
	require.Len(t, nested, 2)
	require.Len(t, nested[0], 1)
	require.Len(t, nested[1], 2)

	assert.Equal(t, "Manager", nested[0][0].Name)
	assert.Equal(t, "A", nested[1][0].Name)
	assert.Equal(t, "B", nested[1][1].Name)
}

func TestToNested_EmptyMiddleGroupStaysEmptyArray(t *testing.T) {
	persons := []model.ManajemenPersonModel{
		person(0, 0, "Manager"),
		person(2, 0, "C"),
	}

	nested := ToNested(persons)
	require.Len(t, nested, 3)
	assert.NotNil(t, nested[1])
	assert.Empty(t, nested[1])
}

func TestToNested_InvalidPositionTagsSkipped(t *testing.T) {
	persons := []model.ManajemenPersonModel{
		person(0, 0, "Valid"),
		person(-1, 0, "BadGroup"),
		person(0, -3, "BadIndex"),
	}

	nested := ToNested(persons)
	require.Len(t, nested, 1)
	require.Len(t, nested[0], 1)
	assert.Equal(t, "Valid", nested[0][0].Name)
}

func TestToNested_NoPersons(t *testing.T) {
	nested := ToNested(nil)
	assert.Empty(t, nested)
}

func TestFlattenToNested_RoundTrip(t *testing.T) {
	containers := [][]dto.PersonInput{
		{{Name: "Manager UPT", Jabatan: "Manager"}},
		{{Name: "Asman Ren", Jabatan: "Asman"}, {Name: "Asman Har", Jabatan: "Asman"}},
		{{Name: "TL 1"}, {Name: "TL 2"}, {Name: "TL 3"}},
	}

	flat := Flatten(containers)
	rows := make([]model.ManajemenPersonModel, 0, len(flat))
	for _, f := range flat {
		rows = append(rows, model.ManajemenPersonModel{
			ManajemenPersonID:      uuid.New(),
			ManajemenPersonName:    f.Name,
			ManajemenPersonJabatan: f.Jabatan,
			ContainerGroup:         f.ContainerGroup,
			PersonIndexInGroup:     f.PersonIndexInGroup,
		})
	}

	nested := ToNested(rows)
	require.Len(t, nested, len(containers))
	for i := range containers {
		require.Len(t, nested[i], len(containers[i]))
		for j := range containers[i] {
			assert.Equal(t, containers[i][j].Name, nested[i][j].Name)
			assert.Equal(t, containers[i][j].Jabatan, nested[i][j].Jabatan)
		}
	}
}

func TestReconstructSection_AssistantOnlyWhenNamed(t *testing.T) {
	sec := model.ManajemenSectionModel{
		ManajemenSectionID:     uuid.New(),
		ManajemenSectionTitle:  "Manajemen UPT",
		ManajemenSectionAnchor: "upt",
	}

	out := ReconstructSection(sec)
	assert.Nil(t, out.Assistant)
	assert.Empty(t, out.Containers)

	sec.AssistantName = "Sekretaris"
	sec.AssistantImageURL = "https://cdn.example.com/a.webp"
	out = ReconstructSection(sec)
	require.NotNil(t, out.Assistant)
	assert.Equal(t, "Sekretaris", out.Assistant.Name)
	require.NotNil(t, out.Assistant.Image)
	assert.Equal(t, "https://cdn.example.com/a.webp", *out.Assistant.Image)
}

func TestToPersonDTO_EmptyImageBecomesNil(t *testing.T) {
	p := person(0, 0, "X")
	assert.Nil(t, toPersonDTO(p).ImageURL)

	p.ManajemenPersonImageURL = "https://cdn.example.com/x.webp"
	got := toPersonDTO(p)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://cdn.example.com/x.webp", *got.ImageURL)
}
