package service

import (
	"sort"

	"github.com/google/uuid"

	"upttanjungkarang_backend/internals/features/manajemen/dto"
	"upttanjungkarang_backend/internals/features/manajemen/model"
	helper "upttanjungkarang_backend/internals/helpers"
)

// FlatPerson adalah satu entri desired-state hasil flatten containers.
// ID terisi = orang yang sudah tersimpan; nil = orang baru.
type FlatPerson struct {
	ID                 *uuid.UUID
	Name               string
	Jabatan            string
	Image              helper.NullableString
	ContainerGroup     int
	PersonIndexInGroup int
}

// Flatten memproyeksikan containers bersarang menjadi daftar flat:
// container_group = indeks luar, person_index_in_group = indeks dalam.
// Pasangan posisi selalu unik karena diturunkan dari indeks array.
func Flatten(containers [][]dto.PersonInput) []FlatPerson {
	var out []FlatPerson
	for i, group := range containers {
		for j, p := range group {
			out = append(out, FlatPerson{
				ID:                 p.ID,
				Name:               p.Name,
				Jabatan:            p.Jabatan,
				Image:              p.ImageURL,
				ContainerGroup:     i,
				PersonIndexInGroup: j,
			})
		}
	}
	return out
}

// ToNested merekonstruksi daftar flat person menjadi array-of-arrays untuk
// klien. Jumlah grup = container_group maksimum + 1; grup yang kosong tetap
// muncul sebagai array kosong (bukan lubang). Person dengan tag posisi tidak
// valid dilewati supaya data rusak tidak membuat rekonstruksi gagal.
func ToNested(persons []model.ManajemenPersonModel) [][]dto.PersonDTO {
	valid := make([]model.ManajemenPersonModel, 0, len(persons))
	maxGroup := -1
	for _, p := range persons {
		if p.ContainerGroup < 0 || p.PersonIndexInGroup < 0 {
			continue
		}
		valid = append(valid, p)
		if p.ContainerGroup > maxGroup {
			maxGroup = p.ContainerGroup
		}
	}

	containers := make([][]dto.PersonDTO, maxGroup+1)
	for i := range containers {
		containers[i] = []dto.PersonDTO{}
	}

	sort.SliceStable(valid, func(a, b int) bool {
		if valid[a].ContainerGroup != valid[b].ContainerGroup {
			return valid[a].ContainerGroup < valid[b].ContainerGroup
		}
		return valid[a].PersonIndexInGroup < valid[b].PersonIndexInGroup
	})

	for _, p := range valid {
		containers[p.ContainerGroup] = append(containers[p.ContainerGroup], toPersonDTO(p))
	}
	return containers
}

func toPersonDTO(p model.ManajemenPersonModel) dto.PersonDTO {
	var img *string
	if p.ManajemenPersonImageURL != "" {
		v := p.ManajemenPersonImageURL
		img = &v
	}
	return dto.PersonDTO{
		ID:       p.ManajemenPersonID,
		Name:     p.ManajemenPersonName,
		Jabatan:  p.ManajemenPersonJabatan,
		ImageURL: img,
	}
}

// ReconstructSection membangun response section lengkap dari state flat
// yang tersimpan. Assistant hanya muncul kalau namanya terisi.
func ReconstructSection(m model.ManajemenSectionModel) dto.ManajemenSectionDTO {
	var assistant *dto.AssistantDTO
	if m.AssistantName != "" {
		var img *string
		if m.AssistantImageURL != "" {
			v := m.AssistantImageURL
			img = &v
		}
		assistant = &dto.AssistantDTO{
			Name:    m.AssistantName,
			Jabatan: m.AssistantJabatan,
			Image:   img,
		}
	}

	return dto.ManajemenSectionDTO{
		ID:         m.ManajemenSectionID,
		Title:      m.ManajemenSectionTitle,
		Anchor:     m.ManajemenSectionAnchor,
		OrderIndex: m.ManajemenSectionOrderIndex,
		Assistant:  assistant,
		Containers: ToNested(m.Persons),
	}
}
