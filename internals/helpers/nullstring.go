package helper

import (
	"bytes"
	"encoding/json"
)

// NullableString membedakan tiga keadaan field JSON string:
// absen (Set=false), null eksplisit (Set=true, Valid=false),
// dan berisi nilai (Set=true, Valid=true).
//
// Dipakai untuk field gambar: absen = pertahankan yang lama,
// null = hapus, string = data-URI baru atau URL existing.
type NullableString struct {
	Set   bool
	Valid bool
	Value string
}

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Valid = false
		n.Value = ""
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Set || !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// String mengembalikan nilai atau "" bila absen/null.
func (n NullableString) String() string {
	if n.Set && n.Valid {
		return n.Value
	}
	return ""
}
