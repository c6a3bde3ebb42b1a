package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type imgPayload struct {
	Image NullableString `json:"image"`
}

func TestNullableString_Absent(t *testing.T) {
	var p imgPayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.Image.Set)
	assert.Equal(t, "", p.Image.String())
}

func TestNullableString_ExplicitNull(t *testing.T) {
	var p imgPayload
	require.NoError(t, json.Unmarshal([]byte(`{"image":null}`), &p))
	assert.True(t, p.Image.Set)
	assert.False(t, p.Image.Valid)
	assert.Equal(t, "", p.Image.String())
}

func TestNullableString_Value(t *testing.T) {
	var p imgPayload
	require.NoError(t, json.Unmarshal([]byte(`{"image":"https://cdn/x.webp"}`), &p))
	assert.True(t, p.Image.Set)
	assert.True(t, p.Image.Valid)
	assert.Equal(t, "https://cdn/x.webp", p.Image.Value)
}

func TestNullableString_MarshalRoundTrip(t *testing.T) {
	b, err := json.Marshal(imgPayload{Image: NullableString{Set: true, Valid: true, Value: "x"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"image":"x"}`, string(b))

	b, err = json.Marshal(imgPayload{Image: NullableString{Set: true, Valid: false}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"image":null}`, string(b))
}
