package helper

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) errorEnvelope {
	t.Helper()
	var body errorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestFromFiberError_AsAppErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/kegiatan", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/kegiatan", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	body := decodeEnvelope(t, resp)
	assert.Equal(t, fiber.StatusNotFound, body.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Kegiatan tidak ditemukan", body.Message)
}

func TestFromFiberError_UnknownErrorBecomes500Envelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("koneksi putus")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	body := decodeEnvelope(t, resp)
	assert.Equal(t, fiber.StatusInternalServerError, body.Code)
	assert.Equal(t, "error", body.Status)
}
