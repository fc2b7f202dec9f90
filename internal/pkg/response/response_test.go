package response

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h fiber.Handler) (int, map[string]json.RawMessage) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &body))
	return resp.StatusCode, body
}

func TestSuccess(t *testing.T) {
	code, body := call(t, func(c fiber.Ctx) error {
		return Success(c, "ok", []string{"alice"})
	})
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `"success"`, string(body["status"]))
	require.JSONEq(t, `["alice"]`, string(body["data"]))
	require.JSONEq(t, `"ok"`, string(body["message"]))
}

func TestFailure_DataIsEmptyArray(t *testing.T) {
	code, body := call(t, func(c fiber.Ctx) error {
		return Failure(c, "No users found.")
	})
	require.Equal(t, http.StatusOK, code)
	require.JSONEq(t, `"failure"`, string(body["status"]))
	require.JSONEq(t, `[]`, string(body["data"]))
}

func TestError_DefaultsMessageAndClampsStatus(t *testing.T) {
	code, body := call(t, func(c fiber.Ctx) error {
		return Error(c, 42, "")
	})
	require.Equal(t, http.StatusInternalServerError, code)
	require.JSONEq(t, `"error"`, string(body["status"]))
	require.JSONEq(t, `"Internal server error."`, string(body["message"]))
}

func TestNormalizeData(t *testing.T) {
	var nilSlice []string
	require.Equal(t, []any{}, normalizeData(nil))
	require.Equal(t, []any{}, normalizeData(nilSlice))
	require.Equal(t, []any{"x"}, normalizeData("x"))
	require.Equal(t, [1]int{7}, normalizeData([1]int{7}))
}
