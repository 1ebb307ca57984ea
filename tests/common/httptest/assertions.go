//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status code and, for 2xx responses,
// decodes the body into targetStruct when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}

	if targetStruct == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	err := json.Unmarshal(w.Body.Bytes(), targetStruct)
	assert.NoError(t, err, "failed to decode response JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the status code and, when expectedErrorMsg is
// non-empty, that the error envelope message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	assert.NoError(t, err, "failed to decode error response JSON: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, envelope.Error.Message, expectedErrorMsg)
	}
}
