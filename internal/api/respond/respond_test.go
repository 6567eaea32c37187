package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKAndCreated(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]int{"count": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"result":{"count":2}}`, w.Body.String())

	w = httptest.NewRecorder()
	Created(w, []string{"a"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"result":["a"]}`, w.Body.String())
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()
	FailWithReason(w, http.StatusUnprocessableEntity, "schedule_in_past", errors.New("reminder time is not in the future"))

	var body Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "schedule_in_past", body.Reason)

	w = httptest.NewRecorder()
	Fail(w, http.StatusBadRequest, errors.New("invalid id"))
	assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
}
