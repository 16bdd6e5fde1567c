// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteJSON_Success verifies status code, content type, and body.
func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestWriteJSON_MarshalFailure verifies that unmarshalable data results in
// 500 Internal Server Error and a non-nil error.
func TestWriteJSON_MarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestWriteJSON_NilData verifies that nil serializes to JSON null.
func TestWriteJSON_NilData(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, nil, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, "null", rec.Body.String())
}
