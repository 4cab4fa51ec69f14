package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, "message", "Welcome to the Reddit server!")

	expected := `{"message":"Welcome to the Reddit server!","success":true}`
	if w.Body.String() != expected {
		t.Fatalf("expected %s but was %s", expected, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type: %s", ct)
	}
}

func TestWriteSuccessNoPayload(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, "", nil)

	expected := `{"success":true}`
	if w.Body.String() != expected {
		t.Fatalf("expected %s but was %s", expected, w.Body.String())
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, "No route found.")

	expected := `{"error":"No route found.","success":false}`
	if w.Body.String() != expected {
		t.Fatalf("expected %s but was %s", expected, w.Body.String())
	}
}
