package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"onboarding_backend/db"
	"onboarding_backend/models"
)

func TestUploadRejectsInvalidType(t *testing.T) {
	r := setupTest(t)

	rec := postEmployee(t, r, baseFields("badtype@example.com"), []testDoc{
		{models.FieldExperienceDoc, "letter.txt", "text/plain", []byte("plain text")},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Invalid file type" {
		t.Fatalf("unexpected error message: %q", msg)
	}
	if n := storedFileCount(t); n != 0 {
		t.Fatalf("expected no files stored, found %d", n)
	}

	var count int64
	if err := db.DB.Model(&models.Employee{}).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows inserted, got %d", count)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	r := setupTest(t)

	oversized := bytes.Repeat([]byte("a"), maxDocSize+1)
	rec := postEmployee(t, r, baseFields("toobig@example.com"), []testDoc{
		{models.FieldSSCDoc, "ssc.pdf", "application/pdf", oversized},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "File too large" {
		t.Fatalf("unexpected error message: %q", msg)
	}
	if n := storedFileCount(t); n != 0 {
		t.Fatalf("expected no files stored, found %d", n)
	}
}

func TestUploadRejectionPrecedesValidation(t *testing.T) {
	r := setupTest(t)

	// A bad file type fails the request even though the form is also missing
	// name and email.
	rec := postEmployee(t, r, nil, []testDoc{
		{models.FieldGradDoc, "grad.gif", "image/gif", []byte("gif bytes")},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := errorMessage(t, rec); msg != "Invalid file type" {
		t.Fatalf("unexpected error message: %q", msg)
	}
}
