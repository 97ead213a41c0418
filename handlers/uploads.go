package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"onboarding_backend/models"
)

var StorageDir = "uploads"

const maxDocSize = 5 << 20 // 5 MiB per document

var allowedDocTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// InitStorage creates the storage directory if absent.
func InitStorage() {
	if err := os.MkdirAll(StorageDir, 0755); err != nil {
		logrus.Fatal("Failed to create storage directory: ", err)
	}
}

type uploadError struct {
	status  int
	message string
}

func (e *uploadError) Error() string { return e.message }

// savedDocs maps document field names to the generated filenames written for
// the current request.
type savedDocs map[string]string

// saveDocuments validates and persists every document part of a multipart
// request. Validation runs over all parts before anything touches disk, so a
// rejected request leaves no files behind. Files already written when a later
// save fails are cleaned up here; downstream failures use cleanup directly.
func saveDocuments(c *gin.Context) (savedDocs, *uploadError) {
	headers := make(map[string]*multipart.FileHeader, len(models.DocFields))
	for _, field := range models.DocFields {
		fh, err := c.FormFile(field)
		if err != nil {
			if err == http.ErrMissingFile {
				continue
			}
			return nil, &uploadError{http.StatusBadRequest, fmt.Sprintf("Invalid upload for %s", field)}
		}
		if !allowedDocTypes[fh.Header.Get("Content-Type")] {
			return nil, &uploadError{http.StatusBadRequest, "Invalid file type"}
		}
		if fh.Size > maxDocSize {
			return nil, &uploadError{http.StatusBadRequest, "File too large"}
		}
		headers[field] = fh
	}

	docs := make(savedDocs, len(headers))
	for field, fh := range headers {
		filename := uuid.New().String() + filepath.Ext(fh.Filename)
		if err := c.SaveUploadedFile(fh, filepath.Join(StorageDir, filename)); err != nil {
			cleanup(docs)
			return nil, &uploadError{http.StatusInternalServerError, "Failed to save file"}
		}
		docs[field] = filename
	}
	return docs, nil
}

// cleanup removes every file written for a request that ultimately failed.
// Removal errors are logged, never surfaced.
func cleanup(docs savedDocs) {
	for field, filename := range docs {
		path := filepath.Join(StorageDir, filename)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).Warnf("File cleanup failed for %s (%s)", field, filename)
		}
	}
}
