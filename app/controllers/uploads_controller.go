// Package controllers holds the small REST endpoints that sit beside
// the GraphQL surface.
package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/platter/pkg/logger"
	"github.com/shashiranjanraj/platter/pkg/response"
	"github.com/shashiranjanraj/platter/pkg/storage"
)

// maxUploadSize bounds a single multipart upload (10 MB, plenty for
// cover images and dish photos).
const maxUploadSize = 10 << 20

type UploadsController struct{}

func NewUploadsController() *UploadsController {
	return &UploadsController{}
}

// Store accepts one multipart file under the "file" field, writes it to
// the default storage disk under a random name and returns its public
// URL.
func (c *UploadsController) Store(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Could not parse upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := fmt.Sprintf("uploads/%s%s", uuid.NewString(), ext)

	if err := storage.PutStream(path, file); err != nil {
		logger.WithCtx(r.Context()).Error("uploads: store", "error", err)
		response.Error(w, http.StatusInternalServerError, "Could not store file")
		return
	}

	response.Success(w, map[string]string{"url": storage.URL(path)})
}
