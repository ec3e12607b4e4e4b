package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/AnshRaj112/portfolio-backend/internal/store"
)

const (
	// APKFilename is the well-known GridFS filename and download name.
	APKFilename = "AgriFarm.apk"
	// apkContentType is the Android package MIME type.
	apkContentType = "application/vnd.android.package-archive"
)

// UploadAPKResponse represents the response after uploading the APK
type UploadAPKResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// APKHandler serves the single downloadable asset out of the blob store.
type APKHandler struct {
	Store store.BlobStore
	Path  string // local path the upload endpoint reads from
}

func NewAPKHandler(s store.BlobStore, path string) *APKHandler {
	return &APKHandler{Store: s, Path: path}
}

// Upload handles POST /api/apk. It takes no body: the asset is read from
// the configured local path and pushed into GridFS, replacing any previous
// copy.
func (h *APKHandler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	file, err := os.Open(h.Path)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	// The upload can take a while for a multi-MB APK over Atlas.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if err := h.Store.Put(ctx, APKFilename, file); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	json.NewEncoder(w).Encode(UploadAPKResponse{
		Success: true,
		Message: "APK uploaded to MongoDB",
	})
}

// Download handles GET /api/apk
func (h *APKHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	data, err := h.Store.Get(ctx, APKFilename)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		if errors.Is(err, store.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "APK not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", apkContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+APKFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
