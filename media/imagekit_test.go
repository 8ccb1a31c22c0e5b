package media

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageKitUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "private_key", username)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("image-bytes")), r.FormValue("file"))
		assert.Equal(t, "cover.png", r.FormValue("fileName"))
		assert.Equal(t, "/Blogger", r.FormValue("folder"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fileId":"abc123","name":"cover_xyz.png","url":"https://ik.example.com/Blogger/cover_xyz.png"}`))
	}))
	defer server.Close()

	client := NewImageKit("public_key", "private_key", "https://ik.example.com")
	client.uploadEndpoint = server.URL

	descriptor, err := client.Upload(context.Background(), "cover.png", []byte("image-bytes"), BlogFolder)
	require.NoError(t, err)
	assert.Equal(t, "abc123", descriptor.FileID)
	assert.Equal(t, "https://ik.example.com/Blogger/cover_xyz.png", descriptor.URL)
}

func TestImageKitUploadPassesDataURIThrough(t *testing.T) {
	dataURI := "data:image/png;base64,aW1hZ2U="

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, dataURI, r.FormValue("file"))

		w.Write([]byte(`{"fileId":"abc123","name":"n.png","url":"https://ik.example.com/n.png"}`))
	}))
	defer server.Close()

	client := NewImageKit("public_key", "private_key", "https://ik.example.com")
	client.uploadEndpoint = server.URL

	_, err := client.Upload(context.Background(), "n.png", []byte(dataURI), BlogFolder)
	require.NoError(t, err)
}

func TestImageKitUploadSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Your account cannot upload"}`))
	}))
	defer server.Close()

	client := NewImageKit("public_key", "private_key", "https://ik.example.com")
	client.uploadEndpoint = server.URL

	_, err := client.Upload(context.Background(), "cover.png", []byte("x"), BlogFolder)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your account cannot upload")
}

func TestImageKitDelete(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewImageKit("public_key", "private_key", "https://ik.example.com")
	client.apiEndpoint = server.URL

	require.NoError(t, client.Delete(context.Background(), "abc123"))
	assert.Equal(t, "/abc123", gotPath)
}
