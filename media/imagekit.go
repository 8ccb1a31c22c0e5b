package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	defaultUploadEndpoint = "https://upload.imagekit.io/api/v1/files/upload"
	defaultAPIEndpoint    = "https://api.imagekit.io/v1/files"
)

// ImageKit talks to the ImageKit REST API: uploads authenticated with the
// private key, deletes by fileId.
type ImageKit struct {
	publicKey      string
	privateKey     string
	urlEndpoint    string
	uploadEndpoint string
	apiEndpoint    string
	httpClient     *http.Client
}

func NewImageKit(publicKey, privateKey, urlEndpoint string) *ImageKit {
	return &ImageKit{
		publicKey:      publicKey,
		privateKey:     privateKey,
		urlEndpoint:    urlEndpoint,
		uploadEndpoint: defaultUploadEndpoint,
		apiEndpoint:    defaultAPIEndpoint,
		httpClient:     &http.Client{Timeout: 60 * time.Second},
	}
}

// PublicKey returns the configured public API key. It is handed out with
// upload credentials so client-side uploaders can talk to ImageKit
// directly.
func (k *ImageKit) PublicKey() string {
	return k.publicKey
}

// PrivateKey returns the configured private API key.
func (k *ImageKit) PrivateKey() string {
	return k.privateKey
}

type uploadResponse struct {
	FileID string `json:"fileId"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Upload sends content to ImageKit as base64 and returns the stored
// object's descriptor. content may be raw bytes or an already-encoded
// data URI.
func (k *ImageKit) Upload(ctx context.Context, fileName string, content []byte, folder string) (*Descriptor, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	encoded := string(content)
	if !strings.HasPrefix(encoded, "data:") {
		encoded = base64.StdEncoding.EncodeToString(content)
	}

	fields := map[string]string{
		"file":              encoded,
		"fileName":          fileName,
		"folder":            folder,
		"useUniqueFileName": "true",
	}
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("building upload form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.uploadEndpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.SetBasicAuth(k.privateKey, "")

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", fileName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("uploading %s: %s", fileName, readAPIError(resp))
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}

	return &Descriptor{
		FileID: uploaded.FileID,
		URL:    uploaded.URL,
		Name:   uploaded.Name,
	}, nil
}

// Delete removes a previously uploaded object by its fileId.
func (k *ImageKit) Delete(ctx context.Context, fileID string) error {
	url := fmt.Sprintf("%s/%s", k.apiEndpoint, fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(k.privateKey, "")

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deleting file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("deleting file %s: %s", fileID, readAPIError(resp))
	}
	return nil
}

func readAPIError(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return resp.Status
	}

	var apiErr errorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Sprintf("%s: %s", resp.Status, apiErr.Message)
	}
	return resp.Status
}
