package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maatiworld/maati-world-backend/database"
	"github.com/maatiworld/maati-world-backend/media"
)

type stubMediaStore struct{}

func (stubMediaStore) Upload(ctx context.Context, fileName string, content []byte, folder string) (*media.Descriptor, error) {
	return &media.Descriptor{FileID: "id", URL: "https://media.example.com" + folder + "/" + fileName, Name: fileName}, nil
}

func (stubMediaStore) Delete(ctx context.Context, fileID string) error {
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := map[string]string{
		"ADMIN_EMAIL":          "admin@example.com",
		"ADMIN_PASSWORD":       "hunter2",
		"JWT_SECRET":           "test-secret",
		"IMAGEKIT_PUBLIC_KEY":  "public_test",
		"IMAGEKIT_PRIVATE_KEY": "private_test",
		"ACCEPTED_ORIGINS":     "*",
	}

	return newRouter(database.New(db), stubMediaStore{}, cfg)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var response LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/blog", "", CreateBlogRequest{Title: "Nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/blog", "not-a-token", CreateBlogRequest{Title: "Nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBlogLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	// Draft is created with a derived slug
	rec := doJSON(t, router, http.MethodPost, "/blog", token, CreateBlogRequest{
		Title:   "Hello, World!",
		Excerpt: "greetings",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "hello-world", created.Slug)

	// Drafts are invisible by slug and from the published list
	rec = doJSON(t, router, http.MethodGet, "/blogs/hello-world", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/blogs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var collection BlogCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &collection))
	assert.Zero(t, collection.Total)

	// Publishing makes the post visible by slug
	published := true
	rec = doJSON(t, router, http.MethodPut, "/blog/"+created.ID, token, UpdateBlogRequest{Published: &published})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/blogs/hello-world", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Delete removes it again
	rec = doJSON(t, router, http.MethodDelete, "/blog/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/blogs/hello-world", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLikeAndCommentFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/blog", token, CreateBlogRequest{
		Title:     "Social Post",
		Published: true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	likesPath := fmt.Sprintf("/blog/%s/likes", created.ID)

	rec = doJSON(t, router, http.MethodPost, likesPath, "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, likesPath, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status LikeStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, int64(1), status.Count)
	assert.True(t, status.Liked)

	rec = doJSON(t, router, http.MethodDelete, likesPath, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, likesPath, "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Zero(t, status.Count)
	assert.False(t, status.Liked)

	commentsPath := fmt.Sprintf("/blog/%s/comments", created.ID)

	rec = doJSON(t, router, http.MethodPost, commentsPath, "", CreateCommentRequest{Content: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, commentsPath, "", CreateCommentRequest{Content: "great read"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, commentsPath, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFeedbackValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/feedback", "", CreateFeedbackRequest{
		Name:  "Ana",
		Email: "ana@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/feedback", "", CreateFeedbackRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "lovely site",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Listing feedback is an admin action
	rec = doJSON(t, router, http.MethodGet, "/feedback", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignatureEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/imagekit-signature", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var credential media.Credential
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &credential))
	assert.Len(t, credential.Token, 32)
	assert.Equal(t, "public_test", credential.PublicKey)
	assert.Equal(t, credential.Signature, media.Sign("private_test", credential.Token, credential.Expire))
}
