package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"diaa-designs-backend/internal/attachments"
	"diaa-designs-backend/internal/models"
	"diaa-designs-backend/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory repository fakes shared by the handler tests.

type fakeSub struct{}

func (fakeSub) Unsubscribe() {}

type fakeCVRepo struct {
	rows      []models.CVOrder
	createErr error
}

func (f *fakeCVRepo) Create(_ context.Context, o *models.CVOrder) (*models.CVOrder, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	o.ID = uuid.New()
	o.CreatedAt = time.Now()
	f.rows = append([]models.CVOrder{*o}, f.rows...)
	return o, nil
}

func (f *fakeCVRepo) ListAll(context.Context) ([]models.CVOrder, error) {
	out := make([]models.CVOrder, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeCVRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*models.CVOrder, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = status
			o := f.rows[i]
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCVRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeCVRepo) SubscribeInserts(func(models.CVOrder)) repository.Subscription {
	return fakeSub{}
}

type fakeLogoRepo struct {
	rows []models.LogoOrder
}

func (f *fakeLogoRepo) Create(_ context.Context, o *models.LogoOrder) (*models.LogoOrder, error) {
	o.ID = uuid.New()
	o.CreatedAt = time.Now()
	f.rows = append([]models.LogoOrder{*o}, f.rows...)
	return o, nil
}

func (f *fakeLogoRepo) ListAll(context.Context) ([]models.LogoOrder, error) {
	out := make([]models.LogoOrder, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeLogoRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*models.LogoOrder, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = status
			o := f.rows[i]
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeLogoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeLogoRepo) SubscribeInserts(func(models.LogoOrder)) repository.Subscription {
	return fakeSub{}
}

// fakeBlobStore implements attachments.Store in memory.
type fakeBlobStore struct {
	objects   map[string][]byte
	uploadErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (f *fakeBlobStore) Upload(path string, data []byte, _ string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.objects[path] = data
	return nil
}

func (f *fakeBlobStore) Download(path string) ([]byte, error) {
	if data, ok := f.objects[path]; ok {
		return data, nil
	}
	return nil, errObjectMissing
}

func (f *fakeBlobStore) EnsureBucket() error { return nil }

func (f *fakeBlobStore) PublicURL(path string) string { return "https://storage.test/" + path }

var errObjectMissing = &objectMissingError{}

type objectMissingError struct{}

func (*objectMissingError) Error() string { return "object missing" }

// multipartBody builds a multipart form from fields plus an optional file part.
func multipartBody(t *testing.T, fields map[string][]string, fileField, fileName string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func attachmentService(cv, logo attachments.Store) *attachments.Service {
	return attachments.NewService(cv, logo)
}

func doJSON(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
