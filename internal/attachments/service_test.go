package attachments_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diaa-designs-backend/internal/attachments"
	"diaa-designs-backend/internal/models"
	"diaa-designs-backend/internal/orders"
)

// fakeStore records uploads in memory and can be scripted to fail.
type fakeStore struct {
	objects       map[string][]byte
	uploadErr     error
	downloadErr   error
	bucketErr     error
	bucketEnsured bool
	uploadCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(path string, data []byte, contentType string) error {
	f.uploadCalls++
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.objects[path] = data
	return nil
}

func (f *fakeStore) Download(path string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	data, ok := f.objects[path]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (f *fakeStore) EnsureBucket() error {
	if f.bucketErr != nil {
		return f.bucketErr
	}
	f.bucketEnsured = true
	f.uploadErr = nil
	return nil
}

func (f *fakeStore) PublicURL(path string) string {
	return "https://example.supabase.co/storage/v1/object/public/cv-files/" + path
}

func TestUploadCV(t *testing.T) {
	store := newFakeStore()
	svc := attachments.NewService(store, newFakeStore())

	result := svc.UploadCV(attachments.File{
		Name: "resume.pdf",
		Data: []byte("pdf-bytes"),
		MIME: "application/pdf",
	}, "CV-1735689600000")

	require.True(t, result.Success)
	assert.Contains(t, result.StoragePath, "cv-uploads/CV-1735689600000_")
	assert.Contains(t, result.StoragePath, ".pdf")
	assert.Equal(t, "resume.pdf", result.OriginalName)
	assert.Equal(t, int64(9), result.Size)
	assert.NotEmpty(t, result.PublicURL)
	assert.Len(t, store.objects, 1)
}

func TestUpload_MissingBucketRetriesOnce(t *testing.T) {
	store := newFakeStore()
	store.uploadErr = errors.New("Bucket not found")
	svc := attachments.NewService(store, newFakeStore())

	result := svc.UploadCV(attachments.File{Name: "cv.docx", Data: []byte("x")}, "CV-1")

	require.True(t, result.Success)
	assert.True(t, store.bucketEnsured)
	assert.Equal(t, 2, store.uploadCalls)
}

func TestUpload_FailureKeepsMetadata(t *testing.T) {
	store := newFakeStore()
	store.uploadErr = errors.New("storage unreachable")
	svc := attachments.NewService(newFakeStore(), store)

	result := svc.UploadLogoInspiration(attachments.File{
		Name: "inspiration.png",
		Data: []byte("png"),
		MIME: "image/png",
	}, "LOGO-2")

	assert.False(t, result.Success)
	assert.Empty(t, result.StoragePath)
	assert.Equal(t, "inspiration.png", result.OriginalName)
	assert.Equal(t, int64(3), result.Size)
	assert.Equal(t, "image/png", result.MimeType)
	assert.Error(t, result.Err)
}

func cvOrderWithAttachment(path *string) *models.CVOrder {
	name := "resume.pdf"
	mime := "application/pdf"
	return &models.CVOrder{
		ID:             uuid.New(),
		OrderRef:       "CV-1735689600000",
		CustomerName:   "سارة أحمد",
		CustomerEmail:  "sara@example.com",
		CustomerPhone:  "0501234567",
		Profession:     "مهندسة برمجيات",
		PackageType:    "advanced",
		PackageName:    orders.CVPackageName("advanced"),
		Services:       []string{"translation"},
		TotalPrice:     350,
		Status:         orders.StatusNew,
		CreatedAt:      time.Now(),
		AttachmentName: &name,
		AttachmentPath: path,
		AttachmentType: &mime,
	}
}

func TestDownloadCV(t *testing.T) {
	store := newFakeStore()
	store.objects["cv-uploads/stored.pdf"] = []byte("the stored bytes")
	svc := attachments.NewService(store, newFakeStore())

	path := "cv-uploads/stored.pdf"
	result := svc.DownloadCV(cvOrderWithAttachment(&path))

	require.True(t, result.Success)
	assert.False(t, result.Fallback)
	assert.Equal(t, "resume.pdf", result.Filename)
	assert.Equal(t, []byte("the stored bytes"), result.Data)
	assert.Equal(t, "application/pdf", result.ContentType)
}

func TestDownloadCV_NoAttachment(t *testing.T) {
	svc := attachments.NewService(newFakeStore(), newFakeStore())
	order := cvOrderWithAttachment(nil)
	order.AttachmentName = nil

	result := svc.DownloadCV(order)
	assert.ErrorIs(t, result.Err, attachments.ErrNoAttachment)
	assert.False(t, result.Success)
}

func TestDownloadCV_FallbackOnRetrievalFailure(t *testing.T) {
	store := newFakeStore()
	store.downloadErr = errors.New("object gone")
	svc := attachments.NewService(store, newFakeStore())

	path := "cv-uploads/stored.pdf"
	result := svc.DownloadCV(cvOrderWithAttachment(&path))

	require.True(t, result.Success)
	assert.True(t, result.Fallback)
	assert.Equal(t, "text/plain; charset=utf-8", result.ContentType)
	assert.Contains(t, result.Filename, "CV-1735689600000")

	text := string(result.Data)
	assert.Contains(t, text, "CV-1735689600000")
	assert.Contains(t, text, "سارة أحمد")
	assert.Contains(t, text, "350 درهم")
	assert.Contains(t, text, "sara@example.com")
}

func TestDownloadCV_MetadataOnlyFallsBack(t *testing.T) {
	svc := attachments.NewService(newFakeStore(), newFakeStore())

	result := svc.DownloadCV(cvOrderWithAttachment(nil))

	require.True(t, result.Success)
	assert.True(t, result.Fallback)
	assert.Contains(t, string(result.Data), "resume.pdf")
}

func TestDownloadLogoInspiration_Fallback(t *testing.T) {
	svc := attachments.NewService(newFakeStore(), newFakeStore())

	colors := "أزرق وذهبي"
	order := &models.LogoOrder{
		ID:            uuid.New(),
		OrderRef:      "LOGO-1735689600001",
		CustomerName:  "خالد يوسف",
		CustomerEmail: "khaled@example.com",
		CustomerPhone: "0559876543",
		BusinessName:  "مقهى الريحان",
		BusinessType:  "مطاعم وضيافة",
		PackageType:   "premium",
		PackageName:   orders.LogoPackageName("premium"),
		Styles:        []string{"modern", "elegant"},
		Colors:        &colors,
		TotalPrice:    600,
		Status:        orders.StatusNew,
		CreatedAt:     time.Now(),
	}
	name := "mood-board.png"
	order.AttachmentName = &name

	result := svc.DownloadLogoInspiration(order)

	require.True(t, result.Success)
	assert.True(t, result.Fallback)

	text := string(result.Data)
	assert.Contains(t, text, "LOGO-1735689600001")
	assert.Contains(t, text, "مقهى الريحان")
	assert.Contains(t, text, "600 درهم")
	assert.Contains(t, text, "أزرق وذهبي")
}
