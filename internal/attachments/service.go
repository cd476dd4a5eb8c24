// Package attachments handles the best-effort binary attachment per order:
// upload at submission time, retrieval for the dashboard, and the synthesized
// info-file fallback when the stored object cannot be fetched.
package attachments

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"diaa-designs-backend/internal/models"
)

// ErrNoAttachment is returned when a download is requested for an order that
// never carried a file.
var ErrNoAttachment = errors.New("order has no attachment")

var errNotStored = errors.New("attachment bytes were never stored")

// File is a user-selected upload. Only one file is persisted per order; when
// the form allows multi-select, the caller passes the first file only (a
// deliberate single-file limit).
type File struct {
	Name string
	Data []byte
	MIME string
}

// Store is the bucket-scoped blob backend an order type uploads into.
type Store interface {
	Upload(path string, data []byte, contentType string) error
	Download(path string) ([]byte, error)
	EnsureBucket() error
	PublicURL(path string) string
}

// UploadResult reports one upload attempt. Success false still carries the
// original name/size/type so the order record keeps metadata-only.
type UploadResult struct {
	Success      bool
	StoragePath  string
	OriginalName string
	Size         int64
	MimeType     string
	PublicURL    string
	Err          error
}

// DownloadResult is either the stored bytes or, on any retrieval failure, a
// synthesized plain-text summary of the order (Fallback true, Err holds the
// original failure).
type DownloadResult struct {
	Success     bool
	Fallback    bool
	Filename    string
	Data        []byte
	ContentType string
	Err         error
}

type Service struct {
	cv   Store
	logo Store
}

func NewService(cv, logo Store) *Service {
	return &Service{cv: cv, logo: logo}
}

func (s *Service) UploadCV(file File, orderRef string) UploadResult {
	return upload(s.cv, "cv-uploads", file, orderRef)
}

func (s *Service) UploadLogoInspiration(file File, orderRef string) UploadResult {
	return upload(s.logo, "logo-inspirations", file, orderRef)
}

// upload transmits the file under a collision-resistant key. A missing bucket
// gets one idempotent creation attempt and exactly one retry; any other
// failure degrades to metadata-only persistence and never blocks the order.
func upload(store Store, dir string, file File, orderRef string) UploadResult {
	path := fmt.Sprintf("%s/%s_%d%s", dir, orderRef, time.Now().UnixMilli(), filepath.Ext(file.Name))

	err := store.Upload(path, file.Data, file.MIME)
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "not found") {
		log.Printf("attachments: bucket missing for %s, creating and retrying", path)
		if bucketErr := store.EnsureBucket(); bucketErr != nil {
			err = bucketErr
		} else {
			err = store.Upload(path, file.Data, file.MIME)
		}
	}

	if err != nil {
		log.Printf("attachments: upload of %s failed, keeping metadata only: %v", file.Name, err)
		return UploadResult{
			OriginalName: file.Name,
			Size:         int64(len(file.Data)),
			MimeType:     file.MIME,
			Err:          err,
		}
	}

	return UploadResult{
		Success:      true,
		StoragePath:  path,
		OriginalName: file.Name,
		Size:         int64(len(file.Data)),
		MimeType:     file.MIME,
		PublicURL:    store.PublicURL(path),
	}
}

// DownloadCV retrieves the order's stored file, or degrades to the info-file
// summary. It never propagates an infrastructure error past its boundary.
func (s *Service) DownloadCV(order *models.CVOrder) DownloadResult {
	if !order.HasAttachment() {
		return DownloadResult{Err: ErrNoAttachment}
	}
	if order.AttachmentStored() {
		data, err := s.cv.Download(*order.AttachmentPath)
		if err == nil {
			return DownloadResult{
				Success:     true,
				Filename:    *order.AttachmentName,
				Data:        data,
				ContentType: contentTypeOf(order.AttachmentType),
			}
		}
		return cvInfoFile(order, err)
	}
	return cvInfoFile(order, errNotStored)
}

func (s *Service) DownloadLogoInspiration(order *models.LogoOrder) DownloadResult {
	if !order.HasAttachment() {
		return DownloadResult{Err: ErrNoAttachment}
	}
	if order.AttachmentStored() {
		data, err := s.logo.Download(*order.AttachmentPath)
		if err == nil {
			return DownloadResult{
				Success:     true,
				Filename:    *order.AttachmentName,
				Data:        data,
				ContentType: contentTypeOf(order.AttachmentType),
			}
		}
		return logoInfoFile(order, err)
	}
	return logoInfoFile(order, errNotStored)
}

func contentTypeOf(declared *string) string {
	if declared != nil && *declared != "" {
		return *declared
	}
	return "application/octet-stream"
}
