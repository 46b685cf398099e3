package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/janmeier/trackjob/internal/domain"
	"github.com/janmeier/trackjob/internal/logger"
	"github.com/janmeier/trackjob/internal/storage"
)

// DocumentKind names the two attachment slots on an application.
type DocumentKind string

const (
	DocumentCV          DocumentKind = "cv"
	DocumentCoverLetter DocumentKind = "cover_letter"
)

// ErrInvalidDocument is returned for unknown document kinds or
// unsupported file types.
var ErrInvalidDocument = errors.New("invalid document")

// allowedExtensions lists the file types accepted for uploads.
var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// DocumentService stores CV and cover-letter attachments in object
// storage and records their URLs on the owning application.
type DocumentService struct {
	store   ApplicationStore
	objects storage.ObjectStorage
	log     *logger.Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(store ApplicationStore, objects storage.ObjectStorage, log *logger.Logger) *DocumentService {
	return &DocumentService{
		store:   store,
		objects: objects,
		log:     log.WithField(logger.FieldComponent, "document"),
	}
}

// Attach uploads a document and records its URL and original filename on
// the application. A previously attached document of the same kind is
// removed from storage first.
// Parameters:
//   - ctx: request context.
//   - userID: owner of the application.
//   - appID: application to attach to.
//   - kind: DocumentCV or DocumentCoverLetter.
//   - filename: original filename, used for the extension and display name.
//   - reader: file contents.
//   - size: content length in bytes.
// Returns:
//   - string: public URL of the stored document.
//   - error: ErrInvalidDocument, repository.ErrNotFound, or a storage error.
func (s *DocumentService) Attach(ctx context.Context, userID, appID string, kind DocumentKind, filename string, reader io.Reader, size int64) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported file type %q", ErrInvalidDocument, ext)
	}

	app, err := s.store.GetByID(ctx, userID, appID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s/%d%s", userID, kind, time.Now().UnixNano(), ext)
	if err := s.objects.Upload(ctx, key, reader, size, contentType); err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}
	url := s.objects.GetURL(key)

	switch kind {
	case DocumentCV:
		s.removeObject(ctx, app.CVFileURL)
		app.CVFileURL = url
		app.CVFileName = filename
	case DocumentCoverLetter:
		s.removeObject(ctx, app.CoverLetterURL)
		app.CoverLetterURL = url
		app.CoverLetterName = filename
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidDocument, kind)
	}

	if err := s.store.Update(ctx, app); err != nil {
		return "", fmt.Errorf("record document: %w", err)
	}
	logger.CtxInfo(ctx, "Document attached: app=%s, kind=%s, key=%s", appID, kind, key)
	return url, nil
}

// Cleanup removes both attachments of an application from storage. Used
// when the application itself is deleted; storage failures are logged
// and swallowed since the record is already gone.
func (s *DocumentService) Cleanup(ctx context.Context, app *domain.JobApplication) {
	s.removeObject(ctx, app.CVFileURL)
	s.removeObject(ctx, app.CoverLetterURL)
}

// removeObject deletes the object behind a previously issued URL, if any.
func (s *DocumentService) removeObject(ctx context.Context, url string) {
	key := s.keyFromURL(url)
	if key == "" {
		return
	}
	if err := s.objects.Delete(ctx, key); err != nil {
		logger.CtxWarn(ctx, "Failed to delete stored document %s: %v", key, err)
	}
}

// keyFromURL recovers the object key from a URL this service issued.
// URLs from other origins yield "".
func (s *DocumentService) keyFromURL(url string) string {
	if url == "" {
		return ""
	}
	base := s.objects.GetURL("")
	if base == "" || !strings.HasPrefix(url, base) {
		return ""
	}
	return strings.TrimPrefix(strings.TrimPrefix(url, base), "/")
}
