package request

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

// UploadedFile is a file as received from the transport layer, before any
// validation has run.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// AttachmentPolicy validates uploaded files before they become attachments.
type AttachmentPolicy struct {
	MaxSizeBytes      int64
	AllowedExtensions []string
}

func NewAttachmentPolicy(maxSizeBytes int64, allowedExtensions []string) AttachmentPolicy {
	return AttachmentPolicy{
		MaxSizeBytes:      maxSizeBytes,
		AllowedExtensions: allowedExtensions,
	}
}

// Process validates and reads each file in order. Zero-length files are
// skipped without error. The first file that exceeds the size limit or has a
// disallowed extension aborts the whole batch; no partial results are
// returned.
func (p AttachmentPolicy) Process(files []UploadedFile) ([]*Attachment, error) {
	attachments := make([]*Attachment, 0, len(files))

	for _, file := range files {
		if file.Size == 0 {
			continue
		}

		if file.Size >= p.MaxSizeBytes {
			return nil, errors.NewInvalidFileTypeError(file.Name)
		}

		if !p.extensionAllowed(file.Name) {
			return nil, errors.NewInvalidFileTypeError(file.Name)
		}

		data, err := io.ReadAll(file.Reader)
		if err != nil {
			return nil, errors.NewInternalError("failed to read uploaded file", err.Error())
		}

		attachment, err := NewAttachment(file.Name, file.ContentType, data)
		if err != nil {
			return nil, errors.NewValidationError(err.Error(), file.Name)
		}

		attachments = append(attachments, attachment)
	}

	return attachments, nil
}

func (p AttachmentPolicy) extensionAllowed(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range p.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
