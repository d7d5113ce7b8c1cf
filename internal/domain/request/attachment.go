package request

import (
	"fmt"
	"time"
)

// Attachment is a file stored alongside a request. Content is kept in the
// database as a blob, so an attachment is self-contained.
type Attachment struct {
	id          uint
	requestID   uint
	fileName    string
	contentType string
	size        int64
	data        []byte
	createdAt   time.Time
}

func NewAttachment(fileName string, contentType string, data []byte) (*Attachment, error) {
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("attachment data is empty")
	}

	return &Attachment{
		fileName:    fileName,
		contentType: contentType,
		size:        int64(len(data)),
		data:        data,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	requestID uint,
	fileName string,
	contentType string,
	size int64,
	data []byte,
	createdAt time.Time,
) *Attachment {
	return &Attachment{
		id:          id,
		requestID:   requestID,
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		data:        data,
		createdAt:   createdAt,
	}
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) RequestID() uint {
	return a.requestID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) Data() []byte {
	return a.data
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}
