package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

func testPolicy() AttachmentPolicy {
	return NewAttachmentPolicy(2*1024*1024, []string{".jpg", ".png", ".pdf", ".docx", ".doc", ".txt"})
}

func upload(name string, content string) UploadedFile {
	return UploadedFile{
		Name:        name,
		ContentType: "application/octet-stream",
		Size:        int64(len(content)),
		Reader:      strings.NewReader(content),
	}
}

func TestAttachmentPolicy_Process_ValidFiles(t *testing.T) {
	policy := testPolicy()

	attachments, err := policy.Process([]UploadedFile{
		upload("screenshot.png", "png-bytes"),
		upload("notes.txt", "some notes"),
	})
	require.NoError(t, err)
	require.Len(t, attachments, 2)

	assert.Equal(t, "screenshot.png", attachments[0].FileName())
	assert.Equal(t, int64(len("png-bytes")), attachments[0].Size())
	assert.Equal(t, []byte("some notes"), attachments[1].Data())
}

func TestAttachmentPolicy_Process_SkipsEmptyFiles(t *testing.T) {
	policy := testPolicy()

	attachments, err := policy.Process([]UploadedFile{
		upload("empty.txt", ""),
		upload("real.txt", "content"),
	})
	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, "real.txt", attachments[0].FileName())
}

func TestAttachmentPolicy_Process_RejectsOversizeFile(t *testing.T) {
	policy := NewAttachmentPolicy(8, []string{".txt"})

	attachments, err := policy.Process([]UploadedFile{upload("big.txt", "123456789")})

	require.Error(t, err)
	assert.Nil(t, attachments)
	assert.True(t, errors.IsInvalidFileTypeError(err))
}

func TestAttachmentPolicy_Process_SizeLimitIsExclusive(t *testing.T) {
	policy := NewAttachmentPolicy(8, []string{".txt"})

	_, err := policy.Process([]UploadedFile{upload("exact.txt", "12345678")})
	assert.Error(t, err, "file at exactly the limit is rejected")

	attachments, err := policy.Process([]UploadedFile{upload("under.txt", "1234567")})
	require.NoError(t, err)
	assert.Len(t, attachments, 1)
}

func TestAttachmentPolicy_Process_RejectsDisallowedExtension(t *testing.T) {
	policy := testPolicy()

	tests := []struct {
		name     string
		fileName string
	}{
		{name: "executable", fileName: "malware.exe"},
		{name: "no extension", fileName: "README"},
		{name: "archive", fileName: "dump.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attachments, err := policy.Process([]UploadedFile{upload(tt.fileName, "data")})
			require.Error(t, err)
			assert.Nil(t, attachments)
			assert.True(t, errors.IsInvalidFileTypeError(err))
		})
	}
}

func TestAttachmentPolicy_Process_ExtensionCheckIsCaseInsensitive(t *testing.T) {
	policy := testPolicy()

	attachments, err := policy.Process([]UploadedFile{upload("PHOTO.JPG", "jpeg-bytes")})
	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, "PHOTO.JPG", attachments[0].FileName())
}

func TestAttachmentPolicy_Process_FailsFast(t *testing.T) {
	policy := testPolicy()

	attachments, err := policy.Process([]UploadedFile{
		upload("ok.txt", "fine"),
		upload("bad.exe", "nope"),
		upload("also-ok.txt", "fine too"),
	})

	require.Error(t, err)
	assert.Nil(t, attachments, "no partial batch on failure")
}

func TestAttachmentPolicy_Process_EmptyBatch(t *testing.T) {
	attachments, err := testPolicy().Process(nil)
	require.NoError(t, err)
	assert.Empty(t, attachments)
}

func TestNewAttachment_Invalid(t *testing.T) {
	_, err := NewAttachment("", "text/plain", []byte("x"))
	assert.Error(t, err, "missing file name")

	_, err = NewAttachment("a.txt", "text/plain", nil)
	assert.Error(t, err, "empty data")
}
