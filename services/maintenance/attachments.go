package maintenanceservice

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"assetflow/apperror"
	"assetflow/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// acceptedTypes maps an allowed extension to the sniffed types that may back it.
var acceptedTypes = map[string][]string{
	"png":  {"image/png"},
	"jpg":  {"image/jpeg"},
	"jpeg": {"image/jpeg"},
	"gif":  {"image/gif"},
	"pdf":  {"application/pdf"},
	"doc":  {"application/msword", "application/x-ole-storage"},
	"docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
}

var allowedExtensions = []string{"png", "jpg", "jpeg", "gif", "pdf", "doc", "docx"}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileStore persists uploaded attachments.
type FileStore interface {
	Save(name string, data []byte) error
}

// DiskStore writes attachments into a directory served under /uploads.
type DiskStore struct {
	Dir string
}

func (s DiskStore) Save(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write attachment: %w", err)
	}
	return nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "attachment"
	}
	return name
}

// checkAttachment validates the extension against the sniffed content type.
func checkAttachment(filename string, data []byte, maxBytes int64) error {
	if filename == "" {
		return apperror.NewFieldValidation("No file selected", map[string]string{"file": "is required"})
	}
	if int64(len(data)) > maxBytes {
		return apperror.NewFieldValidation("File too large", map[string]string{"file": fmt.Sprintf("must be at most %d bytes", maxBytes)})
	}
	if !utils.IsAllowedAttachment(filename, allowedExtensions) {
		return apperror.NewFieldValidation("File type not allowed", map[string]string{"file": "must be one of " + strings.Join(allowedExtensions, ", ")})
	}
	ext := strings.ToLower(filepath.Ext(filename)[1:])
	detected := mimetype.Detect(data)
	for _, accepted := range acceptedTypes[ext] {
		if detected.Is(accepted) {
			return nil
		}
	}
	return apperror.NewFieldValidation("File content does not match its extension",
		map[string]string{"file": fmt.Sprintf("detected %s", detected.String())})
}

func attachmentName(ticketID int64, filename string) string {
	return fmt.Sprintf("ticket_%d_%s_%s", ticketID, uuid.NewString(), sanitizeFilename(filename))
}
