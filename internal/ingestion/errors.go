package ingestion

import "fmt"

// ErrInvalidFileType indicates the uploaded file's MIME type is not allowed
type ErrInvalidFileType struct {
	ContentType string
}

func (e *ErrInvalidFileType) Error() string {
	return fmt.Sprintf("invalid file type %q: please upload a PDF, DOC, DOCX, or TXT file", e.ContentType)
}

// ErrFileTooLarge indicates the uploaded file exceeds the size ceiling
type ErrFileTooLarge struct {
	SizeBytes int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("file too large (%d bytes): please upload a file smaller than 10MB", e.SizeBytes)
}

// ErrEmptyInput indicates a required ingestion input was empty
type ErrEmptyInput struct {
	Field string
}

func (e *ErrEmptyInput) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}
