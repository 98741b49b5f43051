package ingest

import (
	"context"
	"fmt"
	"os"

	"code.sajari.com/docconv"

	"github.com/semdexhq/semdex/internal/core"
)

const (
	mimePDF  = "application/pdf"
	mimeDoc  = "application/msword"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// DocconvExtractor implements core.TextExtractor using sajari/docconv for
// PDF and Word documents. Plain text is decoded as UTF-8 verbatim rather
// than routed through docconv, which normalizes whitespace.
type DocconvExtractor struct {
	stagingDir string
}

var _ core.TextExtractor = (*DocconvExtractor)(nil)

func NewDocconvExtractor(stagingDir string) *DocconvExtractor {
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	return &DocconvExtractor{stagingDir: stagingDir}
}

// ExtractText stages the upload to a per-request-unique temp file, converts
// it according to the declared content type, and removes the staged copy on
// every exit path. The unique staging name means concurrent uploads sharing
// a filename cannot cross-talk.
func (e *DocconvExtractor) ExtractText(ctx context.Context, data []byte, contentType string) (string, error) {
	switch contentType {
	case mimePDF, mimeDoc, mimeDocx, mimeText:
	default:
		return "", fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, contentType)
	}

	f, err := os.CreateTemp(e.stagingDir, "semdex-upload-*")
	if err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}
	defer func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	}()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if contentType == mimeText {
		return string(data), nil
	}

	res, err := docconv.Convert(f, contentType, false)
	if err != nil {
		return "", &core.ExtractionError{ContentType: contentType, Err: err}
	}
	return res.Body, nil
}
