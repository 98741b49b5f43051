package core

import "context"

// TextExtractor turns raw file bytes into a single text string. The
// contentType hint selects the parsing strategy; unrecognized types fail
// with ErrUnsupportedFormat before any parsing is attempted.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, contentType string) (string, error)
}
