package export

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/dpbr/dpbr-client/internal/logging"
)

var unsafeFilenameRunes = regexp.MustCompile(`[^a-zA-Z0-9가-힣_-]`)

// GenerateFilename makes a download-safe PNG name: every rune outside
// ASCII letters, digits, Hangul syllables, '-' and '_' becomes '-', and the
// Unix millisecond timestamp is appended.
func GenerateFilename(base string, now time.Time) string {
	if base == "" {
		base = "export"
	}
	return fmt.Sprintf("%s-%d.png", unsafeFilenameRunes.ReplaceAllString(base, "-"), now.UnixMilli())
}

// Exporter renders cards and stores them through a Sink.
type Exporter struct {
	renderer *Renderer
	sink     Sink
	log      logging.Logger
	now      func() time.Time
}

func NewExporter(r *Renderer, sink Sink, log logging.Logger) *Exporter {
	if log == nil {
		log = logging.Discard()
	}
	return &Exporter{renderer: r, sink: sink, log: log, now: time.Now}
}

// Export renders card and saves it under a name derived from base. It
// returns the sink location.
func (e *Exporter) Export(ctx context.Context, card Card, base string) (string, error) {
	img, err := e.renderer.Render(ctx, card)
	if err != nil {
		return "", fmt.Errorf("render card: %w", err)
	}

	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}

	loc, err := e.sink.Save(ctx, GenerateFilename(base, e.now()), data)
	if err != nil {
		e.log.Error(ctx, "export failed", "name", base, "err", err)
		return "", err
	}

	e.log.Info(ctx, "card exported", "location", loc, "bytes", len(data))
	return loc, nil
}
