package parser_test

import (
	"errors"
	"io"
	"strings"

	"github.com/es-debug/nginx-log-analyzer/internal/domain"
)

var errDiskGone = errors.New("disk gone")

// recorder collects accumulated records in order.
type recorder struct {
	records []domain.LogRecord
}

func (r *recorder) Accumulate(record domain.LogRecord) {
	r.records = append(r.records, record)
}

// brokenReader yields content and then fails.
type brokenReader struct {
	r io.Reader
}

func newBrokenReader(content string) *brokenReader {
	return &brokenReader{r: strings.NewReader(content)}
}

func (b *brokenReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if errors.Is(err, io.EOF) {
		return n, errDiskGone
	}

	return n, err
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
