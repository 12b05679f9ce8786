package parser

const (
	// DefaultMaxLineSize is the longest line, in bytes, the reader accepts.
	DefaultMaxLineSize = 1024 * 1024

	defaultLineBuffer = 1024
)

type Params struct {
	MaxLineSize int
	LineBuffer  int
}

func (p Params) withDefaults() Params {
	if p.MaxLineSize <= 0 {
		p.MaxLineSize = DefaultMaxLineSize
	}

	if p.LineBuffer <= 0 {
		p.LineBuffer = defaultLineBuffer
	}

	return p
}
