package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/es-debug/nginx-log-analyzer/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	sizeAbsent        = "-"
	initialBufferSize = 4096
)

// Sink receives every record that matched the log format, in input order.
type Sink interface {
	Accumulate(record domain.LogRecord)
}

// line is one raw input line with its 1-based position.
type line struct {
	text   string
	number int
}

// Result describes one pass over the input.
type Result struct {
	Lines    int
	Accepted int
	Skipped  int
}

type Parser struct {
	regex  *regexp.Regexp
	params Params
}

func NewParser(params ...Params) *Parser {
	regex := regexp.MustCompile(
		`^([0-9A-Fa-f:.]+) - (\S+) \[([^\]]+)\] "([^\s"]+) ([^\s"]+) ([^"]+)" (\d+) (\d+|-) "([^"]*)" "([^"]*)"`,
	)

	var p Params
	if len(params) > 0 {
		p = params[0]
	}

	return &Parser{
		regex:  regex,
		params: p.withDefaults(),
	}
}

// ParseLine extracts a record from one raw log line. It returns ErrNoMatch
// when the line is not in the combined log format.
func (p *Parser) ParseLine(text string) (domain.LogRecord, error) {
	matches := p.regex.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return domain.LogRecord{}, ErrNoMatch
	}

	record := domain.LogRecord{
		ClientAddress:     matches[1],
		AuthenticatedUser: matches[2],
		Timestamp:         matches[3],
		Method:            matches[4],
		Path:              matches[5],
		Protocol:          matches[6],
		StatusCode:        matches[7],
		Referrer:          matches[9],
		UserAgent:         matches[10],
	}

	if matches[8] != sizeAbsent {
		// Digits too long for int64 count as an absent size.
		if size, err := strconv.ParseInt(matches[8], 10, 64); err == nil {
			record.ResponseSize = size
			record.HasResponseSize = true
		}
	}

	return record, nil
}

func (p *Parser) processLines(ctx context.Context, lines <-chan line, sink Sink, res *Result) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case curLine, ok := <-lines:
			if !ok {
				return nil
			}

			res.Lines = curLine.number

			record, err := p.ParseLine(curLine.text)
			if err != nil {
				res.Skipped++
				continue
			}

			res.Accepted++
			sink.Accumulate(record)
		}
	}
}

func (p *Parser) read(ctx context.Context, in io.Reader, lines chan<- line) error {
	lineNumber := 0
	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 0, min(initialBufferSize, p.params.MaxLineSize)), p.params.MaxLineSize)

	for scan.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		lineNumber++

		select {
		case lines <- line{text: scan.Text(), number: lineNumber}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := scan.Err(); err != nil {
		return NewErrRead(lineNumber, err)
	}

	return nil
}

// Parse reads in to the end, handing every matching line to sink. Lines that
// do not match are counted as skipped. Reading and accumulation run as two
// stages of one pipeline; sink is only ever called from a single goroutine.
func (p *Parser) Parse(ctx context.Context, in io.Reader, sink Sink) (Result, error) {
	var res Result

	eg, ctx := errgroup.WithContext(ctx)
	linesChan := make(chan line, p.params.LineBuffer)

	eg.Go(func() error {
		defer close(linesChan)

		return p.read(ctx, in, linesChan)
	})

	eg.Go(func() error {
		return p.processLines(ctx, linesChan, sink, &res)
	})

	if err := eg.Wait(); err != nil {
		return Result{}, fmt.Errorf("eg.Wait(): %w", err)
	}

	return res, nil
}
