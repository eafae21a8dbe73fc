package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	line string
	ok   bool
	err  error
}

// lineReader reads one line per request on its own goroutine, so a blocked
// read never keeps the form from noticing a cancelled context. At most one
// request is outstanding, so resp never holds more than one result.
type lineReader struct {
	req  chan struct{}
	resp chan lineResult
	done chan struct{}
	once sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{
		req:  make(chan struct{}),
		resp: make(chan lineResult, 1),
		done: make(chan struct{}),
	}
	br := bufio.NewReader(r)
	go func() {
		for {
			select {
			case <-lr.done:
				return
			case <-lr.req:
			}
			s, err := br.ReadString('\n')
			switch {
			case err == io.EOF && s == "":
				lr.resp <- lineResult{}
			case err != nil && err != io.EOF:
				lr.resp <- lineResult{err: err}
			default:
				lr.resp <- lineResult{line: strings.TrimRight(s, "\r\n"), ok: true}
			}
		}
	}()
	return lr
}

// next returns the next input line. ok is false once input is closed, the
// reader is closed or ctx is done.
func (lr *lineReader) next(ctx context.Context) (string, bool, error) {
	if ctx.Err() != nil {
		return "", false, nil
	}
	select {
	case <-ctx.Done():
		return "", false, nil
	case <-lr.done:
		return "", false, nil
	case lr.req <- struct{}{}:
	}
	select {
	case <-ctx.Done():
		return "", false, nil
	case r := <-lr.resp:
		return r.line, r.ok, r.err
	}
}

// close stops the reader goroutine. A read already blocked on the underlying
// reader finishes first.
func (lr *lineReader) close() {
	lr.once.Do(func() { close(lr.done) })
}
