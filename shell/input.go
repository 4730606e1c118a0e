// SPDX-License-Identifier: MIT

package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"unicode"
)

type readOp int

const (
	opNext readOp = iota
	opDiscard
)

type readResult struct {
	tok string
	err error
}

// tokenReader splits input into whitespace-separated tokens while keeping
// line boundaries available, so a bad entry can drop the rest of its line.
//
// Reads happen on a single background goroutine so a caller blocked on input
// can still observe context cancellation. A cancelled read stops the reader;
// every later call reports io.EOF.
type tokenReader struct {
	r       *bufio.Reader
	reqs    chan readOp
	results chan readResult
	done    chan struct{}
	start   sync.Once
	halt    sync.Once
}

func newTokenReader(in io.Reader) *tokenReader {
	return &tokenReader{
		r:       bufio.NewReader(in),
		reqs:    make(chan readOp),
		results: make(chan readResult, 1),
		done:    make(chan struct{}),
	}
}

// next returns the next token. It returns io.EOF only when no token remains.
func (t *tokenReader) next(ctx context.Context) (string, error) {
	return t.do(ctx, opNext)
}

// discard drops everything up to and including the next newline.
func (t *tokenReader) discard(ctx context.Context) error {
	_, err := t.do(ctx, opDiscard)

	return err
}

// stop releases the background goroutine once its pending read returns.
func (t *tokenReader) stop() {
	t.halt.Do(func() { close(t.done) })
}

func (t *tokenReader) do(ctx context.Context, op readOp) (string, error) {
	t.start.Do(func() { go t.loop() })

	select {
	case t.reqs <- op:
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.done:
		return "", io.EOF
	}

	select {
	case res := <-t.results:
		return res.tok, res.err
	case <-ctx.Done():
		// the pending result would answer the wrong request
		t.stop()
		return "", ctx.Err()
	case <-t.done:
		return "", io.EOF
	}
}

func (t *tokenReader) loop() {
	for {
		select {
		case op := <-t.reqs:
			var res readResult
			if op == opNext {
				res.tok, res.err = t.readToken()
			} else {
				_, _ = t.r.ReadString('\n')
			}
			select {
			case t.results <- res:
			case <-t.done:
				return
			}
		case <-t.done:
			return
		}
	}
}

func (t *tokenReader) readToken() (string, error) {
	var b strings.Builder
	for {
		r, _, err := t.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 {
				continue
			}
			// leave the separator so discard still sees the newline
			_ = t.r.UnreadRune()
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}
