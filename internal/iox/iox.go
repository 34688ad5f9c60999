// Package iox contains io extensions.
package iox

import (
	"context"
	"errors"
	"io"
)

// ReadAllContext is like io.ReadAll but reads r in a
// background goroutine. This function will return
// earlier if the context is cancelled. In which case
// we will continue reading from the reader in the background
// goroutine, and we will discard the result. To stop
// the long-running goroutine, close the body bound to
// the reader.
//
// Unlike io.ReadAll, a wrapped io.EOF is not an error.
func ReadAllContext(ctx context.Context, r io.Reader) ([]byte, error) {
	datach, errch := make(chan []byte, 1), make(chan error, 1) // buffers
	go func() {
		data, err := io.ReadAll(r)
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if err != nil {
			errch <- err
			return
		}
		datach <- data
	}()
	select {
	case data := <-datach:
		return data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-errch:
		return nil, err
	}
}

// ErrBodyTooLarge indicates that a body exceeded the configured limit.
var ErrBodyTooLarge = errors.New("iox: body too large")

// ReadAllLimited is like ReadAllContext but fails with ErrBodyTooLarge
// when r contains more than limit bytes. A limit <= 0 means no limit.
func ReadAllLimited(ctx context.Context, r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return ReadAllContext(ctx, r)
	}
	// read one extra byte so we can tell truncation from an exact fit
	data, err := ReadAllContext(ctx, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrBodyTooLarge
	}
	return data, nil
}
