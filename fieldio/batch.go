package fieldio

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchEncode encodes every field concurrently and returns their encoded
// buffers in the same order. If any Encode call fails, BatchEncode returns
// the first error encountered and cancels the remaining work.
func BatchEncode(fields []Field) ([][]byte, error) {
	out := make([][]byte, len(fields))
	g, ctx := errgroup.WithContext(context.Background())
	for i, f := range fields {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			encoded, err := Encode(f)
			if err != nil {
				return err
			}
			out[i] = encoded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
