package loader

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/openapi-merge/config"
	"github.com/erraggy/openapi-merge/document"
)

// MaxConcurrentFetches bounds how many inputs LoadAll loads at once. Local
// file reads are cheap enough to not need bounding, but a configuration of
// many URL inputs should not open unbounded concurrent connections.
const MaxConcurrentFetches = 4

// LoadAll loads every configured input concurrently (bounded by
// MaxConcurrentFetches) and returns the resulting documents in the same
// order as cfg.Inputs. The engine itself stays single-threaded and
// synchronous; concurrency lives only here, at the external collaborator
// layer, before any document reaches the merge engine.
func LoadAll(ctx context.Context, inputs []config.InputConfig) ([]*document.Document, error) {
	docs := make([]*document.Document, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentFetches)

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			doc, err := Load(ctx, in)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
