package mock

import (
	"context"

	"github.com/fwojciec/mread"
)

var _ mread.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of mread.ArticleStore.
type ArticleStore struct {
	SaveFn func(ctx context.Context, filename, content string) (string, error)
}

func (s *ArticleStore) Save(ctx context.Context, filename, content string) (string, error) {
	return s.SaveFn(ctx, filename, content)
}

var _ mread.Opener = (*Opener)(nil)

// Opener is a mock implementation of mread.Opener.
type Opener struct {
	OpenFn func(path string) error
}

func (o *Opener) Open(path string) error {
	return o.OpenFn(path)
}
