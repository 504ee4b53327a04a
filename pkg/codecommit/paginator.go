package codecommit

import (
	"context"

	"github.com/bravo68web/codecommit/pkg/errors"
)

// Paginator walks the pages of a list operation. It is not safe for
// concurrent use.
type Paginator[T any] struct {
	fetch     func(ctx context.Context, token *string) (*T, *string, error)
	nextToken *string
	done      bool
}

func newPaginator[T any](start *string, fetch func(ctx context.Context, token *string) (*T, *string, error)) *Paginator[T] {
	return &Paginator[T]{fetch: fetch, nextToken: start}
}

// HasMorePages reports whether NextPage may return another page.
func (p *Paginator[T]) HasMorePages() bool {
	return !p.done
}

// NextPage fetches the next page. Iteration ends when the service returns no
// token, an empty token, or the token that was just sent. A failed call
// leaves the paginator positioned on the same page so it can be retried.
func (p *Paginator[T]) NextPage(ctx context.Context) (*T, error) {
	if p.done {
		return nil, errors.InvalidArgument("paginator", "no more pages")
	}

	page, next, err := p.fetch(ctx, p.nextToken)
	if err != nil {
		return nil, err
	}

	prev := p.nextToken
	p.nextToken = next
	if next == nil || *next == "" || (prev != nil && *prev == *next) {
		p.done = true
	}
	return page, nil
}
