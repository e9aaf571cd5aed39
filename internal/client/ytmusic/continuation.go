package ytmusic

import "context"

// PageIterator walks a paginated result set item by item, fetching further
// pages lazily through the supplied page function. Nothing is cached: each
// page is fetched once, handed out item by item and then released, so the
// caller decides how much of the sequence to pull.
type PageIterator[T any] struct {
	// next fetches the page after prior, normally one of the client's
	// Next*Page methods.
	next func(ctx context.Context, prior Page[T]) (Page[T], error)
	// current is the page whose items are being handed out.
	current Page[T]
	// index points at the next unread item of the current page.
	index int
	// done is set once the terminal page has been fully consumed.
	done bool
}

// NewPageIterator builds an iterator over first and every page after it.
// The page function is usually a method value such as
// client.NextLibraryPlaylistsPage.
func NewPageIterator[T any](
	first Page[T],
	next func(ctx context.Context, prior Page[T]) (Page[T], error),
) *PageIterator[T] {
	return &PageIterator[T]{next: next, current: first}
}

// ResumePoint rebuilds a page boundary from a retained continuation token,
// so iteration can restart from any point whose token the caller kept.
// The resulting page has no items of its own; iteration begins at the page
// the token points to.
func ResumePoint[T any](token *ContinuationToken) Page[T] {
	return Page[T]{Continuation: token}
}

// Next returns the next item of the sequence. The boolean reports whether
// an item was produced; it is false once the sequence is exhausted or an
// error occurred. Exhaustion is not an error.
func (it *PageIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	for {
		if it.done {
			return zero, false, nil
		}

		if it.index < len(it.current.Items) {
			item := it.current.Items[it.index]
			it.index++

			return item, true, nil
		}

		if it.current.Continuation == nil {
			it.done = true

			return zero, false, nil
		}

		page, err := it.next(ctx, it.current)
		if err != nil {
			it.done = true

			return zero, false, err
		}

		it.current = page
		it.index = 0
	}
}

// Continuation returns the cursor of the page currently being consumed,
// or nil on the terminal page. Retaining it allows a later ResumePoint.
func (it *PageIterator[T]) Continuation() *ContinuationToken {
	return it.current.Continuation
}
