/*
Package redislist streams the elements of a Redis list.

A Source reads the list with paged LRANGE requests and implements
stream.Producer[string], so it can feed any stream pipeline:

	src, err := redislist.New(ctx, redislist.Config{
		Client:       client,
		Key:          "orders:pending",
		PageSize:     500,
		FetchTimeout: 2 * time.Second,
	})
	if err != nil {
		return err
	}

	large := src.Stream().
		Filter(func(order string) bool { return len(order) > 64 }).
		Count()
	if err := src.Err(); err != nil {
		return err
	}

Pulls never fail. When a fetch fails the Source logs the failure, ends the
stream, and keeps the error for Err; check it once the pipeline returns, the
same way as with bufio.Scanner. Err wraps errors.ErrSourceFailed and the
underlying *errors.OperationError:

	if errors.IsSourceFailure(src.Err()) {
		// retry with a new Source
	}

The list is read at the offsets it had when each page was fetched. Elements
pushed or removed while a Source is being consumed can shift the window, so
readers that need a consistent view should consume a list that is no longer
written to.
*/
package redislist
