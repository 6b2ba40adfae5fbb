package store

import "context"

const msgFeedFailed = "failed to load order feed"

// FetchFeed replaces the public feed and its counters in one step.
func (s *Store) FetchFeed(ctx context.Context) error {
	n := s.begin(opFeed)

	feed, err := s.client.GetFeed(ctx)
	if err != nil {
		return s.fail(ctx, opFeed, n, err, msgFeedFailed)
	}

	s.finish(ctx, opFeed, n, feedLoaded{feed: *feed})
	s.log.Debug(ctx, "feed loaded", "orders", len(feed.Orders), "total", feed.Total)
	return nil
}
