package store

import "context"

const msgCatalogFailed = "failed to load ingredients"

// FetchCatalog replaces the ingredient list with the backend's.
func (s *Store) FetchCatalog(ctx context.Context) error {
	n := s.begin(opCatalog)

	items, err := s.client.GetIngredients(ctx)
	if err != nil {
		return s.fail(ctx, opCatalog, n, err, msgCatalogFailed)
	}

	s.finish(ctx, opCatalog, n, catalogLoaded{items: items})
	s.log.Debug(ctx, "catalog loaded", "count", len(items))
	return nil
}
