package datazone

import "context"

// PageFunc fetches the page that starts at nextToken. The first call gets "".
type PageFunc[T any] func(ctx context.Context, nextToken string) (Page[T], error)

// Drain calls fetch until a page comes back without a NextToken and returns every item.
func Drain[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	var (
		items []T
		token string
	)
	for {
		if err := ctx.Err(); err != nil {
			return items, err
		}
		page, err := fetch(ctx, token)
		if err != nil {
			return items, err
		}
		items = append(items, page.Items...)
		if page.NextToken == "" || page.NextToken == token {
			return items, nil
		}
		token = page.NextToken
	}
}
