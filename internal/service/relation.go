package service

import "context"

// Attach resolves the secondaries of a page of primaries with one lookup and
// joins each primary with its group. lookup loads every secondary whose
// foreign key is in ids. key reports the id a primary is looked
// up by (ok == false means it has none); foreignKey reports the primary id a
// secondary belongs to. A primary without matches is joined with an empty,
// non-nil slice. The lookup runs even for an empty page.
func Attach[P, S, O any](
	ctx context.Context,
	primaries []P,
	key func(P) (int, bool),
	lookup func(ctx context.Context, ids []int) ([]S, error),
	foreignKey func(S) int,
	join func(P, []S) O,
) ([]O, error) {
	ids := make([]int, 0, len(primaries))
	seen := make(map[int]bool, len(primaries))
	for _, p := range primaries {
		id, ok := key(p)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	secondaries, err := lookup(ctx, ids)
	if err != nil {
		return nil, err
	}

	groups := GroupBy(secondaries, foreignKey)

	out := make([]O, 0, len(primaries))
	for _, p := range primaries {
		group := []S{}
		if id, ok := key(p); ok && groups[id] != nil {
			group = groups[id]
		}
		out = append(out, join(p, group))
	}

	return out, nil
}

// GroupBy buckets items by key, keeping their order within each bucket.
func GroupBy[S any](items []S, key func(S) int) map[int][]S {
	groups := make(map[int][]S)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}
