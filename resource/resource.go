// Package resource implements read-only views over the JSON:API
// resource objects returned by the Kitsu API.
//
// Every accessor is total: a missing key, a null or a wrongly typed
// attribute yields an absent mo.Option (or a documented default),
// never a failure. The only erroring paths are constructing a model
// from a payload that is not a JSON object and the live relationship
// fetch of Anime.Genres.
package resource

import (
	"context"
	"strconv"
	"time"

	"github.com/samber/mo"
)

// Session is a non-owning handle back to the client that fetched a
// resource, used only to resolve relationships lazily. Models never
// mutate it and may outlive it.
type Session interface {
	// AnimeGenres fetches the genres sub-resource of an anime.
	AnimeGenres(ctx context.Context, animeID string, includeNSFW bool) ([]*Genre, error)
}

// Error is a general error for resource operations.
type Error string

func (e Error) Error() string {
	return "resource: " + string(e)
}

// ErrNoSession is returned by relationship fetches on models that
// were constructed without a Session. This is a usage error of the
// caller, not malformed data.
const ErrNoSession = Error("resource was constructed without a session")

// lookup reads key from m; absent on a missing key, null value or
// mismatched type.
func lookup[T any](m map[string]any, key string) mo.Option[T] {
	raw, ok := m[key]
	if !ok || raw == nil {
		return mo.None[T]()
	}
	v, ok := raw.(T)
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// lookupInt is lookup for integers, accepting JSON numbers and
// numeric strings.
func lookupInt(m map[string]any, key string) mo.Option[int] {
	raw, ok := m[key]
	if !ok || raw == nil {
		return mo.None[int]()
	}
	switch v := raw.(type) {
	case float64:
		return mo.Some(int(v))
	case int:
		return mo.Some(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return mo.None[int]()
		}
		return mo.Some(n)
	}
	return mo.None[int]()
}

// lookupFloat is lookup for floats, accepting JSON numbers and
// numeric strings (kitsu serializes averageRating as a string).
func lookupFloat(m map[string]any, key string) mo.Option[float64] {
	raw, ok := m[key]
	if !ok || raw == nil {
		return mo.None[float64]()
	}
	switch v := raw.(type) {
	case float64:
		return mo.Some(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return mo.None[float64]()
		}
		return mo.Some(f)
	}
	return mo.None[float64]()
}

// timeLayouts accepted by lookupTime: full ISO 8601 timestamps
// (createdAt, updatedAt) and plain dates (startDate, airdate).
var timeLayouts = []string{time.RFC3339, "2006-01-02"}

// lookupTime is lookup for timestamps and plain dates.
func lookupTime(m map[string]any, key string) mo.Option[time.Time] {
	s, ok := lookup[string](m, key).Get()
	if !ok {
		return mo.None[time.Time]()
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return mo.Some(t)
		}
	}
	return mo.None[time.Time]()
}

// attributes of a resource object. Returns nil (safe to index) when
// missing or malformed.
func attributes(payload map[string]any) map[string]any {
	attrs, _ := payload["attributes"].(map[string]any)
	return attrs
}

// primaryResource unwraps a response envelope into its primary
// resource object, accepting a bare resource object as well.
// Errors when the result is not a JSON object.
func primaryResource(document any) (map[string]any, error) {
	payload, ok := document.(map[string]any)
	if !ok {
		return nil, Error("payload is not a JSON object")
	}
	if data, ok := payload["data"].(map[string]any); ok {
		return data, nil
	}
	return payload, nil
}

// includedResources collects the sibling included array of a
// response envelope, if any.
func includedResources(document any) []map[string]any {
	payload, ok := document.(map[string]any)
	if !ok {
		return nil
	}
	items, ok := payload["included"].([]any)
	if !ok {
		return nil
	}
	var included []map[string]any
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			included = append(included, m)
		}
	}
	return included
}

// cloneValue deep-copies a decoded JSON value, so each model owns an
// exclusive snapshot of its payload.
func cloneValue(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		return cloneMap(vv)
	case []any:
		s := make([]any, len(vv))
		for i, item := range vv {
			s[i] = cloneValue(item)
		}
		return s
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = cloneValue(v)
	}
	return c
}
