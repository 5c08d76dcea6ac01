package resource

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

// Episode is a read-only view over an episode resource object.
//
// Built once from a payload snapshot, never mutated afterwards.
type Episode struct {
	payload map[string]any
}

// NewEpisode builds an Episode from a response envelope ({data}) or
// a bare resource object.
func NewEpisode(document any) (*Episode, error) {
	payload, err := primaryResource(document)
	if err != nil {
		return nil, err
	}
	return &Episode{payload: cloneMap(payload)}, nil
}

// String is the short representation of the episode.
func (e *Episode) String() string {
	return fmt.Sprintf("%s [%s]", e.CanonicalTitle().OrElse("Unknown Episode"), e.ID())
}

func (e *Episode) attrs() map[string]any {
	return attributes(e.payload)
}

func (e *Episode) titles() map[string]any {
	titles, _ := e.attrs()["titles"].(map[string]any)
	return titles
}

// titleOrFallback keeps a non-empty resolved title, otherwise
// synthesizes "Episode {number}" when the number is known.
func (e *Episode) titleOrFallback(title mo.Option[string]) mo.Option[string] {
	if t, ok := title.Get(); ok && t != "" {
		return mo.Some(t)
	}
	if number, ok := e.Number().Get(); ok {
		return mo.Some(fmt.Sprintf("Episode %d", number))
	}
	return mo.None[string]()
}

// ID of the episode, empty string when absent.
func (e *Episode) ID() string {
	return lookup[string](e.payload, "id").OrElse("")
}

func (e *Episode) CreatedAt() mo.Option[time.Time] {
	return lookupTime(e.attrs(), "createdAt")
}

func (e *Episode) UpdatedAt() mo.Option[time.Time] {
	return lookupTime(e.attrs(), "updatedAt")
}

func (e *Episode) Synopsis() mo.Option[string] {
	return lookup[string](e.attrs(), "synopsis")
}

func (e *Episode) Description() mo.Option[string] {
	return lookup[string](e.attrs(), "description")
}

// EnglishTitle is the en_us locale title, "Episode {number}" when no
// localized title exists.
func (e *Episode) EnglishTitle() mo.Option[string] {
	return e.titleOrFallback(lookup[string](e.titles(), "en_us"))
}

// JapaneseTitle is the en_jp locale title, "Episode {number}" when
// no localized title exists.
func (e *Episode) JapaneseTitle() mo.Option[string] {
	return e.titleOrFallback(lookup[string](e.titles(), "en_jp"))
}

// RomajiTitle is the ja_jp locale title, "Episode {number}" when no
// localized title exists.
func (e *Episode) RomajiTitle() mo.Option[string] {
	return e.titleOrFallback(lookup[string](e.titles(), "ja_jp"))
}

// CanonicalTitle of the episode, "Episode {number}" when no
// canonical title exists.
func (e *Episode) CanonicalTitle() mo.Option[string] {
	return e.titleOrFallback(lookup[string](e.attrs(), "canonicalTitle"))
}

func (e *Episode) Season() mo.Option[int] {
	return lookupInt(e.attrs(), "seasonNumber")
}

func (e *Episode) Number() mo.Option[int] {
	return lookupInt(e.attrs(), "number")
}

// RelativeNumber of the episode within its season.
func (e *Episode) RelativeNumber() mo.Option[int] {
	return lookupInt(e.attrs(), "relativeNumber")
}

func (e *Episode) AirDate() mo.Option[time.Time] {
	return lookupTime(e.attrs(), "airdate")
}

// Length of the episode in minutes.
func (e *Episode) Length() mo.Option[int] {
	return lookupInt(e.attrs(), "length")
}

// Thumbnail is the original-size thumbnail URL.
func (e *Episode) Thumbnail() mo.Option[string] {
	thumbnail, ok := lookup[map[string]any](e.attrs(), "thumbnail").Get()
	if !ok {
		return mo.None[string]()
	}
	return lookup[string](thumbnail, "original")
}

// Raw returns a copy of the primary resource object snapshot.
func (e *Episode) Raw() map[string]any {
	return cloneMap(e.payload)
}
