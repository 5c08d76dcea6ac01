package resource

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"
)

// Subtype of an anime.
type Subtype string

const (
	SubtypeONA     Subtype = "ONA"
	SubtypeOVA     Subtype = "OVA"
	SubtypeTV      Subtype = "TV"
	SubtypeMovie   Subtype = "movie"
	SubtypeMusic   Subtype = "music"
	SubtypeSpecial Subtype = "special"
)

// Status is the airing status of an anime.
type Status string

const (
	StatusCurrent    Status = "current"
	StatusFinished   Status = "finished"
	StatusTBA        Status = "tba"
	StatusUnreleased Status = "unreleased"
	StatusUpcoming   Status = "upcoming"
)

// AgeRating of an anime.
type AgeRating string

const (
	AgeRatingG   AgeRating = "G"
	AgeRatingPG  AgeRating = "PG"
	AgeRatingR   AgeRating = "R"
	AgeRatingR18 AgeRating = "R18"
)

// ImageSize is a size variant of the poster/cover image maps.
type ImageSize string

const (
	ImageSizeTiny     ImageSize = "tiny"
	ImageSizeSmall    ImageSize = "small"
	ImageSizeMedium   ImageSize = "medium"
	ImageSizeLarge    ImageSize = "large"
	ImageSizeOriginal ImageSize = "original"
)

// titlePriority is the fixed locale order for Title resolution.
var titlePriority = []string{"en", "en_jp", "ja_jp"}

// Anime is a read-only view over an anime resource object.
//
// Built once from a payload snapshot, never mutated afterwards.
type Anime struct {
	payload  map[string]any
	included []map[string]any
	session  Session
}

// NewAnime builds an Anime from a response envelope ({data, included})
// or a bare resource object.
//
// session may be nil, in which case Genres can only be resolved from
// the included array.
func NewAnime(document any, session Session) (*Anime, error) {
	payload, err := primaryResource(document)
	if err != nil {
		return nil, err
	}

	var included []map[string]any
	for _, item := range includedResources(document) {
		included = append(included, cloneMap(item))
	}

	return &Anime{
		payload:  cloneMap(payload),
		included: included,
		session:  session,
	}, nil
}

// String is the short representation of the anime.
func (a *Anime) String() string {
	return fmt.Sprintf("%s [%s]", a.Title().OrElse("Unknown Anime"), a.ID())
}

func (a *Anime) attrs() map[string]any {
	return attributes(a.payload)
}

func (a *Anime) titles() map[string]any {
	titles, _ := a.attrs()["titles"].(map[string]any)
	return titles
}

// ID of the anime, empty string when absent.
func (a *Anime) ID() string {
	return lookup[string](a.payload, "id").OrElse("")
}

func (a *Anime) CreatedAt() mo.Option[time.Time] {
	return lookupTime(a.attrs(), "createdAt")
}

func (a *Anime) UpdatedAt() mo.Option[time.Time] {
	return lookupTime(a.attrs(), "updatedAt")
}

func (a *Anime) Slug() mo.Option[string] {
	return lookup[string](a.attrs(), "slug")
}

func (a *Anime) Synopsis() mo.Option[string] {
	return lookup[string](a.attrs(), "synopsis")
}

// Title resolves the display title: the first non-empty locale title
// in the order en, en_jp, ja_jp, falling back to the canonical title.
func (a *Anime) Title() mo.Option[string] {
	titles := a.titles()
	for _, locale := range titlePriority {
		if title, ok := lookup[string](titles, locale).Get(); ok && title != "" {
			return mo.Some(title)
		}
	}
	return a.CanonicalTitle()
}

// JapaneseTitle is the en_jp locale title.
func (a *Anime) JapaneseTitle() mo.Option[string] {
	return lookup[string](a.titles(), "en_jp")
}

// RomajiTitle is the ja_jp locale title.
func (a *Anime) RomajiTitle() mo.Option[string] {
	return lookup[string](a.titles(), "ja_jp")
}

func (a *Anime) CanonicalTitle() mo.Option[string] {
	return lookup[string](a.attrs(), "canonicalTitle")
}

// AbbreviatedTitles that are known. Empty when absent.
func (a *Anime) AbbreviatedTitles() []string {
	items, ok := lookup[[]any](a.attrs(), "abbreviatedTitles").Get()
	if !ok {
		return nil
	}
	var titles []string
	for _, item := range items {
		if title, ok := item.(string); ok {
			titles = append(titles, title)
		}
	}
	return titles
}

// AverageRating is the community rating, between 0 and 100.
func (a *Anime) AverageRating() mo.Option[float64] {
	return lookupFloat(a.attrs(), "averageRating")
}

// RatingFrequencies maps each rating bucket to its vote count.
func (a *Anime) RatingFrequencies() mo.Option[map[string]string] {
	raw, ok := lookup[map[string]any](a.attrs(), "ratingFrequencies").Get()
	if !ok {
		return mo.None[map[string]string]()
	}
	frequencies := make(map[string]string, len(raw))
	for bucket, count := range raw {
		if s, ok := count.(string); ok {
			frequencies[bucket] = s
		}
	}
	return mo.Some(frequencies)
}

func (a *Anime) UserCount() mo.Option[int] {
	return lookupInt(a.attrs(), "userCount")
}

func (a *Anime) FavoritesCount() mo.Option[int] {
	return lookupInt(a.attrs(), "favoritesCount")
}

func (a *Anime) StartDate() mo.Option[time.Time] {
	return lookupTime(a.attrs(), "startDate")
}

func (a *Anime) EndDate() mo.Option[time.Time] {
	return lookupTime(a.attrs(), "endDate")
}

func (a *Anime) PopularityRank() mo.Option[int] {
	return lookupInt(a.attrs(), "popularityRank")
}

func (a *Anime) RatingRank() mo.Option[int] {
	return lookupInt(a.attrs(), "ratingRank")
}

func (a *Anime) AgeRating() mo.Option[AgeRating] {
	rating, ok := lookup[string](a.attrs(), "ageRating").Get()
	if !ok {
		return mo.None[AgeRating]()
	}
	return mo.Some(AgeRating(rating))
}

func (a *Anime) AgeRatingGuide() mo.Option[string] {
	return lookup[string](a.attrs(), "ageRatingGuide")
}

func (a *Anime) Subtype() mo.Option[Subtype] {
	subtype, ok := lookup[string](a.attrs(), "subtype").Get()
	if !ok {
		return mo.None[Subtype]()
	}
	return mo.Some(Subtype(subtype))
}

func (a *Anime) Status() mo.Option[Status] {
	status, ok := lookup[string](a.attrs(), "status").Get()
	if !ok {
		return mo.None[Status]()
	}
	return mo.Some(Status(status))
}

// TBA is the free-form "to be announced" note.
func (a *Anime) TBA() mo.Option[string] {
	return lookup[string](a.attrs(), "tba")
}

// PosterImage is the poster image URL for the given size variant.
func (a *Anime) PosterImage(size ImageSize) mo.Option[string] {
	images, ok := lookup[map[string]any](a.attrs(), "posterImage").Get()
	if !ok {
		return mo.None[string]()
	}
	return lookup[string](images, string(size))
}

// CoverImage is the cover image URL for the given size variant.
func (a *Anime) CoverImage(size ImageSize) mo.Option[string] {
	images, ok := lookup[map[string]any](a.attrs(), "coverImage").Get()
	if !ok {
		return mo.None[string]()
	}
	return lookup[string](images, string(size))
}

func (a *Anime) EpisodeCount() mo.Option[int] {
	return lookupInt(a.attrs(), "episodeCount")
}

// EpisodeLength is the usual episode length in minutes.
func (a *Anime) EpisodeLength() mo.Option[int] {
	return lookupInt(a.attrs(), "episodeLength")
}

func (a *Anime) TotalLength() mo.Option[int] {
	return lookupInt(a.attrs(), "totalLength")
}

func (a *Anime) YoutubeVideoID() mo.Option[string] {
	return lookup[string](a.attrs(), "youtubeVideoId")
}

// NSFW reports whether the anime is marked not safe for work.
// Defaults to false when absent from the payload.
func (a *Anime) NSFW() bool {
	return lookup[bool](a.attrs(), "nsfw").OrElse(false)
}

// Episodes returns the episodes present in the included array.
//
// The include=episodes query parameter is required for the API to
// include them; otherwise this is empty.
func (a *Anime) Episodes() []*Episode {
	var episodes []*Episode
	for _, item := range a.included {
		if item["type"] == "episodes" {
			episodes = append(episodes, &Episode{payload: cloneMap(item)})
		}
	}
	return episodes
}

// Genres resolves the anime genres: from the included array when
// present, otherwise through a live relationship fetch on the owning
// session. Returns ErrNoSession when the anime was constructed
// without one.
func (a *Anime) Genres(ctx context.Context) ([]*Genre, error) {
	if genres := a.includedGenres(); len(genres) > 0 {
		return genres, nil
	}
	if a.session == nil {
		return nil, ErrNoSession
	}
	return a.session.AnimeGenres(ctx, a.ID(), false)
}

func (a *Anime) includedGenres() []*Genre {
	var genres []*Genre
	for _, item := range a.included {
		if item["type"] == "genres" {
			genres = append(genres, &Genre{payload: cloneMap(item)})
		}
	}
	return genres
}

// Raw returns a copy of the primary resource object snapshot.
func (a *Anime) Raw() map[string]any {
	return cloneMap(a.payload)
}
