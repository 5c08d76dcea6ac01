package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func episodePayload() map[string]any {
	return map[string]any{
		"id":   "28",
		"type": "episodes",
		"attributes": map[string]any{
			"createdAt":      "2013-02-20T16:00:25.722Z",
			"updatedAt":      "2023-08-01T11:30:00.000Z",
			"synopsis":       "Spike and Jet chase a bounty on an asteroid colony.",
			"canonicalTitle": "Asteroid Blues",
			"titles": map[string]any{
				"en_us": "Asteroid Blues",
				"en_jp": "Asteroid Blues",
				"ja_jp": "アステロイド・ブルース",
			},
			"seasonNumber":   float64(1),
			"number":         float64(1),
			"relativeNumber": float64(1),
			"airdate":        "1998-10-24",
			"length":         float64(25),
			"thumbnail": map[string]any{
				"original": "https://media.kitsu.io/episodes/thumbnails/28/original.jpg",
			},
		},
	}
}

func TestEpisodeAccessors(t *testing.T) {
	episode, err := NewEpisode(episodePayload())
	require.NoError(t, err)

	assert.Equal(t, "28", episode.ID())
	assert.Equal(t, "Asteroid Blues", episode.CanonicalTitle().MustGet())
	assert.Equal(t, "Asteroid Blues", episode.EnglishTitle().MustGet())
	assert.Equal(t, "アステロイド・ブルース", episode.RomajiTitle().MustGet())
	assert.Equal(t, 1, episode.Season().MustGet())
	assert.Equal(t, 1, episode.Number().MustGet())
	assert.Equal(t, 1, episode.RelativeNumber().MustGet())
	assert.Equal(t, 25, episode.Length().MustGet())
	assert.True(t, episode.AirDate().MustGet().Equal(time.Date(1998, 10, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t,
		"https://media.kitsu.io/episodes/thumbnails/28/original.jpg",
		episode.Thumbnail().MustGet(),
	)
}

func TestEpisodeTitleFallback(t *testing.T) {
	episode, err := NewEpisode(map[string]any{
		"id": "5",
		"attributes": map[string]any{
			"number": float64(5),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Episode 5", episode.CanonicalTitle().MustGet())
	assert.Equal(t, "Episode 5", episode.EnglishTitle().MustGet())
	assert.Equal(t, "Episode 5", episode.JapaneseTitle().MustGet())
	assert.Equal(t, "Episode 5", episode.RomajiTitle().MustGet())
}

func TestEpisodeTitleFallbackWithoutNumber(t *testing.T) {
	episode, err := NewEpisode(map[string]any{"id": "5"})
	require.NoError(t, err)

	assert.True(t, episode.CanonicalTitle().IsAbsent())
	assert.True(t, episode.EnglishTitle().IsAbsent())
	assert.True(t, episode.Season().IsAbsent())
	assert.True(t, episode.AirDate().IsAbsent())
	assert.True(t, episode.Thumbnail().IsAbsent())
}

func TestEpisodeRawRoundTrip(t *testing.T) {
	payload := episodePayload()
	episode, err := NewEpisode(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, episode.Raw())
}

func TestEpisodeInvalidPayload(t *testing.T) {
	_, err := NewEpisode("not a mapping")
	assert.Error(t, err)
}
