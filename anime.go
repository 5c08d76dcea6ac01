package libkitsu

import (
	"context"
	"net/url"
	"strconv"

	"github.com/luevano/libkitsu/resource"
)

var _ resource.Session = (*Client)(nil)

// GetAnime gets a single anime by its numeric id.
//
// includeNSFW attaches the bearer token so NSFW-gated entries are
// visible; the request is anonymous otherwise.
func (c *Client) GetAnime(ctx context.Context, animeID int, includeNSFW bool) (*resource.Anime, error) {
	c.logger.Log("getting anime with id %d", animeID)
	document, err := c.get(ctx, "anime/"+strconv.Itoa(animeID), nil, includeNSFW)
	if err != nil {
		return nil, err
	}
	return resource.NewAnime(document, c)
}

// GetAnimeGenres gets the genres sub-resource of an anime.
func (c *Client) GetAnimeGenres(ctx context.Context, animeID int, includeNSFW bool) ([]*resource.Genre, error) {
	return c.AnimeGenres(ctx, strconv.Itoa(animeID), includeNSFW)
}

// AnimeGenres is the relationship fetch used to lazily resolve anime
// genres; it implements resource.Session.
func (c *Client) AnimeGenres(ctx context.Context, animeID string, includeNSFW bool) ([]*resource.Genre, error) {
	c.logger.Log("getting genres for anime with id %s", animeID)
	document, err := c.get(ctx, "anime/"+animeID+"/genres", nil, includeNSFW)
	if err != nil {
		return nil, err
	}

	data, _ := document["data"].([]any)
	genres := make([]*resource.Genre, 0, len(data))
	for _, item := range data {
		genre, err := resource.NewGenre(item)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	c.logger.Log("found %d genre(s) for anime with id %s", len(genres), animeID)
	return genres, nil
}

// SearchAnime searches for anime matching the text query, returning
// at most limit results. The result is a (possibly empty) list even
// when limit is 1.
func (c *Client) SearchAnime(ctx context.Context, query string, limit int, includeNSFW bool) ([]*resource.Anime, error) {
	c.logger.Log("searching anime with query %q", query)
	if limit < 1 {
		limit = 1
	}
	params := url.Values{}
	params.Set("filter[text]", query)
	params.Set("page[limit]", strconv.Itoa(limit))

	document, err := c.get(ctx, "anime", params, includeNSFW)
	if err != nil {
		return nil, err
	}

	animes, err := c.animeList(document)
	if err != nil {
		return nil, err
	}
	c.logger.Log("found %d anime for query %q", len(animes), query)
	return animes, nil
}

// TrendingAnime gets the currently trending anime.
func (c *Client) TrendingAnime(ctx context.Context) ([]*resource.Anime, error) {
	c.logger.Log("getting trending anime")
	document, err := c.get(ctx, "trending/anime", nil, false)
	if err != nil {
		return nil, err
	}
	return c.animeList(document)
}

func (c *Client) animeList(document map[string]any) ([]*resource.Anime, error) {
	data, _ := document["data"].([]any)
	animes := make([]*resource.Anime, 0, len(data))
	for _, item := range data {
		anime, err := resource.NewAnime(item, c)
		if err != nil {
			return nil, err
		}
		animes = append(animes, anime)
	}
	return animes, nil
}
