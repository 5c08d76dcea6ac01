package resource

import (
	"fmt"

	"github.com/samber/mo"
)

// Genre is a read-only view over a genre resource object.
//
// Built once from a payload snapshot, never mutated afterwards.
type Genre struct {
	payload map[string]any
}

// NewGenre builds a Genre from a response envelope ({data}) or a
// bare resource object.
func NewGenre(document any) (*Genre, error) {
	payload, err := primaryResource(document)
	if err != nil {
		return nil, err
	}
	return &Genre{payload: cloneMap(payload)}, nil
}

// String is the short representation of the genre.
func (g *Genre) String() string {
	return fmt.Sprintf("%s [%s]", g.Name().OrElse("Unknown Genre"), g.ID())
}

// ID of the genre, empty string when absent.
func (g *Genre) ID() string {
	return lookup[string](g.payload, "id").OrElse("")
}

func (g *Genre) Name() mo.Option[string] {
	return lookup[string](attributes(g.payload), "name")
}

func (g *Genre) Slug() mo.Option[string] {
	return lookup[string](attributes(g.payload), "slug")
}

// Raw returns a copy of the primary resource object snapshot.
func (g *Genre) Raw() map[string]any {
	return cloneMap(g.payload)
}
