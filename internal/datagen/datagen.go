// Package datagen produces synthetic seven-file CSV datasets for demos and
// tests, including an optional fraction of dirty rows (unparseable dates,
// dangling foreign keys) so the degradation paths stay exercisable.
package datagen

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/instalens/instalens/internal/dataset"
)

// Options controls generation. Zero counts fall back to defaults; a zero
// date window defaults to the 90 days before now.
type Options struct {
	Users     int
	Tags      int
	Photos    int
	PhotoTags int
	Likes     int
	Follows   int
	Comments  int

	Start time.Time
	End   time.Time

	// DirtyFraction is the probability (0..1) that a generated row gets a
	// corrupt date or a dangling reference.
	DirtyFraction float64

	Seed int64
}

func (o Options) withDefaults() Options {
	def := func(n, fallback int) int {
		if n > 0 {
			return n
		}
		return fallback
	}
	o.Users = def(o.Users, 50)
	o.Tags = def(o.Tags, 20)
	o.Photos = def(o.Photos, 200)
	o.PhotoTags = def(o.PhotoTags, 400)
	o.Likes = def(o.Likes, 1000)
	o.Follows = def(o.Follows, 300)
	o.Comments = def(o.Comments, 500)
	if o.Start.IsZero() || o.End.IsZero() {
		o.End = time.Now()
		o.Start = o.End.AddDate(0, 0, -90)
	}
	return o
}

// dateLayouts is the pool of formats the generator emits, mirroring the
// heterogeneous formats found in the real dataset.
var dateLayouts = []string{
	"02-01-2006 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
}

type generator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
	opts  Options
}

func (g *generator) date() string {
	if g.rng.Float64() < g.opts.DirtyFraction {
		return "not-a-date"
	}
	t := g.faker.DateRange(g.opts.Start, g.opts.End)
	layout := dateLayouts[g.rng.Intn(len(dateLayouts))]
	return t.Format(layout)
}

// ref picks an id from ids, or fabricates a dangling uuid for dirty rows.
// A uuid can never collide with the sequential ids, so dirty references are
// guaranteed to dangle.
func (g *generator) ref(ids []string) string {
	if g.rng.Float64() < g.opts.DirtyFraction {
		return uuid.NewString()
	}
	return ids[g.rng.Intn(len(ids))]
}

// seqIDs returns n sequential string ids ("1".."n"), matching the numeric
// id style of the real dataset.
func seqIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i + 1)
	}
	return ids
}

// Generate builds a random dataset. The same seed yields the same dataset,
// except for the uuid values of deliberately dangling references (which
// dangle either way).
func Generate(opts Options) *dataset.Dataset {
	opts = opts.withDefaults()
	g := &generator{
		faker: gofakeit.New(opts.Seed),
		rng:   rand.New(rand.NewSource(opts.Seed)),
		opts:  opts,
	}

	ds := &dataset.Dataset{}

	userIDs := seqIDs(opts.Users)
	for _, id := range userIDs {
		ds.Users = append(ds.Users, dataset.User{
			ID:        id,
			Username:  g.faker.Username(),
			CreatedAt: g.date(),
		})
	}

	tagIDs := seqIDs(opts.Tags)
	for _, id := range tagIDs {
		ds.Tags = append(ds.Tags, dataset.Tag{
			ID:        id,
			TagName:   g.faker.Word(),
			CreatedAt: g.date(),
		})
	}

	photoIDs := seqIDs(opts.Photos)
	for _, id := range photoIDs {
		ds.Photos = append(ds.Photos, dataset.Photo{
			ID:         id,
			UserID:     g.ref(userIDs),
			ImageURL:   fmt.Sprintf("https://pics.example.com/%s.jpg", id),
			CreatedDat: g.date(),
		})
	}

	for i := 0; i < opts.PhotoTags; i++ {
		ds.PhotoTags = append(ds.PhotoTags, dataset.PhotoTag{
			PhotoID: g.ref(photoIDs),
			TagID:   g.ref(tagIDs),
		})
	}

	for i := 0; i < opts.Likes; i++ {
		ds.Likes = append(ds.Likes, dataset.Like{
			UserID:    g.ref(userIDs),
			PhotoID:   g.ref(photoIDs),
			CreatedAt: g.date(),
		})
	}

	for i := 0; i < opts.Follows; i++ {
		ds.Follows = append(ds.Follows, dataset.Follow{
			FollowerID: g.ref(userIDs),
			FolloweeID: g.ref(userIDs),
			CreatedAt:  g.date(),
		})
	}

	commentIDs := seqIDs(opts.Comments)
	for _, id := range commentIDs {
		ds.Comments = append(ds.Comments, dataset.Comment{
			ID:          id,
			UserID:      g.ref(userIDs),
			PhotoID:     g.ref(photoIDs),
			CommentText: g.faker.Sentence(g.rng.Intn(8) + 3),
			CreatedAt:   g.date(),
		})
	}

	return ds
}
