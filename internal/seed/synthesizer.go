package seed

import (
	"math/rand/v2"
	"time"

	"review-seeder/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Upper bounds of the cumulative rating distribution.
const (
	FiveStarBound  = 0.45
	FourStarBound  = 0.80
	ThreeStarBound = 0.92
	TwoStarBound   = 0.97
	OneStarBound   = 1.0
)

const (
	MaxThumbsUp   = 18
	MaxThumbsDown = 3
	// BackdateWindow is how far in the past a review date may fall.
	BackdateWindow = 180 * 24 * time.Hour
)

type ratingBand struct {
	upper  float64
	rating int
}

// ratingDistribution is walked in order; the first band whose upper bound
// exceeds the roll wins.
var ratingDistribution = []ratingBand{
	{FiveStarBound, 5},
	{FourStarBound, 4},
	{ThreeStarBound, 3},
	{TwoStarBound, 2},
	{OneStarBound, 1},
}

// RatingForRoll maps a roll in [0,1) to a star rating.
func RatingForRoll(roll float64) int {
	for _, b := range ratingDistribution {
		if roll < b.upper {
			return b.rating
		}
	}
	return ratingDistribution[len(ratingDistribution)-1].rating
}

// Synthesizer builds batches of synthetic reviews. It is not safe for
// concurrent use since it owns its random source.
type Synthesizer struct {
	rng  *rand.Rand
	pool Pool
	ids  identityGenerator
	now  func() time.Time
}

type SynthesizerOption func(*Synthesizer)

// WithPool replaces DefaultPool.
func WithPool(p Pool) SynthesizerOption {
	return func(s *Synthesizer) { s.pool = p }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) SynthesizerOption {
	return func(s *Synthesizer) { s.now = now }
}

func NewSynthesizer(rng *rand.Rand, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		rng:  rng,
		pool: DefaultPool,
		ids:  identityGenerator{rng: rng},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns exactly count reviews for itemID. Template titles are
// not repeated within one call until a rating bucket runs out.
func (s *Synthesizer) Synthesize(itemID bson.ObjectID, count int) []models.Review {
	if count <= 0 {
		return []models.Review{}
	}

	used := make(map[string]struct{}, count)
	out := make([]models.Review, 0, count)
	for range count {
		target := RatingForRoll(s.rng.Float64())
		tmpl := s.pickTemplate(target, used)
		used[tmpl.Title] = struct{}{}

		who := s.ids.next()
		out = append(out, models.Review{
			ItemID:       itemID,
			ReviewerName: who.FullName(),
			Email:        who.Email,
			Title:        tmpl.Title,
			Comment:      tmpl.Comment,
			Rating:       tmpl.Rating,
			Helpful: models.Helpful{
				ThumbsUp:   s.rng.IntN(MaxThumbsUp + 1),
				ThumbsDown: s.rng.IntN(MaxThumbsDown + 1),
			},
			Photos: []string{},
			Date:   s.backdate(),
		})
	}
	return out
}

// pickTemplate prefers an unused template of the target rating, then any
// template of that rating, then any template at all. The last case changes
// the review's rating to the fallback template's.
func (s *Synthesizer) pickTemplate(target int, used map[string]struct{}) Template {
	bucket := s.pool.ByRating(target)

	fresh := make([]Template, 0, len(bucket))
	for _, t := range bucket {
		if _, ok := used[t.Title]; !ok {
			fresh = append(fresh, t)
		}
	}
	if len(fresh) > 0 {
		return pick(s.rng, fresh)
	}
	if len(bucket) > 0 {
		return pick(s.rng, bucket)
	}
	return pick(s.rng, s.pool.All())
}

// backdate returns a millisecond-precision time in (now-BackdateWindow, now].
func (s *Synthesizer) backdate() time.Time {
	offset := time.Duration(s.rng.Int64N(int64(BackdateWindow/time.Millisecond))) * time.Millisecond
	return s.now().Truncate(time.Millisecond).Add(-offset)
}
