package service

import (
	"errors"
	"math/rand/v2"
	"sync"

	"go-doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var ErrUnknownAvailabilityPolicy = errors.New("unknown availability policy")

const (
	AvailabilityPolicySource = "source"
	AvailabilityPolicyRandom = "random"
)

// AvailabilityPolicy decides consultation availability and rating for a
// record being admitted into the directory.
type AvailabilityPolicy interface {
	Assign(raw *entity.RawDoctor) entity.Availability
}

// NewAvailabilityPolicy builds the named policy. seed only matters for the
// random policy; zero picks a random seed.
func NewAvailabilityPolicy(name string, seed uint64) (AvailabilityPolicy, error) {
	switch name {
	case "", AvailabilityPolicySource:
		return SourceAvailabilityPolicy{}, nil
	case AvailabilityPolicyRandom:
		if seed == 0 {
			seed = rand.Uint64()
		}
		return NewRandomAvailabilityPolicy(seed), nil
	default:
		return nil, ErrUnknownAvailabilityPolicy
	}
}

// SourceAvailabilityPolicy uses whatever the record source supplied.
// Missing flags are false and a missing rating is zero.
type SourceAvailabilityPolicy struct{}

func (SourceAvailabilityPolicy) Assign(raw *entity.RawDoctor) entity.Availability {
	var out entity.Availability
	if raw.VideoConsult != nil {
		out.VideoConsult = *raw.VideoConsult
	}
	if raw.InClinic != nil {
		out.InClinic = *raw.InClinic
	}
	if raw.Rating != nil {
		out.Rating = decimal.NewFromFloat(*raw.Rating).Round(1)
	}
	return out
}

// RandomAvailabilityPolicy flips a coin for each flag and draws a rating
// between 3.0 and 5.0, for demo listings that carry no availability data.
type RandomAvailabilityPolicy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomAvailabilityPolicy(seed uint64) *RandomAvailabilityPolicy {
	return &RandomAvailabilityPolicy{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (p *RandomAvailabilityPolicy) Assign(raw *entity.RawDoctor) entity.Availability {
	p.mu.Lock()
	defer p.mu.Unlock()

	return entity.Availability{
		VideoConsult: p.rng.Float64() > 0.5,
		InClinic:     p.rng.Float64() > 0.5,
		Rating:       decimal.NewFromFloat(p.rng.Float64()*2 + 3).Round(1),
	}
}
