// Package faker provides fake-data generators backed by gofakeit.
package faker

import (
	"github.com/brianvoe/gofakeit/v7"

	"watchwise/config"
	"watchwise/internal/domain/service"
)

type gofakeitEmailGenerator struct {
	faker *gofakeit.Faker
}

// NewEmailGenerator builds an EmailGenerator seeded from seed.randomSeed.
// A zero seed yields a different sequence on every run.
func NewEmailGenerator(cfg *config.Config) service.EmailGenerator {
	var seed uint64
	if cfg != nil && cfg.Seed != nil {
		seed = cfg.Seed.RandomSeed
	}

	return NewEmailGeneratorWithSeed(seed)
}

// NewEmailGeneratorWithSeed builds an EmailGenerator with an explicit seed.
func NewEmailGeneratorWithSeed(seed uint64) service.EmailGenerator {
	return &gofakeitEmailGenerator{faker: gofakeit.New(seed)}
}

func (g *gofakeitEmailGenerator) Email() string {
	return g.faker.Email()
}
