package faker

import (
	"testing"

	"watchwise/config"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestEmailGenerator_ProducesValidEmails(t *testing.T) {
	validate := validator.New()
	generator := NewEmailGeneratorWithSeed(0)

	for range 50 {
		email := generator.Email()
		assert.NoError(t, validate.Var(email, "required,email"), "invalid email: %s", email)
	}
}

func TestEmailGenerator_SeedIsReproducible(t *testing.T) {
	first := NewEmailGeneratorWithSeed(42)
	second := NewEmailGeneratorWithSeed(42)

	for range 10 {
		assert.Equal(t, first.Email(), second.Email())
	}
}

func TestNewEmailGenerator_UsesConfiguredSeed(t *testing.T) {
	cfg := &config.Config{Seed: &config.SeedConfig{RandomSeed: 7}}

	fromConfig := NewEmailGenerator(cfg)
	explicit := NewEmailGeneratorWithSeed(7)

	assert.Equal(t, explicit.Email(), fromConfig.Email())
}

func TestNewEmailGenerator_NilConfig(t *testing.T) {
	assert.NotEmpty(t, NewEmailGenerator(nil).Email())
}
