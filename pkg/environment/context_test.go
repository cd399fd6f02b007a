package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"development", environment.Development},
		{"dev", environment.Development},
		{"  Staging ", environment.Staging},
		{"stage", environment.Staging},
		{"PROD", environment.Production},
		{"production", environment.Production},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := environment.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := environment.Parse("qa")
		require.ErrorIs(t, err, environment.ErrUnknownEnvironment)
		assert.Contains(t, err.Error(), `"qa"`)
	})
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.False(t, environment.Environment("custom").Valid())
	assert.False(t, environment.Environment("").Valid())
	assert.Equal(t, "staging", environment.Staging.String())
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  environment.Environment
	}{
		{name: "development environment", env: environment.Development},
		{name: "production environment", env: environment.Production},
		{name: "staging environment", env: environment.Staging},
		{name: "custom environment", env: environment.Environment("custom")},
		{name: "empty environment", env: environment.Environment("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := environment.WithContext(context.Background(), tt.env)
			assert.Equal(t, tt.env, environment.FromContext(ctx))
		})
	}
}

func TestFromContextMissing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Equal(t, environment.Environment(""), environment.FromContext(nil))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	dev := environment.WithContext(context.Background(), environment.Development)
	stage := environment.WithContext(context.Background(), environment.Staging)
	prod := environment.WithContext(context.Background(), environment.Production)

	assert.True(t, environment.IsDevelopment(dev))
	assert.False(t, environment.IsProduction(dev))
	assert.True(t, environment.IsStaging(stage))
	assert.False(t, environment.IsDevelopment(stage))
	assert.True(t, environment.IsProduction(prod))
	assert.False(t, environment.IsStaging(prod))
}
