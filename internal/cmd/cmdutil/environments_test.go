package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marian1309/vercel-env/pkg/envs"
)

func TestResolveEnvironments(t *testing.T) {
	fallback := []envs.Environment{envs.Development}

	tests := []struct {
		name      string
		selectors []string
		want      []envs.Environment
		wantErr   bool
	}{
		{
			name:      "empty returns fallback",
			selectors: nil,
			want:      fallback,
		},
		{
			name:      "canonical names",
			selectors: []string{"production", "preview"},
			want:      []envs.Environment{envs.Production, envs.Preview},
		},
		{
			name:      "aliases",
			selectors: []string{"dev", "prod"},
			want:      []envs.Environment{envs.Development, envs.Production},
		},
		{
			name:      "duplicates collapse keeping first position",
			selectors: []string{"prod", "development", "production"},
			want:      []envs.Environment{envs.Production, envs.Development},
		},
		{
			name:      "unknown selector",
			selectors: []string{"staging"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEnvironments(tt.selectors, fallback)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
