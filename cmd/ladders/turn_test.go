package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

func TestParsePosition(t *testing.T) {
	board := engine.DefaultBoard()

	tests := []struct {
		arg     string
		want    engine.Position
		wantErr bool
	}{
		{"1", 1, false},
		{"29", 29, false},
		{"30", 30, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"31", 0, true},
		{"40", 0, true},
		{"ten", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.arg, func(t *testing.T) {
			got, err := parsePosition(tc.arg, board)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
