package detector_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stencil/internal/adapters/detector"
)

func TestDetectEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
	}{
		{name: "CI=true forces plain mode", ciValue: "true"},
		{name: "CI=1 forces plain mode", ciValue: "1"},
		{name: "regular file is not a terminal", ciValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			f, err := os.CreateTemp(t.TempDir(), "out")
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close() //nolint:errcheck // Best effort close in defer

			assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(f))
		})
	}
}

func TestDetectEnvironment_NilFile(t *testing.T) {
	assert.Equal(t, detector.ModePlain, detector.DetectEnvironment(nil))
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected detector.OutputMode
		flag     string
		expected detector.OutputMode
	}{
		{"tty flag wins", detector.ModePlain, "tty", detector.ModeTTY},
		{"tui alias", detector.ModePlain, "tui", detector.ModeTTY},
		{"plain flag wins", detector.ModeTTY, "plain", detector.ModePlain},
		{"ci alias", detector.ModeTTY, "ci", detector.ModePlain},
		{"auto keeps detection", detector.ModeTTY, "auto", detector.ModeTTY},
		{"empty keeps detection", detector.ModePlain, "", detector.ModePlain},
		{"unknown keeps detection", detector.ModeTTY, "fancy", detector.ModeTTY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.detected, tt.flag))
		})
	}
}
