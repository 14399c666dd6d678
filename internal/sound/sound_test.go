package sound_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personaplus/plus/internal/sound"
)

func TestStreamLength(t *testing.T) {
	notes := []sound.Note{
		{Freq: 440, Duration: 100 * time.Millisecond},
		{Freq: 880, Duration: 100 * time.Millisecond},
	}

	s, err := sound.Stream(notes)
	require.NoError(t, err)

	// two notes of 4410 samples with 1764 samples of silence in between
	want := 4410*2 + 1764

	buf := make([][2]float64, 1024)
	total := 0

	for {
		n, ok := s.Stream(buf)
		total += n

		if !ok {
			break
		}
	}

	assert.Equal(t, want, total)
}

func TestStreamRejectsInvalidFrequency(t *testing.T) {
	_, err := sound.Stream([]sound.Note{{Freq: 30000, Duration: time.Second}})
	assert.Error(t, err)
}
