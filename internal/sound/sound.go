// Package sound plays the short synthesised chimes that mark laps and the
// end of a session
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Note is a single tone of a chime.
type Note struct {
	Freq     float64 // hertz
	Duration time.Duration
}

var (
	// Lap marks the end of a lap.
	Lap = []Note{
		{Freq: 660, Duration: 120 * time.Millisecond},
		{Freq: 880, Duration: 180 * time.Millisecond},
	}

	// Completed marks the end of a session.
	Completed = []Note{
		{Freq: 523.25, Duration: 150 * time.Millisecond},
		{Freq: 659.25, Duration: 150 * time.Millisecond},
		{Freq: 783.99, Duration: 150 * time.Millisecond},
		{Freq: 1046.5, Duration: 350 * time.Millisecond},
	}
)

var (
	initOnce sync.Once
	errInit  error
)

func initSpeaker() error {
	initOnce.Do(func() {
		bufferSize := 10

		errInit = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	return errInit
}

// Stream builds the audio stream of a chime. Notes are separated by a short
// silence.
func Stream(notes []Note) (beep.Streamer, error) {
	var parts []beep.Streamer

	for i, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.Freq)
		if err != nil {
			return nil, err
		}

		if i > 0 {
			parts = append(parts, beep.Silence(sampleRate.N(40*time.Millisecond)))
		}

		parts = append(parts, beep.Take(sampleRate.N(n.Duration), tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -2,
	}, nil
}

// Play plays a chime and blocks until it is over.
func Play(notes []Note) error {
	stream, err := Stream(notes)
	if err != nil {
		return err
	}

	if err := initSpeaker(); err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
