// Package sound plays the chime that marks the end of a focus interval
package sound

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"
)

const (
	sampleRate beep.SampleRate = 44100

	toneFrequency = 880
	toneLength    = 300 * time.Millisecond
	toneVolume    = -1.5

	resampleQuality = 4
)

var supportedExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// Player owns the speaker. Only one sound plays at a time; a new Play
// replaces whatever is still playing.
type Player struct {
	mu          sync.Mutex
	initSpeaker func() error
	play        func(beep.Streamer)
	clear       func()
	buffer      *beep.Buffer
	file        string
	once        sync.Once
	err         error
}

// NewPlayer returns a Player for the sound file at path, or for a generated
// tone when path is empty. The file is decoded on first use.
func NewPlayer(path string) *Player {
	return &Player{
		file: path,
		initSpeaker: func() error {
			return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
		},
		play: func(s beep.Streamer) {
			speaker.Play(s)
		},
		clear: speaker.Clear,
	}
}

// Play stops the sound that is currently playing, if any, and starts the
// chime. It does not wait for the chime to finish.
func (p *Player) Play() error {
	p.once.Do(func() {
		p.err = p.initSpeaker()
	})

	if p.err != nil {
		return errSpeaker.Wrap(p.err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	s, err := p.streamLocked()
	if err != nil {
		return err
	}

	p.clear()
	p.play(s)

	return nil
}

func (p *Player) streamLocked() (beep.Streamer, error) {
	if p.file == "" {
		return tone(sampleRate)
	}

	if p.buffer == nil {
		buf, err := decode(p.file)
		if err != nil {
			return nil, err
		}

		p.buffer = buf
	}

	return p.buffer.Streamer(0, p.buffer.Len()), nil
}

// tone generates a short sine wave.
func tone(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, toneFrequency)
	if err != nil {
		return nil, errSpeaker.Wrap(err)
	}

	return &effects.Volume{
		Streamer: beep.Take(sr.N(toneLength), sine),
		Base:     2,
		Volume:   toneVolume,
	}, nil
}

// decode reads a sound file into memory at the speaker's sample rate.
func decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errReadSound.Fmt(path).Wrap(err)
	}

	defer f.Close()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		return nil, errReadSound.Fmt(path).Wrap(err)
	}

	defer stream.Close()

	target := beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	}

	buf := beep.NewBuffer(target)
	buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, stream))

	return buf, nil
}

// Supported reports whether the file extension is a format Player can
// decode.
func Supported(path string) bool {
	return slices.Contains(supportedExts, strings.ToLower(filepath.Ext(path)))
}

// Sounds lists the playable sound files in dir in natural order.
func Sounds(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}

		names = append(names, e.Name())
	}

	sort.Sort(natural.StringSlice(names))

	return names, nil
}
