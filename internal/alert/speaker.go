package alert

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/spf13/afero"
)

// SpeakerPlayer loops a sound on the default audio device. The device is
// opened on first Play and reused afterwards.
type SpeakerPlayer struct {
	fs        afero.Fs
	soundPath string
	volume    float64

	once    sync.Once
	initErr error
	buffer  *beep.Buffer

	mu      sync.Mutex
	playing bool

	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
	clear       func()
}

// NewSpeakerPlayer plays soundPath (a WAV file read from fs) or the built-in
// chime when soundPath is empty. Volume is in beep's base-2 scale, 0 = unity.
func NewSpeakerPlayer(fs afero.Fs, soundPath string, volume float64) *SpeakerPlayer {
	return &SpeakerPlayer{
		fs:          fs,
		soundPath:   soundPath,
		volume:      volume,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
		clear:       speaker.Clear,
	}
}

func (p *SpeakerPlayer) Play() error {
	p.once.Do(func() { p.initErr = p.prepare() })
	if p.initErr != nil {
		return p.initErr
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.clear()
	p.play(&effects.Volume{
		Streamer: beep.Loop(-1, p.buffer.Streamer(0, p.buffer.Len())),
		Base:     2,
		Volume:   p.volume,
	})
	p.playing = true
	return nil
}

func (p *SpeakerPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	p.clear()
	p.playing = false
}

func (p *SpeakerPlayer) prepare() error {
	buf, err := p.load()
	if err != nil {
		return err
	}
	if buf.Len() == 0 {
		return fmt.Errorf("sound %q is empty", p.soundPath)
	}
	sr := buf.Format().SampleRate
	if err := p.initSpeaker(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	p.buffer = buf
	return nil
}

func (p *SpeakerPlayer) load() (*beep.Buffer, error) {
	if p.soundPath == "" {
		return chime(), nil
	}
	f, err := p.fs.Open(p.soundPath)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", p.soundPath, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf, nil
}
