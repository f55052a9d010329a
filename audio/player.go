package audio

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"snaker/config"
	"snaker/game"
)

// ErrAsset marks a sound file that could not be used.
var ErrAsset = errors.New("sound asset unavailable")

type assetError struct {
	cause error
}

func (e *assetError) Error() string        { return ErrAsset.Error() + ": " + e.cause.Error() }
func (e *assetError) Unwrap() error        { return e.cause }
func (e *assetError) Cause() error         { return e.cause }
func (e *assetError) Is(target error) bool { return target == ErrAsset }

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Player is the speaker backed game.AudioSink. Every sound is decoded into
// memory up front; files that fail to load are replaced by synthesized tones.
// Until Init succeeds all playback calls are silent no-ops.
type Player struct {
	mu      sync.Mutex
	log     *zap.Logger
	volume  float64
	buffers map[game.Sound]*beep.Buffer
	mixer   *beep.Mixer
	music   *beep.Ctrl
	musicOn bool
	ready   bool
}

// Load decodes the sounds named in cfg.
func Load(cfg config.Audio, log *zap.Logger) *Player {
	p := &Player{
		log:     log,
		volume:  cfg.Volume,
		buffers: make(map[game.Sound]*beep.Buffer),
		mixer:   &beep.Mixer{},
		musicOn: true,
	}

	for _, s := range []game.Sound{game.SoundEat, game.SoundDeath, game.SoundButton, game.SoundBackground} {
		name := string(s)
		file, ok := cfg.Sounds[name]
		if !ok {
			log.Warn("no file configured for sound, using tone", zap.String("sound", name))
			p.buffers[s] = bufferOf(fallbackTone(name, sampleRate))
			continue
		}
		path := filepath.Join(cfg.Directory, file)
		buf, err := loadBuffer(path)
		if err != nil {
			log.Warn("failed to load sound, using tone", zap.String("sound", name), zap.Error(err))
			buf = bufferOf(fallbackTone(name, sampleRate))
		}
		p.buffers[s] = buf
	}
	return p
}

func loadBuffer(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &assetError{cause: errors.Wrapf(err, "open %s", path)}
	}
	streamer, fileFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, &assetError{cause: errors.Wrapf(err, "decode %s", path)}
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, sampleRate, streamer)
	}
	return bufferOf(s), nil
}

func bufferOf(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.ready = false
}

func (p *Player) gain(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(p.volume),
		Silent:   p.volume <= 0,
	}
}

func (p *Player) Play(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.buffers[s]
	if !p.ready || !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(p.gain(buf.Streamer(0, buf.Len())))
	speaker.Unlock()
}

func (p *Player) PlayBackground() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startMusic()
}

func (p *Player) StopBackground() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopMusic()
}

func (p *Player) ToggleBackground() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.musicOn = !p.musicOn
	if p.musicOn {
		p.startMusic()
	} else {
		p.stopMusic()
	}
	return p.musicOn
}

// MusicEnabled reports the music switch.
func (p *Player) MusicEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicOn
}

func (p *Player) startMusic() {
	buf, ok := p.buffers[game.SoundBackground]
	if !p.musicOn || !p.ready || !ok || buf.Len() == 0 {
		return
	}
	p.stopMusic()

	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	speaker.Lock()
	p.mixer.Add(p.gain(ctrl))
	speaker.Unlock()
	p.music = ctrl
}

// stopMusic detaches the loop; a Ctrl without a streamer drains out of the
// mixer on its next pull.
func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	if p.ready {
		speaker.Lock()
		p.music.Streamer = nil
		speaker.Unlock()
	}
	p.music = nil
}

// Silent is an AudioSink that plays nothing. It still tracks the music
// switch so toggling reports consistently.
type Silent struct {
	musicOff bool
}

func (s *Silent) Play(game.Sound) {}

func (s *Silent) PlayBackground() {}

func (s *Silent) StopBackground() {}

func (s *Silent) ToggleBackground() bool {
	s.musicOff = !s.musicOff
	return !s.musicOff
}
