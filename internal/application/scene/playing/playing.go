// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/sidescroll/internal/application/replay"
	"github.com/younwookim/sidescroll/internal/application/scene"
	"github.com/younwookim/sidescroll/internal/application/session"
	"github.com/younwookim/sidescroll/internal/application/state"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
	"github.com/younwookim/sidescroll/internal/infrastructure/logging"
)

// Options configures a Playing scene
type Options struct {
	Seed       int64  // 0 picks a seed from the clock
	RecordPath string // empty disables recording
	Log        *logrus.Entry
	Keyboard   Keyboard // nil uses the ebiten keyboard
}

// Playing is the main gameplay scene
type Playing struct {
	cfg      *config.GameConfig
	stageCfg *config.StageConfig
	sess     *session.Session
	machine  *state.Machine
	keys     Keyboard
	log      *logrus.Entry
	screenW  int
	screenH  int

	// Input recording
	recorder   *replay.Recorder
	recordPath string
}

// New creates a new Playing scene on the given stage
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, opts Options) (*Playing, error) {
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	if opts.Keyboard == nil {
		opts.Keyboard = ebitenKeyboard{}
	}

	p := &Playing{
		cfg:        cfg,
		stageCfg:   stageCfg,
		keys:       opts.Keyboard,
		log:        opts.Log,
		recordPath: opts.RecordPath,
	}
	p.machine = state.NewMachine(func(from, to state.GameState) {
		p.log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("state changed")
	})

	if err := p.start(opts.Seed); err != nil {
		return nil, err
	}

	display := p.sess.World.Config.Display
	p.screenW = display.ScreenWidth
	p.screenH = display.ScreenHeight
	return p, nil
}

// start builds a fresh session, and a fresh recorder when recording
func (p *Playing) start(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sess, err := session.New(p.cfg, p.stageCfg, seed, p.log)
	if err != nil {
		return err
	}
	p.sess = sess

	p.recorder = nil
	if p.recordPath != "" {
		p.recorder = replay.NewRecorder(seed, sess.StageName)
		p.log.WithFields(logrus.Fields{"path": p.recordPath, "seed": seed}).Info("recording enabled")
	}
	return nil
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.sess
}

// State returns the current screen state
func (p *Playing) State() state.GameState {
	return p.machine.Current()
}

// Update implements scene.Scene. The session advances by its configured
// tick, so the host dt is ignored and replays stay exact.
func (p *Playing) Update(_ time.Duration) (scene.Scene, error) {
	switch p.machine.Current() {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if p.keys.JustPressed(ebiten.KeyEscape) {
			p.machine.Fire(state.EventResume)
		} else if p.keys.JustPressed(ebiten.KeyR) {
			return nil, p.restart()
		}
	case state.StateGameOver:
		if p.keys.JustPressed(ebiten.KeyR) || p.keys.JustPressed(ebiten.KeyEnter) {
			return nil, p.restart()
		}
	}
	return nil, nil
}

func (p *Playing) updatePlaying() {
	if p.keys.JustPressed(ebiten.KeyEscape) {
		p.machine.Fire(state.EventPause)
		return
	}

	if p.keys.JustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	in := pollInput(p.keys)
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.sess.Step(in)

	if p.sess.PlayerDead() && p.machine.Fire(state.EventDie) {
		p.log.WithField("tick", p.sess.Sim.Tick()).Info("player died")
		if p.recorder != nil {
			p.saveRecording()
		}
	}
}

func (p *Playing) restart() error {
	if err := p.start(0); err != nil {
		return fmt.Errorf("failed to restart: %w", err)
	}
	p.machine.Fire(state.EventRestart)
	return nil
}

// saveRecording writes the recording along with the digest reached so far
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	digest, err := p.sess.Digest()
	if err != nil {
		p.log.WithError(err).Warn("failed to digest state")
	}
	p.recorder.SetDigest(digest)

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{
		"path":   filename,
		"frames": p.recorder.FrameCount(),
	}).Info("recording saved")
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit implements scene.Scene; pending recordings are flushed
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the screen dimensions
func (p *Playing) Layout(_, _ int) (int, int) {
	return p.screenW, p.screenH
}
