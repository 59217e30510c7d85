package system

import (
	"time"

	"github.com/younwookim/sidescroll/internal/domain/entity"
	"github.com/younwookim/sidescroll/internal/infrastructure/config"
)

// Activate starts or advances the entity's conversation.
// A second activation inside the fade window advances the line; one in the
// fade tail only keeps the current line up.
func (w *World) Activate(e *entity.Entity) bool {
	if !e.Alive || e.Dialogue == nil {
		return false
	}

	form := entity.FormPrimary
	if w.Progression != nil {
		form = w.Progression.Form
	}
	cfg := w.Config.Dialogue

	switch {
	case !e.Talking:
		e.Talking = true
		e.TalkingTimer = 0
		e.Dialogue.LastForm = form
	case e.TalkingTimer < cfg.Fade():
		e.TalkingTimer = 0
		e.Dialogue.Advance(form)
	case e.TalkingTimer < cfg.Fade()+cfg.FadeDuration():
		e.TalkingTimer = 0
	}

	w.Log.WithField("entity", e.Name).WithField("line", e.Dialogue.Stage).Debug("activated")
	return true
}

// DialogueSystem starts a conversation when the player walks into the entity
type DialogueSystem struct {
	config *config.DialogueConfig
}

// NewDialogueSystem creates a new dialogue system
func NewDialogueSystem(cfg *config.DialogueConfig) *DialogueSystem {
	return &DialogueSystem{config: cfg}
}

// Update implements Behavior
func (s *DialogueSystem) Update(w *World, e *entity.Entity, _ time.Duration) {
	if e.Talking {
		return
	}
	player, ok := w.Player()
	if !ok || player == e || !player.Alive {
		return
	}
	if player.Rect().Intersects(e.Rect()) {
		w.Activate(e)
	}
}

// tickTalking closes the conversation once it has faded out
func (s *DialogueSystem) tickTalking(e *entity.Entity, dt time.Duration) {
	if !e.Talking {
		return
	}
	e.TalkingTimer += dt
	if e.TalkingTimer >= s.config.Fade()+s.config.FadeDuration() {
		e.Talking = false
		e.TalkingTimer = 0
	}
}
