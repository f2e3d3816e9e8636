package game

import (
	"fmt"

	"github.com/milk9111/starblaster/combat"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
	"github.com/milk9111/starblaster/ecs/entity"
	"github.com/milk9111/starblaster/ecs/system"
	"github.com/milk9111/starblaster/prefabs"
)

// Session drives a game from the main menu through runs to game over. It is
// not safe for concurrent use; front-ends call it from their frame loop.
type Session struct {
	tuning *prefabs.Tuning
	policy *system.BossPolicy
	rng    combat.RNG

	state     State
	archetype component.PlayerKind

	world     *ecs.World
	scheduler *ecs.Scheduler
	clock     *Clock
	board     announcementBoard
	events    []ecs.Event

	pauseHeld  bool
	finalScore int
}

// NewSession starts at the main menu. A nil policy allows every boss ability.
func NewSession(tuning *prefabs.Tuning, policy *system.BossPolicy, rng combat.RNG) (*Session, error) {
	if tuning == nil {
		return nil, fmt.Errorf("game: nil tuning")
	}
	if rng == nil {
		return nil, fmt.Errorf("game: nil rng")
	}
	return &Session{
		tuning: tuning,
		policy: policy,
		rng:    rng,
		state:  MainMenu,
		board:  announcementBoard{defaultDuration: tuning.Arena.Announcement},
	}, nil
}

func (s *Session) State() State {
	return s.state
}

// Now is the simulation time of the current run in milliseconds.
func (s *Session) Now() float64 {
	if s.clock == nil {
		return 0
	}
	return s.clock.Now()
}

func (s *Session) FinalScore() int {
	return s.finalScore
}

func (s *Session) Tuning() *prefabs.Tuning {
	return s.tuning
}

// World exposes the current run's world, nil outside a run.
func (s *Session) World() *ecs.World {
	return s.world
}

// Archetypes lists the selectable archetypes in selection order.
func (s *Session) Archetypes() []component.ArchetypeStats {
	out := make([]component.ArchetypeStats, 0, len(component.PlayerKinds))
	for _, kind := range component.PlayerKinds {
		out = append(out, s.tuning.Archetype(kind))
	}
	return out
}

// SetTuning replaces the tuning tables. The change applies from the next run.
func (s *Session) SetTuning(tuning *prefabs.Tuning) {
	if tuning == nil {
		return
	}
	s.tuning = tuning
	s.board.defaultDuration = tuning.Arena.Announcement
}

// SetPolicy replaces the boss policy. The change applies from the next run.
func (s *Session) SetPolicy(policy *system.BossPolicy) {
	s.policy = policy
}

func (s *Session) OpenCharacterSelect() bool {
	if s.state != MainMenu {
		return false
	}
	s.state = CharacterSelect
	return true
}

// SelectArchetype starts a fresh run with the archetype at index. Indexes
// outside the list are clamped.
func (s *Session) SelectArchetype(index int) error {
	if s.state != CharacterSelect {
		return fmt.Errorf("game: select archetype in state %s", s.state)
	}
	kind := component.ClampPlayerKind(index)

	deps, err := system.NewDeps(s.tuning, s.rng, s.policy)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	w := ecs.NewWorld()
	if _, err := entity.NewSession(w, s.tuning, 0); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewPlayer(w, s.tuning, kind, 0); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	s.archetype = kind
	s.world = w
	s.scheduler = system.Pipeline(deps)
	s.clock = NewClock(s.tuning.Arena.MaxFrameMs)
	s.board.clear()
	s.events = nil
	s.finalScore = 0
	s.state = Running
	return nil
}

func (s *Session) TogglePause() bool {
	switch s.state {
	case Running:
		s.state = Paused
	case Paused:
		s.state = Running
	default:
		return false
	}
	return true
}

// ReturnToMainMenu abandons a paused run or leaves the game-over screen.
func (s *Session) ReturnToMainMenu() bool {
	if s.state != Paused && s.state != GameOver {
		return false
	}
	s.state = MainMenu
	s.world = nil
	s.scheduler = nil
	s.clock = nil
	s.board.clear()
	s.events = nil
	return true
}

// Step runs one frame of dt milliseconds when Running. A fresh press of
// PauseToggle toggles between Running and Paused first.
func (s *Session) Step(dt float64, in Intents) Frame {
	pressed := in.PauseToggle && !s.pauseHeld
	s.pauseHeld = in.PauseToggle
	if pressed {
		s.TogglePause()
	}

	if s.state == Running {
		s.runFrame(dt, in)
	}

	frame := s.Frame()
	frame.Events = s.events
	s.events = nil
	return frame
}

func (s *Session) runFrame(dt float64, in Intents) {
	s.clock.Advance(dt)
	now := s.clock.Now()

	sess, ok := ecs.Singleton(s.world, component.SessionComponent.Kind())
	if !ok {
		return
	}
	sess.Now = now

	ecs.ForEach(s.world, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = component.Input{
			MoveLeft:  in.MoveLeft,
			MoveRight: in.MoveRight,
			Firing:    in.Firing,
			Special:   in.Special,
		}
	})

	s.scheduler.Update(s.world)
	ecs.FlushDestroyed(s.world)

	for _, evt := range s.world.Events().Drain() {
		if evt.Type == ecs.EventAnnouncement {
			s.board.add(evt.Message, evt.Duration, now)
		}
		s.events = append(s.events, evt)
	}
	s.board.prune(now)

	if sess.PlayerDead {
		s.gameOver(sess)
	}
}

func (s *Session) gameOver(sess *component.Session) {
	s.state = GameOver
	s.finalScore = sess.Score
	s.board.add("Game Over", 0, sess.Now)
	s.events = append(s.events,
		ecs.Event{Type: ecs.EventGameOver, Value: float64(sess.Score)},
		ecs.Event{Type: ecs.EventAnnouncement, Message: "Game Over", Duration: s.board.defaultDuration},
	)
}

// Frame snapshots the current state without advancing it. Events are only
// delivered through Step.
func (s *Session) Frame() Frame {
	frame := Frame{State: s.state}
	if s.world == nil {
		return frame
	}
	now := s.Now()
	frame.Entities = snapshotEntities(s.world, now)
	frame.HUD = buildHUD(s.world)
	frame.Announcements = s.board.active(now)
	return frame
}
