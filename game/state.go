package game

type State int

const (
	MainMenu State = iota
	CharacterSelect
	Running
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case CharacterSelect:
		return "character_select"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Intents are the abstract inputs for one frame. PauseToggle is level
// triggered here; the session turns it into an edge.
type Intents struct {
	MoveLeft    bool
	MoveRight   bool
	Firing      bool
	Special     bool
	PauseToggle bool
}
