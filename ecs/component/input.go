package component

// Input holds the intents for the current frame.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Firing    bool
	Special   bool
}

// Direction collapses the movement intents to -1, 0 or 1.
func (in *Input) Direction() float64 {
	if in == nil {
		return 0
	}
	dir := 0.0
	if in.MoveLeft {
		dir--
	}
	if in.MoveRight {
		dir++
	}
	return dir
}

var InputComponent = NewComponent[Input]()
