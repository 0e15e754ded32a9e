package search

import "github.com/dshills/meow/internal/engine/buffer"

// State remembers the last search so it can be repeated. It outlives the
// search prompt.
type State struct {
	Query     string
	Direction Direction
	Match     buffer.Position
	HasMatch  bool
}

// Engine runs searches and keeps their State.
type Engine struct {
	state State
}

// NewEngine creates an engine with no search history.
func NewEngine() *Engine {
	return &Engine{}
}

// State returns a copy of the current search state.
func (e *Engine) State() State {
	return e.state
}

// Search runs a new search for query from the cursor and records it as the
// last search, whether or not it matches.
func (e *Engine) Search(buf *buffer.Buffer, query string, cursor buffer.Position, dir Direction) (Result, error) {
	e.state = State{Query: query, Direction: dir}
	return e.run(buf, cursor, dir)
}

// Next repeats the last search in its direction.
func (e *Engine) Next(buf *buffer.Buffer, cursor buffer.Position) (Result, error) {
	return e.repeat(buf, cursor, e.state.Direction)
}

// Previous repeats the last search in the opposite direction.
func (e *Engine) Previous(buf *buffer.Buffer, cursor buffer.Position) (Result, error) {
	return e.repeat(buf, cursor, e.state.Direction.Reverse())
}

func (e *Engine) repeat(buf *buffer.Buffer, cursor buffer.Position, dir Direction) (Result, error) {
	if e.state.Query == "" {
		return Result{}, ErrNoPreviousSearch
	}
	from := cursor
	if e.state.HasMatch {
		from = e.state.Match
	}
	return e.run(buf, from, dir)
}

func (e *Engine) run(buf *buffer.Buffer, from buffer.Position, dir Direction) (Result, error) {
	res, err := Find(buf, e.state.Query, from, dir)
	if err != nil {
		return res, err
	}
	e.state.Match = res.Pos
	e.state.HasMatch = true
	return res, nil
}
