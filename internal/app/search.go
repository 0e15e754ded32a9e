package app

import (
	"errors"

	"github.com/dshills/meow/internal/engine/search"
)

// submitSearch runs the query typed at the search prompt. An empty query
// repeats the last one in the prompt's direction.
func (e *Editor) submitSearch(query string, dir search.Direction) {
	if query == "" {
		query = e.search.State().Query
	}
	res, err := e.search.Search(e.buf, query, e.cursor, dir)
	e.showSearch(query, dir, res, err)
}

// repeatSearch runs the last search again, reversed for N.
func (e *Editor) repeatSearch(reverse bool) {
	state := e.search.State()
	var (
		res search.Result
		err error
	)
	dir := state.Direction
	if reverse {
		dir = dir.Reverse()
		res, err = e.search.Previous(e.buf, e.cursor)
	} else {
		res, err = e.search.Next(e.buf, e.cursor)
	}
	e.showSearch(state.Query, dir, res, err)
}

func (e *Editor) showSearch(query string, dir search.Direction, res search.Result, err error) {
	switch {
	case errors.Is(err, search.ErrEmptyQuery), errors.Is(err, search.ErrNoPreviousSearch):
		e.setError("No previous search pattern")
		return
	case errors.Is(err, search.ErrNotFound):
		e.setError("Pattern not found: %s", query)
		return
	case err != nil:
		e.setError("Search error: %v", err)
		return
	}

	e.moveTo(res.Pos)
	if res.Wrapped {
		if dir == search.Backward {
			e.setWarning("search hit TOP, continuing at BOTTOM")
		} else {
			e.setWarning("search hit BOTTOM, continuing at TOP")
		}
	}
}
