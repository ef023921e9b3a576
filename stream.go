// stream.go: iteration over emitted tokens
package lexr

// Lexeme pairs an emitted token with the location of the text it came from.
type Lexeme[T any] struct {
	Token T
	Loc   SrcLoc
}

// Stream is the iteration-facing wrapper around an Engine. It loops over
// skipped matches internally and surfaces only emitted tokens, the clean end
// of input, or the terminal failure. A stream is not restartable; build a
// fresh engine to re-scan from the start.
type Stream[T any] struct {
	eng *Engine[T]
}

// NewStream wraps an engine for iteration.
func NewStream[T any](eng *Engine[T]) *Stream[T] {
	return &Stream[T]{eng: eng}
}

// Engine returns the underlying engine, for callers that want to mix stepped
// and streamed access.
func (s *Stream[T]) Engine() *Engine[T] { return s.eng }

// Next produces the next emitted token. ok is false once the input is
// exhausted; a non-nil err reports the terminal scan failure.
func (s *Stream[T]) Next() (lx Lexeme[T], ok bool, err error) {
	for {
		st := s.eng.Step()
		switch st.Kind {
		case StepEmitted:
			return Lexeme[T]{Token: st.Token, Loc: st.Loc}, true, nil
		case StepSkipped:
			continue
		case StepExhausted:
			return Lexeme[T]{}, false, nil
		default:
			return Lexeme[T]{}, false, st.Err
		}
	}
}

// Collect eagerly drains the stream into an ordered slice. On failure the
// tokens emitted before the failure are returned alongside the error.
func (s *Stream[T]) Collect() ([]Lexeme[T], error) {
	var out []Lexeme[T]
	for {
		lx, ok, err := s.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, lx)
	}
}

// Tokens is Collect with the locations stripped.
func (s *Stream[T]) Tokens() ([]T, error) {
	lxs, err := s.Collect()
	out := make([]T, 0, len(lxs))
	for _, lx := range lxs {
		out = append(out, lx.Token)
	}
	return out, err
}
