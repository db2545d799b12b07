package state

// listeners is an ordered subscriber list. Callers hold the owning store's mutex.
type listeners[S any] struct {
	list []*listener[S]
}

type listener[S any] struct {
	fn func(S)
}

func (l *listeners[S]) add(fn func(S)) *listener[S] {
	x := &listener[S]{fn: fn}
	l.list = append(l.list, x)
	return x
}

func (l *listeners[S]) remove(x *listener[S]) {
	for i, v := range l.list {
		if v == x {
			l.list = append(l.list[:i:i], l.list[i+1:]...)
			return
		}
	}
}

func (l *listeners[S]) fns() []func(S) {
	out := make([]func(S), len(l.list))
	for i, v := range l.list {
		out[i] = v.fn
	}
	return out
}

func notify[S any](fns []func(S), s S) {
	for _, fn := range fns {
		fn(s)
	}
}
