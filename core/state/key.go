package state

// Key is a typed handle for one State entry. Declaring keys as package
// variables gives the shared state a schema:
//
//	var visits = state.NewKey[int]("visits")
//
//	n, _ := visits.Get(app.State())
//	visits.Set(app.State(), n+1)
type Key[T any] struct {
	name string
}

// NewKey returns a key stored under name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the underlying string key.
func (k Key[T]) Name() string {
	return k.name
}

// Get returns the value for k from s.
func (k Key[T]) Get(s *State) (T, bool) {
	return Get[T](s, k.name)
}

// Set stores v for k in s.
func (k Key[T]) Set(s *State, v T) {
	s.Set(k.name, v)
}

// Delete removes k from s.
func (k Key[T]) Delete(s *State) {
	s.Delete(k.name)
}
