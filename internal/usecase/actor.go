package usecase

// Actor is the verified identity of the caller, as established by the
// session layer. The core treats it as trusted input.
type Actor struct {
	ID    string
	Email string
	Name  string
}
