package workflow

// Confirmer asks the user for an explicit yes/no decision. Implementations
// block on interactive input with no timeout: money-moving actions must not
// time out waiting for a human.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) (bool, error)

func (f ConfirmerFunc) Confirm(prompt string) (bool, error) { return f(prompt) }
