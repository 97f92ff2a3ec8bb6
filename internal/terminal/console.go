package terminal

// Console abstracts the interactive prompts the check flow depends on,
// so the loop can be driven by a scripted stand-in under test.
type Console interface {
	// ReadPassword reads one line of secret input without echoing it.
	ReadPassword(prompt string) (string, error)
	// Confirm asks a yes/no question. Anything that is not an explicit
	// yes counts as no.
	Confirm(label string) (bool, error)
	// Spin shows a short progress animation while scoring runs.
	Spin(message string)
}
