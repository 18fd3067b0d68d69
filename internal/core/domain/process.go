package domain

// ProcessResult carries the outcome of a toolkit command invocation.
// Callers pattern-match on ExitCode rather than on error types.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the process exited cleanly.
func (r ProcessResult) Succeeded() bool {
	return r.ExitCode == 0
}

// Output returns the combined captured output for diagnostics.
func (r ProcessResult) Output() string {
	if r.Stderr == "" {
		return r.Stdout
	}
	if r.Stdout == "" {
		return r.Stderr
	}
	return r.Stdout + "\n" + r.Stderr
}
