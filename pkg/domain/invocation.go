package domain

import "strings"

// Stage names a step of the benchmark pipeline.
type Stage string

const (
	StageProvision Stage = "provision"
	StageTrain     Stage = "train"
	StageEvaluate  Stage = "evaluate"
)

// Invocation is a fully resolved description of one external process execution.
type Invocation struct {
	Stage Stage    `json:"stage"`
	Path  string   `json:"path"`
	Args  []string `json:"args"`
	// Dir is the working directory of the process. Empty means the caller's directory.
	Dir string `json:"dir,omitempty"`
}

// Argv returns the executable followed by its arguments.
func (i Invocation) Argv() []string {
	argv := make([]string, 0, len(i.Args)+1)
	argv = append(argv, i.Path)
	return append(argv, i.Args...)
}

// String renders the invocation as a copy-pasteable shell command line.
func (i Invocation) String() string {
	argv := i.Argv()
	quoted := make([]string, len(argv))
	for n, a := range argv {
		quoted[n] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("-_./=:,+@%", r):
		default:
			safe = false
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
