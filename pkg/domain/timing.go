package domain

import "time"

// Timing records the wall-clock cost of one stage.
type Timing struct {
	Stage   Stage         `json:"stage"`
	Start   time.Time     `json:"start"`
	Elapsed time.Duration `json:"elapsed"`
	// ExitCode is the exit status observed for process stages. It is informational
	// unless the experiment runs in strict mode.
	ExitCode int `json:"exit_code"`
}

// Seconds returns the elapsed time in seconds.
func (t Timing) Seconds() float64 {
	return t.Elapsed.Seconds()
}

// RunRecord is the outcome of one full benchmark run.
type RunRecord struct {
	Experiment string    `json:"experiment"`
	Nodes      int       `json:"nodes"`
	Model      ModelRef  `json:"model"`
	Train      Timing    `json:"train"`
	Evaluate   Timing    `json:"evaluate"`
	FinishedAt time.Time `json:"finished_at"`
}
