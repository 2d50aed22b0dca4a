package domain

import "errors"

// ErrInvalidExperiment is returned when an experiment configuration is incomplete.
var ErrInvalidExperiment = errors.New("invalid experiment")

// ErrInvalidCardinality is returned when the assumed example count cannot size a memory tree.
var ErrInvalidCardinality = errors.New("example count must be greater than 1")

// ErrInvalidMultiplier is returned when the leaf example multiplier is not a positive number.
var ErrInvalidMultiplier = errors.New("leaf example multiplier must be positive")

// ErrProvision is returned when a corpus file is missing and could not be fetched.
var ErrProvision = errors.New("dataset provisioning failed")

// ErrLaunch is returned when the external executable cannot be started.
var ErrLaunch = errors.New("failed to launch process")

// ErrNonZeroExit is returned in strict mode when the external process exits with a non-zero status.
var ErrNonZeroExit = errors.New("process exited with non-zero status")
