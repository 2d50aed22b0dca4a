/*
Package domain contains the core models of the memory-tree benchmark harness.

It defines the values that flow through the pipeline: the immutable experiment
configuration, references to corpora and model artifacts, invocation descriptions for
the external learner and the timing records produced by running them. This package is
kept pure and free of I/O.

# Key Entities

  - Experiment: the fixed hyperparameters and file naming for one benchmark run.
  - DatasetRef: a corpus file, both as a local path and as a remote URL.
  - ModelRef: the model artifact written by training and read by evaluation.
  - Invocation: a fully resolved command line for one external process.
  - Timing / RunRecord: wall-clock measurements reported to the operator.
*/
package domain
