/*
Package ports defines the driven ports (interfaces) of the benchmark harness.

These interfaces decouple the pipeline from the external learner, the remote file host
and run history backends, so each can be substituted in tests.

# Key Interfaces

  - Fetcher: retrieves a remote corpus file.
  - Provisioner: guarantees corpus files exist locally.
  - Executor: runs an Invocation as a blocking process and times it.
  - Trainer / Evaluator: the learning engine, seen as two blocking operations.
  - RunRecorder: keeps a history of completed runs.
*/
package ports
