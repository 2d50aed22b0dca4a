/*
Package harness sequences one benchmark run.

The Driver sizes the memory tree, provisions the corpora, trains, evaluates and returns
a domain.RunRecord with both durations. The stages are strictly sequential: evaluation
starts only after training returned, and any error ends the run without attempting the
remaining stages.
*/
package harness
