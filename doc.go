/*
Package memtreebench is an experiment harness for the memory-tree extreme multilabel
learner.

A run sizes the memory tree from the assumed number of training examples, makes sure the
train and test corpora are present (downloading them when they are not), trains the
external learner, evaluates the resulting model on the test corpus and reports how long
training and evaluation took.

The learner is treated as a black box invoked as a child process; see pkg/harness for the
pipeline and cmd/memtree-bench for the command-line entry point.
*/
package memtreebench
