// Package workload drives both counter variants through an identical
// concurrent workload and reports the outcome. Each worker applies every
// operand to the atomic counter and then to the unsynchronized one, so
// any divergence between the two final values is attributable to the
// synchronization strategy alone.
package workload
