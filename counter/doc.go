// Package counter implements a shared 64-bit XOR accumulator in two
// variants that are driven through the same contract:
//
//   - Atomic: every update is an indivisible compare-and-swap
//     read-modify-write. No update is ever lost, so after all writers
//     stop the value equals the XOR of every operand ever applied,
//     regardless of interleaving.
//
//   - Unsync: the update is a plain load, XOR, store with no
//     synchronization at all. Two concurrent writers can interleave so
//     that one store is based on a stale load, silently discarding the
//     other writer's update. This variant is wrong on purpose; it exists
//     to make the lost-update failure mode observable next to the
//     correct variant.
//
// Both variants are handles to heap-allocated state: copying the pointer
// shares the underlying value, which is how the workload driver hands the
// same accumulator to every worker.
package counter
