// Package types contains the shared types and interfaces for the seat
// allocation library.
//
// It is a leaf package with no internal dependencies, which allows the
// internal packages (allocation, occupancy, energy, batching) to depend on
// it without importing the root seatalloc package. The root package
// re-exports the most commonly used definitions via type aliases.
package types
