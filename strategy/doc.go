// Package strategy provides seat ranking strategies for the allocator.
//
// Strategies are pure, deterministic rankers: the allocator hands them a
// pre-filtered candidate set (locality lock and department cap already
// applied) and they pick exactly one seat.
//
// Available strategies:
//   - LocalityBeam: the default. Strict tie-break tiers (team occupancy,
//     department occupancy, zone consolidation, floor/building affinity,
//     seat-number proximity) with a beam-width headroom lookahead breaking
//     full ties, and the lowest seat ID as the final tie-break.
//   - Compact: dense packing into the fullest zone, ignoring team locality.
package strategy
