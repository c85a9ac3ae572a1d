// Package seatalloc allocates office seats from badge access events and
// drives per-zone power state from the resulting occupancy.
//
// The Engine is the main entry point. It consumes access events from an
// EventSource in small batches, places each employee on a seat using a
// pluggable SeatStrategy, and reconciles zone power after every batch so
// that a zone is energized exactly while it has occupants.
//
// Placement semantics:
//   - An employee holds at most one seat; repeated badge events for the
//     same employee are idempotent and return the existing assignment.
//   - A zone hosts at most Config.ZoneDepartmentCap distinct departments;
//     zones at the cap are excluded from a foreign department's candidates.
//   - Teams stick together: once a team has occupants in a zone with free
//     seats, new teammates are locked to that zone. The lock relaxes to
//     zones hosting the department, then to the full free domain.
//   - All remaining choice is resolved by the SeatStrategy; the bundled
//     strategy.LocalityBeam ranks by team locality, department locality,
//     zone consolidation, anchor affinity and seat proximity, with the
//     lowest seat ID as the final deterministic tie-break.
//
// Basic usage:
//
//	topo, err := topology.Load("office.yaml")
//	// handle err
//	eng, err := seatalloc.NewEngine(&cfg, topo, dir, src, strategy.NewLocalityBeam())
//	// handle err
//	err = eng.Run(ctx)
//
// The engine is a single writer: batches are processed strictly one at a
// time, and all snapshot accessors return copies that are safe to read
// concurrently with processing.
package seatalloc
