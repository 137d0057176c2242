// Package core provides the foundational domain types, interfaces and shared
// execution state used by AgentCrew. It defines the core abstractions for:
//
//   - Roles (the functional position a worker occupies in a plan)
//   - SharedState (the single mutable record threaded through plan execution)
//   - Plans (ordered step lists derived from a role set and a task)
//   - TeamConfig / TeamResult (execution policy and the compiled outcome)
//   - The Worker / WorkerResolver boundary used to bind role descriptors to
//     concrete capability endpoints
//
// The package intentionally keeps implementation concerns (plan construction,
// step dispatch, team orchestration, concrete workers) out of scope, exposing
// small interfaces to enable custom backends and extensions.
package core
