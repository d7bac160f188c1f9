// Package telemetry provides optional, opt-in observability for the
// engine, blueprint, and ledger packages: a structured-logging Sink
// (backed by github.com/rs/zerolog, grounded on BaoNinh2808-gnark's
// backend logging) and prometheus-backed Metrics (grounded on
// luxfi-consensus's use of github.com/prometheus/client_golang).
//
// Neither is required to use newtonfield as a library: engine.Engine,
// blueprint.Blueprint, and ledger.Ledger all default to NoopSink() and a
// nil *Metrics, exactly the way lvlath's traversal algorithms accept an
// optional OnVisit/OnEnqueue hook instead of owning a logger (bfs/types.go,
// dfs/types.go) rather than the way lvlath never offers one at all.
package telemetry
