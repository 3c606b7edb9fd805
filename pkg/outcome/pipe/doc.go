// Package pipe provides lightweight channel-lifted helpers for running
// Result streams through concurrent stages.
//
// Common usage:
//   - Source: lift plain values into a stream of Ok results
//   - Stage: fan a stream out over a configurable number of workers
//   - Lift/Guard: turn fallible functions into stage functions, with or
//     without an interception filter and recovery handler
//   - Collect/Finally: drain a stream into a slice or map it to final values
//
// Worker counts are configured through the context via WithWorkers; the
// stream drains and closes on cancellation.
package pipe
