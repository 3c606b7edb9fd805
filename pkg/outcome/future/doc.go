// Package future provides the canonical one-shot future used by the
// interception wrapper, plus adapters that bridge foreign asynchronous
// protocols (two-callback thenables and platform pseudo-futures) into it.
//
// A Future[T] settles exactly once with an outcome.Result[T]; continuation
// combinators (Then, Catch, MapFuture) derive new futures without mutating
// the source. Async[T] is the closed classification of a call's outcome:
// either an immediate plain value or a pending future. Foreign async shapes
// are converted once at the boundary by Classify, so downstream code only
// ever branches on the variant, never on structural shape probing.
//
// There is no cancellation or timeout on the future itself: a future that
// never settles leaves its continuations pending forever. Await takes a
// context so callers can bound their own wait.
package future
