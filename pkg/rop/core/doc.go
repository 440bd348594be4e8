// Package core contains plumbing shared by the other packages: options
// carried through context (fan-out limit, logger), channel helpers, and the
// locomotive that drives a composable over a stream of inputs. It does not
// define business logic.
package core
