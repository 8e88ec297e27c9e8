// Package picking contains the executable side of fulfillment: the Job
// built from an allocated order, its Tasks (one per line/source-container
// binding, ordered for physical traversal), and the operator Session that
// carries scan-unlock and consolidation state through a pick run.
//
// The central invariant lives here: a task completes at most once, and only
// through Confirm, CompleteWithShortage, or a swap. Inventory decrements and
// line progress all hang off that single transition.
package picking
