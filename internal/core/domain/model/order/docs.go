// Package order contains the Order aggregate: the spine of the fulfillment
// engine. An order carries its lines, a commercial kind, a fulfillment mode
// and a lifecycle status; every transition of the
// approval -> allocation -> picking -> shipment workflow is a guarded method
// on the aggregate, so illegal jumps fail here rather than in callers.
//
// Picking jobs, tasks and reservations are derived artifacts owned by other
// packages; they reference lines by id and report picked quantities back
// through Line.AddPicked.
package order
