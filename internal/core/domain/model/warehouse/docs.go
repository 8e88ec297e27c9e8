// Package warehouse models physical stock: containers, the per-(container,
// product) inventory entries that are the unit of transactional mutation,
// and the reservations allocation uses to promise stock to orders.
//
// The reserved balance on an InventoryEntry always equals the sum of live
// reservations against it; allocation, deallocation and task confirmation
// keep the two in step inside one transaction.
package warehouse
