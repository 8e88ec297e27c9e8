// Package services holds domain services that span aggregates: the
// allocation strategies that reserve stock for an order, and the traversal
// ordering that turns a set of pick tasks into a walkable list.
package services
