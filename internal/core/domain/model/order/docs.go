// Package order contains the order aggregate, its line items, the fulfillment
// status state machine, and the human-readable order number format.
//
// Fulfillment flow:
//
//	(create) ──> PENDING ──assignDriver──> OUT_FOR_DELIVERY ──> DELIVERED
//	                                                       └──> NOT_DELIVERED
//
// DELIVERED and NOT_DELIVERED are terminal. Driver availability is coupled to
// these transitions by the application layer: assignment makes the driver
// busy, reaching a terminal status releases them.
package order
