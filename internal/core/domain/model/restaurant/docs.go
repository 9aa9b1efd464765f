// Package restaurant contains the restaurant aggregate and the entities it
// owns: the login credentials created at approval time, menu categories with
// their items, and per-weekday operating hours.
//
// The aggregate root owns the registration lifecycle state machine:
//
//	NEW_REG ──approve──> ACTIVE ──requestWithdrawal──> WITHDRAW_REQ
//	   │                    ^                               │
//	   └──reject──> (deleted)└───────rejectWithdrawal───────┘
//	                                  approveWithdrawal──> (deleted)
//
// Deletions are carried out by the application layer; the domain only decides
// whether the current status permits them.
package restaurant
