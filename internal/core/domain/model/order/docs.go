// Package order provides the domain model for the order fulfillment workflow.
// It implements the Order aggregate and its children: OrderGroup, the unit of
// work assigned to one fulfilling shipping-agency organization, and
// OrderGroupService, a priced service line item.
//
// The package includes:
//   - Status: the shared state machine for groups and line items
//     (pending, accepted, rejected, in_progress, completed)
//   - InvalidTransitionError: the typed failure for out-of-order transitions
//   - OrderGroup: acceptance/rejection bookkeeping and subtotal rollup
//   - OrderGroupService: immutable price snapshots with independent status
//   - Order: derived status and monetary total rolled up from child groups
//
// Key business rules:
//   - accept/reject are only legal from pending; start only from accepted;
//     complete only from in_progress; rejected and completed are terminal
//   - a failed transition never partially applies
//   - price snapshots are frozen at selection time regardless of later
//     catalog price changes
//   - group and line item statuses are independent; neither cascades into
//     the other
package order
