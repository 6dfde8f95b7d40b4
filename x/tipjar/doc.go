/*
Package tipjar implements an on-ledger tip settlement program.

A single configuration record, stored at an address derived from the
program address, carries the settlement parameters (admin, treasury,
fee rate) and running counters. Incoming instructions are settled
atomically: a tip either moves the full amount (creator share plus
treasury fee) and updates the counters, or leaves the ledger untouched.

Three instructions are supported. Initialize creates and funds the
configuration record. Tip splits an amount between a creator and the
treasury according to the configured fee rate. UpdateFee changes the
fee rate and is restricted to the admin.
*/
package tipjar
