/*

Package tipping defines the host model shared by the tip settlement
program and its collaborators: addresses, derived (keyless) addresses,
account references and calls, rent pricing, and the key-value store
interfaces with all-or-nothing cache wrapping.

Look into this package to get a brief overview of design decisions made
around interfaces and building blocks. The settlement program itself
lives in x/tipjar.

*/
package tipping
