// Package types defines the Stock ledger, the Store interface, backend
// configuration, and the standard errors for stockroom.
//
// A Stock is owned by its caller and passed explicitly to every operation;
// nothing in this module keeps inventory in package state.
package types
