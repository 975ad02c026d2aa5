// Package http serves the devnet over JSON/HTTP.
//
// Ledger reads are public. Transactions require a bearer session token whose
// subject becomes the signer. Relayer endpoints share the same router so a
// single address serves both. Failures are written as plain-text bodies
// carrying the revert reason, which the client adapters classify.
package http
