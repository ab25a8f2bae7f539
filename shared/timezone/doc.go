// Package timezone centralizes clock access so every timestamp the service
// produces is expressed in the configured application timezone. Night
// boundaries for availability accounting depend on this: a booking night is a
// calendar date in the application timezone, not in the client's.
package timezone
