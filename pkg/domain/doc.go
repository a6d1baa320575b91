// Package domain contains the value types the program reasons about: the
// integer a user enters and its parity. They carry no I/O concerns so they can
// be shared across packages.
package domain
