// Package optional contains a type representing a value that may be absent.
package optional
