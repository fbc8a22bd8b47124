// Package domain defines the types and contracts shared across the app.
// It contains plain types and interfaces only.
package domain
