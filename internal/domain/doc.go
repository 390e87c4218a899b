// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (structures, matrices, reports) and contracts
// (interfaces) only.
package domain
