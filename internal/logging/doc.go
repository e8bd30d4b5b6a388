// Package logging provides the structured logging interface used by the fibs
// binary. zerolog sits behind a small Logger interface so tests can swap in
// the gomock mock from the mocks subpackage.
package logging
