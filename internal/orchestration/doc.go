// Package orchestration coordinates concurrent capacity probes across numeric
// kinds and aggregates their results for presentation. It decouples the probe
// logic from presentation via ProgressReporter and ResultPresenter interfaces.
package orchestration
