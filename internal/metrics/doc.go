// Package metrics records per-run statistics for the fibs CLI.
//
// A Recorder owns a private Prometheus registry so repeated runs (and tests)
// never collide on the global default registry. At the end of a run the
// collected families can be dumped in the Prometheus text exposition format
// with WriteText. MemoryCollector provides the runtime memory readings shown by
// --details and exported as gauges.
package metrics
