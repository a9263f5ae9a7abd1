// Package metrics records benchmark measurements and runtime memory
// statistics. Measurements are kept in a private Prometheus registry and can
// be exported as a textfile for the node_exporter textfile collector.
package metrics
