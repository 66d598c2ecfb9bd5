// SPDX-License-Identifier: EPL-2.0

// Package metrics counts session activity with Prometheus collectors.
//
// audtrim is a batch tool, so nothing is served over HTTP. Instead the
// collected values can be written in the text exposition format to a file
// picked up by the node_exporter textfile collector.
package metrics
