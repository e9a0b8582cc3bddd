// Package infra contains technical adapters such as the CSV table sources,
// metric exporters and the MQTT display feed. These packages should depend
// only on the interfaces defined in the core packages.
package infra
