// Package exporter writes parsed recordings to downstream consumers:
// CSV files for inspection tools and, optionally, an InfluxDB bucket.
package exporter
