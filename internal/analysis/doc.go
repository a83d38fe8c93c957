// Package analysis derives values from parsed recordings that the
// ingestion core deliberately does not compute: the time axis implied by a
// configured sampling rate and descriptive per-channel statistics.
package analysis
