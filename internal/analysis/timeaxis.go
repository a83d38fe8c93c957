package analysis

// TimeAxis derives sample timestamps in seconds from a fixed sampling rate:
// sample i occurs at i/hz. The rate is caller-supplied configuration; the
// parsing pipeline itself never needs it.
func TimeAxis(sampleCount int, hz float64) []float64 {
	if sampleCount <= 0 || hz <= 0 {
		return nil
	}
	axis := make([]float64, sampleCount)
	for i := range axis {
		axis[i] = float64(i) / hz
	}
	return axis
}
