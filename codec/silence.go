package codec

// SilenceDetector holds thresholds and runs noise floor estimate.
type SilenceDetector struct {
	noiseFloor float64
	alpha      float64 // smoothing factor
	threshold  float64 // multiplier over noise floor
}

func newSilenceDetector() SilenceDetector {
	return SilenceDetector{
		noiseFloor: 1e-6, // initial guess
		alpha:      0.95, // smoothing
		threshold:  3.0,  // energy must exceed the noise floor by this factor
	}
}

// IsSilence checks whether a frame whose lag-0 autocorrelation is r0 over n
// samples is silence, updating the noise floor on quiet frames.
func (sd *SilenceDetector) IsSilence(r0 float64, n int) bool {
	if n == 0 {
		return true
	}

	energy := r0 / float64(n)

	// update noise floor estimate (when low energy)
	if energy < sd.noiseFloor*sd.threshold {
		sd.noiseFloor = sd.alpha*sd.noiseFloor + (1-sd.alpha)*energy
	}

	return energy < sd.noiseFloor*sd.threshold
}
