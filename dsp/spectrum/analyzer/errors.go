package analyzer

import "fmt"

func validateInit(channels, maxRank, maxSampleRate int, minRate float64) error {
	if channels <= 0 {
		return fmt.Errorf("analyzer: channels must be > 0: %d", channels)
	}
	if maxRank < 2 {
		return fmt.Errorf("analyzer: maxRank must be >= 2: %d", maxRank)
	}
	if maxSampleRate <= 0 {
		return fmt.Errorf("analyzer: maxSampleRate must be > 0: %d", maxSampleRate)
	}
	if minRate <= 0 {
		return fmt.Errorf("analyzer: minRate must be > 0: %f", minRate)
	}
	return nil
}
