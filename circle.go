package sliderpath

// CircleRadius returns the radius in playfield pixels of hit circles and
// slider bodies for the given circle size difficulty setting. Half of a slider
// body's width is this radius; see [Outline].
func CircleRadius(cs float32) float32 {
	// The conversion prevents fusion into an FMA.
	return 54.4 - float32(4.48*cs)
}
