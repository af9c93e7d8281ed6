package pipeline

// ScaleFactors returns the per-axis ratios that project model input space
// coordinates into frame space. Both geometries are fixed for the run, but
// the factors are recomputed once per frame, not once per detection.
func ScaleFactors(frameW, frameH, modelW, modelH int) (scaleX, scaleY float64) {
	scaleX = float64(frameW) / float64(modelW)
	scaleY = float64(frameH) / float64(modelH)
	return scaleX, scaleY
}

// MapBox rescales a model-space box into frame space. Each edge is
// multiplied by its axis scale and truncated to an integer pixel
// coordinate, then clamped to the frame bounds. Clamping happens strictly
// after scaling: raw detections legitimately extend past the frame near
// its edges, and the result must still be renderable.
func MapBox(b Box, scaleX, scaleY float64, frameW, frameH int) ScaledBox {
	scaled := ScaledBox{
		X1: int(float64(b.Left) * scaleX),
		Y1: int(float64(b.Top) * scaleY),
		X2: int(float64(b.Right) * scaleX),
		Y2: int(float64(b.Bottom) * scaleY),
	}

	return ClampBox(scaled, frameW, frameH)
}

// ClampBox clamps each edge independently to [0, frameW-1] horizontally
// and [0, frameH-1] vertically. Idempotent.
func ClampBox(b ScaledBox, frameW, frameH int) ScaledBox {
	return ScaledBox{
		X1: clamp(b.X1, 0, frameW-1),
		Y1: clamp(b.Y1, 0, frameH-1),
		X2: clamp(b.X2, 0, frameW-1),
		Y2: clamp(b.Y2, 0, frameH-1),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
