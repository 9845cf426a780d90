package toolpath

// DepthSequence expands a single target depth into the increasing sequence
// of per-pass depths a multi-pass carve should step through, ending at
// targetDepth. Two distinct policies are named here rather than exposed as
// near-duplicate carve entry points:
//
//   - StepByBitRadius climbs in increments of bitDiameter/2 — the policy
//     the newer carve_path variant uses, so the step size scales with the
//     tool actually mounted.
//   - StepByFixedDepth climbs in an absolute, caller-chosen increment
//     regardless of bit size — the older add_multipass policy.
type DepthSequence func(targetDepth, bitDiameter float64) []float64

// StepByBitRadius climbs in increments of bitDiameter/2 until reaching
// targetDepth, which is always the final element (even if it falls short of
// a full increment).
func StepByBitRadius(targetDepth, bitDiameter float64) []float64 {
	step := bitDiameter / 2
	return climb(targetDepth, step)
}

// StepByFixedDepth returns a DepthSequence that climbs in a fixed absolute
// increment independent of bit size.
func StepByFixedDepth(depthStep float64) DepthSequence {
	return func(targetDepth, _ float64) []float64 {
		return climb(targetDepth, depthStep)
	}
}

func climb(targetDepth, step float64) []float64 {
	if step <= 0 {
		return []float64{targetDepth}
	}
	var depths []float64
	for d := step; d < targetDepth; d += step {
		depths = append(depths, d)
	}
	depths = append(depths, targetDepth)
	return depths
}

// singlePassSequence always carves directly to targetDepth in one pass,
// used when the caller requests SinglePass.
func singlePassSequence(targetDepth, _ float64) []float64 {
	return []float64{targetDepth}
}
