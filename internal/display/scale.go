package display

// Scale returns a linear map from domain onto codomain. Inputs outside the
// domain clamp to the nearest end. A codomain given high-to-low is
// inverted, which is how screen rows grow downward while values grow up.
// The domain is expected low-to-high; a reversed one is swapped.
func Scale(domain, codomain [2]float64) func(float64) float64 {
	inMin, inMax := domain[0], domain[1]
	if inMax < inMin {
		inMin, inMax = inMax, inMin
	}

	outMin, outMax := codomain[0], codomain[1]
	inverted := false
	if outMax < outMin {
		outMin, outMax = outMax, outMin
		inverted = true
	}

	return func(in float64) float64 {
		if in <= inMin {
			if inverted {
				return outMax
			}
			return outMin
		}
		if inMax <= in {
			if inverted {
				return outMin
			}
			return outMax
		}

		ratio := (in - inMin) / (inMax - inMin)
		if inverted {
			return outMax - (outMax-outMin)*ratio
		}
		return (outMax-outMin)*ratio + outMin
	}
}
