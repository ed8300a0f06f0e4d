package bridge

// Ranges the bridge accepts for brightness and colour temperature.
// Larger ct values are warmer.
const (
	BriMin = 0
	BriMax = 254
	CtMin  = 153
	CtMax  = 500
)

// StateChange is a partial update for a light.
// Nil fields are left untouched by the bridge.
type StateChange struct {
	On  *bool `json:"on,omitempty"`
	Bri *int  `json:"bri,omitempty"`
	Ct  *int  `json:"ct,omitempty"`
}

// ClampBri clamps v into the brightness range.
func ClampBri(v int) int {
	return clamp(v, BriMin, BriMax)
}

// ClampCt clamps v into the colour temperature range.
func ClampCt(v int) int {
	return clamp(v, CtMin, CtMax)
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
