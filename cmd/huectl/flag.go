package main

import "strconv"

// clampedInt is a pflag.Value that clamps its input into a valid range
// instead of rejecting out-of-range values.
type clampedInt struct {
	value int
	clamp func(int) int
	set   bool
}

func newClampedInt(clamp func(int) int) *clampedInt {
	return &clampedInt{clamp: clamp}
}

func (c *clampedInt) String() string {
	if !c.set {
		return ""
	}
	return strconv.Itoa(c.value)
}

func (c *clampedInt) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	c.value = c.clamp(v)
	c.set = true
	return nil
}

func (c *clampedInt) Type() string {
	return "int"
}
