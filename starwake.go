package starwake

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R float64 `toml:"r"`
	G float64 `toml:"g"`
	B float64 `toml:"b"`
}

// ColorWhite is the untinted color.
var ColorWhite = Color{1, 1, 1}

// Scale multiplies every component by k.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Lerp linearly interpolates from c to o by t.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
	}
}

// Range is a general-purpose min/max range. Sampling is uniform over
// [Min, Max).
type Range struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Sample draws one value from s and maps it into the range. A degenerate
// range still consumes a draw so that the draw sequence of a generator does
// not depend on configuration.
func (r Range) Sample(s Sampler) float64 {
	return UniformRange(s, r.Min, r.Max)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Width returns Max - Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// ColorRange is a pair of colors sampled with a single draw: the result is
// Min.Lerp(Max, u). When Min equals Max no draw is taken.
type ColorRange struct {
	Min Color `toml:"min"`
	Max Color `toml:"max"`
}

// Fixed reports whether the range collapses to one color.
func (r ColorRange) Fixed() bool {
	return r.Min == r.Max
}

// Sample returns a color from the range.
func (r ColorRange) Sample(s Sampler) Color {
	if r.Fixed() {
		return r.Min
	}
	return r.Min.Lerp(r.Max, s.Uniform01())
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
