package math

// The *To functions write their result through out and return it, so calls
// can be chained. Inputs are passed by value, so out may alias any of them.

// CopyTo stores v in out.
func CopyTo(out *Vec3, v Vec3) *Vec3 {
	*out = v
	return out
}

// AddTo stores a + b in out.
func AddTo(out *Vec3, a, b Vec3) *Vec3 {
	*out = a.Add(b)
	return out
}

// SubTo stores a - b in out.
func SubTo(out *Vec3, a, b Vec3) *Vec3 {
	*out = a.Sub(b)
	return out
}

// CrossTo stores a × b in out.
func CrossTo(out *Vec3, a, b Vec3) *Vec3 {
	*out = a.Cross(b)
	return out
}

// NormalizeTo stores the normalized v in out. On error out is left untouched.
func NormalizeTo(out *Vec3, v Vec3) (*Vec3, error) {
	n, err := v.Normalize()
	if err != nil {
		return out, err
	}
	*out = n
	return out, nil
}

// TriangleNormalTo stores the normal of p1, p2, p3 in out. On error out is left untouched.
func TriangleNormalTo(out *Vec3, p1, p2, p3 Vec3) (*Vec3, error) {
	n, err := TriangleNormal(p1, p2, p3)
	if err != nil {
		return out, err
	}
	*out = n
	return out, nil
}
