package adaptorsig

// ZeroizeScalar overwrites s with zeros. Protocol parties call this when they
// are closed so secret material does not outlive the run.
func ZeroizeScalar(s *Scalar) {
	s.Zero()
}

// ZeroizeBytes overwrites the provided slice with zeros.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
