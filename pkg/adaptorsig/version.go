package adaptorsig

// Version reports the semantic version of the library.
func Version() string {
	return "0.1.0"
}
