package util

// MustString returns the value of fn, panicking on error. Meant for calls
// like os.UserHomeDir that cannot reasonably fail at startup.
func MustString(fn func() (string, error)) string {
	s, err := fn()
	if err != nil {
		panic(err)
	}
	return s
}
