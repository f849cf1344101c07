package config

// strFlag tracks whether a flag was explicitly set, so a JSON config file
// can fill in only the values the command line left untouched.
type strFlag struct {
	v   string
	set bool
}

func (f *strFlag) String() string     { return f.v }
func (f *strFlag) Set(s string) error { f.v, f.set = s, true; return nil }
