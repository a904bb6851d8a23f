package context

// TrigForm steers how trig functions are represented (spec.md 4.4's
// TRIG_FORM option).
type TrigForm int

const (
	TrigDirect TrigForm = iota
	TrigExponential
	TrigTangent
)

// Options is the tuning-options vector spec.md 4.4 enumerates. It is a
// plain value type constructed via DefaultOptions and copy-producing
// With* setters, the same pattern ntru's own Params/NewParams/
// WithRNSFactorization uses instead of package-level mutable globals
// (spec.md 9: "no hidden globals").
type Options struct {
	Verbose       bool
	PrecLimit     uint // max working precision (bits) for ball evaluation
	LowPrec       uint // initial precision for cached extension enclosures
	QQBarDegLimit int  // max algebraic degree from automatic qqbar fallbacks
	SmoothLimit   int64
	PowLimit      int
	TrigForm      TrigForm
	PrintFlags    int
	PrintDigits   int
	UseGB         bool
}

// DefaultOptions returns the contract's default tuning values.
func DefaultOptions() Options {
	return Options{
		Verbose:       false,
		PrecLimit:     4096,
		LowPrec:       64,
		QQBarDegLimit: 24,
		SmoothLimit:   32,
		PowLimit:      20,
		TrigForm:      TrigDirect,
		PrintFlags:    0,
		PrintDigits:   16,
		UseGB:         false,
	}
}

func (o Options) WithVerbose(v bool) Options {
	o.Verbose = v
	return o
}

func (o Options) WithPrecLimit(n uint) Options {
	o.PrecLimit = n
	return o
}

func (o Options) WithLowPrec(n uint) Options {
	o.LowPrec = n
	return o
}

func (o Options) WithQQBarDegLimit(n int) Options {
	o.QQBarDegLimit = n
	return o
}

func (o Options) WithSmoothLimit(n int64) Options {
	o.SmoothLimit = n
	return o
}

func (o Options) WithPowLimit(n int) Options {
	o.PowLimit = n
	return o
}

func (o Options) WithTrigForm(f TrigForm) Options {
	o.TrigForm = f
	return o
}

func (o Options) WithUseGB(v bool) Options {
	o.UseGB = v
	return o
}
