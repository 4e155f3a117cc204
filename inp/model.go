package inp

import (
	"github.com/cpmech/gosl/chk"
)

// ModelConfig holds the time window and Fourier-series order shared by the whole
// model (§3 "Laplace grid", §6 "tmin"/"tmax"/"M").
type ModelConfig struct {
	Tmin    float64 // start of the time window (must be > 0)
	Tmax    float64 // end of the time window (must be > Tmin)
	M       int     // Fourier-series half-length (>= 4, typically 20, §3)
	Verbose bool    // emit io.Pf progress messages during Solve
}

// Validate runs every configuration check that must fail before any Laplace grid is
// built (§7 "Configuration error").
func (o *ModelConfig) Validate() error {
	if o.Tmin <= 0 {
		return chk.Err("tmin must be strictly positive, got %v", o.Tmin)
	}
	if o.Tmax <= o.Tmin {
		return chk.Err("tmax must be greater than tmin, got tmin=%v tmax=%v", o.Tmin, o.Tmax)
	}
	if o.M < 4 {
		return chk.Err("M must be >= 4, got %d", o.M)
	}
	return nil
}
