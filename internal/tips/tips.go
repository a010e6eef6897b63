// Package tips supplies the short reduction suggestions shown on the
// results screen.
package tips

import "math/rand"

// catalog holds every tip the results screen can draw from.
var catalog = []string{
	"Keep your devices longer: stretching a laptop's life from 3 to 5 years cuts its yearly footprint by 40%.",
	"Buy refurbished when you can; a second-hand device skips most of its manufacturing emissions.",
	"Sell or donate old devices instead of storing them in a drawer.",
	"Turn your computer off overnight instead of leaving it on standby.",
	"Stream lectures in standard definition when the slides are all you need.",
	"Clean up cloud storage you no longer use; standing data has a standing footprint.",
	"Send links instead of attachments for large files.",
	"Batch your AI queries: one well-phrased prompt beats five retries.",
	"Print double-sided, or not at all.",
	"Turn off your camera in large video calls when it adds nothing.",
}

// Picker selects tips using an injected random source so selection is
// reproducible under test.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a Picker drawing from the given source.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Pick returns n distinct tips in random order. n is capped at the size of
// the catalog.
func (p *Picker) Pick(n int) []string {
	if n > len(catalog) {
		n = len(catalog)
	}
	if n <= 0 {
		return nil
	}

	perm := p.rng.Perm(len(catalog))
	out := make([]string, 0, n)
	for _, i := range perm[:n] {
		out = append(out, catalog[i])
	}
	return out
}
