// Package profile provides the compiled-in launcher profiles.
//
// Each profile describes how one launcher binary greets the user and whether
// it opens a browser tab. The serving behaviour itself is identical across
// profiles.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
)

// Banner styles.
const (
	BannerFramed = "framed"
	BannerPlain  = "plain"
)

// Profile names shipped with the binaries.
const (
	Game  = "game"
	Start = "start"
)

// ErrUnknownProfile is returned by Get for a name missing from profiles.toml.
var ErrUnknownProfile = errors.New("unknown profile")

//go:embed profiles.toml
var profilesTOML string

// Profile is one launcher configuration.
type Profile struct {
	// Name is the key of the profile in profiles.toml.
	Name string `toml:"-"`
	// Banner selects the startup text layout: "framed" or "plain".
	Banner string `toml:"banner"`
	// Title is the heading of a framed banner.
	Title string `toml:"title"`
	// Icon is printed in front of the title of a framed banner.
	Icon string `toml:"icon"`
	// OpenBrowser schedules a default-browser open after OpenDelay.
	OpenBrowser bool `toml:"open_browser"`
	// OpenDelay is the time between startup and the browser open.
	OpenDelay time.Duration `toml:"open_delay"`
	// StopMessage is printed once the server has shut down.
	StopMessage string `toml:"stop_message"`
}

type file struct {
	Profiles map[string]Profile `toml:"profiles"`
}

// Load decodes every embedded profile and validates it.
func Load() (map[string]Profile, error) {
	return parse(profilesTOML)
}

// Get returns the embedded profile called name.
func Get(name string) (Profile, error) {
	all, err := Load()
	if err != nil {
		return Profile{}, err
	}
	p, ok := all[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownProfile, name, names(all))
	}
	return p, nil
}

func parse(data string) (map[string]Profile, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode profiles: unknown keys %v", undecoded)
	}

	out := make(map[string]Profile, len(f.Profiles))
	for name, p := range f.Profiles {
		p.Name = name
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}

// Validate reports a profile the launcher cannot run.
func (p Profile) Validate() error {
	switch p.Banner {
	case BannerFramed, BannerPlain:
	default:
		return fmt.Errorf("profile %q: banner must be %q or %q, got %q", p.Name, BannerFramed, BannerPlain, p.Banner)
	}
	if p.OpenBrowser && p.OpenDelay <= 0 {
		return fmt.Errorf("profile %q: open_delay must be positive when open_browser is set", p.Name)
	}
	return nil
}

func names(m map[string]Profile) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
