package graphql

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/ini.v1"
)

// DefaultProfile names the profile used when none is selected.
const DefaultProfile = "default"

const (
	profilePrefix = "profile "
	headerPrefix  = "header."
)

// ProfileSettings resolves named endpoint profiles.
type ProfileSettings interface {
	CurrentProfileName() (string, error)
	ProfileNames() []string
	GetProfile(name string) (*Profile, error)
	SetActiveProfile(profile string) error
}

// Profile is a named endpoint with its connection settings. Zero values
// defer to the application config.
type Profile struct {
	Name     string
	Endpoint string
	Timeout  time.Duration
	Headers  map[string]string
}

// ProfileManager loads endpoint profiles from an INI file. The file looks like
//
//	[default]
//	endpoint = https://countries.trevorblades.com/
//
//	[profile mirror]
//	endpoint = https://mirror.example.com/graphql
//	timeout  = 10s
//	header.Authorization = Bearer xyz
type ProfileManager struct {
	profiles      map[string]*Profile
	activeProfile string
	mx            sync.RWMutex
}

// NewProfileManager reads profiles from path. A missing file yields the
// built-in default profile only.
func NewProfileManager(path string) (*ProfileManager, error) {
	m := &ProfileManager{
		profiles: map[string]*Profile{
			DefaultProfile: {Name: DefaultProfile},
		},
		activeProfile: DefaultProfile,
	}
	if path == "" {
		return m, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to access profiles file: %w", err)
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles file: %w", err)
	}

	for _, section := range file.Sections() {
		name := section.Name()
		switch {
		case name == ini.DefaultSection:
			if len(section.Keys()) == 0 {
				continue
			}
			name = DefaultProfile
		case strings.HasPrefix(name, profilePrefix):
			name = strings.TrimSpace(strings.TrimPrefix(name, profilePrefix))
		}

		p, err := parseProfile(name, section)
		if err != nil {
			return nil, err
		}
		m.profiles[name] = p
	}

	return m, nil
}

func parseProfile(name string, section *ini.Section) (*Profile, error) {
	p := &Profile{
		Name:    name,
		Headers: make(map[string]string),
	}

	if section.HasKey("endpoint") {
		p.Endpoint = section.Key("endpoint").String()
	}
	if section.HasKey("timeout") {
		d, err := section.Key("timeout").Duration()
		if err != nil {
			return nil, fmt.Errorf("profile %q: invalid timeout: %w", name, err)
		}
		p.Timeout = d
	}
	for _, key := range section.Keys() {
		if h, ok := strings.CutPrefix(key.Name(), headerPrefix); ok && h != "" {
			p.Headers[h] = key.String()
		}
	}

	return p, nil
}

// CurrentProfileName returns the name of the active profile.
func (m *ProfileManager) CurrentProfileName() (string, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()

	if m.activeProfile == "" {
		return "", fmt.Errorf("no active profile set")
	}

	return m.activeProfile, nil
}

// ProfileNames returns the sorted profile names.
func (m *ProfileManager) ProfileNames() []string {
	m.mx.RLock()
	defer m.mx.RUnlock()

	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// GetProfile returns a copy of the named profile.
func (m *ProfileManager) GetProfile(name string) (*Profile, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()

	p, ok := m.profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", name)
	}

	cp := &Profile{
		Name:     p.Name,
		Endpoint: p.Endpoint,
		Timeout:  p.Timeout,
		Headers:  make(map[string]string, len(p.Headers)),
	}
	for k, v := range p.Headers {
		cp.Headers[k] = v
	}

	return cp, nil
}

// SetActiveProfile switches the active profile.
func (m *ProfileManager) SetActiveProfile(profile string) error {
	m.mx.Lock()
	defer m.mx.Unlock()

	if _, ok := m.profiles[profile]; !ok {
		return fmt.Errorf("profile %q not found", profile)
	}
	m.activeProfile = profile

	return nil
}
