// Package replay loads scripted popup sessions and runs them through a
// controller on the headless host.
package replay

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a trace file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Step verbs.
const (
	DoShow    = "show"
	DoHide    = "hide"
	DoToggle  = "toggle"
	DoPreload = "preload"
	DoDiscard = "discard"
	DoDispose = "dispose"
	DoWindow  = "window"
	DoBounds  = "bounds"
	DoEvent   = "event"
	DoFocus   = "focus"
	DoKey     = "key"
	DoDrain   = "drain"
	DoExpect  = "expect"
)

// PopupTarget names the popup window in steps.
const PopupTarget = "popup"

// Trace is a replayable popup session.
type Trace struct {
	Name        string      `yaml:"name" toml:"name"`
	Description string      `yaml:"description,omitempty" toml:"description,omitempty"`
	Popup       PopupSpec   `yaml:"popup,omitempty" toml:"popup,omitempty"`
	Dismiss     DismissSpec `yaml:"dismiss,omitempty" toml:"dismiss,omitempty"`
	Preview     string      `yaml:"preview,omitempty" toml:"preview,omitempty"`
	Steps       []Step      `yaml:"steps" toml:"steps"`
	Source      string      `yaml:"-" toml:"-"`
}

// PopupSpec overrides the popup geometry.
type PopupSpec struct {
	Width  int `yaml:"width,omitempty" toml:"width,omitempty"`
	Height int `yaml:"height,omitempty" toml:"height,omitempty"`
}

// DismissSpec overrides individual dismissal triggers.
type DismissSpec struct {
	OnFocusLoss    *bool `yaml:"on_focus_loss,omitempty" toml:"on_focus_loss,omitempty"`
	OnClickOutside *bool `yaml:"on_click_outside,omitempty" toml:"on_click_outside,omitempty"`
	OnPointerLeave *bool `yaml:"on_pointer_leave,omitempty" toml:"on_pointer_leave,omitempty"`
}

// Step is one scripted action or expectation.
type Step struct {
	Do     string  `yaml:"do" toml:"do"`
	Name   string  `yaml:"name,omitempty" toml:"name,omitempty"`
	Owner  string  `yaml:"owner,omitempty" toml:"owner,omitempty"`
	Target string  `yaml:"target,omitempty" toml:"target,omitempty"`
	Kind   string  `yaml:"kind,omitempty" toml:"kind,omitempty"`
	At     []int   `yaml:"at,omitempty" toml:"at,omitempty"`
	Bounds []int   `yaml:"bounds,omitempty" toml:"bounds,omitempty"`
	Source string  `yaml:"source,omitempty" toml:"source,omitempty"`
	Chord  string  `yaml:"chord,omitempty" toml:"chord,omitempty"`
	Expect *Expect `yaml:"expect,omitempty" toml:"expect,omitempty"`
}

// Expect checks the controller after the preceding steps. Unset fields are
// not checked.
type Expect struct {
	State          string  `yaml:"state,omitempty" toml:"state,omitempty"`
	Phase          string  `yaml:"phase,omitempty" toml:"phase,omitempty"`
	Hides          *int    `yaml:"hides,omitempty" toml:"hides,omitempty"`
	Windows        *int    `yaml:"windows,omitempty" toml:"windows,omitempty"`
	Handled        *bool   `yaml:"handled,omitempty" toml:"handled,omitempty"`
	Pending        *int    `yaml:"pending,omitempty" toml:"pending,omitempty"`
	Reason         *string `yaml:"reason,omitempty" toml:"reason,omitempty"`
	PreviewsOpened *int    `yaml:"previews_opened,omitempty" toml:"previews_opened,omitempty"`
	OverlayToggles *int    `yaml:"overlay_toggles,omitempty" toml:"overlay_toggles,omitempty"`
	Subscribed     *bool   `yaml:"subscribed,omitempty" toml:"subscribed,omitempty"`
}

// Load reads a trace, choosing the decoder from the file extension.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	tr, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tr.Source = path
	if tr.Name == "" {
		tr.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return tr, nil
}

// Collect expands args into trace paths. Directories contribute their
// .yaml, .yml and .toml files in name order.
func Collect(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		var found []string
		for _, pattern := range []string{"*.yaml", "*.yml", "*.toml"} {
			matches, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				return nil, err
			}
			found = append(found, matches...)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no traces in %s", arg)
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}

// FormatForPath maps .yaml, .yml and .toml to a format.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported trace extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Parse decodes a trace. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Trace, error) {
	var tr Trace
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&tr); err != nil {
			return nil, fmt.Errorf("decode yaml trace: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&tr); err != nil {
			return nil, fmt.Errorf("decode toml trace: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown trace format %q", format)
	}

	if err := tr.validate(); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (tr *Trace) validate() error {
	if len(tr.Steps) == 0 {
		return fmt.Errorf("trace %q has no steps", tr.Name)
	}
	for i, s := range tr.Steps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s.Do, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Do {
	case DoShow, DoHide, DoToggle, DoPreload, DoDiscard, DoDispose, DoDrain:
		return nil
	case DoWindow:
		if s.Name == "" || s.Name == PopupTarget {
			return fmt.Errorf("window needs a name other than %q", PopupTarget)
		}
		return validateRect(s.Bounds)
	case DoBounds:
		if s.Target == "" {
			return fmt.Errorf("bounds needs a target")
		}
		return validateRect(s.Bounds)
	case DoEvent:
		if s.Kind == "" {
			return fmt.Errorf("event needs a kind")
		}
		if s.At != nil && len(s.At) != 2 {
			return fmt.Errorf("at must be [x, y]")
		}
		return nil
	case DoFocus:
		if s.Target == "" {
			return fmt.Errorf("focus needs a target")
		}
		return nil
	case DoKey:
		if s.Chord == "" {
			return fmt.Errorf("key needs a chord")
		}
		return nil
	case DoExpect:
		if s.Expect == nil {
			return fmt.Errorf("expect needs an expect block")
		}
		return nil
	default:
		return fmt.Errorf("unknown step %q", s.Do)
	}
}

func validateRect(v []int) error {
	if len(v) != 4 {
		return fmt.Errorf("bounds must be [x, y, width, height]")
	}
	return nil
}
