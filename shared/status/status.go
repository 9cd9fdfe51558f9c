// Package status describes the enumerated fields of front-desk records and how each label is presented.
package status

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"frontdesk/shared/failure"
)

type Tone string

const (
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneBlue   Tone = "blue"
	ToneOrange Tone = "orange"
	ToneRed    Tone = "red"
	ToneGray   Tone = "gray"
)

type Option struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
	Icon  string `json:"icon,omitempty"`
}

// Axis is one enumerated field of an entity, e.g. a reservation's payment status.
type Axis struct {
	Name    string   `json:"name"`
	Field   string   `json:"field"`
	Options []Option `json:"options"`
}

type Badge struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
	Icon  string `json:"icon,omitempty"`
}

func (a Axis) Labels() []string {
	labels := make([]string, len(a.Options))
	for idx, option := range a.Options {
		labels[idx] = option.Label
	}

	return labels
}

func (a Axis) Has(label string) bool {
	return slices.Contains(a.Labels(), label)
}

// Validate rejects labels outside the enumeration with a bad request failure.
func (a Axis) Validate(label string) error {
	if a.Has(label) {
		return nil
	}

	return failure.BadRequestFromString(fmt.Sprintf("%s must be one of %s", a.Name, strings.Join(a.Labels(), ", "))) //nolint:wrapcheck
}

// Badge returns the presentation of label; unknown labels render neutral.
func (a Axis) Badge(label string) Badge {
	for _, option := range a.Options {
		if option.Label == label {
			return Badge(option)
		}
	}

	return Badge{Label: label, Tone: ToneGray}
}

var (
	registry   = map[string]Axis{}
	registryMu sync.RWMutex
)

// Register makes axis available to the `status=<key>` validation tag.
func Register(key string, axis Axis) Axis {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[key] = axis

	return axis
}

func Lookup(key string) (Axis, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	axis, ok := registry[key]

	return axis, ok
}
