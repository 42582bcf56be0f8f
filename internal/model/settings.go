package model

import "time"

// Appearance modes offered by the settings dialog.
const (
	AppearanceDark   = "dark"
	AppearanceWhite  = "white"
	AppearanceSystem = "system"
)

// ScalingOptions lists the allowed window and widget scaling percentages.
var ScalingOptions = []int{75, 100, 150, 200, 250, 300}

// Settings holds a profile's generator toggles and display preferences.
type Settings struct {
	ProfileID     int64     `json:"-" yaml:"-"`
	Length        int       `json:"length" yaml:"length"`
	Digits        bool      `json:"digits" yaml:"digits"`
	Lowercase     bool      `json:"lowercase" yaml:"lowercase"`
	Uppercase     bool      `json:"uppercase" yaml:"uppercase"`
	Punctuation   bool      `json:"punctuation" yaml:"punctuation"`
	Appearance    string    `json:"appearance" yaml:"appearance"`
	WindowScaling int       `json:"window_scaling" yaml:"window_scaling"`
	WidgetScaling int       `json:"widget_scaling" yaml:"widget_scaling"`
	UpdatedAt     time.Time `json:"updated_at" yaml:"-"`
}
