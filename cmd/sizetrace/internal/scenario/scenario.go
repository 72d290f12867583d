// Package scenario loads sizetrace scenario files and replays them against a
// RenderAnimatedSize frame by frame.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/animatedsize/pkg/animation"
	drifterrors "github.com/go-drift/animatedsize/pkg/errors"
	"github.com/go-drift/animatedsize/pkg/graphics"
	"github.com/go-drift/animatedsize/pkg/layout"
)

// SupportedVersion is the newest scenario schema this package reads. Files
// with the same major version are accepted.
const SupportedVersion = "v1.0.0"

const (
	defaultDuration  = 200 * time.Millisecond
	defaultFrame     = 16 * time.Millisecond
	defaultMaxExtent = 400
	defaultColor     = graphics.Color(0xFF2196F3)
)

// MaxExtent bounds every size and constraint in a scenario.
const MaxExtent = 4096

// Config is the raw contents of a scenario file.
type Config struct {
	Version     string            `yaml:"version"`
	Name        string            `yaml:"name,omitempty"`
	Animator    AnimatorConfig    `yaml:"animator"`
	Constraints ConstraintsConfig `yaml:"constraints"`
	Frame       time.Duration     `yaml:"frame,omitempty"`
	Steps       []StepConfig      `yaml:"steps"`
}

// AnimatorConfig configures the animated box.
type AnimatorConfig struct {
	Duration        time.Duration `yaml:"duration,omitempty"`
	ReverseDuration time.Duration `yaml:"reverseDuration,omitempty"`
	Curve           string        `yaml:"curve,omitempty"`
	Alignment       string        `yaml:"alignment,omitempty"`
	TextDirection   string        `yaml:"textDirection,omitempty"`
	Clip            string        `yaml:"clip,omitempty"`
	Color           string        `yaml:"color,omitempty"`
}

// ConstraintsConfig bounds the animated box. Unset maxima default to 400.
type ConstraintsConfig struct {
	MinWidth  float64  `yaml:"minWidth,omitempty"`
	MinHeight float64  `yaml:"minHeight,omitempty"`
	MaxWidth  *float64 `yaml:"maxWidth,omitempty"`
	MaxHeight *float64 `yaml:"maxHeight,omitempty"`
}

// StepConfig sets the child size for one or more frames.
type StepConfig struct {
	Size   Size `yaml:"size"`
	Frames int  `yaml:"frames,omitempty"`
	// Tight lays the box out with tight constraints of Size instead of the
	// scenario constraints.
	Tight bool `yaml:"tight,omitempty"`
	// Detach detaches and reattaches the box before the step's first frame.
	Detach bool `yaml:"detach,omitempty"`
}

// Size is a child size. It may be written as [w, h], as a mapping with
// width and height keys, or as a "WxH" string.
type Size struct {
	Width  float64
	Height float64
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: size needs 2 values, got %d", value.Line, len(pair))
		}
		s.Width, s.Height = pair[0], pair[1]
	case yaml.MappingNode:
		var m struct {
			Width  float64 `yaml:"width"`
			Height float64 `yaml:"height"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		s.Width, s.Height = m.Width, m.Height
	case yaml.ScalarNode:
		w, h, ok := strings.Cut(strings.ToLower(value.Value), "x")
		if !ok {
			return fmt.Errorf("line %d: size %q is not WxH", value.Line, value.Value)
		}
		width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return fmt.Errorf("line %d: size width: %w", value.Line, err)
		}
		height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return fmt.Errorf("line %d: size height: %w", value.Line, err)
		}
		s.Width, s.Height = width, height
	default:
		return fmt.Errorf("line %d: unsupported size", value.Line)
	}
	return nil
}

func (s Size) value() graphics.Size {
	return graphics.Size{Width: s.Width, Height: s.Height}
}

// Scenario is a Config with defaults applied and names resolved.
type Scenario struct {
	Name            string
	Path            string
	Duration        time.Duration
	ReverseDuration time.Duration
	CurveName       string
	Curve           func(float64) float64
	Alignment       layout.AlignmentGeometry
	TextDirection   layout.TextDirection
	Clip            graphics.Clip
	Color           graphics.Color
	Constraints     layout.Constraints
	Frame           time.Duration
	Steps           []Step
}

// Step is a resolved StepConfig.
type Step struct {
	Size   graphics.Size
	Frames int
	Tight  bool
	Detach bool
}

// FrameCount returns the total number of frames the scenario runs.
func (s *Scenario) FrameCount() int {
	n := 0
	for _, step := range s.Steps {
		n += step.Frames
	}
	return n
}

// Load reads and resolves the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &drifterrors.DriftError{
			Op:        "scenario.Load",
			Kind:      drifterrors.KindConfig,
			Path:      path,
			Err:       fmt.Errorf("failed to read scenario: %w", err),
			Timestamp: time.Now(),
		}
	}
	s, err := Parse(data)
	if err != nil {
		return nil, &drifterrors.DriftError{
			Op:        "scenario.Load",
			Kind:      drifterrors.KindConfig,
			Path:      path,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
	s.Path = path
	if s.Name == "" {
		s.Name = defaultName(path)
	}
	return s, nil
}

// Parse decodes and resolves a scenario from YAML.
func Parse(data []byte) (*Scenario, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return Resolve(&cfg)
}

// Resolve validates cfg and fills in defaults.
func Resolve(cfg *Config) (*Scenario, error) {
	if err := checkVersion(cfg.Version); err != nil {
		return nil, err
	}

	s := &Scenario{
		Name:            strings.TrimSpace(cfg.Name),
		Duration:        cfg.Animator.Duration,
		ReverseDuration: cfg.Animator.ReverseDuration,
		Frame:           cfg.Frame,
	}
	if s.Duration == 0 {
		s.Duration = defaultDuration
	}
	if s.Duration < 0 {
		return nil, &drifterrors.ConfigError{Field: "animator.duration", Value: s.Duration, Reason: "must be positive"}
	}
	if s.ReverseDuration < 0 {
		return nil, &drifterrors.ConfigError{Field: "animator.reverseDuration", Value: s.ReverseDuration, Reason: "must not be negative"}
	}
	if s.Frame == 0 {
		s.Frame = defaultFrame
	}
	if s.Frame < 0 {
		return nil, &drifterrors.ConfigError{Field: "frame", Value: s.Frame, Reason: "must be positive"}
	}

	s.CurveName = strings.TrimSpace(cfg.Animator.Curve)
	if s.CurveName == "" {
		s.CurveName = "linear"
	}
	curve, ok := animation.CurveByName(s.CurveName)
	if !ok {
		return nil, &drifterrors.ConfigError{
			Field:  "animator.curve",
			Value:  s.CurveName,
			Reason: "expected one of " + strings.Join(animation.CurveNames(), ", "),
		}
	}
	s.Curve = curve

	alignName := strings.TrimSpace(cfg.Animator.Alignment)
	if alignName == "" {
		alignName = "center"
	}
	alignment, ok := layout.AlignmentByName(alignName)
	if !ok {
		return nil, &drifterrors.ConfigError{Field: "animator.alignment", Value: alignName, Reason: "unknown alignment"}
	}
	s.Alignment = alignment

	if dir := strings.TrimSpace(cfg.Animator.TextDirection); dir != "" {
		textDirection, ok := layout.ParseTextDirection(dir)
		if !ok {
			return nil, &drifterrors.ConfigError{Field: "animator.textDirection", Value: dir, Reason: "expected ltr or rtl"}
		}
		s.TextDirection = textDirection
	}

	s.Clip = graphics.ClipHardEdge
	if name := strings.TrimSpace(cfg.Animator.Clip); name != "" {
		clip, ok := graphics.ParseClip(name)
		if !ok {
			return nil, &drifterrors.ConfigError{
				Field:  "animator.clip",
				Value:  name,
				Reason: "expected none, hardEdge, antiAlias or antiAliasWithSaveLayer",
			}
		}
		s.Clip = clip
	}

	s.Color = defaultColor
	if raw := strings.TrimSpace(cfg.Animator.Color); raw != "" {
		c, err := graphics.ParseColor(raw)
		if err != nil {
			return nil, &drifterrors.ConfigError{Field: "animator.color", Value: raw, Reason: err.Error()}
		}
		s.Color = c
	}

	constraints, err := resolveConstraints(cfg.Constraints)
	if err != nil {
		return nil, err
	}
	s.Constraints = constraints

	if len(cfg.Steps) == 0 {
		return nil, &drifterrors.ConfigError{Field: "steps", Reason: "at least one step is required"}
	}
	for i, step := range cfg.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		if !inExtent(step.Size.Width) || !inExtent(step.Size.Height) {
			return nil, &drifterrors.ConfigError{Field: field + ".size", Value: step.Size.value(), Reason: extentReason}
		}
		frames := step.Frames
		if frames == 0 {
			frames = 1
		}
		if frames < 0 {
			return nil, &drifterrors.ConfigError{Field: field + ".frames", Value: step.Frames, Reason: "must be positive"}
		}
		s.Steps = append(s.Steps, Step{
			Size:   step.Size.value(),
			Frames: frames,
			Tight:  step.Tight,
			Detach: step.Detach,
		})
	}
	return s, nil
}

func resolveConstraints(cfg ConstraintsConfig) (layout.Constraints, error) {
	c := layout.Constraints{
		MinWidth:  cfg.MinWidth,
		MinHeight: cfg.MinHeight,
		MaxWidth:  defaultMaxExtent,
		MaxHeight: defaultMaxExtent,
	}
	if cfg.MaxWidth != nil {
		c.MaxWidth = *cfg.MaxWidth
	}
	if cfg.MaxHeight != nil {
		c.MaxHeight = *cfg.MaxHeight
	}
	for _, v := range []float64{c.MinWidth, c.MinHeight, c.MaxWidth, c.MaxHeight} {
		if !inExtent(v) {
			return c, &drifterrors.ConfigError{Field: "constraints", Value: c, Reason: extentReason}
		}
	}
	if !c.IsNormalized() {
		return c, &drifterrors.ConfigError{Field: "constraints", Value: c, Reason: "minimum exceeds maximum"}
	}
	return c, nil
}

var extentReason = fmt.Sprintf("must be between 0 and %d", MaxExtent)

// inExtent rejects NaN and infinities along with out of range values.
func inExtent(v float64) bool {
	return v >= 0 && v <= MaxExtent
}

// checkVersion accepts versions with the supported major. A bare "1" or
// "1.2" is treated as "v1" or "v1.2".
func checkVersion(version string) error {
	version = strings.TrimSpace(version)
	if version == "" {
		return &drifterrors.ConfigError{Field: "version", Reason: "required (for example " + SupportedVersion + ")"}
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return &drifterrors.ConfigError{Field: "version", Value: version, Reason: "not a semantic version"}
	}
	if semver.Major(version) != semver.Major(SupportedVersion) {
		return &drifterrors.ConfigError{
			Field:  "version",
			Value:  version,
			Reason: "unsupported major version, expected " + semver.Major(SupportedVersion),
		}
	}
	if semver.Compare(version, SupportedVersion) > 0 {
		return &drifterrors.ConfigError{
			Field:  "version",
			Value:  version,
			Reason: "newer than supported " + SupportedVersion,
		}
	}
	return nil
}

func defaultName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsConfigError reports whether err carries a *ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *drifterrors.ConfigError
	return errors.As(err, &cfgErr)
}
