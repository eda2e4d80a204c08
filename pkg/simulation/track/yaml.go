package track

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// course file schema; unknown tags fail at load time, the tick never does
type courseFile struct {
	Name       string           `yaml:"name"`
	BaseLength float32          `yaml:"baseLength"`
	Width      float32          `yaml:"width"`
	Segments   []segmentFileDef `yaml:"segments"`
}

type segmentFileDef struct {
	Turn      string `yaml:"turn"`
	Elevation string `yaml:"elevation"`
	Banking   string `yaml:"banking"`
	Style     string `yaml:"style"`
}

// LoadCourse reads a declarative course description from a YAML file.
// Omitted attributes default to straight/flat/open.
func LoadCourse(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course file: %w", err)
	}
	return parseCourse(data)
}

func parseCourse(data []byte) (*Course, error) {
	var cf courseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing course file: %w", err)
	}
	if cf.Name == "" {
		return nil, fmt.Errorf("course file has no name")
	}
	if len(cf.Segments) == 0 {
		return nil, fmt.Errorf("course %q has no segments", cf.Name)
	}

	course := &Course{
		Name:       cf.Name,
		BaseLength: cf.BaseLength,
		Width:      cf.Width,
		Defs:       make([]SegmentDef, 0, len(cf.Segments)),
	}
	for i, seg := range cf.Segments {
		var def SegmentDef
		var err error
		if seg.Turn != "" {
			if def.Turn, err = ParseTurnAngle(seg.Turn); err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
		}
		if seg.Elevation != "" {
			if def.Elevation, err = ParseElevation(seg.Elevation); err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
		}
		if seg.Banking != "" {
			if def.Banking, err = ParseBanking(seg.Banking); err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
		}
		if seg.Style != "" {
			if def.Style, err = ParseStyle(seg.Style); err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
		}
		course.Defs = append(course.Defs, def)
	}
	return course, nil
}
