package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hollowbeak/tessera/pkg/transform"
	"github.com/hollowbeak/tessera/pkg/units"
)

// shapeFile is the on-disk YAML form of a polygon.
type shapeFile struct {
	Unit   string       `yaml:"unit"`
	Points []shapePoint `yaml:"points"`
}

type shapePoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// loadShape reads a polygon from a YAML shape file.
func loadShape(path string) (*transform.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sf shapeFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing shape file %s: %w", path, err)
	}

	unit := units.SceneUnits
	if sf.Unit != "" {
		parsed, ok := units.ParseUnit(sf.Unit)
		if !ok {
			return nil, fmt.Errorf("shape file %s: unknown unit %q", path, sf.Unit)
		}
		unit = parsed
	}

	poly := transform.NewPolygon(unit)
	for _, pt := range sf.Points {
		poly.AddPoint(units.NewVector(pt.X, pt.Y, unit))
	}
	return poly, nil
}

// saveShape writes a polygon back to a YAML shape file.
func saveShape(path string, poly *transform.Polygon) error {
	sf := shapeFile{Unit: poly.Unit().String()}
	for _, pt := range poly.Points() {
		pos, err := pt.Position()
		if err != nil {
			return err
		}
		sf.Points = append(sf.Points, shapePoint{X: pos.X, Y: pos.Y})
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
