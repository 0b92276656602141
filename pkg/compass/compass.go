// Package compass builds the 32-point compass rose
package compass

// Step is the angle between two neighbouring points, in degrees
const Step = 360.0 / 32

// Point is a single compass point, i.e., NbE at 11.25°
type Point struct {
	Abbreviation string  `json:"abbreviation" yaml:"abbreviation"`
	Azimuth      float64 `json:"azimuth" yaml:"azimuth"`
}

var cardinals = []string{"N", "E", "S", "W"}

// Points returns the 32 compass points ordered by azimuth, starting at N
func Points() []Point {
	points := make([]Point, 0, 32)

	for q, from := range cardinals {
		to := cardinals[(q+1)%len(cardinals)]

		// the intercardinal between two cardinals is always written N/S first
		mid := to + from
		if from == "N" || from == "S" {
			mid = from + to
		}

		quadrant := []string{
			from,
			from + "b" + to,
			from + mid,
			mid + "b" + from,
			mid,
			mid + "b" + to,
			to + mid,
			to + "b" + from,
		}

		for _, abbreviation := range quadrant {
			points = append(points, Point{
				Abbreviation: abbreviation,
				Azimuth:      float64(len(points)) * Step,
			})
		}
	}

	return points
}
