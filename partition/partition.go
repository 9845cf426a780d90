// Package partition implements the bit-width axis partitioner (C6): it
// splits a strictly increasing list of coordinates into overlapping bands
// no wider than one bit diameter, each with a single probe position where
// the bit centre is placed to carve that band.
package partition

import (
	"github.com/jfechete/ncgen/ncerr"
)

// Band is one output band: Cover is the ordered sub-list of source
// coordinates grouped into one bit-diameter window (see Partition for the
// one case where it spans more), and Probe is the single coordinate where
// the bit centre is placed to carve it.
type Band struct {
	Cover []float64
	Probe float64
}

// Partition splits coords (assumed strictly increasing) into Bands no wider
// than bitDiameter, each overlapping the next by exactly one sample so that
// a finite-width bit never has to dive into a gap it cannot physically
// reach. bitDiameter must be positive.
//
// The shared sample always starts the next band, so where two consecutive
// coordinates lie more than bitDiameter apart, the band holding that pair
// spans their whole gap and is wider than bitDiameter.
func Partition(coords []float64, bitDiameter float64) ([]Band, error) {
	if bitDiameter <= 0 {
		return nil, ncerr.WithContext(ncerr.ErrInvalidArgument, "bit diameter must be positive, got %v", bitDiameter)
	}
	if len(coords) == 0 {
		return nil, nil
	}

	var bands []Band
	s := coords[0]
	cover := []float64{}
	probeSet := false
	var probe float64

	for _, c := range coords {
		if !probeSet && c-s > bitDiameter/2 {
			probe = cover[len(cover)-1]
			probeSet = true
		}
		if c-s > bitDiameter {
			bands = append(bands, Band{Cover: cover, Probe: probe})
			s = cover[len(cover)-1]
			cover = []float64{s}
			probeSet = false
		}
		cover = append(cover, c)
	}

	if !probeSet {
		probe = cover[len(cover)-1]
	}
	bands = append(bands, Band{Cover: cover, Probe: probe})
	return bands, nil
}
