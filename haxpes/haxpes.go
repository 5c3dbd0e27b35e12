package haxpes

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/spring8-benten/bentenplot/dataset"
)

// Spectrum is one analyzer export: key=value metadata followed by a
// two-column [Data] block. X is kinetic energy as written, or binding
// energy once converted.
type Spectrum struct {
	Meta   map[string]string
	Series dataset.Series
}

var dataTag = regexp.MustCompile(`\[(Data|DATA).*\]`)

// ReadSpectrum parses an analyzer export. When photonEnergy is non-zero
// the energy axis is converted to binding energy (photon − kinetic).
func ReadSpectrum(path string, photonEnergy float64) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("haxpes: %w", err)
	}
	defer f.Close()

	out := &Spectrum{Meta: make(map[string]string)}

	inData := false

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()

		if dataTag.MatchString(line) {
			inData = true
			continue
		}

		if !inData {
			if key, val, ok := strings.Cut(line, "="); ok {
				out.Meta[strings.TrimSpace(key)] = strings.TrimSpace(val)
			}

			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}

		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)

		if errX != nil || errY != nil {
			continue
		}

		if photonEnergy != 0 {
			x = photonEnergy - x
		}

		out.Series.X = append(out.Series.X, x)
		out.Series.Y = append(out.Series.Y, y)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("haxpes: reading %s: %w", path, err)
	}

	if out.Series.Len() == 0 {
		return nil, fmt.Errorf("haxpes: no data block in %s", path)
	}

	return out, nil
}

// PhotonEnergy reads the excitation energy recorded in a spectrum's
// metadata.
func PhotonEnergy(path string) (float64, error) {
	s, err := ReadSpectrum(path, 0)
	if err != nil {
		return 0, err
	}

	raw, ok := s.Meta["Excitation Energy"]
	if !ok {
		return 0, errors.New("haxpes: no Excitation Energy in metadata")
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("haxpes: bad Excitation Energy %q: %w", raw, err)
	}

	return v, nil
}

// Normalized reads a spectrum, converts to binding energy, applies an
// energy offset and an optional upper binding-energy cut, and normalizes
// the intensity to its peak.
func Normalized(path string, photonEnergy, energyOffset, upperLimit float64) (dataset.Series, error) {
	s, err := ReadSpectrum(path, photonEnergy)
	if err != nil {
		return dataset.Series{}, err
	}

	out := s.Series
	if upperLimit != 0 {
		kept := dataset.Series{}
		for i, x := range out.X {
			if x > upperLimit {
				continue
			}

			kept.X = append(kept.X, x)
			kept.Y = append(kept.Y, out.Y[i])
		}

		out = kept
	}

	out = out.OffsetX(-energyOffset)

	return out.NormalizeMax(), nil
}
