package analysis

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Record holds the summary statistics of one analyzed recording.
type Record struct {
	File       string
	Prefix     string
	SampleRate int
	Duration   float64

	CentroidMean  float64
	CentroidStd   float64
	BandwidthMean float64
	BandwidthStd  float64
	ZCRMean       float64
	ZCRStd        float64
	RMSMean       float64
	RMSStd        float64
}

// Header is the column layout written by WriteCSV.
var Header = []string{
	"file", "prefix", "sr", "duration_s",
	"centroid_mean", "centroid_std",
	"bandwidth_mean", "bandwidth_std",
	"zcr_mean", "zcr_std",
	"rms_mean", "rms_std",
}

// Row returns the record formatted in Header order.
func (r *Record) Row() []string {
	return []string{
		r.File,
		r.Prefix,
		strconv.Itoa(r.SampleRate),
		formatFloat(r.Duration),
		formatFloat(r.CentroidMean),
		formatFloat(r.CentroidStd),
		formatFloat(r.BandwidthMean),
		formatFloat(r.BandwidthStd),
		formatFloat(r.ZCRMean),
		formatFloat(r.ZCRStd),
		formatFloat(r.RMSMean),
		formatFloat(r.RMSStd),
	}
}

// WriteCSV writes a header line and one row per record, in order, replacing
// any existing file at path.
func WriteCSV(path string, records []*Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create feature table: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return err
	}
	for _, r := range records {
		if err := w.Write(r.Row()); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write feature table: %w", err)
	}

	return f.Close()
}

// formatFloat renders the shortest representation that round-trips, always
// with a decimal point or exponent, e.g. 2.0, 0.05, 1e-05.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if v != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}
