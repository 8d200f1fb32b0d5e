package models

// QualityMode selects one of the fixed generation presets.
type QualityMode string

const (
	QualityStandard QualityMode = "standard"
	QualityHigh     QualityMode = "high"
	QualityUltra    QualityMode = "ultra"
)

// QualityProfile holds the inference parameters for one quality mode.
type QualityProfile struct {
	Steps       int     `json:"steps"`
	Guidance    float64 `json:"guidance"`
	ScaleFactor float64 `json:"scale_factor"`
}

var qualityProfiles = map[QualityMode]QualityProfile{
	QualityStandard: {Steps: 20, Guidance: 3.5, ScaleFactor: 1.0},
	QualityHigh:     {Steps: 25, Guidance: 5.0, ScaleFactor: 1.25},
	QualityUltra:    {Steps: 30, Guidance: 7.5, ScaleFactor: 1.5},
}

// NormalizeQualityMode coerces unrecognized values to QualityHigh.
func NormalizeQualityMode(mode string) QualityMode {
	switch QualityMode(mode) {
	case QualityStandard, QualityHigh, QualityUltra:
		return QualityMode(mode)
	default:
		return QualityHigh
	}
}

// ProfileFor returns the parameter preset for a quality mode,
// falling back to the high profile for unknown modes.
func ProfileFor(mode QualityMode) QualityProfile {
	if p, ok := qualityProfiles[mode]; ok {
		return p
	}
	return qualityProfiles[QualityHigh]
}

// AllQualityModes lists the supported modes in ascending cost order.
func AllQualityModes() []QualityMode {
	return []QualityMode{QualityStandard, QualityHigh, QualityUltra}
}
