package models

import (
	"sort"
	"strings"
)

// Quality ranks a resolution label
type Quality int

const (
	QualityUnknown Quality = iota
	Quality360p
	Quality480p
	Quality720p
	Quality1080p
	Quality2160p // 4K
)

// String returns the string representation of the quality
func (q Quality) String() string {
	switch q {
	case Quality360p:
		return "360p"
	case Quality480p:
		return "480p"
	case Quality720p:
		return "720p"
	case Quality1080p:
		return "1080p"
	case Quality2160p:
		return "2160p"
	default:
		return "unknown"
	}
}

// ParseQuality converts a resolution label to its Quality rank
func ParseQuality(label string) Quality {
	switch strings.ToLower(label) {
	case "360p":
		return Quality360p
	case "480p":
		return Quality480p
	case "720p":
		return Quality720p
	case "1080p":
		return Quality1080p
	case "2160p", "4k":
		return Quality2160p
	default:
		return QualityUnknown
	}
}

// IsResolutionLabel reports whether a torrent key looks like a progressive
// resolution label. This is a substring heuristic, not a format check: it
// keeps "720p" and "1080p" and drops keys such as "0" or "3D".
func IsResolutionLabel(label string) bool {
	return strings.Contains(label, "p")
}

// ResolutionLabels returns the resolution-looking keys of a torrent map,
// lowest quality first. Labels of equal rank are ordered lexically.
func ResolutionLabels(torrents map[string]Torrent) []string {
	labels := make([]string, 0, len(torrents))
	for label := range torrents {
		if IsResolutionLabel(label) {
			labels = append(labels, label)
		}
	}

	sort.Slice(labels, func(i, j int) bool {
		qi, qj := ParseQuality(labels[i]), ParseQuality(labels[j])
		if qi != qj {
			return qi < qj
		}
		return labels[i] < labels[j]
	})
	return labels
}
