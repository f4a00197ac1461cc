package speech

import (
	"strings"

	"golang.org/x/text/language"
)

// Voice describes a synthesizer voice
type Voice struct {
	Name            string `json:"name"`
	Locale          string `json:"locale"`
	NetworkRequired bool   `json:"network_required"`
}

var indianEnglish = language.MustParse("en-IN")

// Name fragments of known Indian English female voices
var femaleMarkers = []string{"female", "en-in-x-end", "en-in-x-ena", "neerja"}

func (v Voice) tag() language.Tag {
	tag, err := language.Parse(v.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// isIndianEnglish requires the region to be stated, not inferred
func (v Voice) isIndianEnglish() bool {
	tag := v.tag()
	if tag == language.Und {
		return false
	}
	region, conf := tag.Region()
	if conf != language.Exact {
		return false
	}
	base, _ := tag.Base()
	wantBase, _ := indianEnglish.Base()
	wantRegion, _ := indianEnglish.Region()
	return base == wantBase && region == wantRegion
}

func (v Voice) isFemale() bool {
	name := strings.ToLower(v.Name)
	for _, m := range femaleMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// IsHighQuality reports whether the voice is a network or neural voice
func (v Voice) IsHighQuality() bool {
	name := strings.ToLower(v.Name)
	return strings.Contains(name, "network") || strings.Contains(name, "neural")
}

func (v Voice) speaks(base language.Base) bool {
	tag := v.tag()
	if tag == language.Und {
		return false
	}
	b, _ := tag.Base()
	return b == base
}

// SelectVoice picks a voice in this order: Indian English female network or neural,
// any Indian English female, a network or neural voice in the locale's language
// when preferNatural is set, then an offline voice in the locale's language.
func SelectVoice(voices []Voice, locale string, preferNatural bool) (Voice, bool) {
	if v, ok := find(voices, func(v Voice) bool {
		return v.isIndianEnglish() && v.isFemale() && v.IsHighQuality()
	}); ok {
		return v, true
	}

	if v, ok := find(voices, func(v Voice) bool {
		return v.isIndianEnglish() && v.isFemale()
	}); ok {
		return v, true
	}

	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return Voice{}, false
	}
	base, _ := tag.Base()

	if preferNatural {
		if v, ok := find(voices, func(v Voice) bool {
			return v.speaks(base) && v.IsHighQuality()
		}); ok {
			return v, true
		}
	}

	return find(voices, func(v Voice) bool {
		return v.speaks(base) && !v.NetworkRequired
	})
}

func find(voices []Voice, match func(Voice) bool) (Voice, bool) {
	for _, v := range voices {
		if match(v) {
			return v, true
		}
	}
	return Voice{}, false
}
