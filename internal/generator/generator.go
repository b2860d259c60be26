package generator

import "github.com/MKhiriev/go-mempass/models"

// Character classes, in draw order.
const (
	LowerChars  = "abcdefghijklmnopqrstuvwxyz"
	UpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars  = "0123456789"
	SymbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var classes = [...]string{LowerChars, UpperChars, DigitChars, SymbolChars}

// MinClassCoverageLength is the shortest length for which every password
// contains all four character classes.
const MinClassCoverageLength = len(classes)

// Generate derives a password of exactly length characters.
//
// One character of every class is drawn first, then random-class characters
// are appended until the buffer is long enough. The buffer is shuffled and
// truncated to length. For length < 4 the truncation can drop classes;
// callers that need full coverage must ask for at least
// [MinClassCoverageLength] characters.
func Generate(phrase, service string, version, length int) string {
	if length < 1 {
		return ""
	}

	eng := NewEngine(DeriveSeed(phrase, service, version))
	buf := make([]byte, 0, max(length, len(classes)))

	for _, set := range classes {
		buf = append(buf, set[eng.NextInt(len(set))])
	}
	for len(buf) < length {
		set := classes[eng.Choice(len(classes))]
		buf = append(buf, set[eng.NextInt(len(set))])
	}

	eng.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})

	return string(buf[:length])
}

// GenerateFor is Generate over a [models.GenerateRequest].
func GenerateFor(req models.GenerateRequest) string {
	return Generate(req.Phrase, req.Service.Name, req.Service.Version, req.Length)
}
