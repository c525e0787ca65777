package parser

// detectionOrder fixes which grammar wins when a line matches more
// than one dialect.
var detectionOrder = []Format{FormatStandard, FormatApache, FormatSyslog}

// DetectFormat tests a single sample line, normally the first line of
// the source, against each dialect grammar in order and returns the
// first match. Detection never looks past the sample: a malformed
// first line sends the whole file down the tabular/fallback path even
// when the remainder is well-formed.
func DetectFormat(line string) Format {
	for _, format := range detectionOrder {
		p, err := NewParser(format)
		if err != nil {
			continue
		}
		if p.CanParse(line) {
			return format
		}
	}
	return FormatNone
}
