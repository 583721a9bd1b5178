package internal

import (
	"encoding/xml"
	"io"
	"strconv"
	"time"
)

// ParseStats counts parser outcomes for diagnostics
type ParseStats struct {
	Parsed  int // recognized, well-formed records emitted
	Skipped int // recognized type but malformed, dropped
}

// RecordParser streams RawRecords out of an export XML document. It
// walks the token stream directly so the full document is never held in
// memory. Record elements of unrecognized types are passed over
// silently; recognized records with missing or unparsable fields are
// dropped and tallied in Stats. Only a non-well-formed document is
// fatal.
type RecordParser struct {
	dec    *xml.Decoder
	source string
	stats  ParseStats
}

// NewRecordParser creates a parser over an export XML stream. source is
// used only for error messages.
func NewRecordParser(r io.Reader, source string) *RecordParser {
	if source == "" {
		source = "stream"
	}
	return &RecordParser{dec: xml.NewDecoder(r), source: source}
}

// Next returns the next recognized record. It returns io.EOF when the
// document is exhausted, or a *ParseError when the document is not
// well-formed XML.
func (p *RecordParser) Next() (*RawRecord, error) {
	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, &ParseError{Source: p.source, Err: err}
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "Record" {
			continue
		}

		rec := p.parseRecord(start)

		// Record elements can carry MetadataEntry children; skip to
		// the closing tag so the scan stays element-aligned.
		if err := p.dec.Skip(); err != nil {
			return nil, &ParseError{Source: p.source, Err: err}
		}

		if rec == nil {
			continue
		}
		p.stats.Parsed++
		return rec, nil
	}
}

// Stats returns the parse tallies accumulated so far
func (p *RecordParser) Stats() ParseStats {
	return p.stats
}

// parseRecord classifies and validates a single Record element. It
// returns nil for unrecognized types (silent) and for malformed
// recognized records (tallied).
func (p *RecordParser) parseRecord(el xml.StartElement) *RawRecord {
	var typeAttr, valueAttr, startAttr, endAttr string
	for _, a := range el.Attr {
		switch a.Name.Local {
		case "type":
			typeAttr = a.Value
		case "value":
			valueAttr = a.Value
		case "startDate":
			startAttr = a.Value
		case "endDate":
			endAttr = a.Value
		}
	}

	recType := ClassifyRecordType(typeAttr)
	if recType == RecordUnknown {
		return nil
	}

	start, err := time.Parse(AppleTimeLayout, startAttr)
	if err != nil {
		p.skip("bad startDate %q", startAttr)
		return nil
	}

	rec := &RawRecord{Type: recType, Start: start}

	switch recType {
	case RecordSleepAnalysis:
		end, err := time.Parse(AppleTimeLayout, endAttr)
		if err != nil {
			p.skip("bad endDate %q", endAttr)
			return nil
		}
		stage := ClassifySleepStage(valueAttr)
		if stage == StageUnknown {
			p.skip("unrecognized sleep value %q", valueAttr)
			return nil
		}
		rec.End = end
		rec.Stage = stage
	default:
		value, err := strconv.ParseFloat(valueAttr, 64)
		if err != nil {
			p.skip("bad numeric value %q", valueAttr)
			return nil
		}
		rec.Value = value
		// Quantity samples are effectively instants; tolerate a
		// missing endDate by collapsing to the start.
		if end, err := time.Parse(AppleTimeLayout, endAttr); err == nil {
			rec.End = end
		} else {
			rec.End = start
		}
	}

	return rec
}

func (p *RecordParser) skip(format string, args ...interface{}) {
	p.stats.Skipped++
	LogDebug("skipping record: "+format, args...)
}
