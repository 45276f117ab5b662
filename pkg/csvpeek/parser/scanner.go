// Package parser converts delimited text into typed tables.
package parser

import "strings"

// record is one logical CSV record and the line it starts on.
type record struct {
	fields []string
	line   int
}

type scanState int

const (
	stateUnquoted      scanState = iota // UNQUOTED_FIELD
	stateQuoted                         // QUOTED_FIELD
	stateQuoteInQuoted                  // QUOTE_IN_QUOTED_FIELD
)

type scanner struct {
	delim     byte
	skipBlank bool

	state       scanState
	line        int
	lineStart   int
	field       strings.Builder
	fieldQuoted bool
	fields      []string
	recordLine  int
	inRecord    bool
	records     []record
}

// scanRecords splits text into records. A field that starts with a double
// quote runs until the matching closing quote; inside it the delimiter and
// line breaks are literal and "" stands for one quote. A quote appearing
// in the middle of an unquoted field is kept as is.
func scanRecords(text string, delim byte, skipBlank bool) ([]record, error) {
	s := &scanner{delim: delim, skipBlank: skipBlank, line: 1}
	var quoteLine, quoteCol, quoteOffset int

	for i := 0; i < len(text); i++ {
		c := text[i]
		if !s.inRecord {
			s.inRecord = true
			s.recordLine = s.line
		}

		switch s.state {
		case stateUnquoted:
			switch {
			case c == s.delim:
				s.endField()
			case c == '"' && s.field.Len() == 0 && !s.fieldQuoted:
				s.state = stateQuoted
				s.fieldQuoted = true
				quoteLine, quoteCol, quoteOffset = s.line, i-s.lineStart+1, i
			case c == '\n':
				s.endRecord()
				s.newline(i + 1)
			case c == '\r':
				s.endRecord()
				if i+1 < len(text) && text[i+1] == '\n' {
					i++
				}
				s.newline(i + 1)
			default:
				s.field.WriteByte(c)
			}

		case stateQuoted:
			if c == '"' {
				s.state = stateQuoteInQuoted
				continue
			}
			s.field.WriteByte(c)
			if c == '\n' || (c == '\r' && (i+1 >= len(text) || text[i+1] != '\n')) {
				s.newline(i + 1)
			}

		case stateQuoteInQuoted:
			switch {
			case c == '"':
				s.field.WriteByte('"')
				s.state = stateQuoted
			case c == s.delim:
				s.state = stateUnquoted
				s.endField()
			case c == '\n':
				s.state = stateUnquoted
				s.endRecord()
				s.newline(i + 1)
			case c == '\r':
				s.state = stateUnquoted
				s.endRecord()
				if i+1 < len(text) && text[i+1] == '\n' {
					i++
				}
				s.newline(i + 1)
			default:
				// Text after a closing quote joins the field.
				s.field.WriteByte(c)
				s.state = stateUnquoted
			}
		}
	}

	if s.state == stateQuoted {
		return nil, NewMalformedInputError(quoteLine, quoteCol, quoteOffset, ErrUnterminatedQuote)
	}
	if s.inRecord {
		s.endRecord()
	}
	return s.records, nil
}

func (s *scanner) newline(next int) {
	s.line++
	s.lineStart = next
}

func (s *scanner) endField() {
	s.fields = append(s.fields, s.field.String())
	s.field.Reset()
	s.fieldQuoted = false
}

func (s *scanner) endRecord() {
	blank := len(s.fields) == 0 && s.field.Len() == 0 && !s.fieldQuoted
	s.endField()
	if !(blank && s.skipBlank) {
		s.records = append(s.records, record{fields: s.fields, line: s.recordLine})
	}
	s.fields = nil
	s.inRecord = false
}
