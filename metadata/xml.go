package metadata

import (
	"encoding/xml"
	"regexp"
	"strconv"
)

var stringRegex regexp.Regexp = *regexp.MustCompile(`^\'.*?\'$`)
var integerRegex regexp.Regexp = *regexp.MustCompile(`^[\+\-]?\d+$`)

// FITSKeyword is one keyword element of an XML header export, in the same
// shape XISF files use for their embedded FITS keywords.
type FITSKeyword struct {
	XMLName xml.Name `xml:"FITSKeyword"`
	Name    string   `xml:"name,attr"`
	Value   string   `xml:"value,attr"`
	Comment string   `xml:"comment,attr"`
	Type    string   `xml:"type,attr"`
}

type xmlFile struct {
	XMLName      xml.Name      `xml:"file"`
	ID           string        `xml:"id,attr"`
	HDRVer       string        `xml:"hdrver,attr"`
	FITSKeywords []FITSKeyword `xml:"FITSKeyword"`
}

type xmlArchive struct {
	XMLName xml.Name  `xml:"archive"`
	Files   []xmlFile `xml:"file"`
}

func decodeXML(data []byte, doc *Document) error {
	archive := xmlArchive{}

	err := xml.Unmarshal(data, &archive)
	if err != nil {
		return err
	}

	doc.Files = map[string]FileRecord{}
	for _, f := range archive.Files {
		rec := FileRecord{HeaderVersion: f.HDRVer}
		for _, kw := range f.FITSKeywords {
			rec.Keywords = append(rec.Keywords, kw.keyword())
		}
		doc.Files[f.ID] = rec
	}

	return nil
}

// keyword converts the element, guessing the type letter from the value text
// when the export does not carry one.
func (kw FITSKeyword) keyword() Keyword {
	k := Keyword{Name: kw.Name, Value: kw.Value, Type: kw.Type, Comment: kw.Comment}
	if k.Type != "" || len(kw.Value) == 0 {
		return k
	}

	if stringRegex.MatchString(kw.Value) {
		k.Type = "C"
		k.Value = kw.Value[1 : len(kw.Value)-1]
	} else if integerRegex.MatchString(kw.Value) {
		k.Type = "I"
	} else if kw.Value == "T" || kw.Value == "F" {
		k.Type = "L"
	} else if _, err := strconv.ParseFloat(kw.Value, 64); err == nil {
		k.Type = "F"
	} else {
		k.Type = "C"
	}

	return k
}
