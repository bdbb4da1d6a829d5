package dict

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/az-ai-labs/jlexan/internal/xmltext"
	"github.com/az-ai-labs/jlexan/lexerrors"
)

// rawKEle and rawREle mirror a k_ele/r_ele block's children.
type rawKEle struct {
	Keb   string   `xml:"keb"`
	KeInf []string `xml:"ke_inf"`
	KePri []string `xml:"ke_pri"`
}

type rawREle struct {
	Reb   string   `xml:"reb"`
	ReInf []string `xml:"re_inf"`
	RePri []string `xml:"re_pri"`
}

type rawSense struct {
	StagK []string `xml:"stagk"`
	StagR []string `xml:"stagr"`
	Pos   []string `xml:"pos"`
	Field []string `xml:"field"`
	Misc  []string `xml:"misc"`
	Dial  []string `xml:"dial"`
	SInf  []string `xml:"s_inf"`
}

// rawRecord is one "entry" element. UnmarshalXML is hand-written, rather
// than left to struct tags, so that a child element outside this fixed
// schema is a decode error instead of being silently dropped.
type rawRecord struct {
	EntSeq string
	KEle   []rawKEle
	REle   []rawREle
	Sense  []rawSense
}

func (r *rawRecord) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ent_seq":
				if err := d.DecodeElement(&r.EntSeq, &t); err != nil {
					return err
				}
			case "k_ele":
				var k rawKEle
				if err := d.DecodeElement(&k, &t); err != nil {
					return err
				}
				r.KEle = append(r.KEle, k)
			case "r_ele":
				var rEle rawREle
				if err := d.DecodeElement(&rEle, &t); err != nil {
					return err
				}
				r.REle = append(r.REle, rEle)
			case "sense":
				var s rawSense
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				r.Sense = append(r.Sense, s)
			default:
				return fmt.Errorf("entry: unknown child element %q", t.Name.Local)
			}
		case xml.EndElement:
			return nil
		}
	}
}

// decomposer computes the morpheme decomposition of a dictionary text form,
// implemented by the tagger package.
type decomposer interface {
	Decompose(textForm string) ([]string, error)
}

// decodeRecords streams "entry" records out of r, rejecting any record with
// an unknown child element, then projects sense annotations onto each
// representation entry and computes its decomposition via decomp.
func decodeRecords(r io.Reader, decomp decomposer) ([]Entry, error) {
	dec := xml.NewDecoder(r)
	var entries []Entry

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, lexerrors.NewResourceLoadError("dictionary XML", "", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "entry" {
			continue
		}

		var raw rawRecord
		if err := dec.DecodeElement(&raw, &se); err != nil {
			return nil, lexerrors.NewResourceLoadError("dictionary XML", raw.EntSeq, err)
		}
		if raw.EntSeq == "" {
			return nil, lexerrors.NewResourceLoadError("dictionary XML", "", fmt.Errorf("record missing ent_seq"))
		}

		recordEntries, err := buildRecordEntries(raw, decomp)
		if err != nil {
			return nil, err
		}
		entries = append(entries, recordEntries...)
	}

	return entries, nil
}

// buildRecordEntries expands one record into one Entry per k_ele/r_ele
// representation, projects each sense's annotations onto the
// representations it applies to (stagk/stagr restrict it; an empty
// restriction list means every representation of the record), with later
// senses overwriting earlier ones on the same field, then computes each
// entry's decomposition.
func buildRecordEntries(raw rawRecord, decomp decomposer) ([]Entry, error) {
	entries := make([]Entry, 0, len(raw.KEle)+len(raw.REle))
	for _, k := range raw.KEle {
		entries = append(entries, Entry{
			ID:        raw.EntSeq,
			TextForm:  xmltext.Clean(k.Keb),
			FormInfo:  xmltext.CleanAll(k.KeInf),
			Frequency: xmltext.CleanAll(k.KePri),
		})
	}
	for _, rEle := range raw.REle {
		entries = append(entries, Entry{
			ID:        raw.EntSeq,
			TextForm:  xmltext.Clean(rEle.Reb),
			FormInfo:  xmltext.CleanAll(rEle.ReInf),
			Frequency: xmltext.CleanAll(rEle.RePri),
		})
	}

	for _, sense := range raw.Sense {
		restricted := append(append([]string{}, sense.StagK...), sense.StagR...)
		for i := range entries {
			if len(restricted) > 0 && !contains(restricted, entries[i].TextForm) {
				continue
			}
			entries[i].PartsOfSpeech = xmltext.CleanAll(sense.Pos)
			entries[i].Fields = xmltext.CleanAll(sense.Field)
			entries[i].Misc = xmltext.CleanAll(sense.Misc)
			entries[i].Dialects = xmltext.CleanAll(sense.Dial)
			entries[i].Notes = xmltext.CleanAll(sense.SInf)
		}
	}

	for i := range entries {
		baseForms, err := decomp.Decompose(entries[i].TextForm)
		if err != nil {
			return nil, lexerrors.NewResourceLoadError("dictionary XML", entries[i].TextForm, err)
		}
		entries[i].Decomp = NewDecompKey(baseForms)
	}

	return entries, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
