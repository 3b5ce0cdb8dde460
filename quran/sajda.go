package quran

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// SajdaDetail describes the prostration attached to an ayah
type SajdaDetail struct {
	ID          int  `json:"id,omitempty" yaml:"id,omitempty"`
	Recommended bool `json:"recommended" yaml:"recommended"`
	Obligatory  bool `json:"obligatory" yaml:"obligatory"`
}

func (d *SajdaDetail) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "sajda", "recommended", "obligatory"); err != nil {
		return err
	}
	type alias SajdaDetail
	return json.Unmarshal(data, (*alias)(d))
}

type sajdaKind uint8

const (
	sajdaBool sajdaKind = iota
	sajdaObject
)

// SajdaType is either a plain boolean or a SajdaDetail object, depending on
// the ayah. It encodes back in the shape it was decoded from.
type SajdaType struct {
	kind   sajdaKind
	flag   bool
	detail SajdaDetail
}

// SajdaFlag returns the boolean form
func SajdaFlag(required bool) SajdaType {
	return SajdaType{kind: sajdaBool, flag: required}
}

// SajdaObject returns the object form
func SajdaObject(detail SajdaDetail) SajdaType {
	return SajdaType{kind: sajdaObject, detail: detail}
}

// IsDetail reports whether the value was given as an object
func (s SajdaType) IsDetail() bool {
	return s.kind == sajdaObject
}

// Bool returns the boolean form; ok is false for the object form
func (s SajdaType) Bool() (value, ok bool) {
	return s.flag, s.kind == sajdaBool
}

// Detail returns the object form; ok is false for the boolean form
func (s SajdaType) Detail() (SajdaDetail, bool) {
	return s.detail, s.kind == sajdaObject
}

// Required reports whether a prostration is attached to the ayah at all
func (s SajdaType) Required() bool {
	if s.kind == sajdaObject {
		return s.detail.Recommended || s.detail.Obligatory
	}
	return s.flag
}

func (s SajdaType) String() string {
	if s.kind == sajdaObject {
		return fmt.Sprintf("{recommended:%t obligatory:%t}", s.detail.Recommended, s.detail.Obligatory)
	}
	return fmt.Sprintf("%t", s.flag)
}

// MarshalJSON encodes the boolean or object form
func (s SajdaType) MarshalJSON() ([]byte, error) {
	if s.kind == sajdaObject {
		return json.Marshal(s.detail)
	}
	return json.Marshal(s.flag)
}

// UnmarshalJSON tries the boolean form first, then the object form
func (s *SajdaType) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return fmt.Errorf("sajda: expected bool or object, got null")
	}

	var flag bool
	boolErr := json.Unmarshal(data, &flag)
	if boolErr == nil {
		*s = SajdaFlag(flag)
		return nil
	}

	var detail SajdaDetail
	objErr := json.Unmarshal(data, &detail)
	if objErr == nil {
		*s = SajdaObject(detail)
		return nil
	}

	return fmt.Errorf("sajda: value %s matches neither bool (%v) nor object (%v)", data, boolErr, objErr)
}

// MarshalYAML emits the same shape as MarshalJSON
func (s SajdaType) MarshalYAML() (any, error) {
	if s.kind == sajdaObject {
		return s.detail, nil
	}
	return s.flag, nil
}
