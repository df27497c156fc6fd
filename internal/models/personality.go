package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heainKang/daily-me-app/internal/constants"
)

// Axis is one of the eight preference letters. The order matters: it is the
// index into a ScoreVector and pairs are (E,I), (N,S), (T,F), (J,P).
type Axis int

const (
	AxisE Axis = iota
	AxisI
	AxisN
	AxisS
	AxisT
	AxisF
	AxisJ
	AxisP

	axisCount = 8
)

var axisLetters = [axisCount]string{"E", "I", "N", "S", "T", "F", "J", "P"}

// Axes lists every axis in vector order.
var Axes = [axisCount]Axis{AxisE, AxisI, AxisN, AxisS, AxisT, AxisF, AxisJ, AxisP}

func (a Axis) String() string {
	if a < 0 || int(a) >= axisCount {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisLetters[a]
}

// ParseAxis converts a single letter into an Axis.
func ParseAxis(letter string) (Axis, error) {
	for i, l := range axisLetters {
		if strings.EqualFold(l, letter) {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("invalid axis letter: %q", letter)
}

// ScoreVector accumulates one integer per axis. It is also used for the
// weight table of a single catalog option, where untouched axes stay zero.
type ScoreVector [axisCount]int

// Weights builds a ScoreVector with the given axes set to 1.
func Weights(axes ...Axis) ScoreVector {
	var v ScoreVector
	for _, a := range axes {
		v[a]++
	}
	return v
}

func (v ScoreVector) Get(a Axis) int {
	return v[a]
}

// Add returns the element-wise sum of v and w.
func (v ScoreVector) Add(w ScoreVector) ScoreVector {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// IsZero reports whether every accumulator is exactly zero.
func (v ScoreVector) IsZero() bool {
	return v == ScoreVector{}
}

func (v ScoreVector) String() string {
	parts := make([]string, 0, axisCount)
	for _, a := range Axes {
		parts = append(parts, fmt.Sprintf("%s=%d", a, v[a]))
	}
	return strings.Join(parts, " ")
}

// MarshalJSON encodes the vector as {"E":0,"I":0,...} so stored records stay readable.
func (v ScoreVector) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, axisCount)
	for _, a := range Axes {
		m[a.String()] = v[a]
	}
	return json.Marshal(m)
}

func (v *ScoreVector) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*v = ScoreVector{}
	for letter, n := range m {
		a, err := ParseAxis(letter)
		if err != nil {
			return err
		}
		v[a] = n
	}
	return nil
}

// Personality is a four-letter type such as ENFP.
type Personality string

// Personalities lists the sixteen valid types.
var Personalities = []Personality{
	"ENFP", "ENFJ", "ENTJ", "ENTP",
	"ESFP", "ESFJ", "ESTJ", "ESTP",
	"INFP", "INFJ", "INTJ", "INTP",
	"ISFP", "ISFJ", "ISTJ", "ISTP",
}

const (
	DefaultPersonality Personality = constants.DefaultPersonality
	PersonalityUnset   Personality = constants.PersonalityUnset
)

// axisPairs holds the two letters of each position, first letter wins ties.
var axisPairs = [4][2]Axis{
	{AxisE, AxisI},
	{AxisN, AxisS},
	{AxisT, AxisF},
	{AxisJ, AxisP},
}

// AxisPair returns the two axes resolved at a position (0..3).
func AxisPair(position int) (Axis, Axis) {
	p := axisPairs[position]
	return p[0], p[1]
}

// Valid reports whether p is one of the sixteen types. The UNSET sentinel is not valid.
func (p Personality) Valid() bool {
	if len(p) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		first, second := AxisPair(i)
		l := string(p[i])
		if l != first.String() && l != second.String() {
			return false
		}
	}
	return true
}

// Letter returns the axis at position (0..3). p must be Valid.
func (p Personality) Letter(position int) Axis {
	first, second := AxisPair(position)
	if string(p[position]) == first.String() {
		return first
	}
	return second
}

// ParsePersonality normalizes and validates a type code.
func ParsePersonality(s string) (Personality, error) {
	p := Personality(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid personality type: %q", s)
	}
	return p, nil
}
