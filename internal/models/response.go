package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heainKang/daily-me-app/internal/constants"
)

var ErrNoteTooLong = fmt.Errorf("note exceeds %d characters", constants.MaxNoteLength)

// Option is the choice made on a two-option item. A is the first-listed
// ("positive") option and B the second.
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
)

func (o Option) Valid() bool {
	return o == OptionA || o == OptionB
}

// Positive reports whether the first-listed option was chosen.
func (o Option) Positive() bool {
	return o == OptionA
}

func ParseOption(s string) (Option, error) {
	o := Option(strings.ToUpper(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("invalid option: %q (use A or B)", s)
	}
	return o, nil
}

// TimeSlot tags when an item is meant to be asked.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// TimeSlots lists the slots in the order of a day.
var TimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

func (s TimeSlot) Valid() bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotEvening
}

// SlotForHour maps an hour of day to its slot: 6-11 morning, 12-17 afternoon, otherwise evening.
func SlotForHour(hour int) TimeSlot {
	switch {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}

// Mood is the self-reported feeling of the day.
type Mood string

const (
	MoodGreat  Mood = "great"
	MoodGood   Mood = "good"
	MoodNormal Mood = "normal"
	MoodSad    Mood = "sad"
	MoodTired  Mood = "tired"
)

// Moods lists every mood in display order.
var Moods = []Mood{MoodGreat, MoodGood, MoodNormal, MoodSad, MoodTired}

func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodNormal, MoodSad, MoodTired:
		return true
	}
	return false
}

// Option maps a mood onto the A/B scale used by the sentiment ratio.
func (m Mood) Option() Option {
	if m == MoodGreat || m == MoodGood {
		return OptionA
	}
	return OptionB
}

func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("invalid mood: %q (use great, good, normal, sad or tired)", s)
	}
	return m, nil
}

// Response records one answered item. Responses are append-only.
type Response struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Selected  Option    `json:"selected_option"`
	Timestamp time.Time `json:"timestamp"`
	Day       string    `json:"day"` // YYYY-MM-DD in the configured timezone
	Slot      TimeSlot  `json:"time_slot"`
	Mood      Mood      `json:"mood,omitempty"`
	Note      string    `json:"note,omitempty"`
}

func (r *Response) Validate() error {
	if r.ItemID == "" {
		return errors.New("response item id cannot be empty")
	}
	if !r.Selected.Valid() {
		return fmt.Errorf("invalid selected option: %q", r.Selected)
	}
	if !r.Slot.Valid() {
		return fmt.Errorf("invalid time slot: %q", r.Slot)
	}
	if _, err := time.Parse(constants.DateFormat, r.Day); err != nil {
		return fmt.Errorf("invalid response day (expected YYYY-MM-DD): %w", err)
	}
	if r.Mood != "" && !r.Mood.Valid() {
		return fmt.Errorf("invalid mood: %q", r.Mood)
	}
	if utf8.RuneCountInString(r.Note) > constants.MaxNoteLength {
		return ErrNoteTooLong
	}
	return nil
}
