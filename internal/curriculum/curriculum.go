// Package curriculum holds the fixed multi-track study catalog.
//
// The catalog is immutable seed data: four tracks, each an ordered list of
// day/topic records. Progress tracking references topics only by track name
// and day number; nothing here is ever mutated at runtime.
package curriculum

import "fmt"

// Topic is one day's entry in a track.
type Topic struct {
	// ID is the stable topic identifier, e.g. "py7" or "wk3".
	ID string

	// Day is the 1-based position of this topic within its track.
	Day int

	// Title is the short topic heading shown to the learner.
	Title string

	// Description is a one-line summary of the topic.
	Description string

	// Tasks are the checkable task labels for this topic.
	Tasks []string
}

// Track names.
const (
	TrackPython   = "python"
	TrackDSA      = "dsa"
	TrackAptitude = "aptitude"
	TrackWeeks    = "weeks"
)

var tracks = map[string][]Topic{
	TrackPython:   pythonTrack,
	TrackDSA:      dsaTrack,
	TrackAptitude: aptitudeTrack,
	TrackWeeks:    weeksTrack,
}

// trackOrder fixes the display order of tracks.
var trackOrder = []string{TrackPython, TrackDSA, TrackAptitude, TrackWeeks}

// Tracks returns all track names in display order.
func Tracks() []string {
	out := make([]string, len(trackOrder))
	copy(out, trackOrder)
	return out
}

// Track returns the ordered topic list for the named track.
// Returns nil for an unknown track.
func Track(name string) []Topic {
	return tracks[name]
}

// TopicForDay returns the topic at the given day in the named track.
func TopicForDay(track string, day int) (Topic, bool) {
	for _, t := range tracks[track] {
		if t.Day == day {
			return t, true
		}
	}
	return Topic{}, false
}

// TopicForDayOrLatest returns the topic for the given day, falling back to
// the last topic in the track once the learner has advanced past its end.
func TopicForDayOrLatest(track string, day int) (Topic, bool) {
	if t, ok := TopicForDay(track, day); ok {
		return t, true
	}
	list := tracks[track]
	if len(list) == 0 {
		return Topic{}, false
	}
	return list[len(list)-1], true
}

// TopicByID returns the topic with the given ID, searching all tracks.
func TopicByID(id string) (Topic, bool) {
	for _, name := range trackOrder {
		for _, t := range tracks[name] {
			if t.ID == id {
				return t, true
			}
		}
	}
	return Topic{}, false
}

// TaskID builds the completion-set key for one task of a topic.
// The format ("{topicID}_{index}") is an opaque convention shared with the
// completion set; the index is the task's position in Topic.Tasks.
func TaskID(topicID string, index int) string {
	return fmt.Sprintf("%s_%d", topicID, index)
}
