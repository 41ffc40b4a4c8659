package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// musicVolume is the level of the background loop relative to cues.
const musicVolume = 0.35

// NoteTrigger starts a note on a sixteenth-note step.
type NoteTrigger struct {
	Step     int     // Step the note starts on
	Note     int     // MIDI note number, 69 = A4
	Steps    int     // Length in steps
	Velocity float64 // 0.0-1.0
}

// Pattern is a monophonic phrase of Length sixteenth-note steps.
// Notes must be sorted by Step and must not overlap.
type Pattern struct {
	Length int
	Notes  []NoteTrigger
}

// Song layers patterns of equal length at one tempo.
type Song struct {
	BPM    int
	Layers []Pattern
}

// BackgroundSong is the loop played under the game.
var BackgroundSong = Song{
	BPM: 132,
	Layers: []Pattern{
		{ // Lead: C major arpeggios climbing to a turnaround
			Length: 32,
			Notes: []NoteTrigger{
				{Step: 0, Note: 72, Steps: 2, Velocity: 0.8},
				{Step: 2, Note: 76, Steps: 2, Velocity: 0.6},
				{Step: 4, Note: 79, Steps: 2, Velocity: 0.7},
				{Step: 6, Note: 84, Steps: 2, Velocity: 0.6},
				{Step: 8, Note: 79, Steps: 2, Velocity: 0.7},
				{Step: 10, Note: 76, Steps: 2, Velocity: 0.6},
				{Step: 12, Note: 74, Steps: 4, Velocity: 0.7},
				{Step: 16, Note: 69, Steps: 2, Velocity: 0.8},
				{Step: 18, Note: 72, Steps: 2, Velocity: 0.6},
				{Step: 20, Note: 76, Steps: 2, Velocity: 0.7},
				{Step: 22, Note: 81, Steps: 2, Velocity: 0.6},
				{Step: 24, Note: 79, Steps: 2, Velocity: 0.7},
				{Step: 26, Note: 77, Steps: 2, Velocity: 0.6},
				{Step: 28, Note: 74, Steps: 4, Velocity: 0.7},
			},
		},
		{ // Bass: root on every beat
			Length: 32,
			Notes: []NoteTrigger{
				{Step: 0, Note: 48, Steps: 3, Velocity: 0.9},
				{Step: 4, Note: 48, Steps: 3, Velocity: 0.7},
				{Step: 8, Note: 43, Steps: 3, Velocity: 0.9},
				{Step: 12, Note: 43, Steps: 3, Velocity: 0.7},
				{Step: 16, Note: 45, Steps: 3, Velocity: 0.9},
				{Step: 20, Note: 45, Steps: 3, Velocity: 0.7},
				{Step: 24, Note: 41, Steps: 3, Velocity: 0.9},
				{Step: 28, Note: 43, Steps: 3, Velocity: 0.7},
			},
		},
	},
}

// NoteFreq returns the frequency in Hz of a MIDI note, equal temperament.
func NoteFreq(midi int) float64 {
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// StepSamples returns the length of one sixteenth-note step.
func (s Song) StepSamples() int {
	return sampleRate.N(time.Minute / time.Duration(max(s.BPM, 1)*4))
}

// Bar renders one pass of the song into a seekable buffer.
func (s Song) Bar() beep.StreamSeeker {
	step := s.StepSamples()
	layers := make([]beep.Streamer, 0, len(s.Layers))
	for _, p := range s.Layers {
		layers = append(layers, p.render(step))
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Mix(layers...))
	return buf.Streamer(0, buf.Len())
}

// Loop returns the song repeated forever at music volume. An empty song
// is plain silence.
func (s Song) Loop() beep.Streamer {
	bar := s.Bar()
	if bar.Len() == 0 {
		return beep.Silence(-1)
	}
	return withVolume(beep.Loop(-1, bar), musicVolume)
}

// render lays out the pattern with silence between notes.
func (p Pattern) render(step int) beep.Streamer {
	var parts []beep.Streamer
	pos := 0
	for _, n := range p.Notes {
		if n.Step > pos {
			parts = append(parts, beep.Silence((n.Step-pos)*step))
			pos = n.Step
		}
		length := max(n.Steps, 1) * step
		freq := NoteFreq(n.Note)
		note := beep.Take(length, NewToneGenerator(sampleRate, freq, freq, length))
		parts = append(parts, withVolume(note, n.Velocity))
		pos += max(n.Steps, 1)
	}
	if pos < p.Length {
		parts = append(parts, beep.Silence((p.Length-pos)*step))
	}
	return beep.Seq(parts...)
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
