// Package mascot models the CV site's guide character: which page section
// the visitor is reading, what the mascot says about it, and the timers that
// show it, hide its speech bubble and move it around the screen.
package mascot

type Section string

const (
	SectionHero        Section = "hero"
	SectionHeroBottom  Section = "hero-bottom"
	SectionIntro       Section = "intro"
	SectionExperiences Section = "experiences"
	SectionProjects    Section = "projects"
	SectionOther       Section = "other"
	SectionEnd         Section = "end"
)

// endThreshold is how close to the bottom of the document counts as the end.
const endThreshold = 100

// Bounds is a section's vertical extent in document pixels.
type Bounds struct {
	Top    float64
	Height float64
}

func (b Bounds) Bottom() float64 { return b.Top + b.Height }

// Viewport is one scroll sample. Sections lists the page sections that are
// present; a missing section is skipped.
type Viewport struct {
	ScrollY        float64
	WindowHeight   float64
	DocumentHeight float64
	Sections       map[Section]Bounds
}

// Page sections in document order, after the hero.
var contentSections = []Section{SectionIntro, SectionExperiences, SectionProjects, SectionOther}

// DetectSection returns the section the viewport is in. The top half of the
// first screen is the hero, the bottom half its lower part; after that the
// first section whose bottom is still below the scroll position wins. When
// no section matches and the bottom of the document is not reached, current
// is kept.
func DetectSection(v Viewport, current Section) Section {
	switch {
	case v.ScrollY < v.WindowHeight*0.5:
		return SectionHero
	case v.ScrollY < v.WindowHeight:
		return SectionHeroBottom
	}

	for _, s := range contentSections {
		if b, ok := v.Sections[s]; ok && v.ScrollY < b.Bottom() {
			return s
		}
	}

	if v.ScrollY+v.WindowHeight >= v.DocumentHeight-endThreshold {
		return SectionEnd
	}
	return current
}

// Cue is what the mascot says and does on entering a section.
type Cue struct {
	Message   string
	Animation string
}

var cues = map[Section]Cue{
	SectionHero:        {Message: "mascot.welcome", Animation: "wave"},
	SectionHeroBottom:  {Message: "mascot.scrollDown", Animation: "point-down"},
	SectionIntro:       {Message: "mascot.keepGoing", Animation: "bounce"},
	SectionExperiences: {Message: "mascot.checkExperience", Animation: "point-up"},
	SectionProjects:    {Message: "mascot.seeProjects", Animation: "celebrate"},
	SectionOther:       {Message: "mascot.almostThere", Animation: "bounce"},
	SectionEnd:         {Message: "mascot.goodbye", Animation: "celebrate"},
}

// CueFor returns the cue for entering s.
func CueFor(s Section) (Cue, bool) {
	c, ok := cues[s]
	return c, ok
}
