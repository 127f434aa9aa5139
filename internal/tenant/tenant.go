// Package tenant holds the CV content served per tenant. A tenant is a named
// content namespace so one deployment can serve several sites.
package tenant

import (
	"sort"
	"strconv"
	"time"

	"github.com/Zachkp/folio/internal/timeline"
)

type Experience struct {
	ID           int      `json:"id" yaml:"id"`
	Company      string   `json:"company" yaml:"company"`
	Position     string   `json:"position" yaml:"position"`
	Period       string   `json:"period" yaml:"period"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

type Study struct {
	ID          int    `json:"id" yaml:"id"`
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Period      string `json:"period" yaml:"period"`
	Focus       string `json:"focus" yaml:"focus"`
}

type Project struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Type         string   `json:"type" yaml:"type"`
	Period       string   `json:"period" yaml:"period"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Images       []string `json:"images,omitempty" yaml:"images"`
	Screenshots  []string `json:"screenshots,omitempty" yaml:"screenshots"`
	Logo         string   `json:"logo,omitempty" yaml:"logo"`
}

// Tenant is the full content of one site.
type Tenant struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Domain      string       `json:"domain,omitempty" yaml:"domain"`
	Profile     Profile      `json:"profile" yaml:"profile"`
	Experiences []Experience `json:"experiences" yaml:"experiences"`
	Studies     []Study      `json:"studies" yaml:"studies"`
	Projects    []Project    `json:"projects" yaml:"projects"`
}

// Summary is the public listing of a tenant.
type Summary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain,omitempty"`
}

func (t *Tenant) Summary() Summary {
	return Summary{ID: t.ID, Name: t.Name, Domain: t.Domain}
}

// TimelineEntries converts experiences, studies and projects into timeline
// entries. Periods are read relative to now.
func (t *Tenant) TimelineEntries(now time.Time) []timeline.Entry {
	entries := make([]timeline.Entry, 0, len(t.Experiences)+len(t.Studies)+len(t.Projects))
	add := func(kind timeline.Kind, id int, period, label string) {
		start, end := timeline.ParsePeriod(period, now).Dates()
		entries = append(entries, timeline.Entry{
			ID:        entryID(kind, id),
			Kind:      kind,
			StartDate: start,
			EndDate:   end,
			Label:     label,
		})
	}

	for _, e := range t.Experiences {
		add(timeline.KindExperience, e.ID, e.Period, e.Position)
	}
	for _, s := range t.Studies {
		add(timeline.KindStudy, s.ID, s.Period, s.Degree)
	}
	for _, p := range t.Projects {
		add(timeline.KindProject, p.ID, p.Period, p.Name)
	}
	return entries
}

func entryID(kind timeline.Kind, id int) string {
	return string(kind) + "-" + strconv.Itoa(id)
}

// Technologies returns every technology named by the tenant's experiences
// and projects, sorted and without duplicates.
func (t *Tenant) Technologies() []string {
	seen := make(map[string]struct{})
	for _, e := range t.Experiences {
		for _, tech := range e.Technologies {
			seen[tech] = struct{}{}
		}
	}
	for _, p := range t.Projects {
		for _, tech := range p.Technologies {
			seen[tech] = struct{}{}
		}
	}

	techs := make([]string, 0, len(seen))
	for tech := range seen {
		techs = append(techs, tech)
	}
	sort.Strings(techs)
	return techs
}

func (t *Tenant) clone() *Tenant {
	c := *t
	c.Profile.PrependedTitles = cloneStrings(t.Profile.PrependedTitles)
	c.Profile.AppendedTitles = cloneStrings(t.Profile.AppendedTitles)

	c.Experiences = make([]Experience, len(t.Experiences))
	for i, e := range t.Experiences {
		e.Technologies = cloneStrings(e.Technologies)
		c.Experiences[i] = e
	}
	c.Studies = append([]Study(nil), t.Studies...)
	c.Projects = make([]Project, len(t.Projects))
	for i, p := range t.Projects {
		p.Technologies = cloneStrings(p.Technologies)
		p.Images = cloneStrings(p.Images)
		p.Screenshots = cloneStrings(p.Screenshots)
		c.Projects[i] = p
	}
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
