// internal/model/artifact.go
package model

import (
    "fmt"
    "time"
)

// ArtifactKind identifies which builder collection an artifact lives in.
type ArtifactKind string

const (
    KindBlog             ArtifactKind = "blog"
    KindPersona          ArtifactKind = "persona"
    KindOutreachTemplate ArtifactKind = "outreach_template"
    KindEventCLEPlan     ArtifactKind = "event_cle_plan"
    KindCLEDeck          ArtifactKind = "cle_deck"
    KindLandingPage      ArtifactKind = "landing_page"
)

// AllArtifactKinds lists every builder collection, in display order.
var AllArtifactKinds = []ArtifactKind{
    KindBlog,
    KindPersona,
    KindOutreachTemplate,
    KindEventCLEPlan,
    KindCLEDeck,
    KindLandingPage,
}

func (k ArtifactKind) Valid() bool {
    switch k {
    case KindBlog, KindPersona, KindOutreachTemplate, KindEventCLEPlan, KindCLEDeck, KindLandingPage:
        return true
    }
    return false
}

// Artifact is the capability every builder record exposes to the hydration
// engine: identity, publish state, and a short human-readable summary.
// Items reference artifacts by id; they never own them.
type Artifact interface {
    ArtifactID() int
    IsPublished() bool
    PublishedAtTime() *time.Time
    Summary() string
}

type Blog struct {
    ID          int        `db:"id" json:"id"`
    CompanyHQID int        `db:"company_hq_id" json:"company_hq_id"`
    Title       string     `db:"title" json:"title"`
    Body        string     `db:"body" json:"body"`
    Keywords    string     `db:"keywords" json:"keywords"`
    Published   bool       `db:"published" json:"published"`
    PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

func (b *Blog) ArtifactID() int              { return b.ID }
func (b *Blog) IsPublished() bool            { return b.Published }
func (b *Blog) PublishedAtTime() *time.Time  { return b.PublishedAt }
func (b *Blog) Summary() string              { return fmt.Sprintf("blog: %s", b.Title) }

type Persona struct {
    ID          int        `db:"id" json:"id"`
    CompanyHQID int        `db:"company_hq_id" json:"company_hq_id"`
    Name        string     `db:"name" json:"name"`
    Role        string     `db:"role" json:"role"`
    PainPoints  string     `db:"pain_points" json:"pain_points"`
    Published   bool       `db:"published" json:"published"`
    PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

func (p *Persona) ArtifactID() int             { return p.ID }
func (p *Persona) IsPublished() bool           { return p.Published }
func (p *Persona) PublishedAtTime() *time.Time { return p.PublishedAt }
func (p *Persona) Summary() string             { return fmt.Sprintf("persona: %s (%s)", p.Name, p.Role) }

type OutreachTemplate struct {
    ID          int        `db:"id" json:"id"`
    CompanyHQID int        `db:"company_hq_id" json:"company_hq_id"`
    Name        string     `db:"name" json:"name"`
    Subject     string     `db:"subject" json:"subject"`
    Body        string     `db:"body" json:"body"`
    Published   bool       `db:"published" json:"published"`
    PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

func (o *OutreachTemplate) ArtifactID() int             { return o.ID }
func (o *OutreachTemplate) IsPublished() bool           { return o.Published }
func (o *OutreachTemplate) PublishedAtTime() *time.Time { return o.PublishedAt }
func (o *OutreachTemplate) Summary() string             { return fmt.Sprintf("outreach template: %s", o.Name) }

type EventPlan struct {
    ID          int        `db:"id" json:"id"`
    CompanyHQID int        `db:"company_hq_id" json:"company_hq_id"`
    Title       string     `db:"title" json:"title"`
    Venue       string     `db:"venue" json:"venue"`
    Agenda      string     `db:"agenda" json:"agenda"`
    Published   bool       `db:"published" json:"published"`
    PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

func (e *EventPlan) ArtifactID() int             { return e.ID }
func (e *EventPlan) IsPublished() bool           { return e.Published }
func (e *EventPlan) PublishedAtTime() *time.Time { return e.PublishedAt }
func (e *EventPlan) Summary() string             { return fmt.Sprintf("event plan: %s", e.Title) }

type SlideDeck struct {
    ID          int        `db:"id" json:"id"`
    CompanyHQID int        `db:"company_hq_id" json:"company_hq_id"`
    Title       string     `db:"title" json:"title"`
    Topic       string     `db:"topic" json:"topic"`
    SlideCount  int        `db:"slide_count" json:"slide_count"`
    Published   bool       `db:"published" json:"published"`
    PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

func (s *SlideDeck) ArtifactID() int             { return s.ID }
func (s *SlideDeck) IsPublished() bool           { return s.Published }
func (s *SlideDeck) PublishedAtTime() *time.Time { return s.PublishedAt }
func (s *SlideDeck) Summary() string             { return fmt.Sprintf("deck: %s (%d slides)", s.Title, s.SlideCount) }

type LandingPage struct {
    ID          int        `db:"id" json:"id"`
    CompanyHQID int        `db:"company_hq_id" json:"company_hq_id"`
    Headline    string     `db:"headline" json:"headline"`
    Slug        string     `db:"slug" json:"slug"`
    HeroCopy    string     `db:"hero_copy" json:"hero_copy"`
    Published   bool       `db:"published" json:"published"`
    PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

func (l *LandingPage) ArtifactID() int             { return l.ID }
func (l *LandingPage) IsPublished() bool           { return l.Published }
func (l *LandingPage) PublishedAtTime() *time.Time { return l.PublishedAt }
func (l *LandingPage) Summary() string             { return fmt.Sprintf("landing page: %s", l.Headline) }

var (
    _ Artifact = (*Blog)(nil)
    _ Artifact = (*Persona)(nil)
    _ Artifact = (*OutreachTemplate)(nil)
    _ Artifact = (*EventPlan)(nil)
    _ Artifact = (*SlideDeck)(nil)
    _ Artifact = (*LandingPage)(nil)
)
