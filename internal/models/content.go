// Package models defines the records stored in the newsroom document.
// Field names follow the JSON layout of the persisted file.
package models

// Poster occupies one of the three fixed homepage slots (ids 1..3).
type Poster struct {
	ID    int64  `json:"id" bson:"id"`
	Title string `json:"title" bson:"title"`
	Image string `json:"image" bson:"image"`
	Link  string `json:"link" bson:"link"`
}

func (p Poster) RecordID() int64 { return p.ID }

// PosterSlots is the fixed number of poster slots.
const PosterSlots = 3

// BreakingNews items are kept newest first.
type BreakingNews struct {
	ID               int64  `json:"id" bson:"id"`
	Headline         string `json:"headline" bson:"headline"`
	ShortDescription string `json:"shortDescription" bson:"shortDescription"`
	FullDescription  string `json:"fullDescription" bson:"fullDescription"`
	Category         string `json:"category" bson:"category"`
	State            string `json:"state" bson:"state"`
	VideoURL         string `json:"videoUrl" bson:"videoUrl"`
	Thumbnail        string `json:"thumbnail" bson:"thumbnail"`
	YoutubeURL       string `json:"youtubeUrl" bson:"youtubeUrl"`
	Timestamp        string `json:"timestamp" bson:"timestamp"`
}

func (b BreakingNews) RecordID() int64 { return b.ID }

// FeaturedStory items are kept oldest first.
type FeaturedStory struct {
	ID          int64  `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Content     string `json:"content" bson:"content"`
	Category    string `json:"category" bson:"category"`
	State       string `json:"state" bson:"state"`
	Excerpt     string `json:"excerpt" bson:"excerpt"`
	ImageURL    string `json:"imageUrl" bson:"imageUrl"`
	Priority    int    `json:"priority" bson:"priority"`
	Views       string `json:"views" bson:"views"`
	Timestamp   string `json:"timestamp" bson:"timestamp"`
}

func (f FeaturedStory) RecordID() int64 { return f.ID }

// DefaultPriority and DefaultViews apply when a story is created without them.
const (
	DefaultPriority = 1
	DefaultViews    = "0"
)

type Category struct {
	ID          int64  `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Timestamp   string `json:"timestamp" bson:"timestamp"`
}

func (c Category) RecordID() int64 { return c.ID }

// Media is an entry of the media library; Type holds the MIME type.
type Media struct {
	ID          int64  `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	URL         string `json:"url" bson:"url"`
	Type        string `json:"type" bson:"type"`
	Timestamp   string `json:"timestamp" bson:"timestamp"`
}

func (m Media) RecordID() int64 { return m.ID }

type NewsArticle struct {
	ID        int64  `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	Content   string `json:"content" bson:"content"`
	Category  string `json:"category" bson:"category"`
	ImageURL  string `json:"imageUrl" bson:"imageUrl"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

func (n NewsArticle) RecordID() int64 { return n.ID }

type StaticPage struct {
	ID        int64  `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	Content   string `json:"content" bson:"content"`
	Slug      string `json:"slug" bson:"slug"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

func (s StaticPage) RecordID() int64 { return s.ID }

type Ticker struct {
	ID        int64  `json:"id" bson:"id"`
	Text      string `json:"text" bson:"text"`
	Type      string `json:"type" bson:"type"`
	Active    bool   `json:"active" bson:"active"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

func (t Ticker) RecordID() int64 { return t.ID }

type Ad struct {
	ID        int64  `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	Placement string `json:"placement" bson:"placement"`
	ImageURL  string `json:"imageUrl" bson:"imageUrl"`
	URL       string `json:"url" bson:"url"`
	StartDate string `json:"startDate" bson:"startDate"`
	EndDate   string `json:"endDate" bson:"endDate"`
	Active    bool   `json:"active" bson:"active"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

func (a Ad) RecordID() int64 { return a.ID }

// Activity is one entry of the bounded audit trail.
type Activity struct {
	ID        int64  `json:"id" bson:"id"`
	Type      string `json:"type" bson:"type"`
	Title     string `json:"title" bson:"title"`
	User      string `json:"user" bson:"user"`
	Status    string `json:"status" bson:"status"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

func (a Activity) RecordID() int64 { return a.ID }
