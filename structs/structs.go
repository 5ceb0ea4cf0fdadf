package structs

import "time"

// User is keyed by email in the users collection. PasswordHash holds the
// credential exactly as submitted; stripping it before responses goes
// through Sanitized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	Photo        string    `json:"photo"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Sanitized returns a copy safe to put on the wire.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"` // display-name snapshot, not a reference
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type Post struct {
	ID          string    `json:"id"`
	AuthorEmail string    `json:"authorEmail"`
	AuthorName  string    `json:"authorName"`
	Caption     string    `json:"caption"`
	Tags        []string  `json:"tags"`
	ImageData   string    `json:"imageData"`
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Story carries author name/photo snapshots taken at creation time.
type Story struct {
	ID          string    `json:"id"`
	AuthorEmail string    `json:"authorEmail"`
	AuthorName  string    `json:"authorName"`
	AuthorPhoto string    `json:"authorPhoto"`
	ImageData   string    `json:"imageData"`
	Caption     string    `json:"caption"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// StoryAuthor is one entry in the "who has stories" rail.
type StoryAuthor struct {
	AuthorEmail string `json:"authorEmail"`
	AuthorName  string `json:"authorName"`
	AuthorPhoto string `json:"authorPhoto"`
}

// FollowPair keeps both directions of the graph for one user. Every edge
// mutation touches the follower's Following and the followee's Followers
// inside the same document write.
type FollowPair struct {
	Following []string `json:"following"`
	Followers []string `json:"followers"`
}

type SearchResults struct {
	Users    []User   `json:"users"`
	Posts    []Post   `json:"posts"`
	Hashtags []string `json:"hashtags"`
}

type TrendingHashtag struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Index represents a domain event emitted after a mutation.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}
