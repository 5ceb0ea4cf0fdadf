package stories

import (
	"log"
	"time"

	"media04/errs"
	"media04/media"
	"media04/store"
	"media04/structs"

	"github.com/google/uuid"
)

// Stories stay visible for a fixed day after creation.
const storyTTL = 24 * time.Hour

// Service owns the stories collection. Now is injectable so expiry can be
// tested without waiting a day.
type Service struct {
	Store *store.Store
	Now   func() time.Time
}

func NewService(s *store.Store) *Service {
	return &Service{Store: s, Now: time.Now}
}

// CreateStory stamps and prepends a story. Author name and photo are
// snapshots taken now; later profile edits do not rewrite old stories.
func (s *Service) CreateStory(authorEmail, authorName, authorPhoto, imageData, caption string) (structs.Story, error) {
	if imageData == "" {
		return structs.Story{}, errs.Validationf("story needs an image")
	}
	if w, h, ok := media.Dimensions(imageData); ok {
		log.Printf("🖼️ Story image %dx%d", w, h)
	}

	now := s.Now().UTC()
	story := structs.Story{
		ID:          uuid.NewString(),
		AuthorEmail: authorEmail,
		AuthorName:  authorName,
		AuthorPhoto: authorPhoto,
		ImageData:   imageData,
		Caption:     caption,
		CreatedAt:   now,
		ExpiresAt:   now.Add(storyTTL),
	}

	err := s.Store.UpdateStories(func(stories []structs.Story) ([]structs.Story, error) {
		return append([]structs.Story{story}, stories...), nil
	})
	if err != nil {
		return structs.Story{}, err
	}
	return story, nil
}

// ListActive filters by expiry at call time. Active-ness is a pure function
// of the clock, never stored state. Expired rows are purged from disk as a
// side effect, best-effort: a failed purge never affects the returned list.
func (s *Service) ListActive() ([]structs.Story, error) {
	s.purgeExpired()

	stories, err := s.Store.GetStories()
	if err != nil {
		return nil, err
	}

	now := s.Now()
	active := []structs.Story{}
	for _, story := range stories {
		if story.ExpiresAt.After(now) {
			active = append(active, story)
		}
	}
	return active, nil
}

// GroupByAuthor collapses active stories into one rail entry per author,
// ordered by first appearance (newest story first, since the slice is
// newest-first).
func GroupByAuthor(active []structs.Story) []structs.StoryAuthor {
	seen := map[string]bool{}
	authors := []structs.StoryAuthor{}
	for _, story := range active {
		if seen[story.AuthorEmail] {
			continue
		}
		seen[story.AuthorEmail] = true
		authors = append(authors, structs.StoryAuthor{
			AuthorEmail: story.AuthorEmail,
			AuthorName:  story.AuthorName,
			AuthorPhoto: story.AuthorPhoto,
		})
	}
	return authors
}

func (s *Service) purgeExpired() {
	now := s.Now()
	err := s.Store.UpdateStories(func(stories []structs.Story) ([]structs.Story, error) {
		kept := stories[:0]
		for _, story := range stories {
			if story.ExpiresAt.After(now) {
				kept = append(kept, story)
			}
		}
		if len(kept) != len(stories) {
			log.Printf("🧹 Cleaned %d expired stories", len(stories)-len(kept))
		}
		return kept, nil
	})
	if err != nil {
		log.Printf("story purge skipped: %v", err)
	}
}
