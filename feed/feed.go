package feed

import (
	"log"
	"strings"
	"time"

	"media04/errs"
	"media04/media"
	"media04/store"
	"media04/structs"

	"github.com/google/uuid"
)

// Service owns the posts collection: create, list, like, comment, delete.
type Service struct {
	Store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{Store: s}
}

// CreatePost validates, stamps and prepends a post. Feed order is reverse
// insertion order, not a timestamp sort.
func (s *Service) CreatePost(authorEmail, authorName, caption string, tags []string, imageData string) (structs.Post, error) {
	if strings.TrimSpace(caption) == "" && imageData == "" {
		return structs.Post{}, errs.Validationf("post needs a caption or an image")
	}
	if tags == nil {
		tags = []string{}
	}
	if w, h, ok := media.Dimensions(imageData); ok {
		log.Printf("🖼️ Post image %dx%d", w, h)
	}

	post := structs.Post{
		ID:          uuid.NewString(),
		AuthorEmail: authorEmail,
		AuthorName:  authorName,
		Caption:     caption,
		Tags:        tags,
		ImageData:   imageData,
		Likes:       0,
		Comments:    []structs.Comment{},
		CreatedAt:   time.Now().UTC(),
	}

	err := s.Store.UpdatePosts(func(posts []structs.Post) ([]structs.Post, error) {
		return append([]structs.Post{post}, posts...), nil
	})
	if err != nil {
		return structs.Post{}, err
	}
	return post, nil
}

// ListPosts returns the stored feed as-is; no filtering, no pagination.
func (s *Service) ListPosts() ([]structs.Post, error) {
	return s.Store.GetPosts()
}

func (s *Service) GetPost(id string) (structs.Post, error) {
	posts, err := s.Store.GetPosts()
	if err != nil {
		return structs.Post{}, err
	}
	for _, post := range posts {
		if post.ID == id {
			return post, nil
		}
	}
	return structs.Post{}, errs.NotFoundf("post %s", id)
}

// LikePost increments under the posts write lock, so concurrent likes on
// the same post all land. There is no unlike; the count only grows.
func (s *Service) LikePost(id string) (int, error) {
	likes := 0
	err := s.Store.UpdatePosts(func(posts []structs.Post) ([]structs.Post, error) {
		for i := range posts {
			if posts[i].ID == id {
				posts[i].Likes++
				likes = posts[i].Likes
				return posts, nil
			}
		}
		return nil, errs.NotFoundf("post %s", id)
	})
	if err != nil {
		return 0, err
	}
	return likes, nil
}

// AddComment appends an immutable comment. Author is a display-name
// snapshot taken now, not a user reference.
func (s *Service) AddComment(id, author, text string) (structs.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return structs.Comment{}, errs.Validationf("comment cannot be empty")
	}

	comment := structs.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}

	err := s.Store.UpdatePosts(func(posts []structs.Post) ([]structs.Post, error) {
		for i := range posts {
			if posts[i].ID == id {
				posts[i].Comments = append(posts[i].Comments, comment)
				return posts, nil
			}
		}
		return nil, errs.NotFoundf("post %s", id)
	})
	if err != nil {
		return structs.Comment{}, err
	}
	return comment, nil
}

// DeletePost removes a post for good. Only the author may delete.
func (s *Service) DeletePost(id, requesterEmail string) error {
	return s.Store.UpdatePosts(func(posts []structs.Post) ([]structs.Post, error) {
		for i := range posts {
			if posts[i].ID == id {
				if posts[i].AuthorEmail != requesterEmail {
					return nil, errs.Authorizationf("delete post %s by %s", id, requesterEmail)
				}
				return append(posts[:i], posts[i+1:]...), nil
			}
		}
		return nil, errs.NotFoundf("post %s", id)
	})
}
