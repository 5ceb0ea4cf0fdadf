package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"media04/errs"
	"media04/structs"
)

// Collection file names under the data directory.
const (
	usersFile   = "users.json"
	postsFile   = "posts.json"
	storiesFile = "stories.json"
	followsFile = "follows.json"
)

// Store is the file-per-collection JSON store. Each collection is one whole
// document: reads return the last committed document, writes replace the
// file atomically via a temp file and rename. A mutex per collection
// serializes writers; readers share the read side.
type Store struct {
	dir string

	usersMu   sync.RWMutex
	postsMu   sync.RWMutex
	storiesMu sync.RWMutex
	followsMu sync.RWMutex
}

// New opens a store rooted at dir, creating the directory and seeding any
// missing collection file with its empty default.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errs.Storage(err, "create data dir")
	}

	s := &Store{dir: dir}

	seeds := []struct {
		name  string
		empty any
	}{
		{usersFile, map[string]structs.User{}},
		{postsFile, []structs.Post{}},
		{storiesFile, []structs.Story{}},
		{followsFile, map[string]structs.FollowPair{}},
	}
	for _, seed := range seeds {
		path := filepath.Join(dir, seed.name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := s.writeFile(seed.name, seed.empty); err != nil {
				return nil, err
			}
			log.Printf("✅ Created %s", path)
		}
	}

	return s, nil
}

// readFile unmarshals a collection file into out. A missing file is not an
// error; out keeps its empty default.
func (s *Store) readFile(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errs.Storage(err, "read "+name)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errs.Storage(err, "decode "+name)
	}
	return nil
}

// writeFile replaces a collection file atomically. The document is written
// to a temp file in the same directory first, so a failed write cannot
// clobber the committed state.
func (s *Store) writeFile(name string, doc any) error {
	// two-space indent keeps the files byte-compatible with the old layout
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errs.Storage(err, "encode "+name)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return errs.Storage(err, "create temp for "+name)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errs.Storage(err, "write temp for "+name)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errs.Storage(err, "close temp for "+name)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return errs.Storage(err, "replace "+name)
	}
	return nil
}

// --- users ---

func (s *Store) GetUsers() (map[string]structs.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	users := map[string]structs.User{}
	if err := s.readFile(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) PutUsers(users map[string]structs.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	return s.writeFile(usersFile, users)
}

// UpdateUsers runs fn over the committed document and writes the result
// back, all under the collection's write lock. fn returning an error
// aborts the write and the error is passed through.
func (s *Store) UpdateUsers(fn func(map[string]structs.User) error) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	users := map[string]structs.User{}
	if err := s.readFile(usersFile, &users); err != nil {
		return err
	}
	if err := fn(users); err != nil {
		return err
	}
	return s.writeFile(usersFile, users)
}

// --- posts ---

func (s *Store) GetPosts() ([]structs.Post, error) {
	s.postsMu.RLock()
	defer s.postsMu.RUnlock()
	posts := []structs.Post{}
	if err := s.readFile(postsFile, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Store) PutPosts(posts []structs.Post) error {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()
	return s.writeFile(postsFile, posts)
}

// UpdatePosts is the read-modify-write unit for the posts collection; fn
// returns the replacement slice.
func (s *Store) UpdatePosts(fn func([]structs.Post) ([]structs.Post, error)) error {
	s.postsMu.Lock()
	defer s.postsMu.Unlock()
	posts := []structs.Post{}
	if err := s.readFile(postsFile, &posts); err != nil {
		return err
	}
	next, err := fn(posts)
	if err != nil {
		return err
	}
	return s.writeFile(postsFile, next)
}

// --- stories ---

func (s *Store) GetStories() ([]structs.Story, error) {
	s.storiesMu.RLock()
	defer s.storiesMu.RUnlock()
	stories := []structs.Story{}
	if err := s.readFile(storiesFile, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (s *Store) PutStories(stories []structs.Story) error {
	s.storiesMu.Lock()
	defer s.storiesMu.Unlock()
	return s.writeFile(storiesFile, stories)
}

func (s *Store) UpdateStories(fn func([]structs.Story) ([]structs.Story, error)) error {
	s.storiesMu.Lock()
	defer s.storiesMu.Unlock()
	stories := []structs.Story{}
	if err := s.readFile(storiesFile, &stories); err != nil {
		return err
	}
	next, err := fn(stories)
	if err != nil {
		return err
	}
	return s.writeFile(storiesFile, next)
}

// --- follows ---

func (s *Store) GetFollows() (map[string]structs.FollowPair, error) {
	s.followsMu.RLock()
	defer s.followsMu.RUnlock()
	follows := map[string]structs.FollowPair{}
	if err := s.readFile(followsFile, &follows); err != nil {
		return nil, err
	}
	return follows, nil
}

func (s *Store) PutFollows(follows map[string]structs.FollowPair) error {
	s.followsMu.Lock()
	defer s.followsMu.Unlock()
	return s.writeFile(followsFile, follows)
}

// UpdateFollows keeps both sides of an edge in one committed write, so a
// crash cannot leave the stored graph asymmetric.
func (s *Store) UpdateFollows(fn func(map[string]structs.FollowPair) error) error {
	s.followsMu.Lock()
	defer s.followsMu.Unlock()
	follows := map[string]structs.FollowPair{}
	if err := s.readFile(followsFile, &follows); err != nil {
		return err
	}
	if err := fn(follows); err != nil {
		return err
	}
	return s.writeFile(followsFile, follows)
}
