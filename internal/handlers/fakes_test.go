package handlers

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/repo"
)

// In-memory store fakes mirroring the repo error contract: malformed hex ids
// yield ErrMalformedID, absent records ErrNotFound, updates and deletes of
// absent records are silent no-ops.

func parseFakeID(id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", repo.ErrMalformedID
	}
	return oid.Hex(), nil
}

type fakePropertyStore struct {
	mu    sync.Mutex
	items map[string]models.Property
	err   error // when set, every call fails with it
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{items: map[string]models.Property{}}
}

func (s *fakePropertyStore) List(ctx context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Property, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakePropertyStore) GetByID(ctx context.Context, id string) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	key, err := parseFakeID(id)
	if err != nil {
		return nil, err
	}
	p, ok := s.items[key]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (s *fakePropertyStore) Create(ctx context.Context, p *models.Property) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	p.ID = primitive.NewObjectID()
	if p.Images == nil {
		p.Images = []string{}
	}
	s.items[p.ID.Hex()] = *p
	return p.ID.Hex(), nil
}

func (s *fakePropertyStore) Update(ctx context.Context, id string, fields bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	key, err := parseFakeID(id)
	if err != nil {
		return err
	}
	p, ok := s.items[key]
	if !ok {
		return nil
	}
	if v, ok := fields["title"]; ok {
		p.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		p.Description = v.(string)
	}
	if v, ok := fields["price"]; ok {
		p.Price = v.(int)
	}
	if v, ok := fields["images"]; ok {
		p.Images = v.([]string)
	}
	s.items[key] = p
	return nil
}

func (s *fakePropertyStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	key, err := parseFakeID(id)
	if err != nil {
		return err
	}
	delete(s.items, key)
	return nil
}

type fakeRoommateStore struct {
	mu    sync.Mutex
	items map[string]models.Roommate
	err   error
}

func newFakeRoommateStore() *fakeRoommateStore {
	return &fakeRoommateStore{items: map[string]models.Roommate{}}
}

func (s *fakeRoommateStore) List(ctx context.Context) ([]models.Roommate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Roommate, 0, len(s.items))
	for _, m := range s.items {
		out = append(out, m)
	}
	return out, nil
}

func (s *fakeRoommateStore) GetByID(ctx context.Context, id string) (*models.Roommate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	key, err := parseFakeID(id)
	if err != nil {
		return nil, err
	}
	m, ok := s.items[key]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &m, nil
}

func (s *fakeRoommateStore) Create(ctx context.Context, m *models.Roommate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	m.ID = primitive.NewObjectID()
	s.items[m.ID.Hex()] = *m
	return m.ID.Hex(), nil
}

func (s *fakeRoommateStore) Update(ctx context.Context, id string, fields bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	key, err := parseFakeID(id)
	if err != nil {
		return err
	}
	m, ok := s.items[key]
	if !ok {
		return nil
	}
	if v, ok := fields["name"]; ok {
		m.Name = v.(string)
	}
	if v, ok := fields["age"]; ok {
		m.Age = v.(int)
	}
	if v, ok := fields["propertyTitle"]; ok {
		m.PropertyTitle = v.(string)
	}
	if v, ok := fields["image"]; ok {
		m.Image = v.(string)
	}
	s.items[key] = m
	return nil
}

func (s *fakeRoommateStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	key, err := parseFakeID(id)
	if err != nil {
		return err
	}
	delete(s.items, key)
	return nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; ok {
		return nil, repo.ErrDuplicateUser
	}
	u := models.User{ID: primitive.NewObjectID(), Email: email, PasswordHash: passwordHash}
	s.users[email] = u
	return &u, nil
}

func (s *fakeUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]models.Session{}}
}

func (s *fakeSessionStore) Create(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = *sess
	return nil
}

func (s *fakeSessionStore) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &sess, nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *fakeSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
