// Package store is the in-memory state of the development server. It exists
// so the client can be exercised end to end without a database; everything
// is lost on restart.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stadtwache/patrol/internal/common"
)

// Store holds all server state behind one mutex. Contention is irrelevant
// for a development backend.
type Store struct {
	mu            sync.RWMutex
	users         map[string]*User
	emailIndex    map[string]string
	incidents     map[string]*Incident
	messages      []*Message
	notifications []*Notification
	persons       map[string]*Person
	reports       map[string]*Report
}

func New() *Store {
	return &Store{
		users:      make(map[string]*User),
		emailIndex: make(map[string]string),
		incidents:  make(map[string]*Incident),
		persons:    make(map[string]*Person),
		reports:    make(map[string]*Report),
	}
}

// ---- users ----

// CreateUser registers a new account. The email is the unique key.
func (s *Store) CreateUser(email, username, password, department, rank, serviceNumber string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || username == "" || password == "" {
		return User{}, common.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emailIndex[email]; exists {
		return User{}, common.ErrAlreadyExists
	}

	u := &User{
		ID:            uuid.NewString(),
		Username:      username,
		Email:         email,
		Role:          "officer",
		Status:        common.StatusOnDuty,
		Department:    department,
		Rank:          rank,
		ServiceNumber: serviceNumber,
		PasswordHash:  hash,
	}
	s.users[u.ID] = u
	s.emailIndex[email] = u.ID
	return *u, nil
}

// Authenticate matches an email/password pair against the stored hash.
func (s *Store) Authenticate(email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	id, ok := s.emailIndex[email]
	var u *User
	if ok {
		u = s.users[id]
	}
	s.mu.RUnlock()

	if u == nil {
		return User{}, common.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return User{}, common.ErrUnauthorized
	}
	return *u, nil
}

// UserByID returns a copy of the user.
func (s *Store) UserByID(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, common.ErrNotFound
	}
	return *u, nil
}

// UpdateUser merges the non-nil fields of upd into the user.
func (s *Store) UpdateUser(id string, upd UserUpdate) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, common.ErrNotFound
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.Department != nil {
		u.Department = *upd.Department
	}
	if upd.Rank != nil {
		u.Rank = *upd.Rank
	}
	if upd.ServiceNumber != nil {
		u.ServiceNumber = *upd.ServiceNumber
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	return *u, nil
}

// DeleteUser removes the account.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return common.ErrNotFound
	}
	delete(s.emailIndex, u.Email)
	delete(s.users, id)
	return nil
}

// UsersByStatus groups all users by their duty status.
func (s *Store) UsersByStatus() map[string][]User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]User)
	for _, u := range s.users {
		out[u.Status] = append(out[u.Status], *u)
	}
	for status := range out {
		group := out[status]
		sort.Slice(group, func(i, j int) bool { return group[i].Username < group[j].Username })
		out[status] = group
	}
	return out
}

// ---- incidents ----

func (s *Store) CreateIncident(inc Incident) Incident {
	inc.ID = uuid.NewString()
	inc.Status = "offen"
	inc.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.incidents[inc.ID] = &inc
	s.mu.Unlock()
	return inc
}

func (s *Store) Incidents() []Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Incident, 0, len(s.incidents))
	for _, inc := range s.incidents {
		out = append(out, *inc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// AssignIncident marks the incident as taken over by userID.
func (s *Store) AssignIncident(id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inc, ok := s.incidents[id]
	if !ok {
		return common.ErrNotFound
	}
	inc.AssignedTo = userID
	inc.Status = "in_bearbeitung"
	return nil
}

// CompleteIncident closes the incident.
func (s *Store) CompleteIncident(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inc, ok := s.incidents[id]
	if !ok {
		return common.ErrNotFound
	}
	inc.Status = "abgeschlossen"
	return nil
}

func (s *Store) DeleteIncident(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.incidents[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.incidents, id)
	return nil
}

// ---- messages ----

// AddMessage appends a chat message. Sender name is resolved from the user
// table so clients never have to send it.
func (s *Store) AddMessage(m Message) Message {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	if m.MessageType == "" {
		m.MessageType = "text"
	}

	s.mu.Lock()
	if u, ok := s.users[m.SenderID]; ok {
		m.SenderName = u.Username
	}
	stored := m
	s.messages = append(s.messages, &stored)
	s.mu.Unlock()
	return m
}

// ChannelMessages returns the messages of one channel, oldest first.
func (s *Store) ChannelMessages(channel string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, 0)
	for _, m := range s.messages {
		if m.Channel == channel && m.RecipientID == "" {
			out = append(out, *m)
		}
	}
	return out
}

// PrivateMessagesFor returns the direct messages userID sent or received.
func (s *Store) PrivateMessagesFor(userID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, 0)
	for _, m := range s.messages {
		if m.RecipientID == "" {
			continue
		}
		if m.SenderID == userID || m.RecipientID == userID {
			out = append(out, *m)
		}
	}
	return out
}

// DeleteMessage removes a message; only the sender may do so.
func (s *Store) DeleteMessage(id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.messages {
		if m.ID != id {
			continue
		}
		if m.SenderID != userID {
			return common.ErrUnauthorized
		}
		s.messages = append(s.messages[:i], s.messages[i+1:]...)
		return nil
	}
	return common.ErrNotFound
}

// ---- notifications ----

func (s *Store) AddNotification(n Notification) Notification {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.notifications = append(s.notifications, &n)
	s.mu.Unlock()
	return n
}

// NotificationsFor returns the feed of one recipient, newest first.
func (s *Store) NotificationsFor(userID string) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Notification, 0)
	for _, n := range s.notifications {
		if n.RecipientID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// MarkNotificationRead flags one notification; only the recipient may.
func (s *Store) MarkNotificationRead(id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.ID != id {
			continue
		}
		if n.RecipientID != userID {
			return common.ErrUnauthorized
		}
		n.Read = true
		return nil
	}
	return common.ErrNotFound
}

// ---- persons ----

func (s *Store) CreatePerson(p Person) (Person, error) {
	if p.FirstName == "" || p.LastName == "" {
		return Person{}, common.ErrValidation
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	if p.Status == "" {
		p.Status = "missing"
	}

	s.mu.Lock()
	s.persons[p.ID] = &p
	s.mu.Unlock()
	return p, nil
}

func (s *Store) UpdatePerson(id string, p Person) (Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.persons[id]
	if !ok {
		return Person{}, common.ErrNotFound
	}
	p.ID = old.ID
	p.CreatedAt = old.CreatedAt
	s.persons[id] = &p
	return p, nil
}

func (s *Store) DeletePerson(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.persons[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.persons, id)
	return nil
}

func (s *Store) Persons() []Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Person, 0, len(s.persons))
	for _, p := range s.persons {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Store) PersonStats() PersonStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats PersonStats
	for _, p := range s.persons {
		stats.TotalPersons++
		switch p.Status {
		case "missing":
			stats.MissingPersons++
		case "wanted":
			stats.WantedPersons++
		case "found":
			stats.FoundPersons++
		}
	}
	return stats
}

// ---- reports ----

func (s *Store) CreateReport(r Report) (Report, error) {
	if r.Title == "" || r.Content == "" {
		return Report{}, common.ErrValidation
	}
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.reports[r.ID] = &r
	s.mu.Unlock()
	return r, nil
}

func (s *Store) UpdateReport(id string, r Report) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.reports[id]
	if !ok {
		return Report{}, common.ErrNotFound
	}
	r.ID = old.ID
	r.AuthorID = old.AuthorID
	r.CreatedAt = old.CreatedAt
	s.reports[id] = &r
	return r, nil
}

func (s *Store) DeleteReport(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[id]; !ok {
		return common.ErrNotFound
	}
	delete(s.reports, id)
	return nil
}

func (s *Store) Reports() []Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
