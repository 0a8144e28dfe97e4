package goals

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Key is the storage key of the goals list.
const Key = "fitapp-goals"

var (
	ErrNotFound     = errors.New("goal not found")
	ErrInvalidGoal  = errors.New("invalid goal")
	errAmbiguousRef = errors.New("ambiguous goal id")
)

// Goal is a user-defined fitness target tracked on the dashboard.
type Goal struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category,omitempty"`
	Target    float64    `json:"target"`
	Current   float64    `json:"current"`
	Unit      string     `json:"unit"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Percent returns the share of the target reached, capped at 100.
func (g Goal) Percent() float64 {
	if g.Target <= 0 {
		return 0
	}
	return math.Min(g.Current/g.Target*100, 100)
}

// Overdue reports whether the deadline passed before the goal was completed.
func (g Goal) Overdue(now time.Time) bool {
	return !g.Completed && g.Deadline != nil && now.After(*g.Deadline)
}

// Storage is the subset of a localStorage-like store the goals list needs.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

// Tracker manages the persisted goals list.
type Tracker struct {
	store Storage
	now   func() time.Time
}

// NewTracker returns a goals tracker backed by store.
func NewTracker(store Storage, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, now: now}
}

// List returns all goals in insertion order. A corrupted list reads as empty.
func (t *Tracker) List() ([]Goal, error) {
	raw, ok, err := t.store.GetItem(Key)
	if err != nil || !ok {
		return nil, err
	}
	var list []Goal
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, nil
	}
	return list, nil
}

// NewGoal holds the fields a user supplies when creating a goal.
type NewGoal struct {
	Title    string
	Category string
	Target   float64
	Unit     string
	Deadline *time.Time
}

// Add validates and appends a new goal.
func (t *Tracker) Add(in NewGoal) (Goal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Goal{}, fmt.Errorf("%w: title is required", ErrInvalidGoal)
	}
	if in.Target <= 0 {
		return Goal{}, fmt.Errorf("%w: target must be positive", ErrInvalidGoal)
	}

	list, err := t.List()
	if err != nil {
		return Goal{}, err
	}

	now := t.now()
	g := Goal{
		ID:        generateID(title, now),
		Title:     title,
		Category:  strings.TrimSpace(in.Category),
		Target:    in.Target,
		Unit:      strings.TrimSpace(in.Unit),
		Deadline:  in.Deadline,
		CreatedAt: now,
	}
	list = append(list, g)
	return g, t.save(list)
}

// Progress adds delta to a goal's current value (never below zero) and marks
// the goal completed once the target is reached.
func (t *Tracker) Progress(ref string, delta float64) (Goal, error) {
	return t.update(ref, func(g *Goal) {
		g.Current = math.Max(g.Current+delta, 0)
		if g.Current >= g.Target {
			g.Completed = true
		}
	})
}

// Find resolves a full ID or unique ID prefix to a goal.
func (t *Tracker) Find(ref string) (Goal, error) {
	list, err := t.List()
	if err != nil {
		return Goal{}, err
	}
	i, err := find(list, ref)
	if err != nil {
		return Goal{}, err
	}
	return list[i], nil
}

// Toggle flips a goal's completed flag.
func (t *Tracker) Toggle(ref string) (Goal, error) {
	return t.update(ref, func(g *Goal) {
		g.Completed = !g.Completed
	})
}

// Remove deletes a goal.
func (t *Tracker) Remove(ref string) (Goal, error) {
	list, err := t.List()
	if err != nil {
		return Goal{}, err
	}
	i, err := find(list, ref)
	if err != nil {
		return Goal{}, err
	}
	removed := list[i]
	list = append(list[:i], list[i+1:]...)
	return removed, t.save(list)
}

func (t *Tracker) update(ref string, fn func(*Goal)) (Goal, error) {
	list, err := t.List()
	if err != nil {
		return Goal{}, err
	}
	i, err := find(list, ref)
	if err != nil {
		return Goal{}, err
	}
	fn(&list[i])
	return list[i], t.save(list)
}

func (t *Tracker) save(list []Goal) error {
	if list == nil {
		list = []Goal{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return t.store.SetItem(Key, string(data))
}

// find resolves a goal by full ID or unique ID prefix.
func find(list []Goal, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	match := -1
	for i, g := range list {
		if g.ID == ref {
			return i, nil
		}
		if strings.HasPrefix(g.ID, ref) {
			if match != -1 {
				return -1, fmt.Errorf("%w '%s'", errAmbiguousRef, ref)
			}
			match = i
		}
	}
	if match == -1 {
		return -1, fmt.Errorf("%w: '%s'", ErrNotFound, ref)
	}
	return match, nil
}

// generateID creates a 7-character hex ID from a title and creation time.
func generateID(title string, now time.Time) string {
	seed := fmt.Sprintf("%s\x00%d", title, now.UnixNano())
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
