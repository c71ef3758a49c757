package feedback

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crossrent/crossrent/internal/apperr"
)

// Features users can vote for. Votes outside this set are ignored.
var knownFeatures = []string{
	"circle_wallets",
	"dual_perspective",
	"real_time_notifications",
	"escrow_management",
	"cross_chain_bridge",
}

// Entry is one submitted piece of feedback.
type Entry struct {
	ID        string
	Timestamp time.Time
	Rating    int
	Comment   string
	Features  []string
}

// FeatureVotes pairs a feature tag with its vote count.
type FeatureVotes struct {
	Feature string
	Votes   int
}

// Stats summarizes the aggregate.
type Stats struct {
	TotalUsers     int
	AverageRating  float64
	TotalFeedback  int
	TopFeatures    []FeatureVotes
	RecentComments []string
}

// Service aggregates user feedback. It is independent of the wallet ledger
// and keeps everything in memory for the process lifetime.
type Service struct {
	mu           sync.RWMutex
	entries      []Entry
	totalUsers   int
	featureVotes map[string]int
}

// NewService builds an empty feedback aggregate.
func NewService() *Service {
	votes := make(map[string]int, len(knownFeatures))
	for _, f := range knownFeatures {
		votes[f] = 0
	}
	return &Service{featureVotes: votes}
}

// SubmitInput captures one feedback submission.
type SubmitInput struct {
	Rating    int
	Comment   string
	Features  []string
	Timestamp time.Time
}

// Submit validates and records a feedback entry, returning its identifier.
func (s *Service) Submit(_ context.Context, input SubmitInput) (string, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return "", fmt.Errorf("rating must be between 1 and 5: %w", apperr.ErrInvalidRequest)
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: ts,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Features:  append([]string(nil), input.Features...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	s.totalUsers++
	for _, feature := range entry.Features {
		if _, known := s.featureVotes[feature]; known {
			s.featureVotes[feature]++
		}
	}

	return entry.ID, nil
}

// Stats computes the aggregate summary: average rating to one decimal place,
// the top three features by votes, and the last three non-empty comments.
func (s *Service) Stats(_ context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalUsers:    s.totalUsers,
		TotalFeedback: len(s.entries),
	}

	if len(s.entries) > 0 {
		sum := 0
		for _, e := range s.entries {
			sum += e.Rating
		}
		avg := float64(sum) / float64(len(s.entries))
		stats.AverageRating = math.Round(avg*10) / 10
	}

	features := make([]FeatureVotes, 0, len(s.featureVotes))
	for feature, votes := range s.featureVotes {
		features = append(features, FeatureVotes{Feature: feature, Votes: votes})
	}
	sort.Slice(features, func(i, j int) bool {
		if features[i].Votes != features[j].Votes {
			return features[i].Votes > features[j].Votes
		}
		return features[i].Feature < features[j].Feature
	})
	if len(features) > 3 {
		features = features[:3]
	}
	stats.TopFeatures = features

	for i := len(s.entries) - 1; i >= 0 && len(stats.RecentComments) < 3; i-- {
		if s.entries[i].Comment != "" {
			stats.RecentComments = append(stats.RecentComments, s.entries[i].Comment)
		}
	}

	return stats
}

// List returns all entries, newest first.
func (s *Service) List(_ context.Context) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := append([]Entry(nil), s.entries...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}
