package mood

import (
	"time"

	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

var metrics = []domain.Metric[domain.MoodEntry]{
	domain.RatingMetric(string(domain.AssignmentKindMood), func(e domain.MoodEntry) *domain.Rating { return e.Mood }),
	domain.RatingMetric(string(domain.AssignmentKindEnergy), func(e domain.MoodEntry) *domain.Rating { return e.Energy }),
	domain.RatingMetric(string(domain.AssignmentKindSleep), func(e domain.MoodEntry) *domain.Rating { return e.Sleep }),
}

// FoundEntry is the projection of a mood entry returned to clients.
type FoundEntry struct {
	Mood     *domain.Rating
	Energy   *domain.Rating
	Sleep    *domain.Rating
	Notes    *string
	LoggedAt time.Time
}

// RatingsResult totals each rating scale over the returned entries.
type RatingsResult struct {
	TotalMood            uint
	TotalEnergy          uint
	TotalSleep           uint
	EntriesWithoutMood   int
	EntriesWithoutEnergy int
	EntriesWithoutSleep  int
}

// ReadEntriesResult is the output of ReadEntries.
type ReadEntriesResult struct {
	Entries []FoundEntry
	Ratings RatingsResult
}

// AssignmentsResult lists a user's labels per scale, ordered by index.
type AssignmentsResult struct {
	Mood   []domain.Assignment
	Energy []domain.Assignment
	Sleep  []domain.Assignment
}

func project(e domain.MoodEntry) FoundEntry {
	return FoundEntry{
		Mood:     e.Mood,
		Energy:   e.Energy,
		Sleep:    e.Sleep,
		Notes:    e.Notes,
		LoggedAt: e.LoggedAt,
	}
}

func aggregate(entries []domain.MoodEntry) ReadEntriesResult {
	found, totals := domain.Fold(entries, metrics, project)
	mood, energy, sleep := string(domain.AssignmentKindMood), string(domain.AssignmentKindEnergy), string(domain.AssignmentKindSleep)
	return ReadEntriesResult{
		Entries: found,
		Ratings: RatingsResult{
			TotalMood:            uint(totals.Sum(mood)),
			TotalEnergy:          uint(totals.Sum(energy)),
			TotalSleep:           uint(totals.Sum(sleep)),
			EntriesWithoutMood:   totals.MissingCount(mood),
			EntriesWithoutEnergy: totals.MissingCount(energy),
			EntriesWithoutSleep:  totals.MissingCount(sleep),
		},
	}
}
