package scoring

import (
	"math"
	"sort"
	"time"

	"traveldesk/internal/domain"
)

// Clock supplies "now" for staleness and overdue checks. Injected so
// tests can fix time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used outside tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Weights holds the scoring constants. Every term is additive and
// computed independently.
type Weights struct {
	AIMax        float64 // max contribution of the ai_score term
	TempHot      float64
	TempCold     float64
	ValueMax     float64 // cap of the estimated-value term
	ValueDivisor float64 // value producing a full ValueMax contribution
	StaleOver48h float64
	StaleOver24h float64
	StaleBase    float64 // always contributed, the score floor
	OverdueTask  float64
}

func DefaultWeights() Weights {
	return Weights{
		AIMax:        30,
		TempHot:      25,
		TempCold:     5,
		ValueMax:     20,
		ValueDivisor: 100000,
		StaleOver48h: 15,
		StaleOver24h: 10,
		StaleBase:    5,
		OverdueTask:  10,
	}
}

// Service computes lead urgency scores so every view ranks leads the
// same way.
type Service struct {
	weights Weights
	clock   Clock
}

func NewService(weights Weights, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{weights: weights, clock: clock}
}

// Score returns the priority score for a lead. Pure given the lead and
// the clock. Warm (or unset) temperature contributes nothing; the
// staleness term always contributes at least StaleBase, so no lead
// scores below it.
func (s *Service) Score(lead *domain.Lead) int {
	now := s.clock.Now()
	w := s.weights

	score := float64(lead.AIScore) / 100 * w.AIMax

	switch lead.Temperature {
	case domain.TemperatureHot:
		score += w.TempHot
	case domain.TemperatureCold:
		score += w.TempCold
	}

	value := lead.EstimatedValue / w.ValueDivisor * w.ValueMax
	if value > w.ValueMax {
		value = w.ValueMax
	}
	score += value

	switch age := now.Sub(lead.UpdatedAt); {
	case age > 48*time.Hour:
		score += w.StaleOver48h
	case age > 24*time.Hour:
		score += w.StaleOver24h
	default:
		score += w.StaleBase
	}

	if lead.HasOverdueTask(now) {
		score += w.OverdueTask
	}

	return int(math.Round(score))
}

// Rank returns a copy of leads sorted by score, highest first. The
// sort is stable: equal scores keep their incoming relative order.
func (s *Service) Rank(leads []*domain.Lead) []*domain.Lead {
	out := append([]*domain.Lead(nil), leads...)
	scores := make(map[string]int, len(out))
	for _, l := range out {
		scores[l.ID] = s.Score(l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i].ID] > scores[out[j].ID]
	})
	return out
}

// StarterScore synthesizes the initial ai_score for a manually entered
// lead. Deterministic: base 50, bumped by temperature and estimated
// value, clamped to 0..100.
func StarterScore(temp domain.Temperature, estimatedValue float64) int {
	score := 50.0
	switch temp {
	case domain.TemperatureHot:
		score += 15
	case domain.TemperatureWarm:
		score += 5
	}
	bump := estimatedValue / 100000 * 30
	if bump > 30 {
		bump = 30
	}
	score += bump
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}
