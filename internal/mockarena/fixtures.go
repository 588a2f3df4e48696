package mockarena

import (
	"math"

	"github.com/brianvoe/gofakeit/v7"
)

// SeedFixtures fills the scoreboard with n fake contestants so the
// leaderboard has something to show on first launch. The same seed always
// produces the same standings.
func (s *Service) SeedFixtures(n int, seed uint64) {
	faker := gofakeit.New(seed)

	for i := 0; i < n; i++ {
		username := faker.Gamertag()
		score := math.Round(faker.Float64Range(35, 99)*10) / 10
		s.Record(username, score)
	}
}
