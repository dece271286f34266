package collection

import (
	"sync"

	"github.com/flickfinder/flickfinder/internal/models"
)

// Store holds one session's favorites and watchlist. Both are
// insertion-ordered sets keyed by movie ID. The mutex makes the
// membership-check-plus-insert pair atomic so a double-submitted add cannot
// race past the duplicate check.
type Store struct {
	mu        sync.Mutex
	favorites []models.Movie
	watchlist []models.Movie
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AddFavorite(movie models.Movie) models.AddOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return add(&s.favorites, movie)
}

func (s *Store) AddToWatchlist(movie models.Movie) models.AddOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return add(&s.watchlist, movie)
}

func (s *Store) RemoveFavorite(movieID int) models.RemoveOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(&s.favorites, movieID)
}

func (s *Store) RemoveFromWatchlist(movieID int) models.RemoveOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return remove(&s.watchlist, movieID)
}

// Favorites returns the favorites in insertion order.
func (s *Store) Favorites() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMovies(s.favorites)
}

// Watchlist returns the watchlist in insertion order.
func (s *Store) Watchlist() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMovies(s.watchlist)
}

func (s *Store) ContainsFavorite(movieID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.favorites, movieID) >= 0
}

func (s *Store) ContainsWatchlist(movieID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.watchlist, movieID) >= 0
}

func add(list *[]models.Movie, movie models.Movie) models.AddOutcome {
	if indexOf(*list, movie.ID) >= 0 {
		return models.AlreadyPresent
	}
	*list = append(*list, movie)
	return models.Added
}

func remove(list *[]models.Movie, movieID int) models.RemoveOutcome {
	i := indexOf(*list, movieID)
	if i < 0 {
		return models.NotPresent
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
	return models.Removed
}

func indexOf(list []models.Movie, movieID int) int {
	for i, m := range list {
		if m.ID == movieID {
			return i
		}
	}
	return -1
}

func copyMovies(list []models.Movie) []models.Movie {
	out := make([]models.Movie, len(list))
	copy(out, list)
	return out
}
