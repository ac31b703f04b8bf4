package engine

// The game shelf catalog. Static by design: the engine only needs
// stable slugs for metrics and a live/coming-soon split for the
// featured picker; everything a game renders is outside the core.

type GameCategory string

const (
	CategoryKids        GameCategory = "kids"
	CategoryClassics    GameCategory = "classics"
	CategoryEducational GameCategory = "educational"
	CategoryPuzzles     GameCategory = "puzzles"
)

// Categories returns the shelf categories in display order.
func Categories() []GameCategory {
	return []GameCategory{CategoryKids, CategoryClassics, CategoryEducational, CategoryPuzzles}
}

type GameStatus string

const (
	GameLive       GameStatus = "live"
	GameComingSoon GameStatus = "coming_soon"
)

type Game struct {
	Slug        string
	Title       string
	Description string
	Tags        []string
	Category    GameCategory
	Status      GameStatus

	// LowerBestIsBetter marks games whose best score improves
	// downward (times, move counts). Callers use it to decide
	// whether a new score beats the stored best; the metrics ledger
	// itself never compares.
	LowerBestIsBetter bool
}

var games = []Game{
	{Slug: "rainbow-hop", Title: "Rainbow Hop", Description: "Jump across floating colors and avoid the splash zones.", Tags: []string{"kids", "reaction"}, Category: CategoryKids, Status: GameLive},
	{Slug: "bubble-pop-party", Title: "Bubble Pop Party", Description: "Pop matching bubbles before the board fills up.", Tags: []string{"kids", "casual"}, Category: CategoryKids, Status: GameLive},
	{Slug: "space-pet-rescue", Title: "Space Pet Rescue", Description: "Guide friendly pets through easy space lanes.", Tags: []string{"kids", "arcade"}, Category: CategoryKids, Status: GameComingSoon},
	{Slug: "color-runner-jr", Title: "Color Runner Jr", Description: "Dash through bright tracks and collect safe boosts.", Tags: []string{"kids", "runner"}, Category: CategoryKids, Status: GameComingSoon},
	{Slug: "tic-tac-toe", Title: "Tic Tac Toe", Description: "Classic 3x3 strategy rounds for quick wins.", Tags: []string{"classics", "strategy"}, Category: CategoryClassics, Status: GameLive},
	{Slug: "memory-match", Title: "Memory Match", Description: "Flip cards and find all pairs with fewer moves.", Tags: []string{"classics", "memory"}, Category: CategoryClassics, Status: GameLive, LowerBestIsBetter: true},
	{Slug: "snake", Title: "Snake", Description: "Collect pixels, grow longer, and avoid walls.", Tags: []string{"classics", "arcade"}, Category: CategoryClassics, Status: GameLive},
	{Slug: "breakout", Title: "Breakout", Description: "Bounce the ball and clear every block.", Tags: []string{"classics", "arcade"}, Category: CategoryClassics, Status: GameComingSoon},
	{Slug: "pong", Title: "Pong", Description: "Retro paddle battles with simple controls.", Tags: []string{"classics", "retro"}, Category: CategoryClassics, Status: GameComingSoon},
	{Slug: "math-sprint", Title: "Math Sprint", Description: "Solve quick arithmetic to keep your runner moving.", Tags: []string{"educational", "math"}, Category: CategoryEducational, Status: GameLive},
	{Slug: "word-trails", Title: "Word Trails", Description: "Build words from letter paths across the board.", Tags: []string{"educational", "spelling"}, Category: CategoryEducational, Status: GameLive},
	{Slug: "planet-facts-quiz", Title: "Planet Facts Quiz", Description: "Pick the right fact to travel through the solar system.", Tags: []string{"educational", "science"}, Category: CategoryEducational, Status: GameComingSoon},
	{Slug: "shape-lab", Title: "Shape Lab", Description: "Match 2D and 3D shapes in short challenge sets.", Tags: []string{"educational", "geometry"}, Category: CategoryEducational, Status: GameComingSoon},
	{Slug: "orbit-puzzle", Title: "Orbit Puzzle", Description: "Rotate rings and align paths to guide energy cores home.", Tags: []string{"puzzles", "logic"}, Category: CategoryPuzzles, Status: GameLive},
	{Slug: "maze-drift", Title: "Maze Drift", Description: "Steer through shifting mazes with careful timing.", Tags: []string{"puzzles", "maze"}, Category: CategoryPuzzles, Status: GameLive, LowerBestIsBetter: true},
	{Slug: "pattern-lock", Title: "Pattern Lock", Description: "Repeat growing patterns before the timer runs out.", Tags: []string{"puzzles", "memory"}, Category: CategoryPuzzles, Status: GameComingSoon},
	{Slug: "block-logic", Title: "Block Logic", Description: "Slide blocks into place to complete each board.", Tags: []string{"puzzles", "strategy"}, Category: CategoryPuzzles, Status: GameComingSoon},
}

// AllGames returns the full catalog in shelf order.
func AllGames() []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

// LiveGames returns only the playable entries.
func LiveGames() []Game {
	var out []Game
	for _, g := range games {
		if g.Status == GameLive {
			out = append(out, g)
		}
	}
	return out
}

// GameBySlug looks up a catalog entry; nil when unknown.
func GameBySlug(slug string) *Game {
	for i := range games {
		if games[i].Slug == slug {
			g := games[i]
			return &g
		}
	}
	return nil
}

// GamesByCategory filters the catalog by shelf category.
func GamesByCategory(c GameCategory) []Game {
	var out []Game
	for _, g := range games {
		if g.Category == c {
			out = append(out, g)
		}
	}
	return out
}

// CategoryCounts tallies catalog entries per category, plus "all".
func CategoryCounts() map[string]int {
	counts := map[string]int{"all": len(games)}
	for _, g := range games {
		counts[string(g.Category)]++
	}
	return counts
}
