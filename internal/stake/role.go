package stake

// PlayersPerHand is the number of players dealt into one hand.
const PlayersPerHand = 4

// Role is one player's part in a hand.
// Money is written by DistributePayouts. Balance belongs to the session layer.
type Role struct {
	Player  string
	Caller  bool
	Winner  bool
	Money   int
	Balance int
}

// Sum returns the total money of roles. It is zero after a valid distribution.
func Sum(roles []Role) int {
	total := 0
	for _, r := range roles {
		total += r.Money
	}
	return total
}
