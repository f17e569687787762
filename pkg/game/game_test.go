package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/dice/pkg/dice"
)

// table records what a round asked of it.
type table struct {
	events []string
	err    error
}

func (t *table) Ready(player Player) error {
	t.events = append(t.events, "ready "+player.Name)
	return t.err
}

func (t *table) Reveal(player Player, value int) {
	t.events = append(t.events, "reveal "+player.Name)
}

func seat(names ...string) []Player {
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(i+1, name)
	}

	return players
}

func round(number int, players []Player, values ...int) RoundResult {
	rolls := make([]Roll, len(values))
	for i, value := range values {
		rolls[i] = Roll{Player: players[i], Value: value}
	}

	return NewRoundResult(number, rolls...)
}

func TestNewPlayer(t *testing.T) {
	assert.Equal(t, Player{Seat: 1, Name: "Ana"}, NewPlayer(1, "  Ana \t"))
	assert.Equal(t, Player{Seat: 2, Name: "Player 2"}, NewPlayer(2, ""))
	assert.Equal(t, Player{Seat: 3, Name: "Player 3"}, NewPlayer(3, "   "))
	assert.Equal(t, []string{"Ana", "Player 2"}, Names(seat("Ana", "")))
}

func TestPlayRound(t *testing.T) {
	// Given: two players and forced rolls
	players := seat("Ana", "Beth")
	src, err := dice.Sequence(3, 5)
	require.NoError(t, err)
	tbl := &table{}

	// When: a round is played
	result, err := PlayRound(1, players, dice.Die{Faces: 6}, src, tbl)
	require.NoError(t, err)

	// Then: every player got ready and saw their roll before the next one
	assert.Equal(t, []string{"ready Ana", "reveal Ana", "ready Beth", "reveal Beth"}, tbl.events)
	assert.Equal(t, 1, result.Number())
	assert.Equal(t, []Roll{
		{Player: players[0], Value: 3},
		{Player: players[1], Value: 5},
	}, result.Rolls())
}

func TestPlayRoundStopsWhenTableFails(t *testing.T) {
	closed := errors.New("closed")
	src, err := dice.Sequence(1)
	require.NoError(t, err)

	_, err = PlayRound(1, seat("Ana"), dice.Die{Faces: 6}, src, &table{err: closed})
	require.ErrorIs(t, err, closed)

	_, err = PlayRound(1, nil, dice.Die{Faces: 6}, src, &table{})
	require.ErrorIs(t, err, ErrNoPlayers)
}

func TestPlayRoundValuesWithinFaces(t *testing.T) {
	players := seat("A", "B", "C", "D")
	src := dice.NewSource(1)

	for faces := dice.MinFaces; faces <= dice.MaxFaces; faces++ {
		result, err := PlayRound(1, players, dice.Die{Faces: faces}, src, &table{})
		require.NoError(t, err)

		for _, roll := range result.Rolls() {
			require.True(t, roll.Value >= 1 && roll.Value <= faces, "d%d rolled %d", faces, roll.Value)
		}
	}
}

func TestRoundResultIsImmutable(t *testing.T) {
	players := seat("Ana")
	rolls := []Roll{{Player: players[0], Value: 2}}
	result := NewRoundResult(1, rolls...)

	rolls[0].Value = 6
	result.Rolls()[0].Value = 6

	assert.Equal(t, 2, result.Rolls()[0].Value)
}

func TestWinners(t *testing.T) {
	t.Run("Tie", func(t *testing.T) {
		players := seat("A", "B", "C")
		result := round(1, players, 5, 5, 2)

		assert.Equal(t, 5, result.Best())
		assert.Equal(t, []Player{players[0], players[1]}, result.Winners())
		assert.True(t, result.IsTie())
	})

	t.Run("Single", func(t *testing.T) {
		players := seat("A", "B")
		result := round(1, players, 6, 3)

		assert.Equal(t, []Player{players[0]}, result.Winners())
		assert.False(t, result.IsTie())
	})

	t.Run("Empty", func(t *testing.T) {
		result := NewRoundResult(1)

		assert.Zero(t, result.Best())
		assert.Empty(t, result.Winners())
	})
}

func TestLedgerTotalsAreSumsOfRolls(t *testing.T) {
	players := seat("Ana", "Beth", "Cem")
	ledger, err := NewLedger(players)
	require.NoError(t, err)

	src := dice.NewSource(99)
	die := dice.Die{Faces: 12}
	sums := make([]int, len(players))

	for number := 1; number <= 25; number++ {
		result, err := PlayRound(number, players, die, src, &table{})
		require.NoError(t, err)
		require.NoError(t, ledger.Record(result))

		for _, roll := range result.Rolls() {
			sums[roll.Player.Seat-1] += roll.Value
		}

		// The ledger never gains or loses players.
		require.Equal(t, players, ledger.Players())
	}

	for i, player := range players {
		total, ok := ledger.Total(player)
		require.True(t, ok)
		assert.Equal(t, sums[i], total, player.Name)
	}
}

func TestLedgerStartsAtZero(t *testing.T) {
	players := seat("Ana", "Beth")
	ledger, err := NewLedger(players)
	require.NoError(t, err)

	for _, player := range players {
		total, ok := ledger.Total(player)
		assert.True(t, ok)
		assert.Zero(t, total)
	}

	_, ok := ledger.Total(Player{Seat: 3, Name: "Cem"})
	assert.False(t, ok)
}

func TestLedgerRejectsForeignRounds(t *testing.T) {
	players := seat("Ana", "Beth")
	ledger, err := NewLedger(players)
	require.NoError(t, err)

	tcs := map[string]RoundResult{
		"missing player": round(1, players, 4),
		"unknown seat": NewRoundResult(1,
			Roll{Player: players[0], Value: 4},
			Roll{Player: Player{Seat: 3, Name: "Cem"}, Value: 4},
		),
		"duplicate seat": NewRoundResult(1,
			Roll{Player: players[0], Value: 4},
			Roll{Player: players[0], Value: 4},
		),
	}

	for name, result := range tcs {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, ledger.Record(result), ErrRosterMismatch)
		})
	}

	// Then: no rejected round touched the totals
	for _, standing := range ledger.Standings() {
		assert.Zero(t, standing.Total)
	}
}

func TestNewLedgerValidatesSeats(t *testing.T) {
	_, err := NewLedger(nil)
	require.ErrorIs(t, err, ErrNoPlayers)

	_, err = NewLedger([]Player{{Seat: 2, Name: "Ana"}})
	require.Error(t, err)
}

func TestStandings(t *testing.T) {
	// Given: totals {A:10, B:15, C:7}
	players := seat("A", "B", "C")
	ledger, err := NewLedger(players)
	require.NoError(t, err)
	require.NoError(t, ledger.Record(round(1, players, 10, 15, 7)))

	// Then: ranking is B(15), A(10), C(7)
	assert.Equal(t, []Standing{
		{Player: players[1], Total: 15, Rank: 1},
		{Player: players[0], Total: 10, Rank: 2},
		{Player: players[2], Total: 7, Rank: 3},
	}, ledger.Standings())

	leader, ok := ledger.Leader()
	require.True(t, ok)
	assert.Equal(t, players[1], leader.Player)
}

func TestStandingsKeepSeatOrderOnTies(t *testing.T) {
	players := seat("A", "B", "C", "D")
	ledger, err := NewLedger(players)
	require.NoError(t, err)
	require.NoError(t, ledger.Record(round(1, players, 3, 8, 8, 3)))

	standings := ledger.Standings()

	var order []string
	var ranks []int
	for _, standing := range standings {
		order = append(order, standing.Player.Name)
		ranks = append(ranks, standing.Rank)
	}

	assert.Equal(t, []string{"B", "C", "A", "D"}, order)
	assert.Equal(t, []int{1, 1, 3, 3}, ranks)
}
