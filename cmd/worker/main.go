// Package main provides a worker binary exposing the deck and vector
// libraries over a line-delimited JSON protocol. It reads commands
// from stdin and writes one response per line to stdout; diagnostics
// go to stderr so they never interleave with the protocol stream.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/decklab/cardseq/deck"
	"github.com/decklab/cardseq/seq"
	"github.com/decklab/cardseq/vec"
)

// Command represents an incoming JSON command.
type Command struct {
	Action   string   `json:"action"`
	Position int      `json:"position,omitempty"`
	Start    *int     `json:"start,omitempty"` // nil means "from the beginning"
	Stop     *int     `json:"stop,omitempty"`  // nil means "to the end"
	Seed     int64    `json:"seed,omitempty"`
	Rank     string   `json:"rank,omitempty"`
	Suit     string   `json:"suit,omitempty"`
	A        *VecJSON `json:"a,omitempty"`
	B        *VecJSON `json:"b,omitempty"`
	V        *VecJSON `json:"v,omitempty"`
	Scalar   float64  `json:"scalar,omitempty"`
}

// Response represents the JSON response for one command.
type Response struct {
	Success  bool         `json:"success"`
	Error    string       `json:"error,omitempty"`
	Session  string       `json:"session,omitempty"`
	Card     *CardJSON    `json:"card,omitempty"`
	Cards    []CardJSON   `json:"cards,omitempty"`
	Ranked   []RankedCard `json:"ranked,omitempty"`
	Found    *bool        `json:"found,omitempty"`
	Vector   *VecJSON     `json:"vector,omitempty"`
	Value    *float64     `json:"value,omitempty"`
	IsZero   *bool        `json:"is_zero,omitempty"`
	Rendered string       `json:"rendered,omitempty"`
}

// CardJSON holds a card in JSON format.
type CardJSON struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// RankedCard pairs a card with its strength.
type RankedCard struct {
	Card     CardJSON `json:"card"`
	Strength int      `json:"strength"`
}

// VecJSON holds a planar vector in JSON format.
type VecJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// worker holds the per-process state shared by all commands.
type worker struct {
	deck    *deck.Deck
	session string
	log     *zap.Logger
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	w := &worker{
		deck:    deck.New(),
		session: uuid.NewString(),
		log:     log,
	}
	log.Info("worker started", zap.String("session", w.session))

	scanner := bufio.NewScanner(os.Stdin)
	// Room for oversized command lines
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, len(buf))

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var cmd Command
		if err := json.Unmarshal([]byte(line), &cmd); err != nil {
			w.log.Warn("malformed command", zap.Error(err))
			writeResponse(out, &Response{Success: false, Error: fmt.Sprintf("invalid JSON: %v", err)})
			continue
		}

		resp := w.handleCommand(&cmd)
		if !resp.Success {
			w.log.Warn("command failed", zap.String("action", cmd.Action), zap.String("error", resp.Error))
		}
		writeResponse(out, resp)
	}

	if err := scanner.Err(); err != nil {
		log.Error("error reading stdin", zap.Error(err))
		os.Exit(1)
	}
}

func (w *worker) handleCommand(cmd *Command) *Response {
	switch cmd.Action {
	case "ping":
		return &Response{Success: true, Session: w.session}
	case "deck":
		return w.handleDeck()
	case "card_at":
		return w.handleCardAt(cmd)
	case "slice":
		return w.handleSlice(cmd)
	case "random_card":
		return w.handleRandomCard(cmd)
	case "sorted":
		return w.handleSorted()
	case "contains":
		return w.handleContains(cmd)
	case "shuffle":
		return w.handleShuffle(cmd)
	case "vec_add":
		return handleVecAdd(cmd)
	case "vec_scale":
		return handleVecScale(cmd)
	case "vec_abs":
		return handleVecAbs(cmd)
	case "vec_is_zero":
		return handleVecIsZero(cmd)
	default:
		return &Response{
			Success: false,
			Error:   fmt.Sprintf("unknown action: %s", cmd.Action),
		}
	}
}

// handleDeck returns the full deck in storage order.
func (w *worker) handleDeck() *Response {
	return &Response{Success: true, Cards: toCardJSON(seq.Collect[deck.Card](w.deck))}
}

// handleCardAt returns the card at a position, negative positions
// counting from the end.
func (w *worker) handleCardAt(cmd *Command) *Response {
	c, err := w.deck.At(cmd.Position)
	if err != nil {
		return &Response{Success: false, Error: err.Error()}
	}
	cj := cardJSON(c)
	return &Response{Success: true, Card: &cj, Rendered: c.String()}
}

// handleSlice returns a clamped half-open range of the deck.
// Omitted bounds mean "from the start" / "to the end".
func (w *worker) handleSlice(cmd *Command) *Response {
	start, stop := 0, w.deck.Len()
	if cmd.Start != nil {
		start = *cmd.Start
	}
	if cmd.Stop != nil {
		stop = *cmd.Stop
	}
	return &Response{Success: true, Cards: toCardJSON(w.deck.Slice(start, stop))}
}

// handleRandomCard returns one uniformly-random card, seeded for
// reproducibility.
func (w *worker) handleRandomCard(cmd *Command) *Response {
	rng := rand.New(rand.NewSource(cmd.Seed))
	c, err := seq.Choice[deck.Card](rng, w.deck)
	if err != nil {
		return &Response{Success: false, Error: err.Error()}
	}
	cj := cardJSON(c)
	return &Response{Success: true, Card: &cj, Rendered: c.String()}
}

// handleSorted returns all cards ascending by strength.
func (w *worker) handleSorted() *Response {
	sorted := seq.SortedBy[deck.Card](w.deck, deck.Strength)
	ranked := make([]RankedCard, 0, len(sorted))
	for _, c := range sorted {
		ranked = append(ranked, RankedCard{Card: cardJSON(c), Strength: deck.Strength(c)})
	}
	return &Response{Success: true, Ranked: ranked}
}

// handleContains reports membership of a card named by textual rank
// and suit.
func (w *worker) handleContains(cmd *Command) *Response {
	c, err := parseCard(cmd.Rank, cmd.Suit)
	if err != nil {
		return &Response{Success: false, Error: err.Error()}
	}
	found := w.deck.Contains(c)
	return &Response{Success: true, Found: &found}
}

// handleShuffle returns a seeded permutation of the deck. The worker's
// deck keeps its construction order.
func (w *worker) handleShuffle(cmd *Command) *Response {
	rng := rand.New(rand.NewSource(cmd.Seed))
	shuffled := w.deck.Shuffled(rng)
	return &Response{Success: true, Cards: toCardJSON(seq.Collect[deck.Card](shuffled))}
}

func handleVecAdd(cmd *Command) *Response {
	if cmd.A == nil || cmd.B == nil {
		return &Response{Success: false, Error: "vec_add requires fields a and b"}
	}
	sum := toVec(cmd.A).Add(toVec(cmd.B))
	vj := vecJSON(sum)
	return &Response{Success: true, Vector: &vj, Rendered: sum.String()}
}

func handleVecScale(cmd *Command) *Response {
	if cmd.V == nil {
		return &Response{Success: false, Error: "vec_scale requires field v"}
	}
	scaled := toVec(cmd.V).Scale(cmd.Scalar)
	vj := vecJSON(scaled)
	return &Response{Success: true, Vector: &vj, Rendered: scaled.String()}
}

func handleVecAbs(cmd *Command) *Response {
	if cmd.V == nil {
		return &Response{Success: false, Error: "vec_abs requires field v"}
	}
	abs := toVec(cmd.V).Abs()
	return &Response{Success: true, Value: &abs}
}

func handleVecIsZero(cmd *Command) *Response {
	if cmd.V == nil {
		return &Response{Success: false, Error: "vec_is_zero requires field v"}
	}
	isZero := toVec(cmd.V).IsZero()
	return &Response{Success: true, IsZero: &isZero}
}

func cardJSON(c deck.Card) CardJSON {
	return CardJSON{Rank: c.Rank.String(), Suit: c.Suit.String()}
}

func toCardJSON(cards []deck.Card) []CardJSON {
	out := make([]CardJSON, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardJSON(c))
	}
	return out
}

// parseCard resolves textual rank and suit names to a Card.
func parseCard(rank, suit string) (deck.Card, error) {
	var c deck.Card
	foundRank := false
	for r := deck.Two; r <= deck.Ace; r++ {
		if r.String() == rank {
			c.Rank = r
			foundRank = true
			break
		}
	}
	if !foundRank {
		return deck.Card{}, fmt.Errorf("unknown rank: %q", rank)
	}
	foundSuit := false
	for s := deck.Spades; s <= deck.Hearts; s++ {
		if s.String() == suit {
			c.Suit = s
			foundSuit = true
			break
		}
	}
	if !foundSuit {
		return deck.Card{}, fmt.Errorf("unknown suit: %q", suit)
	}
	return c, nil
}

func toVec(v *VecJSON) vec.Vec {
	return vec.Vec{X: v.X, Y: v.Y}
}

func vecJSON(v vec.Vec) VecJSON {
	return VecJSON{X: v.X, Y: v.Y}
}

func writeResponse(out *bufio.Writer, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		data = []byte(`{"success":false,"error":"failed to marshal response"}`)
	}
	out.Write(data)
	out.WriteByte('\n')
	out.Flush()
}
