package game

import (
	"fmt"
	"os"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"snaker/store"
)

// QuoteManager picks farewell messages and keeps a history file of them.
type QuoteManager struct {
	quotes []string
	file   string
	rng    *rand.Rand
	clock  clock.Clock
	log    *zap.Logger
}

func NewQuoteManager(quotes []string, file string, rng *rand.Rand, clk clock.Clock, log *zap.Logger) *QuoteManager {
	return &QuoteManager{quotes: quotes, file: file, rng: rng, clock: clk, log: log}
}

// Random returns a uniformly chosen quote and records it in the history file.
func (qm *QuoteManager) Random() string {
	if len(qm.quotes) == 0 {
		return ""
	}
	quote := qm.quotes[qm.rng.Intn(len(qm.quotes))]
	if err := qm.record(quote); err != nil {
		qm.log.Warn("failed to record quote", zap.Error(err))
	}
	return quote
}

func (qm *QuoteManager) record(quote string) error {
	if qm.file == "" {
		return nil
	}
	f, err := os.OpenFile(qm.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "[%s] %s\n", qm.clock.Now().Local().Format(store.TimeLayout), quote)
	return err
}
