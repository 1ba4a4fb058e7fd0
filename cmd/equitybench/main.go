// Command equitybench is a thin driver over the equity package for
// manual smoke-checks against a real rank-table asset.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/rangefire/equity"
)

type cli struct {
	RankTable string `arg:"" help:"Path to the two-plus-two rank-table binary asset."`
	Hero      string `short:"h" required:"true" help:"Hero hole cards, e.g. 'As Ah' or 'As Ah Ks Kh' for Omaha."`
	Villain   string `short:"v" required:"true" help:"Villain hole cards, same format as --hero."`
	Board     string `short:"b" help:"Board cards dealt so far (3, 4, or 5 cards)."`
	Omaha     bool   `help:"Treat hero/villain as single Omaha hands instead of Hold'em ranges."`
	Workers   int    `default:"1" help:"Number of goroutines to shard runout aggregation across."`
	Verbose   bool   `short:"V" help:"Enable debug logging."`
}

func main() {
	var c cli
	kong.Parse(&c)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "equitybench"})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	if err := run(c, logger); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(c cli, logger *log.Logger) error {
	table, err := os.ReadFile(c.RankTable)
	if err != nil {
		return fmt.Errorf("reading rank table: %w", err)
	}
	calc, err := equity.NewCalculator(table, equity.WithLogger(logger), equity.WithWorkers(c.Workers))
	if err != nil {
		return fmt.Errorf("constructing calculator: %w", err)
	}

	board, err := equity.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("parsing board: %w", err)
	}

	if c.Omaha {
		return runOmaha(calc, c, board)
	}
	return runHoldem(calc, c, board)
}

func runHoldem(calc *equity.Calculator, c cli, board []equity.Card) error {
	heroCards, err := equity.ParseCards(c.Hero)
	if err != nil {
		return fmt.Errorf("parsing hero: %w", err)
	}
	villCards, err := equity.ParseCards(c.Villain)
	if err != nil {
		return fmt.Errorf("parsing villain: %w", err)
	}
	if len(heroCards) != 2 || len(villCards) != 2 {
		return fmt.Errorf("hold'em hands must have exactly 2 cards")
	}

	hero := equity.NewHoldemRange()
	villain := equity.NewHoldemRange()
	hero.SetHand(heroCards[0], heroCards[1], 1.0)
	villain.SetHand(villCards[0], villCards[1], 1.0)

	results, err := calc.HoldemEquity(hero, villain, board)
	if err != nil {
		return err
	}
	return printHoldemResults(results)
}

func runOmaha(calc *equity.Calculator, c cli, board []equity.Card) error {
	heroCards, err := equity.ParseCards(c.Hero)
	if err != nil {
		return fmt.Errorf("parsing hero: %w", err)
	}
	villCards, err := equity.ParseCards(c.Villain)
	if err != nil {
		return fmt.Errorf("parsing villain: %w", err)
	}
	villain, err := equity.NewOmahaRange(len(villCards))
	if err != nil {
		return err
	}
	if err := villain.AddHand(villCards, 1.0); err != nil {
		return err
	}

	switch len(board) {
	case 5:
		result, err := calc.OmahaLeafEquity(heroCards, villain, board)
		if err != nil {
			return err
		}
		return printOmahaResults([]equity.RunoutEquity{result})
	default:
		results, err := calc.OmahaEquity(heroCards, villain, board)
		if err != nil {
			return err
		}
		return printOmahaResults(results)
	}
}

func printHoldemResults(results []equity.EquityResult) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "hand\twin\ttie\tlose\n")
	for _, r := range results {
		win, tie, lose := r.Equity.Percentages()
		fmt.Fprintf(w, "%s%s\t%.2f%%\t%.2f%%\t%.2f%%\n",
			r.Combo[0], r.Combo[1], win*100, tie*100, lose*100)
	}
	return w.Flush()
}

func printOmahaResults(results []equity.RunoutEquity) error {
	var total equity.Equity
	for _, r := range results {
		total = total.Add(r.Equity)
	}
	win, tie, lose := total.Percentages()
	fmt.Printf("aggregated over %d runout(s): %s\n", len(results), strings.TrimSpace(fmt.Sprintf("win=%.2f%% tie=%.2f%% lose=%.2f%%", win*100, tie*100, lose*100)))
	return nil
}
