package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/frostblooded/party-recogniser-naive-bayes/crossval"
	"github.com/frostblooded/party-recogniser-naive-bayes/naivebayes"
	"github.com/frostblooded/party-recogniser-naive-bayes/votes"
)

func fail(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	args := struct {
		Data       string `help:"path to the congressional voting records file"`
		Attributes int    `help:"number of vote attributes per record"`
		Folds      int    `help:"number of cross-validation folds"`
		Seed       int64  `help:"random seed, 0 derives one from the clock"`
		Holdout    bool   `help:"also train/test once on a hashed percentage split"`
		Train      int    `help:"holdout train percentage"`
		Test       int    `help:"holdout test percentage"`
		Plot       string `help:"write a per-fold accuracy bar chart to this file"`
	}{
		Data:       votes.DefaultDataPath,
		Attributes: votes.DefaultAttributeCount,
		Folds:      crossval.DefaultFolds,
		Train:      90,
		Test:       10,
	}
	arg.MustParse(&args)

	start := time.Now()

	records, err := votes.Load(args.Data, args.Attributes)
	fail(err)
	log.Printf("loaded %s records from %s", humanize.Comma(int64(len(records))), args.Data)

	seed := args.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", seed)

	res, err := crossval.Run(records, args.Folds, rand.New(rand.NewSource(seed)))
	fail(err)

	for i, acc := range res.Accuracies {
		fmt.Printf("Accuracy %d: %v\n", i, acc)
	}
	fmt.Printf("Average accuracy: %v\n", res.Mean)

	printSummary(res.Accuracies)
	printConfusion(res.Confusion)

	if args.Holdout {
		holdout(records, args.Train, args.Test, uint64(seed))
	}

	if args.Plot != "" {
		fail(savePlot(res.Accuracies, args.Plot))
		log.Printf("wrote %s", args.Plot)
	}

	fmt.Println("Done! took", time.Since(start))
}

func printSummary(accs []float64) {
	min, err := stats.Min(accs)
	fail(err)
	median, err := stats.Median(accs)
	fail(err)
	max, err := stats.Max(accs)
	fail(err)
	stddev, err := stats.StandardDeviation(accs)
	fail(err)

	padding := 3
	w := tabwriter.NewWriter(os.Stdout, 0, 0, padding, ' ', tabwriter.Debug)

	fmt.Println("Per-fold accuracy summary")
	fmt.Fprintln(w, "min\tmedian\tmax\tstddev\t")
	fmt.Fprintln(w, "--\t--\t--\t--\t")
	fmt.Fprintf(w, "%f\t%f\t%f\t%f\t\n", min, median, max, stddev)
	w.Flush()
}

func printConfusion(c naivebayes.Confusion) {
	padding := 3
	w := tabwriter.NewWriter(os.Stdout, 0, 0, padding, ' ', tabwriter.Debug)

	fmt.Println("Confusion counts, actual rows against predicted columns")
	fmt.Fprintf(w, "\t%s\t%s\t\n", votes.Republican.Name(), votes.Democrat.Name())
	for p := votes.Party(0); p < votes.NumParties; p++ {
		fmt.Fprintf(w, "%s\t%d\t%d\t\n", p.Name(), c.Counts[p][votes.Republican], c.Counts[p][votes.Democrat])
	}
	w.Flush()
}

func holdout(records []votes.Record, train, test int, seed uint64) {
	opts := votes.NewDatasetOptions(train, 0, test, seed)
	if !opts.CheckValid() {
		log.Fatalf("holdout percentages %d/%d must be non-negative and sum to 100", train, test)
	}

	trainSet, _, testSet := votes.ShardSplit(records, opts)
	log.Printf("holdout split: %d train, %d test", len(trainSet), len(testSet))

	model, err := naivebayes.Train(trainSet)
	fail(err)
	acc, err := model.Evaluate(testSet)
	fail(err)
	fmt.Printf("Holdout accuracy: %v\n", acc)
}

func savePlot(accs []float64, path string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Cross-validation accuracy per fold"
	p.Y.Label.Text = "accuracy"
	p.Y.Min, p.Y.Max = 0, 1

	bars, err := plotter.NewBarChart(plotter.Values(accs), vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)

	names := make([]string, 0, len(accs))
	for i := range accs {
		names = append(names, strconv.Itoa(i))
	}
	p.NominalX(names...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
