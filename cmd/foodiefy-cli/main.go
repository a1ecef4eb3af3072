package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"foodiefy/recommender"
)

type cliOptions struct {
	configPath string
	locality   string
	cuisine    string
	outputPath string
	outputDir  string
	stdout     bool
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		log.Fatalf("foodiefy-cli: %v", err)
	}
}

func parseFlags() cliOptions {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.StringVar(&opts.locality, "locality", recommender.Any, "Locality to filter by (exact match, or Any)")
	flag.StringVar(&opts.cuisine, "cuisine", recommender.Any, "Cuisine to filter by (substring match, or Any)")
	flag.StringVar(&opts.outputPath, "output", "", "CSV file to write recommendations (default uses --output-dir/recommendations_*.csv)")
	flag.StringVar(&opts.outputDir, "output-dir", "csv", "Directory where result CSVs are written when --output is omitted")
	flag.BoolVar(&opts.stdout, "stdout", false, "Print recommendations to STDOUT instead of writing a CSV")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [--locality NAME] [--cuisine NAME] [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.locality = strings.TrimSpace(opts.locality)
	opts.cuisine = strings.TrimSpace(opts.cuisine)
	opts.outputPath = strings.TrimSpace(opts.outputPath)
	opts.outputDir = strings.TrimSpace(opts.outputDir)
	if opts.locality == "" {
		opts.locality = recommender.Any
	}
	if opts.cuisine == "" {
		opts.cuisine = recommender.Any
	}
	return opts
}

func run(opts cliOptions) error {
	_ = godotenv.Load()
	if opts.configPath == "" {
		opts.configPath = os.Getenv("FOODIEFY_CONFIG")
	}

	cfg, err := recommender.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := log.New(os.Stderr, "", log.LstdFlags)
	service, err := recommender.NewService(cfg, logger)
	if err != nil {
		return fmt.Errorf("init service: %w", err)
	}
	if err := service.DataErr(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	result, err := service.Recommend(recommender.FilterCriteria{
		Locality: opts.locality,
		Cuisine:  opts.cuisine,
	})
	if errors.Is(err, recommender.ErrNoMatch) {
		fmt.Println("No restaurants found matching your criteria. Please try something else!")
		return nil
	}
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	fmt.Printf("Found %d matching restaurants.\n", result.Matches)
	if opts.stdout {
		printResult(result)
		return nil
	}

	outputPath, err := resolveOutputPath(opts.outputPath, opts.outputDir)
	if err != nil {
		return err
	}
	if err := writeResultCSV(outputPath, result); err != nil {
		return err
	}
	fmt.Printf("Wrote recommendations to %s\n", outputPath)
	return nil
}

func printResult(result recommender.Result) {
	fmt.Printf("Similar to %s (%s):\n", result.Seed.Name, result.Seed.Locality)
	for i, rec := range result.Recommendations {
		r := rec.Restaurant
		fmt.Printf("%d. %s\n", i+1, r.Name)
		fmt.Printf("    Address: %s\n", r.Address)
		fmt.Printf("    Cuisine: %s\n", r.Cuisines)
		fmt.Printf("    Rating: %.1f  Votes: %d\n", r.Rating, r.Votes)
		fmt.Printf("    Map: %s\n", rec.MapURL)
	}
}

func resolveOutputPath(path, dir string) (string, error) {
	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
		return absPath, nil
	}
	if dir == "" {
		dir = "csv"
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	filename := fmt.Sprintf("recommendations_%s.csv", time.Now().Format("20060102150405"))
	return filepath.Join(absDir, filename), nil
}

func writeResultCSV(path string, result recommender.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	header := []string{"Restaurant_Name", "Detail_address", "Cuisines", "Ratings_out_of_5", "Number of votes", "Map_URL"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range result.Recommendations {
		r := rec.Restaurant
		row := []string{
			r.Name,
			r.Address,
			r.Cuisines,
			strconv.FormatFloat(r.Rating, 'f', 1, 64),
			strconv.Itoa(r.Votes),
			rec.MapURL,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush result: %w", err)
	}
	return nil
}
