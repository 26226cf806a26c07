// Command predict queries a running server and prints betting predictions.
//
//	predict -p1 1905 -p2 2072
//	predict -batch 1905:2072,30:521
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
	"github.com/ustadmustafa/TennisBetRecommender/internal/worker"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "API base URL")
	p1 := flag.Int64("p1", 0, "first player key")
	p2 := flag.Int64("p2", 0, "second player key")
	batch := flag.String("batch", "", "comma separated p1:p2 pairs")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := &http.Client{Timeout: *timeout}

	if *batch != "" {
		matchups, err := parseMatchups(*batch)
		if err != nil {
			log.Fatalf("Invalid -batch: %v", err)
		}
		result, err := fetchBatch(ctx, client, *server, matchups)
		if err != nil {
			log.Fatalf("Batch request failed: %v", err)
		}
		fmt.Printf("Batch %s\n\n", result.BatchID)
		for _, r := range result.Results {
			if r.Error != "" {
				fmt.Printf("%d vs %d: error: %s\n\n", r.Player1, r.Player2, r.Error)
				continue
			}
			printPredictions(os.Stdout, r.Predictions)
		}
		return
	}

	if *p1 <= 0 || *p2 <= 0 {
		flag.Usage()
		os.Exit(2)
	}
	preds, err := fetchPredictions(ctx, client, *server, *p1, *p2)
	if err != nil {
		log.Fatalf("Prediction request failed: %v", err)
	}
	printPredictions(os.Stdout, preds)
}

// parseMatchups parses "1:2,3:4" into matchups
func parseMatchups(raw string) ([]worker.Matchup, error) {
	var out []worker.Matchup
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		a, b, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("pair %q is not p1:p2", pair)
		}
		k1, err1 := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		k2, err2 := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("pair %q has a non-numeric key", pair)
		}
		out = append(out, worker.Matchup{Player1: k1, Player2: k2})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no matchups given")
	}
	return out, nil
}

func fetchPredictions(ctx context.Context, client *http.Client, server string, p1, p2 int64) (*models.MatchBettingPredictions, error) {
	q := url.Values{}
	q.Set("player1", strconv.FormatInt(p1, 10))
	q.Set("player2", strconv.FormatInt(p2, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(server, "/")+"/api/v1/predictions?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var out models.MatchBettingPredictions
	if err := doJSON(client, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func fetchBatch(ctx context.Context, client *http.Client, server string, matchups []worker.Matchup) (*worker.BatchResult, error) {
	payload, err := json.Marshal(map[string]interface{}{"matchups": matchups})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(server, "/")+"/api/v1/predictions/batch", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out worker.BatchResult
	if err := doJSON(client, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func doJSON(client *http.Client, req *http.Request, out interface{}) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", resp.Status, apiErr.Error)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func printPredictions(w io.Writer, preds *models.MatchBettingPredictions) {
	if preds == nil {
		return
	}
	fmt.Fprintf(w, "%s vs %s  (overall confidence %.0f%%)\n", preds.Player1Name, preds.Player2Name, preds.OverallConfidence*100)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BET\tPICK\tCONFIDENCE\tODDS\tRECOMMENDATION")
	for _, p := range preds.Predictions {
		fmt.Fprintf(tw, "%s\t%s\t%.0f%%\t%.2f\t%s\n", p.BetType, p.PredictedOutcome, p.Confidence*100, p.RecommendedOdds, p.Recommendation)
	}
	tw.Flush()

	if len(preds.DataQuality) > 0 {
		parts := make([]string, 0, len(preds.DataQuality))
		for _, src := range []string{models.SourceH2H, models.SourcePlayer1, models.SourcePlayer2, models.SourceATPStandings, models.SourceWTAStandings} {
			if status, ok := preds.DataQuality[src]; ok {
				parts = append(parts, fmt.Sprintf("%s=%s", src, status))
			}
		}
		fmt.Fprintf(w, "data: %s\n", strings.Join(parts, " "))
	}
	fmt.Fprintln(w)
}
