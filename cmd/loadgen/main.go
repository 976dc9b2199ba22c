// Command loadgen drives concurrent transfer traffic against a running
// wallet service to exercise its locking and idempotency guarantees under
// contention.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var (
	targetURL   string
	walletID    string
	assetTypeID string
	concurrency int
	duration    time.Duration
	flowName    string
)

var (
	totalRequests uint64
	success200    uint64 // idempotent replays
	success201    uint64 // fresh commits
	failConflict  uint64 // 409s
	failOther     uint64
)

func init() {
	flag.StringVar(&targetURL, "url", "http://localhost:8080", "wallet service base URL")
	flag.StringVar(&walletID, "wallet", "", "wallet ID to drive the flow against")
	flag.StringVar(&assetTypeID, "asset", "", "asset type ID to move")
	flag.StringVar(&flowName, "flow", "topup", "flow to exercise: topup | bonus | spend")
	flag.IntVar(&concurrency, "workers", 10, "number of concurrent workers")
	flag.DurationVar(&duration, "duration", 30*time.Second, "test duration")
}

func main() {
	flag.Parse()
	if walletID == "" || assetTypeID == "" {
		log.Fatal("both -wallet and -asset are required")
	}

	log.Printf("starting loadgen: flow=%s workers=%d duration=%s", flowName, concurrency, duration)

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go worker(i, &wg, start)
	}
	wg.Wait()

	printResults(time.Since(start))
}

func worker(id int, wg *sync.WaitGroup, start time.Time) {
	defer wg.Done()
	client := &http.Client{Timeout: 5 * time.Second}
	seq := 0
	prevKey := ""

	for time.Since(start) < duration {
		seq++
		key := fmt.Sprintf("loadgen-%d-%d-%d", id, seq, time.Now().UnixNano())
		payload := map[string]interface{}{
			"walletID":    walletID,
			"assetTypeID": assetTypeID,
			"amount":      "1.00000000",
			"reference":   key,
			"initiatedBy": "loadgen",
		}
		body, _ := json.Marshal(payload)

		url := fmt.Sprintf("%s/v1/wallets/%s/transfers/%s", targetURL, walletID, flowName)
		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			atomic.AddUint64(&failOther, 1)
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", key)
		if prevKey != "" && rand.Float32() < 0.05 {
			// Occasionally reuse the previous key to exercise the idempotency path.
			req.Header.Set("Idempotency-Key", prevKey)
		}
		prevKey = key

		resp, err := client.Do(req)
		if err != nil {
			atomic.AddUint64(&failOther, 1)
			continue
		}
		atomic.AddUint64(&totalRequests, 1)
		switch resp.StatusCode {
		case http.StatusCreated:
			atomic.AddUint64(&success201, 1)
		case http.StatusOK:
			atomic.AddUint64(&success200, 1)
		case http.StatusConflict:
			atomic.AddUint64(&failConflict, 1)
		default:
			atomic.AddUint64(&failOther, 1)
		}
		resp.Body.Close()
	}
}

func printResults(d time.Duration) {
	total := atomic.LoadUint64(&totalRequests)
	results := map[string]interface{}{
		"flow":            flowName,
		"duration_sec":    d.Seconds(),
		"total_requests":  total,
		"throughput_tps":  float64(total) / d.Seconds(),
		"success_created": atomic.LoadUint64(&success201),
		"success_replay":  atomic.LoadUint64(&success200),
		"conflicts":       atomic.LoadUint64(&failConflict),
		"errors":          atomic.LoadUint64(&failOther),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(results)
}
