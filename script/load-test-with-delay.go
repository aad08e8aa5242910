package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventPayload is the body of POST /api/v1/events
type EventPayload struct {
	Dataspace string         `json:"dataspace"`
	EventType string         `json:"eventType"`
	Count     float64        `json:"count"`
	Time      string         `json:"time"`
	Props     map[string]any `json:"props"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	DataspaceStats     map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario builds one request against the API
type Scenario struct {
	Name  string
	Build func(baseURL, dataspace string, jobID int) (*http.Request, error)
}

// timeInputs mixes every parsing strategy, including ones that are expected to fail
var timeInputs = []string{
	"2009-11-18", "2009-11-18T10:30:00Z", "1258540200000", "Nov 2009", "18/11/09",
	"yesterday", "last week", "3 days ago", "next monday", "start of this month",
	"friday 5pm", "2 hours from now", "yesterday to now", "not a date",
}

func getRequest(baseURL, path string, q url.Values) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, baseURL+path+"?"+q.Encode(), nil)
}

func postJSON(target string, body any) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func scenarios() []Scenario {
	return []Scenario{
		{"Parse", func(base, _ string, _ int) (*http.Request, error) {
			return getRequest(base, "/api/v1/parse", url.Values{"q": {timeInputs[rand.IntN(len(timeInputs))]}})
		}},
		{"Humanize", func(base, _ string, _ int) (*http.Request, error) {
			return getRequest(base, "/api/v1/humanize", url.Values{"q": {timeInputs[rand.IntN(len(timeInputs))]}})
		}},
		{"Batch parse", func(base, _ string, _ int) (*http.Request, error) {
			return postJSON(base+"/api/v1/parse/batch", map[string]any{"inputs": timeInputs})
		}},
		{"Record event", func(base, dataspace string, jobID int) (*http.Request, error) {
			return postJSON(base+"/api/v1/events", EventPayload{
				Dataspace: dataspace,
				EventType: "pageview",
				Count:     float64(1 + rand.IntN(5)),
				Time:      timeInputs[rand.IntN(len(timeInputs)-1)],
				Props:     map[string]any{"job": jobID},
			})
		}},
		{"Histogram", func(base, dataspace string, _ int) (*http.Request, error) {
			return getRequest(base, "/api/v1/events/histogram", url.Values{"dataspace": {dataspace}, "period": {"last month to now"}})
		}},
	}
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	dataspacesStr := flag.String("d", "shop,blog,docs", "Comma-separated list of dataspaces to distribute events across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var dataspaces []string
	for _, d := range strings.Split(*dataspacesStr, ",") {
		if d = strings.TrimSpace(d); d != "" {
			dataspaces = append(dataspaces, d)
		}
	}
	if len(dataspaces) == 0 {
		dataspaces = []string{"default"}
	}

	all := scenarios()

	fmt.Printf("Load testing %s across %d dataspaces: %v\n", *baseURL, len(dataspaces), dataspaces)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		DataspaceStats:  make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, dataspaces, all, jobs, results, stats)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Scenario + ": " + result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			stats.MinResponseTime = min(stats.MinResponseTime, result.ResponseTime)
			stats.MaxResponseTime = max(stats.MaxResponseTime, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			if completed := stats.SuccessfulRequests + stats.FailedRequests; completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func worker(baseURL string, delayMs int, dataspaces []string, all []Scenario,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{Timeout: 10 * time.Second}

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		dataspace := dataspaces[rand.IntN(len(dataspaces))]
		scenario := all[rand.IntN(len(all))]

		stats.Lock.Lock()
		stats.DataspaceStats[dataspace]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		req, err := scenario.Build(baseURL, dataspace, jobID)
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}

		start := time.Now()
		resp, err := client.Do(req)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(start)}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			// A 400 for an unparseable input is a correct answer, not a failure
			result.Success = resp.StatusCode < http.StatusInternalServerError
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			_ = resp.Body.Close()
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	return sorted[len(sorted)*p/100]
}

func printDistribution(title string, counts map[string]int) {
	fmt.Printf("\n----------------- %s -----------------\n", title)
	total := 0
	for _, count := range counts {
		total += count
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if counts[k] > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", k, counts[k], float64(counts[k])/float64(total)*100)
		}
	}
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime, p50, p90, p95, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(n)
		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		p50, p90, p95, p99 = percentile(sorted, 50), percentile(sorted, 90), percentile(sorted, 95), percentile(sorted, 99)
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests/second:     %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	printDistribution("DATASPACE DISTRIBUTION", stats.DataspaceStats)
	printDistribution("SCENARIO DISTRIBUTION", stats.ScenarioStats)

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
