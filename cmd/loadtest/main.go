package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"sync/atomic"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	rps      = 50
	duration = time.Minute
)

type activity struct {
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

var (
	targetHost = getEnv("LOADTEST_TARGET", "http://localhost:8080")
	activities []string
	emailSeq   atomic.Int64
	httpc      = &http.Client{Timeout: 10 * time.Second}
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func fetchActivities() (map[string]activity, error) {
	resp, err := httpc.Get(targetHost + "/activities")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /activities returned %d", resp.StatusCode)
	}

	var result map[string]activity
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 70% GET /activities
		if r < 0.70 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/activities"
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 30% POST signup с уникальным email: после заполнения мест ожидаем 400
		name := activities[rand.Intn(len(activities))]
		email := fmt.Sprintf("load-%d@mergington.edu", emailSeq.Add(1))
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/activities/%s/signup?email=%s", targetHost, url.PathEscape(name), url.QueryEscape(email))
		t.Body = nil
		t.Header = map[string][]string{"Accept": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "signup-load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

// verifyCapacity проверяет, что ни одно занятие не переполнено после нагрузки
func verifyCapacity() error {
	result, err := fetchActivities()
	if err != nil {
		return err
	}

	for name, a := range result {
		fmt.Printf("%-20s %d/%d\n", name, len(a.Participants), a.MaxParticipants)
		if len(a.Participants) > a.MaxParticipants {
			return fmt.Errorf("activity %q over capacity: %d/%d", name, len(a.Participants), a.MaxParticipants)
		}
	}
	return nil
}

func main() {
	initial, err := fetchActivities()
	if err != nil {
		log.Fatalf("Failed to fetch activities: %v", err)
	}
	for name := range initial {
		activities = append(activities, name)
	}
	if len(activities) == 0 {
		log.Fatal("No activities to attack")
	}

	runAttack()

	if err := verifyCapacity(); err != nil {
		log.Fatalf("Capacity check failed: %v", err)
	}
}
