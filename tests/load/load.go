package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	baseURL      = "http://localhost:8080"
	targetRPS    = 5
	testDuration = 2 * time.Minute
)

var rng *rand.Rand

type createUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type createPitchRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type addTeamRequest struct {
	Name string `json:"name"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run load.go <scenario>")
		fmt.Println("Scenarios: health, pitch, directory, all")
		os.Exit(1)
	}

	scenario := os.Args[1]
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))

	var metrics vegeta.Metrics
	var err error

	switch scenario {
	case "health":
		metrics, err = testHealth()
	case "pitch":
		metrics, err = testPitch()
	case "directory":
		metrics, err = testDirectory()
	case "all":
		metrics, err = testAll()
	default:
		fmt.Printf("Unknown scenario: %s\n", scenario)
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printMetrics(metrics)
}

func testHealth() (vegeta.Metrics, error) {
	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: "GET",
		URL:    baseURL + "/health",
	})

	return runAttack(targeter, "Health Check")
}

func testPitch() (vegeta.Metrics, error) {
	suffix := rng.Intn(100000)

	targeter := vegeta.NewStaticTargeter(
		vegeta.Target{
			Method: "POST",
			URL:    baseURL + "/pitch/create",
			Body:   createPitchBody(fmt.Sprintf("Load Pitch %d", suffix)),
			Header: http.Header{
				"Content-Type": []string{"application/json"},
			},
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/pitch?status=PENDING",
		},
	)

	return runAttack(targeter, "Pitch Operations")
}

func testDirectory() (vegeta.Metrics, error) {
	suffix := rng.Intn(100000)

	targeter := vegeta.NewStaticTargeter(
		vegeta.Target{
			Method: "POST",
			URL:    baseURL + "/users",
			Body:   createUserBody(suffix),
			Header: http.Header{
				"Content-Type": []string{"application/json"},
			},
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/users",
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/team",
		},
	)

	return runAttack(targeter, "Directory Operations")
}

func testAll() (vegeta.Metrics, error) {
	suffix := rng.Intn(100000)

	targeter := vegeta.NewStaticTargeter(
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/health",
		},
		vegeta.Target{
			Method: "POST",
			URL:    baseURL + "/team/add",
			Body:   addTeamBody(fmt.Sprintf("load_team_%d", suffix)),
			Header: http.Header{
				"Content-Type": []string{"application/json"},
			},
		},
		vegeta.Target{
			Method: "POST",
			URL:    baseURL + "/pitch/create",
			Body:   createPitchBody(fmt.Sprintf("Load Pitch %d", suffix)),
			Header: http.Header{
				"Content-Type": []string{"application/json"},
			},
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/pitch",
		},
		vegeta.Target{
			Method: "GET",
			URL:    baseURL + "/users",
		},
	)

	return runAttack(targeter, "All Endpoints")
}

func runAttack(targeter vegeta.Targeter, name string) (vegeta.Metrics, error) {
	rate := vegeta.Rate{Freq: targetRPS, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, testDuration, name) {
		metrics.Add(res)
	}
	metrics.Close()

	return metrics, nil
}

func createPitchBody(title string) []byte {
	req := createPitchRequest{
		Title:       title,
		Description: "generated by the load runner",
	}
	body, _ := json.Marshal(req)
	return body
}

func createUserBody(suffix int) []byte {
	req := createUserRequest{
		FirstName: "Load",
		LastName:  fmt.Sprintf("User%d", suffix),
		Email:     fmt.Sprintf("load.user.%d.%d@load.test", suffix, time.Now().UnixNano()),
	}
	body, _ := json.Marshal(req)
	return body
}

func addTeamBody(name string) []byte {
	req := addTeamRequest{Name: name}
	body, _ := json.Marshal(req)
	return body
}

func printMetrics(metrics vegeta.Metrics) {
	fmt.Printf("\n=== Load Test Results ===\n\n")
	fmt.Printf("Requests Total:     %d\n", metrics.Requests)
	fmt.Printf("Success Rate:       %.2f%%\n", metrics.Success*100)
	fmt.Printf("Duration:           %v\n", metrics.Duration)

	if metrics.Requests > 0 {
		fmt.Printf("\nLatency:\n")
		fmt.Printf("  Mean:             %v\n", metrics.Latencies.Mean)
		fmt.Printf("  P50:              %v\n", metrics.Latencies.P50)
		fmt.Printf("  P95:              %v\n", metrics.Latencies.P95)
		fmt.Printf("  P99:              %v\n", metrics.Latencies.P99)
		fmt.Printf("  Max:              %v\n", metrics.Latencies.Max)

		fmt.Printf("\nThroughput:\n")
		fmt.Printf("  Requests/sec:     %.2f\n", metrics.Rate)

		fmt.Printf("\nStatus Codes:\n")
		for code, count := range metrics.StatusCodes {
			fmt.Printf("  %s: %d\n", code, count)
		}

		fmt.Printf("\nErrors:\n")
		if len(metrics.Errors) > 0 {
			for _, err := range metrics.Errors {
				fmt.Printf("  %s\n", err)
			}
		} else {
			fmt.Printf("  None\n")
		}
	}
	fmt.Printf("\n")
}
