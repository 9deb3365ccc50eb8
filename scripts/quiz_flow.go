// quiz_flow walks a running server through one complete quiz run.
//
//	go run ./scripts
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

const (
	baseURL       = "http://localhost:3000/api"
	firstQuestion = "If anything were possible, what would your dream home look like?"
)

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, map[string]interface{}, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	_ = json.Unmarshal(raw, &parsed)
	return resp, parsed, nil
}

func step(title, method, url string, body interface{}) map[string]interface{} {
	color.Yellow("\n%s", title)
	resp, parsed, err := sendRequest(method, url, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("Status: %s", resp.Status)
		prettyPrint(parsed)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	return parsed
}

func main() {
	color.Cyan("🚀 Starting quiz flow\n")

	reset := step("1. Reset conversation", "POST", "/conversation/reset", nil)
	sessionId := reset["data"].(map[string]interface{})["sessionId"].(string)

	picks := []map[string]interface{}{
		{"questionId": "Q1", "optionId": "A", "tags": map[string][]string{"style": {"warm wood"}, "personality": {"gentle minimalist"}, "emotional": {"warm"}}},
		{"questionId": "Q2", "optionId": "C", "tags": map[string][]string{"style": {"linen", "rattan"}, "personality": {"slow living"}, "emotional": {"calm"}}},
	}
	for _, p := range picks {
		step(fmt.Sprintf("2. Record selection %s", p["questionId"]), "POST", "/visual-selection", p)
	}

	answers := [][2]string{
		{firstQuestion, "A cabin by a lake with big windows."},
		{"What's your favorite moment at home?", "Sunday mornings with coffee and records."},
	}
	for _, qa := range answers {
		q, a := qa[0], qa[1]
		res := step("3. Answer: "+q, "POST", "/conversation", map[string]interface{}{
			"currentQuestion": q,
			"sessionId":       sessionId,
			"messages": []map[string]string{
				{"role": "assistant", "content": q},
				{"role": "user", "content": a},
			},
		})
		prettyPrint(res["data"])
	}

	report := step("4. Generate report", "POST", "/generate-report", nil)
	prettyPrint(report["data"])

	feed := step("5. Broker feed", "GET", "/broker/feed?limit=20", nil)
	prettyPrint(feed["data"])
}
