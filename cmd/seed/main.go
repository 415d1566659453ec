// Command seed logs in to a running job board API and creates the jobs
// listed in a JSON file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"
)

func main() {
	_ = godotenv.Load()

	base := flag.String("base", envOr("SEED_BASE_URL", "http://localhost:5000"), "API base URL")
	username := flag.String("username", os.Getenv("SEED_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "admin password")
	file := flag.String("file", "jobs.json", "JSON array of job payloads")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("username and password are required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}
	var jobs []json.RawMessage
	if err := json.Unmarshal(raw, &jobs); err != nil {
		log.Fatalf("parse %s: %v", *file, err)
	}

	cookies, err := login(newClient(*base, loginRetries), *username, *password)
	if err != nil {
		log.Fatal(err)
	}
	client := newClient(*base, 0).SetCookies(cookies)

	created := 0
	for i, job := range jobs {
		id, err := createJob(client, job)
		if err != nil {
			log.Printf("job %d: %v", i, err)
			continue
		}
		fmt.Println(id)
		created++
	}
	log.Printf("created %d of %d jobs", created, len(jobs))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loginRetries applies to login only. Job creation is not idempotent and is
// never retried.
const loginRetries = 2

func newClient(base string, retries int) *resty.Client {
	return resty.New().
		SetBaseURL(base).
		SetTimeout(15*time.Second).
		SetRetryCount(retries).
		SetHeader("Content-Type", "application/json")
}

// login returns the session cookies issued by the API.
func login(client *resty.Client, username, password string) ([]*http.Cookie, error) {
	resp, err := client.R().
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("login: %s: %s", resp.Status(), gjson.Get(resp.String(), "message").String())
	}
	return resp.Cookies(), nil
}

func createJob(client *resty.Client, payload json.RawMessage) (string, error) {
	resp, err := client.R().
		SetBody([]byte(payload)).
		Post("/api/admin/jobs")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("%s: %s", resp.Status(), gjson.Get(resp.String(), "message").String())
	}
	id := gjson.Get(resp.String(), "id").String()
	if id == "" {
		return "", fmt.Errorf("no id in response")
	}
	return id, nil
}
