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
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Walks the public API against a running server:
//
//	go run ./scripts -date 2024-03-05
//
// BASE_URL defaults to http://localhost:3000/api. A short-lived HS256 token is
// minted from JWT_SECRET for a throwaway user.

func baseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:3000/api"
}

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func sendRequest(method, url, token string, body interface{}) (*http.Response, map[string]interface{}, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL()+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// the AI call alone may take up to API_TIMEOUT
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	out := map[string]interface{}{}
	_ = json.Unmarshal(raw, &out)
	return resp, out, nil
}

func step(title string, method, url, token string, body interface{}) map[string]interface{} {
	color.Yellow("\n%s", title)
	resp, out, err := sendRequest(method, url, token, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}
	prettyPrint(out)
	return out
}

func mintToken(secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": fmt.Sprintf("smoke_%d", time.Now().Unix()),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	}).SignedString([]byte(secret))
}

func main() {
	_ = godotenv.Load()

	date := "2024-03-05"
	if len(os.Args) > 2 && os.Args[1] == "-date" {
		date = os.Args[2]
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		color.Red("JWT_SECRET is required to mint a test token")
		os.Exit(1)
	}
	token, err := mintToken(secret)
	if err != nil {
		color.Red("Failed to mint token: %v", err)
		os.Exit(1)
	}

	color.Cyan("FloatChat API smoke test against %s", baseURL())

	step("1. Health", http.MethodGet, "/health", "", nil)
	step("2. Profiles for "+date, http.MethodGet, "/profiles/"+date, "", nil)

	created := step("3. Start a chat", http.MethodPost, "/chat/new", token, map[string]interface{}{
		"message": "What is the temperature at 10N 70E?",
	})
	chatId, _ := created["chatId"].(string)
	if chatId == "" {
		color.Red("No chatId returned, stopping")
		os.Exit(1)
	}

	step("4. Follow up", http.MethodPost, "/chat/"+chatId, token, map[string]interface{}{
		"message": "And the salinity at the same spot?",
	})
	step("5. List chats", http.MethodGet, "/chat/all", token, nil)
	step("6. Fetch chat", http.MethodGet, "/chat/"+chatId, token, nil)

	color.Cyan("\nDone")
}
