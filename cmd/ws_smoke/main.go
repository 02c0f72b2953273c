package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// Logs in, subscribes to /api/events, creates and deletes a list and
// prints the events that come back.
func main() {
	username := flag.String("username", os.Getenv("SMOKE_USERNAME"), "username")
	password := flag.String("password", os.Getenv("SMOKE_PASSWORD"), "password")
	flag.Parse()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	base := "http://127.0.0.1:" + port

	token := login(base, *username, *password)
	header := http.Header{"Authorization": {"Bearer " + token}}

	conn, _, err := websocket.DefaultDialer.Dial("ws://127.0.0.1:"+port+"/api/events", header)
	if err != nil {
		log.Fatalf("dial events: %v", err)
	}
	defer conn.Close()

	readEvent := func() {
		_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			return
		}
		log.Printf("got: %s", string(msg))
	}

	readEvent() // ready

	var list struct {
		ID int64 `json:"id"`
	}
	call(base, token, http.MethodPost, "/api/lists", `{"name":"smoke test"}`, &list)
	readEvent()

	call(base, token, http.MethodPost, fmt.Sprintf("/api/lists/%d/tasks", list.ID), `{"description":"check events"}`, nil)
	readEvent()

	call(base, token, http.MethodDelete, fmt.Sprintf("/api/lists/%d", list.ID), "", nil)
	readEvent()

	log.Println("smoke test finished")
}

func login(base, username, password string) string {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	res, err := http.Post(base+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("login: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("login: status %d", res.StatusCode)
	}
	for _, c := range res.Cookies() {
		if c.Name == "family_session" {
			return c.Value
		}
	}
	log.Fatal("login: no session cookie")
	return ""
}

func call(base, token, method, path, body string, out any) {
	req, err := http.NewRequest(method, base+path, bytes.NewBufferString(body))
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		log.Fatalf("%s %s: status %d", method, path, res.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			log.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
}
