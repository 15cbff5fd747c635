package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/newmokha/poseidon-sponge/pkg/poseidon-sponge"
)

// Request is one hashing job, one JSON object per input line. Field
// elements are decimal or 0x-prefixed hexadecimal strings. Omitted fields
// fall back to the defaults: rate 2, the standard schedule, one digest.
type Request struct {
	Inputs   []string `json:"inputs"`
	Rate     int      `json:"rate,omitempty"`
	Schedule string   `json:"schedule,omitempty"`
	Outputs  int      `json:"outputs,omitempty"`
}

// Response carries the squeezed digests for one request, in decimal.
type Response struct {
	Digests []string `json:"digests"`
}

func main() {
	// Read JSON lines from stdin, one hashing request per line
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	encoder := json.NewEncoder(os.Stdout)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var req Request
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			fatal(fmt.Sprintf("Failed to parse request on line %d: %v", line, err))
		}

		resp, err := handle(&req)
		if err != nil {
			fatal(fmt.Sprintf("Request on line %d failed: %v", line, err))
		}

		if err := encoder.Encode(resp); err != nil {
			fatal(fmt.Sprintf("Failed to write response: %v", err))
		}
	}

	if err := scanner.Err(); err != nil {
		fatal(fmt.Sprintf("Failed to read input: %v", err))
	}
}

// handle hashes one request with a fresh sponge
func handle(req *Request) (*Response, error) {
	config := poseidonsponge.DefaultConfig()
	if req.Rate != 0 {
		config.WithRate(req.Rate)
	}
	if req.Schedule != "" {
		config.WithSchedule(req.Schedule)
	}
	if req.Outputs != 0 {
		config.WithOutputs(req.Outputs)
	}

	inputs := make([]poseidonsponge.Element, len(req.Inputs))
	for i, s := range req.Inputs {
		e, err := poseidonsponge.ParseElement(s)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		inputs[i] = e
	}

	sponge, err := poseidonsponge.NewSponge(config)
	if err != nil {
		return nil, err
	}

	sponge.Absorb(inputs)
	out := sponge.Squeeze(config.Outputs)

	digests := make([]string, len(out))
	for i := range out {
		digests[i] = out[i].String()
	}

	return &Response{Digests: digests}, nil
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "poseidon-hash:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
