package server

import (
	"bufio"
	"fmt"
	"strings"
)

// maxBodyBytes caps how much of a request body is read as the query line
const maxBodyBytes = 512

// readQuery consumes one request from the connection: the request line
// (discarded), header lines up to a blank line (discarded), then at most
// maxBodyBytes of a single-line body, which is the query text.
// Multi-line bodies are not supported; anything past the first newline
// in the body is ignored.
func readQuery(r *bufio.Reader) (string, error) {
	if _, err := r.ReadString('\n'); err != nil {
		return "", err
	}

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		if strings.TrimRight(line, "\r\n") == "" {
			break
		}
	}

	body := make([]byte, 0, maxBodyBytes)
	for len(body) < maxBodyBytes {
		ch, err := r.ReadByte()
		if err != nil {
			if len(body) == 0 {
				return "", fmt.Errorf("empty request body: %w", err)
			}
			break
		}
		if ch == '\n' {
			break
		}
		body = append(body, ch)
	}

	return strings.TrimRight(string(body), "\r"), nil
}

// writeResponse sends the success-status envelope. Logical failures ride
// inside the JSON body; the transport status is always 200.
func writeResponse(w *bufio.Writer, body string) error {
	fmt.Fprintf(w, "HTTP/1.1 200 OK\r\n")
	fmt.Fprintf(w, "Content-Type: application/json\r\n")
	fmt.Fprintf(w, "Content-Length: %d\r\n", len(body))
	fmt.Fprintf(w, "\r\n")
	if _, err := w.WriteString(body); err != nil {
		return err
	}
	return w.Flush()
}
