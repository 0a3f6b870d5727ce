package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// sendQuery runs one program over a fresh connection and returns the raw
// JSON payload of the response
func sendQuery(addr, query string) (string, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("connect %s: %w", addr, err)
	}
	defer conn.Close()

	w := bufio.NewWriter(conn)
	fmt.Fprintf(w, "POST /query HTTP/1.1\r\n")
	fmt.Fprintf(w, "Host: %s\r\n", addr)
	fmt.Fprintf(w, "Content-Length: %d\r\n", len(query))
	fmt.Fprintf(w, "\r\n%s\n", query)
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("send query: %w", err)
	}

	r := bufio.NewReader(conn)
	if _, err := r.ReadString('\n'); err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	length := 0
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read response: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if v, ok := strings.CutPrefix(line, "Content-Length: "); ok {
			length, _ = strconv.Atoi(v)
		}
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(payload), nil
}
